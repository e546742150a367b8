package ruxios

import (
	json "github.com/goccy/go-json"
)

// Stringify returns the compact JSON text of v.
//
// Example:
//
//	s, _ := ruxios.Stringify(struct {
//	    Title string `json:"title"`
//	}{"foo"})
//	// s == `{"title":"foo"}`
func Stringify(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ConvertMap converts a map keyed and valued by string-like types into a
// plain map[string]string, e.g. for FetchBuilder.Headers.
func ConvertMap[K ~string, V ~string](m map[K]V) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[string(k)] = string(v)
	}
	return out
}

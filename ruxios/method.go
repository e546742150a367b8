package ruxios

import (
	"net/http"
	"strings"
)

// Method is an HTTP request method.
//
// The constants match the net/http method names, so a Method can be passed
// anywhere a method string is expected.
type Method string

// Supported HTTP methods.
const (
	MethodGet     Method = http.MethodGet
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodDelete  Method = http.MethodDelete
	MethodHead    Method = http.MethodHead
	MethodOptions Method = http.MethodOptions
	MethodConnect Method = http.MethodConnect
	MethodPatch   Method = http.MethodPatch
	MethodTrace   Method = http.MethodTrace
)

// String returns the method name.
func (m Method) String() string {
	return string(m)
}

// ParseMethod maps a method name to a Method, ignoring case.
//
// Unknown names, including the empty string and misspellings, resolve to
// MethodGet. ParseMethod never fails.
//
// Example:
//
//	ruxios.ParseMethod("post")   // MethodPost
//	ruxios.ParseMethod("banana") // MethodGet
func ParseMethod(name string) Method {
	switch m := Method(strings.ToUpper(name)); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodHead,
		MethodOptions, MethodConnect, MethodPatch, MethodTrace:
		return m
	default:
		return MethodGet
	}
}

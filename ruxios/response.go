package ruxios

import (
	"net/http"
)

// Response is the envelope of a completed 2xx request: the status code and
// the body decoded into T.
//
// Example:
//
//	resp, err := ruxios.Get[User, ruxios.Value](ctx, client, "/users/1")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.Status, resp.Data.Name)
type Response[T any] struct {
	// Status is the HTTP status code.
	Status int

	// Header holds the response headers.
	Header http.Header

	// Data is the decoded response body.
	Data T
}

// Ok reports whether Status is in the 2xx range.
func (r *Response[T]) Ok() bool {
	return r.Status >= 200 && r.Status < 300
}

// Decode re-decodes the body of an untyped response into U.
//
// Only a Response[Value] can be re-decoded: a response already decoded into
// a concrete type has lost the original document. A shape mismatch returns a
// KindDecode *Error[Value] carrying the response status.
//
// Example:
//
//	resp, err := ruxios.Fetch("https://api.github.com/users/octocat").Do(ctx)
//	user, err := ruxios.Decode[User](resp)
func Decode[U any](r *Response[Value]) (U, error) {
	var out U
	if err := r.Data.Decode(&out); err != nil {
		return out, newError[Value](KindDecode, r.Status, err)
	}
	return out, nil
}

package request

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Request is a small wrapper around *http.Request providing convenience
// methods used by controllers.
type Request struct {
	R *http.Request
}

// New wraps an *http.Request.
func New(r *http.Request) *Request {
	return &Request{R: r}
}

// Context returns the request context, or context.Background for a nil request.
func (r *Request) Context() context.Context {
	if r == nil || r.R == nil {
		return context.Background()
	}
	return r.R.Context()
}

// Param returns a URL parameter value by name.
func (r *Request) Param(name string) string {
	if r == nil || r.R == nil {
		return ""
	}
	return chi.URLParam(r.R, name)
}

// Uint32Param parses the URL parameter name as an unsigned 32-bit integer.
func (r *Request) Uint32Param(name string) (uint32, error) {
	raw := r.Param(name)
	if raw == "" {
		return 0, fmt.Errorf("missing path parameter %q", name)
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("path parameter %q: %w", name, err)
	}
	return uint32(n), nil
}

// ID returns the request id assigned by the RequestID middleware, if any.
func (r *Request) ID() string {
	return middleware.GetReqID(r.Context())
}

// Method returns the HTTP method.
func (r *Request) Method() string {
	if r == nil || r.R == nil {
		return ""
	}
	return r.R.Method
}

// Path returns the request URL path.
func (r *Request) Path() string {
	if r == nil || r.R == nil {
		return ""
	}
	return r.R.URL.Path
}

// RemoteAddr returns the client's remote address.
func (r *Request) RemoteAddr() string {
	if r == nil || r.R == nil {
		return ""
	}
	return r.R.RemoteAddr
}

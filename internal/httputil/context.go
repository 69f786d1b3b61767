package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions.
type contextKey string

const (
	callerKey    contextKey = "caller"
	requestIDKey contextKey = "requestID"
)

// WithCaller returns a request whose context carries the verified caller
// account set by the auth middleware.
func WithCaller(r *http.Request, account string) *http.Request {
	ctx := context.WithValue(r.Context(), callerKey, account)
	return r.WithContext(ctx)
}

// Caller retrieves the verified caller account, or empty string if the
// request never passed authentication.
func Caller(r *http.Request) string {
	account, _ := r.Context().Value(callerKey).(string)
	return account
}

// WithRequestID returns a request whose context carries the correlation id.
func WithRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDKey, id)
	return r.WithContext(ctx)
}

// RequestID retrieves the correlation id, or empty string if none was set.
func RequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}

package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"lorebook/internal/httputil"
)

// RequestID attaches a correlation id to every request, honoring one supplied
// by the client, and echoes it in the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, httputil.WithRequestID(r, id))
	})
}

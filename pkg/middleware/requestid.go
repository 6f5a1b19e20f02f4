package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestID tags every request with an identifier, honouring one supplied
// by a fronting proxy. The identifier travels in the context and is echoed
// back in the response headers.
func RequestID() Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)

			ctx := context.WithValue(r.Context(), ContextKeyRequestID, id)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

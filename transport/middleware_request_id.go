package transport

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/farhanadi/shopfront/constant"
)

// RequestIDMiddleware ensures every request carries a correlation id: an
// incoming X-Request-ID is reused, otherwise a fresh uuid is minted. The id
// is stored in the request context and echoed on the response.
func RequestIDMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constant.RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set(constant.RequestIDHeader, requestID)

			ctx := context.WithValue(r.Context(), constant.RequestIDKey, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID retrieves the request id from the context, if any.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(constant.RequestIDKey).(string); ok {
		return v
	}
	return ""
}

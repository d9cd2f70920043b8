package constant

type ContextKey string

const (
	// RequestIDKey carries the correlation id injected by the request-id middleware.
	RequestIDKey ContextKey = "request_id"
)

const (
	// RequestIDHeader is echoed back on every response for log correlation.
	RequestIDHeader = "X-Request-ID"

	// CartCookie stores the client's cart identifier.
	CartCookie = "cart_id"
)

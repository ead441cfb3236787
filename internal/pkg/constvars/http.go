package constvars

const (
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"

	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderCacheControl = "Cache-Control"
	HeaderContentType  = "Content-Type"
	HeaderExpires      = "Expires"
	HeaderPragma       = "Pragma"
	HeaderXRequestID   = "X-Request-ID"
)

const (
	CacheControlNoStore = "no-store, no-cache, must-revalidate"
	PragmaNoCache       = "no-cache"
	ExpiresImmediately  = "0"
)

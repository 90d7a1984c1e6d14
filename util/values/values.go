package values

type contextKey string

// ContextTracingKey carries the tracing.Context for the request.
const ContextTracingKey = contextKey("tracing-context")

const (
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestSource = "X-Request-Source"
	HeaderAccessToken   = "x-access-token"
)

// Response statuses. util.StatusCode maps these to HTTP codes.
const (
	Success        = "success"
	Created        = "created"
	Failed         = "failed"
	Error          = "error"
	BadRequestBody = "bad-request"
	Unprocessable  = "unprocessable"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
	NotAllowed     = "not-allowed"
	NotFound       = "not-found"
	Conflict       = "conflict"
	ActiveLogin    = "active-login"

	SystemErr = "Something went wrong"
)

// Group membership permission levels.
const (
	PermissionAdmin = "admin"
	PermissionUser  = "user"
)

package tracing

// Context identifies a single request across log lines.
type Context struct {
	RequestID     string
	RequestSource string
}

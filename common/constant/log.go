package constant

const (
	LogFieldErr      = "err"
	LogFieldPayload  = "payload"
	LogFieldResponse = "response"
	LogFieldTraceId  = "trace_id"
	LogFieldAdmin    = "admin"
)

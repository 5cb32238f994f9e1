package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingStatusCodeKey = "status_code"
	LoggingURLKey        = "url"
	LoggingEndpointKey   = "endpoint"
	LoggingClientIDKey   = "client_id"
	LoggingPatientIDKey  = "patient_id"
	LoggingTokenTypeKey  = "token_type"
	LoggingExpiresInKey  = "expires_in"
	LoggingBodyLengthKey = "body_length"
)

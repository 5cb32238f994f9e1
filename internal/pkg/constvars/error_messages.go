package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"oneof":    "must be one of [%s]",
	"dive":     "is invalid",
}

// Tags that require parameter substitution.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientVendorRejectedRequest         = "the medication service rejected the request"
	ErrClientVendorUnavailable             = "the medication service did not respond as expected"
	ErrClientRequestCancelled              = "the request was cancelled before it completed"
)

// Error messages for developers
const (
	ErrDevValidationFailed     = "validation failed"
	ErrDevCannotMarshalJSON    = "cannot marshal JSON"
	ErrDevCreateHTTPRequest    = "failed to create HTTP request"
	ErrDevSendHTTPRequest      = "failed to send HTTP request"
	ErrDevReadResponseBody     = "failed to read response body"
	ErrDevRequestCancelled     = "request cancelled by caller"
	ErrDevMissingArgument      = "required argument %s is missing or empty"
	ErrDevEmptyResponseBody    = "vendor returned a 2xx response with an empty body"
	ErrDevSignClientAssertion  = "failed to sign client assertion"
	ErrDevTokenEndpointStatus  = "token endpoint returned non-success status %d"
	ErrDevTokenResponseInvalid = "token endpoint returned a response without a usable access token"
	ErrDevAPIEndpointStatus    = "medication endpoint returned non-success status %d"

	// Configuration messages
	ErrDevConfigMissingClientID      = "EMR client id is not configured"
	ErrDevConfigMissingTokenEndpoint = "EMR token endpoint is not configured"
	ErrDevConfigMissingPrivateKey    = "EMR private key material is not configured"
	ErrDevConfigInvalidPrivateKey    = "EMR private key material cannot be parsed as an RSA private key"
	ErrDevConfigInvalidJWTExpiry     = "EMR JWT expiration must be between %d and %d seconds"
)

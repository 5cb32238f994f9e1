package exceptions

import (
	"fmt"
	"net/http"

	"medbridge-service/internal/pkg/constvars"
)

var (
	// Configuration
	ErrConfigMissingClientID = func() *CustomError {
		return BuildNewCustomError(KindConfiguration, nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevConfigMissingClientID)
	}
	ErrConfigMissingTokenEndpoint = func() *CustomError {
		return BuildNewCustomError(KindConfiguration, nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevConfigMissingTokenEndpoint)
	}
	ErrConfigMissingPrivateKey = func() *CustomError {
		return BuildNewCustomError(KindConfiguration, nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevConfigMissingPrivateKey)
	}
	ErrConfigInvalidPrivateKey = func(err error) *CustomError {
		return BuildNewCustomError(KindConfiguration, err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevConfigInvalidPrivateKey)
	}
	ErrConfigInvalidJWTExpiry = func() *CustomError {
		return BuildNewCustomError(KindConfiguration, nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication,
			fmt.Sprintf(constvars.ErrDevConfigInvalidJWTExpiry, constvars.EMRJWTExpirationSecondsMin, constvars.EMRJWTExpirationSecondsMax))
	}

	// Arguments and input validation
	ErrMissingArgument = func(name string) *CustomError {
		return BuildNewCustomError(KindArgument, nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevMissingArgument, name))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(KindArgument, err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}

	// Request plumbing
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(KindInternal, err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(KindInternal, err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(KindInternal, err, constvars.StatusBadGateway, constvars.ErrClientVendorUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return BuildNewCustomError(KindInternal, err, constvars.StatusBadGateway, constvars.ErrClientVendorUnavailable, constvars.ErrDevReadResponseBody)
	}
	ErrRequestCancelled = func(err error) *CustomError {
		return BuildNewCustomError(KindCancelled, err, constvars.StatusGatewayTimeout, constvars.ErrClientRequestCancelled, constvars.ErrDevRequestCancelled)
	}

	// Token exchange
	ErrSignClientAssertion = func(err error) *CustomError {
		return BuildNewCustomError(KindInternal, err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSignClientAssertion)
	}
	ErrTokenEndpointStatus = func(statusCode int, body string) *CustomError {
		customErr := BuildNewCustomError(KindAuthentication, nil, statusCode, constvars.ErrClientVendorRejectedRequest, fmt.Sprintf(constvars.ErrDevTokenEndpointStatus, statusCode))
		customErr.ResponseBody = body
		return customErr
	}
	ErrTokenResponseInvalid = func(err error, body string) *CustomError {
		customErr := BuildNewCustomError(KindResponseParse, err, constvars.StatusBadGateway, constvars.ErrClientVendorUnavailable, constvars.ErrDevTokenResponseInvalid)
		customErr.ResponseBody = body
		return customErr
	}

	// Medication endpoints
	ErrAPIEndpointStatus = func(statusCode int, body string, headers http.Header) *CustomError {
		customErr := BuildNewCustomError(KindAPI, nil, statusCode, constvars.ErrClientVendorRejectedRequest, fmt.Sprintf(constvars.ErrDevAPIEndpointStatus, statusCode))
		customErr.ResponseBody = body
		customErr.Headers = headers
		return customErr
	}
	ErrEmptyResponseBody = func() *CustomError {
		return BuildNewCustomError(KindEmptyResponse, nil, constvars.StatusBadGateway, constvars.ErrClientVendorUnavailable, constvars.ErrDevEmptyResponseBody)
	}
)

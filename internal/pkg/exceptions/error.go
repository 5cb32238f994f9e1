package exceptions

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"medbridge-service/internal/pkg/constvars"
)

// Kind discriminates the error taxonomy of the EMR integration. Every error
// produced by this module carries exactly one Kind.
type Kind string

const (
	KindConfiguration  Kind = "configuration"
	KindArgument       Kind = "argument"
	KindAuthentication Kind = "authentication"
	KindResponseParse  Kind = "response_parse"
	KindAPI            Kind = "api"
	KindEmptyResponse  Kind = "empty_response"
	KindCancelled      Kind = "cancelled"
	KindInternal       Kind = "internal"
)

type CustomError struct {
	Kind          Kind        `json:"kind"`
	StatusCode    int         `json:"status_code"`
	ClientMessage string      `json:"message"`
	DevMessage    string      `json:"-"`
	Location      Location    `json:"-"`
	ResponseBody  string      `json:"-"`
	Headers       http.Header `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(kind Kind, err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

// KindOf reports the Kind of err, or the empty string for errors that did not
// originate from this package.
func KindOf(err error) Kind {
	customErr, ok := AsCustomError(err)
	if !ok {
		return ""
	}
	return customErr.Kind
}

func AsCustomError(err error) (*CustomError, bool) {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr, true
	}
	return nil, false
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

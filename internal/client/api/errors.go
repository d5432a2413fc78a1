package api

import (
	"fmt"

	"github.com/dmitrijs2005/payrollview/internal/common"
)

// NetworkErrorMessage is shown whenever a request got no response at all.
const NetworkErrorMessage = "Network Error: Unable to connect to server. Please check your internet connection or contact support."

// NetworkError is returned when the server could not be reached. It encodes
// as {"message": ..., "errors": {}}.
type NetworkError struct {
	Message string         `json:"message"`
	Errors  map[string]any `json:"errors"`
	cause   error
}

func newNetworkError(cause error) *NetworkError {
	return &NetworkError{Message: NetworkErrorMessage, Errors: map[string]any{}, cause: cause}
}

func (e *NetworkError) Error() string { return e.Message }

func (e *NetworkError) Unwrap() error { return e.cause }

// ResponseError is returned for every non-2xx response.
type ResponseError struct {
	Response *Response
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.Response.Status)
}

// Is makes a 401 match common.ErrorUnauthorized.
func (e *ResponseError) Is(target error) bool {
	return target == common.ErrorUnauthorized && e.Response != nil && e.Response.Status == 401
}

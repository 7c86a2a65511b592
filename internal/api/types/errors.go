package types

import (
	"errors"
	"net/http"

	appErr "github.com/okan-kantar/portfolio-backend/pkg/errors"
)

// FromAppError converts an error into the wire representation. Internal
// detail is dropped; the caller only ever sees the code and message.
func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	var ae *appErr.AppError
	if errors.As(err, &ae) {
		return &APIError{Code: string(ae.Code), Message: ae.Message}
	}
	return &APIError{Code: string(appErr.CodeInternal), Message: "internal error"}
}

// HTTPStatus maps an error's code to the response status.
func HTTPStatus(err error) int {
	var ae *appErr.AppError
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Code {
	case appErr.CodeInvalid:
		return http.StatusBadRequest
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeConflict:
		return http.StatusConflict
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	case appErr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

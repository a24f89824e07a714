package pkg

import "fmt"

// AppError is the error representation shared by every HTTP handler.
//
// Code is a stable machine readable identifier, Message a short human readable
// text. Details, when set, replaces Message in the response body (used for
// per-field validation failures).
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    any
}

// HTTPError is the wire envelope returned to clients.
type HTTPError struct {
	Code   string `json:"code"`
	Detail any    `json:"detail"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewValidationError builds an error whose detail is the list of offending fields.
func NewValidationError(code string, details any, httpStatus int) *AppError {
	return &AppError{Code: code, Message: "Validation error", Details: details, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	if e.Details != nil {
		return HTTPError{Code: e.Code, Detail: e.Details}
	}
	return HTTPError{Code: e.Code, Detail: e.Message}
}

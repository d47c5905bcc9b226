package pkg

import "fmt"

// FieldError carries field-level detail for validation failures so the client
// can render per-field reasons next to the form inputs.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// AppError is the error surfaced by handlers. Code is a stable machine-readable
// identifier; Message is safe to show to users; Err keeps the underlying cause
// for logs only and is never serialized.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Fields     []FieldError
	Err        error
}

type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewValidationError(code, message string, httpStatus int, fields []FieldError) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Fields: fields}
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
	return HTTPError{Code: e.Code, Message: e.Message, Fields: e.Fields}
}

package constants

import "net/http"

// CodedError is an error that knows the HTTP status it should be reported with.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrSessionNotFound   = NewCodedError(http.StatusNotFound, "session not found")
	ErrBadRequest        = NewCodedError(http.StatusBadRequest, "bad request")
	ErrUnknownField      = NewCodedError(http.StatusBadRequest, "unknown form field")
	ErrIncompleteRequest = NewCodedError(http.StatusUnprocessableEntity, "quote request is incomplete")
)

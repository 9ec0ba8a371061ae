package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Stable error codes. Dashboards and runbooks reference these; do not renumber.
const (
	CodeNotFound         = "RCV_001"
	CodeNotRecoverable   = "RCV_002"
	CodeConcurrentUpdate = "RCV_003"
	CodeValidation       = "RCV_004"
	CodeTokenTransient   = "TOK_001"
	CodeTokenRejected    = "TOK_002"
	CodeQueueDispatch    = "QUE_001"
	CodeInternal         = "SYS_001"
)

// ---- Recovery (RCV) ----

func ErrEventNotFound(eventID string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("source event %s not found", eventID), http.StatusNotFound)
}

func ErrCartNotFound(cartID string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("cart %s not found", cartID), http.StatusNotFound)
}

// ErrNotRecoverable rejects recovery of a record whose status is outside the
// datastore-failed set. The record is left untouched.
func ErrNotRecoverable(id string, status string) *AppError {
	return New(CodeNotRecoverable,
		fmt.Sprintf("record %s in status %s is not eligible for recovery", id, status),
		http.StatusConflict)
}

// ErrConcurrentUpdate signals a lost optimistic-concurrency race. Never
// retried automatically; the caller decides whether to re-issue.
func ErrConcurrentUpdate(id string) *AppError {
	return New(CodeConcurrentUpdate,
		fmt.Sprintf("record %s was modified by a concurrent writer", id),
		http.StatusConflict)
}

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ---- Tokenization (TOK) ----

// ErrTokenizationTransient marks a tokenizer failure the caller may retry:
// transport errors, timeouts, 429 and 5xx responses.
func ErrTokenizationTransient(err error) *AppError {
	return Wrap(CodeTokenTransient, "PII tokenization temporarily unavailable", http.StatusServiceUnavailable, err)
}

// ErrTokenizationRejected marks a definitive tokenizer rejection (malformed
// PII). The caller must not retry; the record is routed to manual review.
func ErrTokenizationRejected(err error) *AppError {
	return Wrap(CodeTokenRejected, "PII rejected by tokenization service", http.StatusUnprocessableEntity, err)
}

// ---- Queue (QUE) ----

func ErrQueueDispatch(err error) *AppError {
	return Wrap(CodeQueueDispatch, "generation queue dispatch failed", http.StatusInternalServerError, err)
}

// ---- System (SYS) ----

// InternalError wraps an unexpected error as SYS_001.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Is reports whether err is an AppError carrying the given code.
func Is(err error, code string) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// AsAppError unwraps err into an *AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

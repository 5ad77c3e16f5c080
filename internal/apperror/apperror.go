package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Codes reported to MCP clients alongside a failed tool call.
const (
	CodeInvalidParams = "invalid_params"
	CodeInternal      = "internal_error"
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.BaseError, e.Err}
	}
	return []error{e.BaseError}
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "Tool execution failed", details, err)
}

// Code classifies err for the dispatcher. Missing files and bad arguments are
// the caller's fault; everything else is internal.
func Code(err error) string {
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) {
		return CodeInvalidParams
	}
	return CodeInternal
}

// Message returns the human readable part of err without the classification prefix.
func Message(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Err != nil {
			return fmt.Sprintf("%s: %v", ae.Details, ae.Err)
		}
		return ae.Details
	}
	return err.Error()
}

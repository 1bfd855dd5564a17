package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, preserving the code of a
// wrapped AppError
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeEmptyInput       = "EMPTY_INPUT"
	CodeInvalidBinCount  = "INVALID_BIN_COUNT"
	CodeParseError       = "PARSE_ERROR"
	CodeColumnOutOfRange = "COLUMN_OUT_OF_RANGE"
	CodeInvalidExpr      = "INVALID_EXPR"
	CodeIOError          = "IO_ERROR"
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Common error constructors
func EmptyInput() *AppError {
	return New(CodeEmptyInput, "no valid samples in input")
}

func InvalidBinCount(numBins int) *AppError {
	return New(CodeInvalidBinCount, fmt.Sprintf("number of bins must be positive, got %d", numBins))
}

func ParseError(message string) *AppError {
	return New(CodeParseError, message)
}

func ColumnOutOfRange(message string) *AppError {
	return New(CodeColumnOutOfRange, message)
}

func InvalidExpr(message string) *AppError {
	return New(CodeInvalidExpr, message)
}

func IOError(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeIOError,
		Message: message,
		Cause:   cause,
	}
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

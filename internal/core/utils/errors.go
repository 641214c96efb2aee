package utils

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	ErrorTypePrecondition ErrorType = iota
	ErrorTypeInstantiation
	ErrorTypeParse
	ErrorTypeMetadata
	ErrorTypeLaunch
	ErrorTypeApplication
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypePrecondition:
		return "precondition"
	case ErrorTypeInstantiation:
		return "instantiation"
	case ErrorTypeParse:
		return "parse"
	case ErrorTypeMetadata:
		return "metadata"
	case ErrorTypeLaunch:
		return "launch"
	case ErrorTypeApplication:
		return "application"
	default:
		return "unknown"
	}
}

type ToolError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}

	// Reported is set once the error has already been shown to the user.
	Reported bool
}

func (e *ToolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ToolError) Unwrap() error {
	return e.Cause
}

func newToolError(t ErrorType, message string, cause error) *ToolError {
	return &ToolError{
		Type:    t,
		Message: message,
		Cause:   cause,
	}
}

// NewPreconditionError reports a required input that was not supplied.
func NewPreconditionError(param string) *ToolError {
	return newToolError(ErrorTypePrecondition, param+" is required and cannot be nil", nil).
		WithContext("parameter", param)
}

func NewInstantiationError(message string, cause error) *ToolError {
	return newToolError(ErrorTypeInstantiation, message, cause)
}

func NewParseError(message string, cause error) *ToolError {
	return newToolError(ErrorTypeParse, message, cause)
}

func NewMetadataError(message string, cause error) *ToolError {
	return newToolError(ErrorTypeMetadata, message, cause)
}

func NewLaunchError(message string, cause error) *ToolError {
	return newToolError(ErrorTypeLaunch, message, cause)
}

func NewApplicationError(message string, cause error) *ToolError {
	return newToolError(ErrorTypeApplication, message, cause)
}

func (e *ToolError) WithContext(key string, value interface{}) *ToolError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarkReported flags the error as already printed and returns it.
func (e *ToolError) MarkReported() *ToolError {
	e.Reported = true
	return e
}

// is reports whether an error of type e also counts as type t. Instantiation
// failures are application errors.
func (e ErrorType) is(t ErrorType) bool {
	return e == t || (e == ErrorTypeInstantiation && t == ErrorTypeApplication)
}

// isType walks the whole chain, so a launch error wrapping a parse error
// matches both types.
func isType(err error, t ErrorType) bool {
	for err != nil {
		if te, ok := err.(*ToolError); ok && te.Type.is(t) {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

func IsPreconditionError(err error) bool {
	return isType(err, ErrorTypePrecondition)
}

func IsInstantiationError(err error) bool {
	return isType(err, ErrorTypeInstantiation)
}

func IsParseError(err error) bool {
	return isType(err, ErrorTypeParse)
}

func IsMetadataError(err error) bool {
	return isType(err, ErrorTypeMetadata)
}

func IsLaunchError(err error) bool {
	return isType(err, ErrorTypeLaunch)
}

// IsApplicationError also matches instantiation errors.
func IsApplicationError(err error) bool {
	return isType(err, ErrorTypeApplication)
}

// IsReported reports whether any ToolError in the chain was already shown.
func IsReported(err error) bool {
	for err != nil {
		if te, ok := err.(*ToolError); ok && te.Reported {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

package utils

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewPreconditionError(t *testing.T) {
	err := NewPreconditionError("args")

	expectedMsg := "args is required and cannot be nil"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if err.Context["parameter"] != "args" {
		t.Errorf("Expected parameter context, got %v", err.Context)
	}

	if !IsPreconditionError(err) {
		t.Error("Expected precondition error type")
	}
}

func TestNewInstantiationError(t *testing.T) {
	cause := errors.New("constructor failed")
	err := NewInstantiationError("could not create a new instance of the command", cause)

	expectedMsg := "could not create a new instance of the command: constructor failed"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("Error should wrap the original cause")
	}
}

func TestErrorWithoutCause(t *testing.T) {
	err := NewLaunchError("window could not be created", nil)

	if err.Error() != "window could not be created" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestErrorTypes(t *testing.T) {
	cause := errors.New("base error")

	tests := []struct {
		name        string
		constructor func(string, error) *ToolError
		check       func(error) bool
		want        ErrorType
	}{
		{"InstantiationError", NewInstantiationError, IsInstantiationError, ErrorTypeInstantiation},
		{"ParseError", NewParseError, IsParseError, ErrorTypeParse},
		{"MetadataError", NewMetadataError, IsMetadataError, ErrorTypeMetadata},
		{"LaunchError", NewLaunchError, IsLaunchError, ErrorTypeLaunch},
		{"ApplicationError", NewApplicationError, IsApplicationError, ErrorTypeApplication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constructor("failed", cause)

			if err.Type != tt.want {
				t.Errorf("Expected type %v, got %v", tt.want, err.Type)
			}

			if !tt.check(err) {
				t.Error("Type predicate should match its own constructor")
			}

			wrapped := fmt.Errorf("outer: %w", err)
			if !tt.check(wrapped) {
				t.Error("Type predicate should see through fmt.Errorf wrapping")
			}

			if IsPreconditionError(err) {
				t.Error("Type predicate should not match other types")
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := errors.New("unknown shorthand flag: 'x' in -x")
	parseErr := NewParseError("invalid arguments", rootCause)
	appErr := NewApplicationError("tool failed", parseErr)

	if !errors.Is(appErr, rootCause) {
		t.Error("appErr should ultimately wrap rootCause")
	}

	if !IsParseError(appErr) {
		t.Error("IsParseError should find the wrapped parse error")
	}

	expectedMsg := "tool failed: invalid arguments: unknown shorthand flag: 'x' in -x"
	if appErr.Error() != expectedMsg {
		t.Errorf("Expected chained error message %q, got %q", expectedMsg, appErr.Error())
	}
}

func TestInstantiationErrorIsApplicationError(t *testing.T) {
	err := NewInstantiationError("could not create a new instance of the command", errors.New("boom"))

	if !IsApplicationError(err) {
		t.Error("Instantiation errors should count as application errors")
	}
	if !IsApplicationError(NewLaunchError("application failed to start", err)) {
		t.Error("Wrapped instantiation errors should count as application errors")
	}
	if IsInstantiationError(NewApplicationError("tool failed", nil)) {
		t.Error("Application errors are not instantiation errors")
	}
	if IsApplicationError(NewParseError("invalid arguments", nil)) {
		t.Error("Parse errors are not application errors")
	}
}

func TestIsReported(t *testing.T) {
	err := NewParseError("invalid arguments", nil)
	if IsReported(err) {
		t.Error("Fresh error should not be reported")
	}

	err.MarkReported()
	if !IsReported(err) {
		t.Error("Marked error should be reported")
	}

	if !IsReported(fmt.Errorf("launch aborted: %w", err)) {
		t.Error("Reported flag should be visible through wrapping")
	}

	if IsReported(nil) {
		t.Error("nil is never reported")
	}
}

func TestErrorType_String(t *testing.T) {
	if ErrorTypeInstantiation.String() != "instantiation" {
		t.Errorf("Unexpected name %q", ErrorTypeInstantiation.String())
	}
	if ErrorType(99).String() != "unknown" {
		t.Errorf("Unexpected name for unknown type %q", ErrorType(99).String())
	}
}

func BenchmarkNewParseError(b *testing.B) {
	cause := errors.New("test error")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewParseError("invalid arguments", cause)
	}
}

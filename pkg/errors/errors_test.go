// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/heyps/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "app_not_found_error",
			code:    errors.ErrAppNotFound,
			message: "no Photoshop installed",
			wantStr: "[APP_NOT_FOUND] no Photoshop installed",
		},
		{
			name:    "invalid_selector_error",
			code:    errors.ErrInvalidSelector,
			message: "unsupported target",
			wantStr: "[INVALID_SELECTOR] unsupported target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDispatchFailed, "osascript exited with code %d", 2)
	if err.Message != "osascript exited with code 2" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Code != errors.ErrInternal {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrInternal)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDispatchFailed, "failed").
		WithDetail("exit_code", 2).
		WithDetail("command", "osascript")

	if err.Details["exit_code"] != 2 {
		t.Errorf("WithDetail() exit_code = %v, want %v", err.Details["exit_code"], 2)
	}

	if err.Details["command"] != "osascript" {
		t.Errorf("WithDetail() command = %v, want %v", err.Details["command"], "osascript")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrAppNotFound, "error 1")
	err2 := errors.New(errors.ErrAppNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with HeypsError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrBetaNotFound, "beta not found"),
			code:     errors.ErrBetaNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrBetaNotFound, "beta not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrDiscoveryFailed, "mdfind failed"),
			code:     errors.ErrDiscoveryFailed,
			expected: true,
		},
		{
			name:     "non_heyps_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrAppNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrAppNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "heyps_error",
			err:      errors.New(errors.ErrIncompatibleScript, "wrong script"),
			expected: errors.ErrIncompatibleScript,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	t.Run("strips_code_prefix", func(t *testing.T) {
		err := errors.New(errors.ErrBetaNotFound, "beta not found")
		if got := errors.Message(err); got != "beta not found" {
			t.Errorf("Message() = %q", got)
		}
	})

	t.Run("keeps_wrapped_cause", func(t *testing.T) {
		err := errors.Wrap(stderrors.New("no such file"), errors.ErrConfigLoad, "failed to load config")
		if got := errors.Message(err); got != "failed to load config: no such file" {
			t.Errorf("Message() = %q", got)
		}
	})

	t.Run("strips_nested_codes", func(t *testing.T) {
		inner := errors.New(errors.ErrInvalidSelector, "unsupported target")
		err := errors.Wrap(inner, errors.ErrConfigValid, "invalid resolve.target")
		if got := errors.Message(err); got != "invalid resolve.target: unsupported target" {
			t.Errorf("Message() = %q", got)
		}
	})

	t.Run("plain_error", func(t *testing.T) {
		if got := errors.Message(stderrors.New("boom")); got != "boom" {
			t.Errorf("Message() = %q", got)
		}
	})
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	discoveryErr := errors.Wrap(rootCause, errors.ErrDiscoveryFailed, "mdfind failed")
	wrapped := errors.Wrap(discoveryErr, errors.ErrInternal, "resolve failed")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(wrapped, errors.ErrInternal) {
			t.Error("Top level should have ErrInternal code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var heypsErr *errors.HeypsError
		if stderrors.As(wrapped.Unwrap(), &heypsErr) {
			if !errors.IsErrorCode(heypsErr, errors.ErrDiscoveryFailed) {
				t.Error("Middle error should have ErrDiscoveryFailed code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(wrapped, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}

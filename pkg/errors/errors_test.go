// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, exit code mapping

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/wixsync/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "anchor not found",
			wantStr: "[NOT_FOUND] anchor not found",
		},
		{
			name:    "null_item_error",
			code:    errors.ErrNullItem,
			message: "item cannot be empty",
			wantStr: "[NULL_ITEM] item cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
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

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrManifestWrite, "cannot write %s", "product.wxs")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[MANIFEST_WRITE] cannot write product.wxs: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "not found").
		WithDetail("anchor", "ProgramFilesFolder")

	if err.Details["anchor"] != "ProgramFilesFolder" {
		t.Errorf("WithDetail() anchor = %v", err.Details["anchor"])
	}
	if got := errors.GetErrorDetails(err)["anchor"]; got != "ProgramFilesFolder" {
		t.Errorf("GetErrorDetails() anchor = %v", got)
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrNotFound, "not found"), errors.ErrNotFound, true},
		{"different_code", errors.New(errors.ErrNotFound, "not found"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrDirRead, "denied"), errors.ErrDirRead, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	readErr := errors.Wrap(rootCause, errors.ErrDirRead, "cannot read directory")
	topErr := errors.Wrap(readErr, errors.ErrInternal, "update failed")

	if !errors.IsErrorCode(topErr, errors.ErrInternal) {
		t.Error("Top level should have ErrInternal code")
	}
	if !stderrors.Is(topErr, errors.New(errors.ErrDirRead, "")) {
		t.Error("errors.Is should find the middle error by code")
	}
	if !stderrors.Is(topErr, rootCause) {
		t.Error("Should find root cause with errors.Is")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"no_arguments", errors.New(errors.ErrNoArguments, "no arguments"), -1},
		{"missing_arguments", errors.New(errors.ErrMissingArguments, "missing"), -2},
		{"lookup_failure", errors.New(errors.ErrNotFound, "anchor"), 1},
		{"plain_error", stderrors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

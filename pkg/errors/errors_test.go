package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidMode, "unknown mode %q", "sideways"), `INVALID_MODE: unknown mode "sideways"`},
		{"wrapped", Wrap(ErrCodeInvalidFormat, errors.New("unexpected EOF"), "decode scene"), "INVALID_FORMAT: decode scene: unexpected EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeFileNotFound, cause, "scene file %s", "sheet.json")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if err.Message != "scene file sheet.json" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestCodeLookup(t *testing.T) {
	inner := New(ErrCodeNotFound, "object %q", "v2")
	tests := []struct {
		name string
		err  error
		code Code
		is   Code
		want bool
	}{
		{"direct", inner, ErrCodeNotFound, ErrCodeNotFound, true},
		{"other code", inner, ErrCodeNotFound, ErrCodeInvalidInput, false},
		{"through fmt.Errorf", fmt.Errorf("orient to v1: %w", inner), ErrCodeNotFound, ErrCodeNotFound, true},
		{"outermost wins", Wrap(ErrCodeInvalidFormat, inner, "outer"), ErrCodeInvalidFormat, ErrCodeInvalidFormat, true},
		{"plain error", errors.New("boom"), "", ErrCodeInternal, false},
		{"nil", nil, "", ErrCodeInternal, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if got := Is(tt.err, tt.is); got != tt.want {
				t.Errorf("Is(%s) = %v, want %v", tt.is, got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{New(ErrCodeNoOrientation, "view has no model orientation"), "view has no model orientation"},
		{fmt.Errorf("align: %w", New(ErrCodeInvalidArgument, "zero axis")), "zero axis"},
		{errors.New("disk full"), "disk full"},
	}
	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		code     Code
		want     Category
		internal bool
	}{
		{ErrCodeInvalidInput, CategoryInput, false},
		{ErrCodeInvalidMode, CategoryInput, false},
		{ErrCodeInsufficientInput, CategoryCondition, false},
		{ErrCodeNoOrientation, CategoryCondition, false},
		{ErrCodeFileNotFound, CategoryNotFound, false},
		{ErrCodeInternal, CategoryInternal, true},
		{ErrCodeUnsupported, CategoryInternal, false},
		{Code("MADE_UP"), CategoryInternal, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %v, want %v", got, tt.want)
			}
			if got := tt.code.Internal(); got != tt.internal {
				t.Errorf("Internal() = %v, want %v", got, tt.internal)
			}
		})
	}
}

func TestInsufficientInput(t *testing.T) {
	err := InsufficientInput("distribute", 3, 2)
	if !Is(err, ErrCodeInsufficientInput) {
		t.Errorf("code = %s, want %s", err.Code, ErrCodeInsufficientInput)
	}
	if want := "distribute needs at least 3 objects, got 2"; err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}

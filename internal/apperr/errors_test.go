package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindString_APICodes(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindValidation, "INVALID_FIELD"},
		{KindNotFound, "NOT_FOUND"},
		{KindConflict, "CONFLICT"},
		{KindExternal, "EXTERNAL_ERROR"},
		{KindAuth, "UNAUTHORIZED"},
		{KindUnknown, "INTERNAL_ERROR"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestKindOf_WrappedError(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("User not found"))

	if KindOf(err) != KindNotFound {
		t.Errorf("KindOf = %v, want KindNotFound", KindOf(err))
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false, want true")
	}
}

func TestKindOf_PlainError(t *testing.T) {
	if KindOf(errors.New("boom")) != KindUnknown {
		t.Errorf("plain error kind should be unknown")
	}
}

func TestExternal_PreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := External("Failed to get channel info", cause)

	if !errors.Is(err, cause) {
		t.Errorf("cause not reachable via errors.Is")
	}
	if Message(err) != "Failed to get channel info" {
		t.Errorf("Message = %q", Message(err))
	}
}

func TestMessage_FallbackForUnknownErrors(t *testing.T) {
	if got := Message(errors.New("pq: internal detail")); got != "Internal server error" {
		t.Errorf("Message = %q, want generic fallback", got)
	}
}

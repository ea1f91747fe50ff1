package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsKind(t *testing.T) {
	cause := errors.New("duplicate key")

	tests := []struct {
		name string
		err  error
		kind ErrorKind
		want bool
	}{
		{"not found matches", NotFound("listing"), KindNotFound, true},
		{"not found is not conflict", NotFound("listing"), KindConflict, false},
		{"conflict matches", Conflict("property", "referenced by listings"), KindConflict, true},
		{"validation matches", ValidationConflict("bad reference", cause), KindValidation, true},
		{"unavailable matches", Unavailable(cause), KindUnavailable, true},
		{"wrapped error still matches", fmt.Errorf("repo: %w", NotFound("agent")), KindNotFound, true},
		{"plain error matches nothing", errors.New("boom"), KindNotFound, false},
		{"nil matches nothing", nil, KindNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := ValidationConflict("unknown property type", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestDomainErrorMessage(t *testing.T) {
	err := NotFound("listing")
	want := "listing: not_found: not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

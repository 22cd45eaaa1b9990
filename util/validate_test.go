package util

import (
	"testing"

	"github.com/orbitalabs/restkit/errors"
)

func TestValidateNonEmpty(t *testing.T) {
	if err := ValidateNonEmpty("Name", "ok"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, v := range []string{"", "   ", "\t\n"} {
		err := ValidateNonEmpty("Name", v)
		if err == nil {
			t.Errorf("expected error for %q", v)
			continue
		}
		appErr, ok := errors.As(err)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.Code != errors.ErrCodeInvalidInput {
			t.Errorf("got code %s", appErr.Code)
		}
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "a", "b"); got != "a" {
		t.Errorf("got %q", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("got %d", got)
	}
}

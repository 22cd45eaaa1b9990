package version

import (
	"strings"
	"testing"
)

func TestUserAgent(t *testing.T) {
	if !strings.HasPrefix(UserAgent(), "restkit/") {
		t.Errorf("got %q", UserAgent())
	}
}

func TestShort(t *testing.T) {
	if !strings.HasPrefix(Short(), Version) {
		t.Errorf("got %q", Short())
	}
}

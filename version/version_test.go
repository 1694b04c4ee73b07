package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Error("version should never be empty")
	}
}

func TestShort_ContainsVersion(t *testing.T) {
	if !strings.HasPrefix(Short(), Version) {
		t.Errorf("Short() = %q, want prefix %q", Short(), Version)
	}
}

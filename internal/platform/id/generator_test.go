package id

import (
	"regexp"
	"testing"
	"time"
)

func TestRunIDGeneratorFormat(t *testing.T) {
	g := NewRunIDGenerator()
	g.now = func() time.Time { return time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC) }

	got, err := g.NewID()
	if err != nil {
		t.Fatalf("NewID: %v", err)
	}
	if !regexp.MustCompile(`^20250801T093000-[0-9a-f]{8}$`).MatchString(got) {
		t.Fatalf("unexpected run id %q", got)
	}
}

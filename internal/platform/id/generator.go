package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Generator creates identifiers for pipeline runs.
type Generator interface {
	NewID() (string, error)
}

// RunIDGenerator yields ids of the form "20250801T090000-1a2b3c4d" so runs
// sort by start time in logs and summaries.
type RunIDGenerator struct {
	now func() time.Time
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{now: time.Now}
}

func (g *RunIDGenerator) NewID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return g.now().UTC().Format("20060102T150405") + "-" + hex.EncodeToString(buf), nil
}

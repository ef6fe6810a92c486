package usecase

import "github.com/cockroachdb/errors"

// Sentinels shared by the passes and the HTTP layer. Wrap them with
// errors.Wrapf so errors.Is keeps working across package boundaries.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	// ErrDependencyUnavailable marks a source or store that could not be
	// reached after retries.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrParseMiss marks a fetched page that lacks the expected element. The
	// value stays unresolved; the source itself was reachable.
	ErrParseMiss = errors.New("parse miss")
	// ErrConflict is returned when two sources disagree on a value that
	// must be unique, such as a club's league for one season.
	ErrConflict = errors.New("conflicting values")
)

package munge

import "errors"

var (
	// ErrNoCandidate is returned when no sentence satisfies the selection
	// criteria, verb class fallback included.
	ErrNoCandidate = errors.New("no candidate sentence")

	// ErrCouldNotSynthesize is returned when every splice attempt produced
	// text the parser could not give a root to.
	ErrCouldNotSynthesize = errors.New("could not synthesize sentence")
)

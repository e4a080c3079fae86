package catalog

import "errors"

var (
	// ErrNotFound is returned by Update* operations when no catalog entry
	// carries the given id. Delete* operations are no-ops on absent ids.
	ErrNotFound = errors.New("catalog entry not found")

	// ErrDuplicateGroupIndex is returned when a leave type would violate the
	// (group, groupIndex) uniqueness invariant.
	ErrDuplicateGroupIndex = errors.New("duplicate leave type group index")
)

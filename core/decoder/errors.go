package decoder

import "errors"

var (
	// ErrPoolNotFound is returned when a payload holds no recognizable pool array.
	// It is fatal for that payload only.
	ErrPoolNotFound = errors.New("could not locate pool list in payload")

	// ErrResolutionDepthExceeded is returned when resolving or walking a payload would
	// descend past the configured depth ceiling. Self-referencing pools end here.
	ErrResolutionDepthExceeded = errors.New("resolution depth exceeded")
)

package labels

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInputLoad indicates the input is missing, unreadable, or not valid JSON.
	ErrInputLoad = errors.New("labels: cannot load input")

	// ErrMalformedInput indicates the input parsed but required fields are
	// absent or have the wrong type.
	ErrMalformedInput = errors.New("labels: malformed input")
)

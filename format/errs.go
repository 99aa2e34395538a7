package format

import "errors"

var (
	// ErrNoInput is reported when the input is empty or whitespace-only.
	// Its text is the exact user-facing message.
	ErrNoInput = errors.New("No input provided")

	ErrConfig = errors.New("bad config")
)

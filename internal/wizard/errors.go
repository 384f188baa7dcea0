package wizard

import "errors"

var (
	// ErrValidationFailed blocks a forward transition until the user
	// corrects their input. Recoverable.
	ErrValidationFailed = errors.New("step validation failed")

	// ErrInvalidTransition is an advance or retreat over an edge that does
	// not exist. It indicates a caller bug, not user error.
	ErrInvalidTransition = errors.New("invalid step transition")
)

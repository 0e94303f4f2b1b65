package booking

import "errors"

var (
	// ErrInvalidPhone rejects a contact phone that is not a valid Korean
	// mobile number.
	ErrInvalidPhone = errors.New("invalid phone number format")

	// ErrMissingOffice rejects a visit booking without an office location.
	ErrMissingOffice = errors.New("office location is required for visit bookings")

	// ErrSlotUnavailable rejects a slot that is no longer in the resolved
	// availability set at submission time.
	ErrSlotUnavailable = errors.New("requested slot is no longer available")

	// ErrTerminalState rejects transitions out of cancelled or completed.
	ErrTerminalState = errors.New("booking is in a terminal state")

	// ErrInvalidTransition rejects transitions the state machine does not
	// define, such as confirming an already confirmed booking.
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrNotFound means no booking exists with the given id.
	ErrNotFound = errors.New("booking not found")

	// ErrInvalidSlotFormat rejects malformed date or time values.
	ErrInvalidSlotFormat = errors.New("invalid preferred date or time format")
)

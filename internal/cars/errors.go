package cars

import "errors"

var (
	// ErrNotFound is returned when a car does not exist or is not owned by the caller
	ErrNotFound = errors.New("car not found")

	// ErrBooked is returned when deleting a car with an open booking
	ErrBooked = errors.New("car is currently booked")
)

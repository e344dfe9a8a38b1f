package bookings

import "errors"

var (
	// ErrNotFound is returned when a booking does not exist or was already processed
	ErrNotFound = errors.New("booking not found")

	// ErrCarNotFound is returned when the requested car does not exist
	ErrCarNotFound = errors.New("car not found")

	// ErrCarUnavailable is returned when the car already has an open booking
	ErrCarUnavailable = errors.New("car is not available")

	// ErrCustomerHasOpenBooking is returned when the customer already has an open booking
	ErrCustomerHasOpenBooking = errors.New("customer already has an open booking")
)

package customers

import "errors"

// ErrNotFound is returned when a customer is not registered
var ErrNotFound = errors.New("customer not found")

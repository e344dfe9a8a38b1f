package dealers

import "errors"

var (
	// ErrNotFound is returned when a dealer does not exist
	ErrNotFound = errors.New("dealer not found")

	// ErrExists is returned when a dealer with the telegram id is already registered
	ErrExists = errors.New("dealer with this telegram id already exists")
)

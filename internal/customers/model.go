package customers

import "time"

// Customer is a registered bot user who can browse and book cars.
type Customer struct {
	ID           int64
	TelegramID   int64
	Name         string
	Language     string
	RegisteredAt time.Time
}

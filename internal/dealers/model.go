package dealers

import "time"

// Dealer owns cars and lists them for rental.
type Dealer struct {
	ID         int64
	TelegramID int64
	Name       string
	CreatedAt  time.Time
}

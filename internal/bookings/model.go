package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses. A booking is open until it reaches StatusClosed.
const (
	StatusPending = "pending"
	StatusActive  = "active"
	StatusClosed  = "closed"
)

// Booking is a time-bounded reservation linking a customer to a car.
type Booking struct {
	ID         int64
	Reference  uuid.UUID
	CustomerID int64
	CarID      int64
	Status     string
	StartDate  time.Time
	EndDate    *time.Time
}

// Open is a customer's current booking joined with the car.
type Open struct {
	ID        int64
	Reference uuid.UUID
	CarID     int64
	Status    string
	StartDate time.Time
	Make      string
	Model     string
	Year      int
}

// Detail is an admin-facing booking row joined with customer and car.
type Detail struct {
	ID                 int64
	Status             string
	StartDate          time.Time
	EndDate            *time.Time
	CustomerName       string
	CustomerTelegramID int64
	Make               string
	Model              string
	Year               int
}

// Filter selects which bookings an admin listing returns.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterPending Filter = "pending"
	FilterActive  Filter = "active"
)

// CarStat is the per-car line of a dealer's statistics.
type CarStat struct {
	CarID    int64
	Make     string
	Model    string
	Year     int
	Bookings int
}

// DealerStats aggregates booking counts over a dealer's fleet.
type DealerStats struct {
	TotalCars         int
	TotalBookings     int
	ActiveBookings    int
	CompletedBookings int
	Cars              []CarStat
}

// Package bot routes Telegram updates to rental domain actions based on
// the sender's role and the current dialog step.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cs230426/Car-Rental/internal/bookings"
	"github.com/cs230426/Car-Rental/internal/cars"
	"github.com/cs230426/Car-Rental/internal/customers"
	"github.com/cs230426/Car-Rental/internal/dealers"
	"github.com/cs230426/Car-Rental/internal/session"
)

// API is the slice of tgbotapi.BotAPI the dispatcher uses, so tests can
// capture outbound traffic without the network.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// CustomerStore is the customer persistence the dispatcher needs.
type CustomerStore interface {
	Register(ctx context.Context, telegramID int64, name string) (customers.Customer, bool, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (customers.Customer, error)
	SetLanguage(ctx context.Context, telegramID int64, language string) error
	Language(ctx context.Context, telegramID int64) (string, error)
}

// DealerStore is the dealer persistence the dispatcher needs.
type DealerStore interface {
	Add(ctx context.Context, telegramID int64, name string) (dealers.Dealer, error)
	Get(ctx context.Context, id int64) (dealers.Dealer, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (dealers.Dealer, error)
	IsDealer(ctx context.Context, telegramID int64) (bool, error)
	List(ctx context.Context) ([]dealers.Dealer, error)
	Delete(ctx context.Context, id int64) error
}

// CarStore is the car persistence the dispatcher needs.
type CarStore interface {
	Add(ctx context.Context, dealerID int64, make, model string, year int, photoFileID string) (int64, error)
	ListAvailable(ctx context.Context, limit, offset int) ([]cars.Summary, error)
	CountAvailable(ctx context.Context) (int, error)
	Get(ctx context.Context, carID int64) (cars.Details, error)
	ListByDealer(ctx context.Context, dealerID int64) ([]cars.Car, error)
	Delete(ctx context.Context, dealerID, carID int64) error
	SetPrimaryImage(ctx context.Context, carID int64, fileID string) error
}

// BookingStore is the booking persistence the dispatcher needs.
type BookingStore interface {
	Book(ctx context.Context, customerID, carID int64) (bookings.Booking, error)
	OpenByCustomer(ctx context.Context, customerID int64) (bookings.Open, error)
	Return(ctx context.Context, bookingID, customerID int64) error
	Approve(ctx context.Context, bookingID int64) error
	Reject(ctx context.Context, bookingID int64) error
	Delete(ctx context.Context, bookingID int64) error
	List(ctx context.Context, filter bookings.Filter, limit int) ([]bookings.Detail, error)
	StatsForDealer(ctx context.Context, dealerID int64) (bookings.DealerStats, error)
}

// SessionStore is the dialog-state persistence the dispatcher needs.
type SessionStore interface {
	Get(ctx context.Context, chatID int64) (session.State, error)
	Put(ctx context.Context, chatID int64, state session.State) error
	Clear(ctx context.Context, chatID int64) error
}

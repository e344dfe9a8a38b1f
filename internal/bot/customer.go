package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cs230426/Car-Rental/internal/bookings"
	"github.com/cs230426/Car-Rental/internal/cars"
	"github.com/cs230426/Car-Rental/internal/messages"
)

func (d *Dispatcher) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if chatID == d.adminGroupID {
		b := messages.ForLanguage("en")
		d.reply(chatID, b.Get("admin_restriction"), nil)
		return
	}
	if msg.From == nil {
		return
	}

	name := strings.TrimSpace(msg.From.FirstName + " " + msg.From.LastName)
	customer, created, err := d.customers.Register(ctx, msg.From.ID, name)
	if err != nil {
		d.logger.Error("bot: register customer", "telegram_id", msg.From.ID, "error", err)
		d.reply(chatID, messages.ForLanguage("en").Get("db_error"), nil)
		return
	}

	b := messages.ForLanguage(customer.Language)
	kb := NewKeyboards(b)
	if created {
		d.reply(chatID, b.Get("welcome_new", messages.Params{"name": customer.Name}), keyboard(kb.Language(false)))
		return
	}
	d.reply(chatID, b.Get("welcome_back", messages.Params{"name": customer.Name}), keyboard(kb.MainMenu()))
}

func (d *Dispatcher) handleCustomerCallback(ctx context.Context, chatID int64, from *tgbotapi.User, data string, b messages.Bundle) {
	if chatID == d.adminGroupID {
		// The Cancel/Back control is shared across flows; in the admin
		// group it must still abort a pending dialog.
		if data == cbBackToMenu {
			if err := d.sessions.Clear(ctx, chatID); err != nil {
				d.logger.Error("bot: clear session", "chat_id", chatID, "error", err)
			}
			d.reply(chatID, b.Get("admin_menu"), keyboard(NewKeyboards(b).AdminMenu()))
			return
		}
		d.reply(chatID, b.Get("admin_restriction"), nil)
		return
	}

	switch {
	case strings.HasPrefix(data, cbLangPrefix):
		d.changeLanguage(ctx, chatID, from, strings.TrimPrefix(data, cbLangPrefix))
	case data == cbListCars || data == "list_cars_command":
		d.showCarPage(ctx, chatID, 0, b)
	case strings.HasPrefix(data, cbCarPagePrefix):
		page, _ := strconv.Atoi(strings.TrimPrefix(data, cbCarPagePrefix))
		d.showCarPage(ctx, chatID, page, b)
	case strings.HasPrefix(data, cbBookPrefix):
		if carID, ok := parseIDSuffix(data, cbBookPrefix); ok {
			d.bookCar(ctx, chatID, from, carID, b)
		}
	case strings.HasPrefix(data, cbCarPrefix):
		if carID, ok := parseIDSuffix(data, cbCarPrefix); ok {
			d.showCarDetails(ctx, chatID, carID, b)
		}
	case data == cbMyBooking:
		d.showMyBooking(ctx, chatID, from, b)
	case strings.HasPrefix(data, cbReturnPrefix):
		if bookingID, ok := parseIDSuffix(data, cbReturnPrefix); ok {
			d.returnCar(ctx, chatID, from, bookingID, b)
		}
	case data == cbBackToMenu:
		d.backToMenu(ctx, chatID, b)
	case data == cbChangeLanguage:
		d.reply(chatID, b.Get("select_language"), keyboard(NewKeyboards(b).Language(true)))
	case data == cbContactAdmin:
		d.reply(chatID, b.Get("contact_admin_msg"), keyboard(NewKeyboards(b).Back(cbBackToMenu)))
	default:
		d.reply(chatID, b.Get("unknown_action"), nil)
	}
}

func (d *Dispatcher) changeLanguage(ctx context.Context, chatID int64, from *tgbotapi.User, lang string) {
	if from == nil {
		return
	}
	if err := d.customers.SetLanguage(ctx, from.ID, lang); err != nil {
		d.logger.Error("bot: set language", "telegram_id", from.ID, "error", err)
		d.reply(chatID, messages.ForLanguage(lang).Get("db_error"), nil)
		return
	}
	b := messages.ForLanguage(lang)
	d.reply(chatID, b.Get("language_changed"), keyboard(NewKeyboards(b).MainMenu()))
}

func (d *Dispatcher) showCarPage(ctx context.Context, chatID int64, page int, b messages.Bundle) {
	kb := NewKeyboards(b)
	total, err := d.cars.CountAvailable(ctx)
	if err != nil {
		d.logger.Error("bot: count cars", "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	if total == 0 {
		d.reply(chatID, b.Get("no_cars"), keyboard(kb.Back(cbBackToMenu)))
		return
	}

	totalPages := (total + d.pageSize - 1) / d.pageSize
	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}
	list, err := d.cars.ListAvailable(ctx, d.pageSize, page*d.pageSize)
	if err != nil {
		d.logger.Error("bot: list cars", "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	d.reply(chatID, b.Get("select_car"), keyboard(kb.CarList(list, page, totalPages)))
}

func (d *Dispatcher) showCarDetails(ctx context.Context, chatID, carID int64, b messages.Bundle) {
	details, err := d.cars.Get(ctx, carID)
	if errors.Is(err, cars.ErrNotFound) {
		d.reply(chatID, b.Get("car_not_found"), keyboard(NewKeyboards(b).Back(cbListCars)))
		return
	}
	if err != nil {
		d.logger.Error("bot: get car", "car_id", carID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}

	text := b.Get("car_details", messages.Params{
		"make":   details.Car.Make,
		"model":  details.Car.Model,
		"year":   strconv.Itoa(details.Car.Year),
		"dealer": details.DealerName,
	})
	kb := NewKeyboards(b).CarDetails(carID)
	if fileID := details.PrimaryImage(); fileID != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(fileID))
		photo.Caption = text
		photo.ReplyMarkup = kb
		d.send(photo)
		return
	}
	d.reply(chatID, text, keyboard(kb))
}

func (d *Dispatcher) bookCar(ctx context.Context, chatID int64, from *tgbotapi.User, carID int64, b messages.Bundle) {
	if from == nil {
		return
	}
	customer, err := d.customers.GetByTelegramID(ctx, from.ID)
	if err != nil {
		d.reply(chatID, b.Get("customer_not_found"), nil)
		return
	}

	_, err = d.bookings.Book(ctx, customer.ID, carID)
	if err != nil {
		reason := bookingFailureReason(err)
		if reason == "reason_database_error" {
			d.logger.Error("bot: book car", "car_id", carID, "error", err)
		}
		d.reply(chatID, b.Get("booking_failed", messages.Params{"reason": b.Get(reason)}),
			keyboard(NewKeyboards(b).Back(cbListCars)))
		return
	}
	d.reply(chatID, b.Get("booking_success"), keyboard(NewKeyboards(b).MainMenu()))
}

func bookingFailureReason(err error) string {
	switch {
	case errors.Is(err, bookings.ErrCarNotFound):
		return "reason_car_missing"
	case errors.Is(err, bookings.ErrCarUnavailable):
		return "reason_car_unavailable"
	case errors.Is(err, bookings.ErrCustomerHasOpenBooking):
		return "reason_already_booked"
	default:
		return "reason_database_error"
	}
}

func (d *Dispatcher) showMyBooking(ctx context.Context, chatID int64, from *tgbotapi.User, b messages.Bundle) {
	if from == nil {
		return
	}
	customer, err := d.customers.GetByTelegramID(ctx, from.ID)
	if err != nil {
		d.reply(chatID, b.Get("customer_not_found"), nil)
		return
	}

	open, err := d.bookings.OpenByCustomer(ctx, customer.ID)
	if errors.Is(err, bookings.ErrNotFound) {
		d.reply(chatID, b.Get("no_active_booking"), keyboard(NewKeyboards(b).MainMenu()))
		return
	}
	if err != nil {
		d.logger.Error("bot: open booking", "customer_id", customer.ID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}

	info := fmt.Sprintf("🚗 %s %s (%d)\n📅 %s\n#%d %s",
		open.Make, open.Model, open.Year,
		open.StartDate.Format("2006-01-02"),
		open.ID, open.Status)
	d.reply(chatID, b.Get("active_booking", messages.Params{"booking_info": info}),
		keyboard(NewKeyboards(b).BookingDetails(open.ID)))
}

func (d *Dispatcher) returnCar(ctx context.Context, chatID int64, from *tgbotapi.User, bookingID int64, b messages.Bundle) {
	if from == nil {
		return
	}
	customer, err := d.customers.GetByTelegramID(ctx, from.ID)
	if err != nil {
		d.reply(chatID, b.Get("customer_not_found"), nil)
		return
	}

	err = d.bookings.Return(ctx, bookingID, customer.ID)
	if errors.Is(err, bookings.ErrNotFound) {
		d.reply(chatID, b.Get("return_failed", messages.Params{"reason": b.Get("reason_booking_missing")}),
			keyboard(NewKeyboards(b).MainMenu()))
		return
	}
	if err != nil {
		d.logger.Error("bot: return car", "booking_id", bookingID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	d.reply(chatID, b.Get("return_success"), keyboard(NewKeyboards(b).MainMenu()))
}

func (d *Dispatcher) backToMenu(ctx context.Context, chatID int64, b messages.Bundle) {
	if err := d.sessions.Clear(ctx, chatID); err != nil {
		d.logger.Error("bot: clear session", "chat_id", chatID, "error", err)
	}
	d.reply(chatID, b.Get("main_menu"), keyboard(NewKeyboards(b).MainMenu()))
}

package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cs230426/Car-Rental/internal/bookings"
	"github.com/cs230426/Car-Rental/internal/dealers"
	"github.com/cs230426/Car-Rental/internal/messages"
	"github.com/cs230426/Car-Rental/internal/session"
)

const adminListLimit = 20

func (d *Dispatcher) handleAdminCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	b := messages.ForLanguage("en")
	if chatID != d.adminGroupID {
		d.reply(chatID, b.Get("not_admin"), nil)
		return
	}
	d.reply(chatID, b.Get("admin_menu"), keyboard(NewKeyboards(b).AdminMenu()))
}

func (d *Dispatcher) handleAdminCallback(ctx context.Context, chatID int64, data string, b messages.Bundle) {
	switch {
	case data == cbAdminBookings:
		d.reply(chatID, b.Get("admin_bookings_btn"), keyboard(NewKeyboards(b).AdminBookingsMenu()))
	case data == cbAdminAllBookings:
		d.showBookings(ctx, chatID, bookings.FilterAll, b)
	case data == cbAdminPendingBookings:
		d.showBookings(ctx, chatID, bookings.FilterPending, b)
	case data == cbAdminActiveBookings:
		d.showBookings(ctx, chatID, bookings.FilterActive, b)
	case data == cbAdminDealers:
		d.showDealers(ctx, chatID, b)
	case data == cbAdminAddDealer:
		d.startAddDealer(ctx, chatID, b)
	case data == cbAdminBack:
		d.reply(chatID, b.Get("admin_menu"), keyboard(NewKeyboards(b).AdminMenu()))
	case strings.HasPrefix(data, cbApprovePrefix):
		if id, ok := parseIDSuffix(data, cbApprovePrefix); ok {
			d.approveBooking(ctx, chatID, id, b)
		}
	case strings.HasPrefix(data, cbRejectPrefix):
		if id, ok := parseIDSuffix(data, cbRejectPrefix); ok {
			d.rejectBooking(ctx, chatID, id, b)
		}
	case strings.HasPrefix(data, cbConfirmDelBooking):
		if id, ok := parseIDSuffix(data, cbConfirmDelBooking); ok {
			d.deleteBooking(ctx, chatID, id, b)
		}
	case strings.HasPrefix(data, cbDeleteBookingPrefix):
		if id, ok := parseIDSuffix(data, cbDeleteBookingPrefix); ok {
			d.reply(chatID, b.Get("confirm_delete_booking", messages.Params{"id": strconv.FormatInt(id, 10)}),
				keyboard(NewKeyboards(b).ConfirmDeleteBooking(id)))
		}
	case strings.HasPrefix(data, cbConfirmDelDealer):
		if id, ok := parseIDSuffix(data, cbConfirmDelDealer); ok {
			d.deleteDealer(ctx, chatID, id, b)
		}
	case isDealerDeleteCallback(data):
		if id, ok := parseIDSuffix(data, cbDeleteDealerPrefix); ok {
			d.confirmDeleteDealer(ctx, chatID, id, b)
		}
	default:
		d.reply(chatID, b.Get("unknown_action"), nil)
	}
}

// showBookings sends one message per booking so each row carries its own
// action buttons.
func (d *Dispatcher) showBookings(ctx context.Context, chatID int64, filter bookings.Filter, b messages.Bundle) {
	list, err := d.bookings.List(ctx, filter, adminListLimit)
	if err != nil {
		d.logger.Error("bot: list bookings", "filter", filter, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	kb := NewKeyboards(b)
	if len(list) == 0 {
		d.reply(chatID, b.Get("no_bookings"), keyboard(kb.AdminBookingsMenu()))
		return
	}

	d.reply(chatID, b.Get("bookings_header"), nil)
	for _, item := range list {
		line := b.Get("booking_line", messages.Params{
			"id":       strconv.FormatInt(item.ID, 10),
			"make":     item.Make,
			"model":    item.Model,
			"year":     strconv.Itoa(item.Year),
			"customer": item.CustomerName,
			"status":   item.Status,
		})
		d.reply(chatID, line, keyboard(kb.BookingActions(item)))
	}
	d.reply(chatID, b.Get("admin_menu"), keyboard(kb.AdminMenu()))
}

func (d *Dispatcher) approveBooking(ctx context.Context, chatID, bookingID int64, b messages.Bundle) {
	err := d.bookings.Approve(ctx, bookingID)
	if errors.Is(err, bookings.ErrNotFound) {
		d.reply(chatID, b.Get("booking_not_found"), nil)
		return
	}
	if err != nil {
		d.logger.Error("bot: approve booking", "booking_id", bookingID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	d.reply(chatID, b.Get("booking_approved"), nil)
}

func (d *Dispatcher) rejectBooking(ctx context.Context, chatID, bookingID int64, b messages.Bundle) {
	err := d.bookings.Reject(ctx, bookingID)
	if errors.Is(err, bookings.ErrNotFound) {
		d.reply(chatID, b.Get("booking_not_found"), nil)
		return
	}
	if err != nil {
		d.logger.Error("bot: reject booking", "booking_id", bookingID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	d.reply(chatID, b.Get("booking_rejected"), nil)
}

func (d *Dispatcher) deleteBooking(ctx context.Context, chatID, bookingID int64, b messages.Bundle) {
	err := d.bookings.Delete(ctx, bookingID)
	if errors.Is(err, bookings.ErrNotFound) {
		d.reply(chatID, b.Get("booking_not_found"), nil)
		return
	}
	if err != nil {
		d.logger.Error("bot: delete booking", "booking_id", bookingID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	d.reply(chatID, b.Get("booking_deleted"), keyboard(NewKeyboards(b).AdminMenu()))
}

func (d *Dispatcher) showDealers(ctx context.Context, chatID int64, b messages.Bundle) {
	list, err := d.dealers.List(ctx)
	if err != nil {
		d.logger.Error("bot: list dealers", "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	kb := NewKeyboards(b)
	if len(list) == 0 {
		d.reply(chatID, b.Get("no_dealers"), keyboard(kb.Dealers(nil)))
		return
	}
	d.reply(chatID, b.Get("dealers_header"), keyboard(kb.Dealers(list)))
}

func (d *Dispatcher) confirmDeleteDealer(ctx context.Context, chatID, dealerID int64, b messages.Bundle) {
	dealer, err := d.dealers.Get(ctx, dealerID)
	if errors.Is(err, dealers.ErrNotFound) {
		d.reply(chatID, b.Get("dealer_not_found"), nil)
		return
	}
	if err != nil {
		d.logger.Error("bot: get dealer", "dealer_id", dealerID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	d.reply(chatID, b.Get("confirm_delete_dealer", messages.Params{"name": dealer.Name}),
		keyboard(NewKeyboards(b).ConfirmDeleteDealer(dealerID)))
}

func (d *Dispatcher) deleteDealer(ctx context.Context, chatID, dealerID int64, b messages.Bundle) {
	err := d.dealers.Delete(ctx, dealerID)
	if errors.Is(err, dealers.ErrNotFound) {
		d.reply(chatID, b.Get("dealer_not_found"), nil)
		return
	}
	if err != nil {
		d.logger.Error("bot: delete dealer", "dealer_id", dealerID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	d.reply(chatID, b.Get("dealer_deleted"), keyboard(NewKeyboards(b).AdminMenu()))
}

func (d *Dispatcher) startAddDealer(ctx context.Context, chatID int64, b messages.Bundle) {
	state := session.State{Step: session.StepAddDealerName}
	if err := d.sessions.Put(ctx, chatID, state); err != nil {
		d.logger.Error("bot: save session", "chat_id", chatID, "error", err)
		d.reply(chatID, b.Get("error_try_again"), nil)
		return
	}
	d.reply(chatID, b.Get("add_dealer_name_prompt"), keyboard(NewKeyboards(b).Cancel()))
}

// addDealerText advances the add-dealer dialog by one text answer.
func (d *Dispatcher) addDealerText(ctx context.Context, msg *tgbotapi.Message, state session.State, b messages.Bundle) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch state.Step {
	case session.StepAddDealerName:
		state = state.WithDraft("name", text)
		state.Step = session.StepAddDealerID
		d.advanceDialog(ctx, chatID, state, b.Get("add_dealer_id_prompt"), b)

	case session.StepAddDealerID:
		telegramID, err := strconv.ParseInt(text, 10, 64)
		if err != nil || telegramID <= 0 {
			d.reply(chatID, b.Get("invalid_telegram_id"), keyboard(NewKeyboards(b).Cancel()))
			return
		}
		dealer, err := d.dealers.Add(ctx, telegramID, state.Draft["name"])
		if errors.Is(err, dealers.ErrExists) {
			d.reply(chatID, b.Get("dealer_exists"), keyboard(NewKeyboards(b).Cancel()))
			return
		}
		if err != nil {
			d.logger.Error("bot: add dealer", "telegram_id", telegramID, "error", err)
			d.reply(chatID, b.Get("db_error"), nil)
			return
		}
		if err := d.sessions.Clear(ctx, chatID); err != nil {
			d.logger.Error("bot: clear session", "chat_id", chatID, "error", err)
		}
		d.reply(chatID, b.Get("dealer_added", messages.Params{"name": dealer.Name}),
			keyboard(NewKeyboards(b).AdminMenu()))
	}
}

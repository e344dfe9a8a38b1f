package bot

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cs230426/Car-Rental/internal/bookings"
	"github.com/cs230426/Car-Rental/internal/cars"
	"github.com/cs230426/Car-Rental/internal/dealers"
	"github.com/cs230426/Car-Rental/internal/messages"
)

// Callback data values. Prefixed entries carry a numeric ID after the prefix.
const (
	cbLangPrefix     = "lang_"
	cbListCars       = "list_cars"
	cbCarPagePrefix  = "car_page_"
	cbCarPrefix      = "car_"
	cbBookPrefix     = "book_"
	cbMyBooking      = "my_booking"
	cbReturnPrefix   = "return_"
	cbBackToMenu     = "back_to_menu"
	cbChangeLanguage = "change_language"
	cbContactAdmin   = "contact_admin"
	cbNoop           = "noop"

	cbDealerAddCar          = "dealer_add_car"
	cbDealerMyCars          = "dealer_my_cars"
	cbDealerStats           = "dealer_stats"
	cbDealerBack            = "dealer_back"
	cbViewDealerCarPrefix   = "view_dealer_car_"
	cbDeleteDealerCarPrefix = "delete_dealer_car_"
	cbConfirmDelCarPrefix   = "confirm_delete_dealer_car_"
	cbRefreshImagePrefix    = "refresh_car_image_"

	cbAdminBookings        = "admin_bookings"
	cbAdminAllBookings     = "admin_all_bookings"
	cbAdminPendingBookings = "admin_pending_bookings"
	cbAdminActiveBookings  = "admin_active_bookings"
	cbAdminDealers         = "admin_dealers"
	cbAdminAddDealer       = "admin_add_dealer"
	cbAdminBack            = "admin_back"
	cbApprovePrefix        = "approve_booking_"
	cbRejectPrefix         = "reject_booking_"
	cbDeleteBookingPrefix  = "delete_booking_"
	cbConfirmDelBooking    = "confirm_delete_booking_"
	cbDeleteDealerPrefix   = "delete_dealer_"
	cbConfirmDelDealer     = "confirm_delete_dealer_"
)

// Keyboards builds inline keyboards localized through a message bundle.
type Keyboards struct {
	msgs messages.Bundle
}

func NewKeyboards(b messages.Bundle) Keyboards {
	return Keyboards{msgs: b}
}

func btn(text, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}

func row(buttons ...tgbotapi.InlineKeyboardButton) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(buttons...)
}

// Language offers the supported languages; withBack adds a return row for
// in-menu language switching.
func (k Keyboards) Language(withBack bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		row(btn("🇬🇧 English", cbLangPrefix+"en"), btn("🇷🇺 Русский", cbLangPrefix+"ru")),
	}
	if withBack {
		rows = append(rows, row(btn(k.msgs.Get("back_btn"), cbBackToMenu)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (k Keyboards) MainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn(k.msgs.Get("list_cars_btn"), cbListCars)),
		row(btn(k.msgs.Get("my_booking_btn"), cbMyBooking)),
		row(btn(k.msgs.Get("contact_admin_btn"), cbContactAdmin)),
		row(btn(k.msgs.Get("change_language_btn"), cbChangeLanguage)),
	)
}

// CarList renders one page of available cars plus pagination controls.
func (k Keyboards) CarList(list []cars.Summary, page, totalPages int) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list)+2)
	for _, c := range list {
		label := fmt.Sprintf("%s %s (%d)", c.Make, c.Model, c.Year)
		rows = append(rows, row(btn(label, cbCarPrefix+strconv.FormatInt(c.ID, 10))))
	}
	if totalPages > 1 {
		var nav []tgbotapi.InlineKeyboardButton
		if page > 0 {
			nav = append(nav, btn("⬅️", cbCarPagePrefix+strconv.Itoa(page-1)))
		}
		nav = append(nav, btn(fmt.Sprintf("%d/%d", page+1, totalPages), cbNoop))
		if page < totalPages-1 {
			nav = append(nav, btn("➡️", cbCarPagePrefix+strconv.Itoa(page+1)))
		}
		rows = append(rows, nav)
	}
	rows = append(rows, row(btn(k.msgs.Get("back_btn"), cbBackToMenu)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (k Keyboards) CarDetails(carID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn(k.msgs.Get("book_car_btn"), cbBookPrefix+strconv.FormatInt(carID, 10))),
		row(btn(k.msgs.Get("back_btn"), cbListCars)),
	)
}

func (k Keyboards) BookingDetails(bookingID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn(k.msgs.Get("return_car_btn"), cbReturnPrefix+strconv.FormatInt(bookingID, 10))),
		row(btn(k.msgs.Get("back_btn"), cbBackToMenu)),
	)
}

func (k Keyboards) Back(callback string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(row(btn(k.msgs.Get("back_btn"), callback)))
}

func (k Keyboards) Cancel() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(row(btn(k.msgs.Get("cancel_btn"), cbBackToMenu)))
}

func (k Keyboards) DealerMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn(k.msgs.Get("dealer_add_car_btn"), cbDealerAddCar)),
		row(btn(k.msgs.Get("dealer_my_cars_btn"), cbDealerMyCars)),
		row(btn(k.msgs.Get("dealer_stats_btn"), cbDealerStats)),
	)
}

func (k Keyboards) DealerCars(list []cars.Car) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list)+1)
	for _, c := range list {
		label := fmt.Sprintf("%s %s (%d)", c.Make, c.Model, c.Year)
		rows = append(rows, row(btn(label, cbViewDealerCarPrefix+strconv.FormatInt(c.ID, 10))))
	}
	rows = append(rows, row(btn(k.msgs.Get("back_btn"), cbDealerBack)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (k Keyboards) DealerCarActions(carID int64) tgbotapi.InlineKeyboardMarkup {
	id := strconv.FormatInt(carID, 10)
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn(k.msgs.Get("refresh_image_btn"), cbRefreshImagePrefix+id)),
		row(btn(k.msgs.Get("delete_car"), cbDeleteDealerCarPrefix+id)),
		row(btn(k.msgs.Get("back_btn"), cbDealerMyCars)),
	)
}

func (k Keyboards) ConfirmDeleteCar(carID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn(k.msgs.Get("confirm_btn"), cbConfirmDelCarPrefix+strconv.FormatInt(carID, 10))),
		row(btn(k.msgs.Get("back_btn"), cbDealerMyCars)),
	)
}

func (k Keyboards) AdminMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn(k.msgs.Get("admin_bookings_btn"), cbAdminBookings)),
		row(btn(k.msgs.Get("admin_dealers_btn"), cbAdminDealers)),
	)
}

func (k Keyboards) AdminBookingsMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn(k.msgs.Get("all_bookings_btn"), cbAdminAllBookings)),
		row(btn(k.msgs.Get("pending_bookings_btn"), cbAdminPendingBookings)),
		row(btn(k.msgs.Get("active_bookings_btn"), cbAdminActiveBookings)),
		row(btn(k.msgs.Get("back_btn"), cbAdminBack)),
	)
}

// BookingActions offers approve/reject for pending bookings and delete
// otherwise.
func (k Keyboards) BookingActions(b bookings.Detail) tgbotapi.InlineKeyboardMarkup {
	id := strconv.FormatInt(b.ID, 10)
	if b.Status == bookings.StatusPending {
		return tgbotapi.NewInlineKeyboardMarkup(
			row(btn(k.msgs.Get("approve_btn"), cbApprovePrefix+id), btn(k.msgs.Get("reject_btn"), cbRejectPrefix+id)),
		)
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn(k.msgs.Get("delete_btn"), cbDeleteBookingPrefix+id)),
	)
}

func (k Keyboards) ConfirmDeleteBooking(bookingID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn(k.msgs.Get("confirm_btn"), cbConfirmDelBooking+strconv.FormatInt(bookingID, 10))),
		row(btn(k.msgs.Get("back_btn"), cbAdminBack)),
	)
}

func (k Keyboards) Dealers(list []dealers.Dealer) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list)+2)
	for _, d := range list {
		label := fmt.Sprintf("🗑️ %s (%d)", d.Name, d.TelegramID)
		rows = append(rows, row(btn(label, cbDeleteDealerPrefix+strconv.FormatInt(d.ID, 10))))
	}
	rows = append(rows,
		row(btn(k.msgs.Get("add_dealer_btn"), cbAdminAddDealer)),
		row(btn(k.msgs.Get("back_btn"), cbAdminBack)),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (k Keyboards) ConfirmDeleteDealer(dealerID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(btn(k.msgs.Get("confirm_btn"), cbConfirmDelDealer+strconv.FormatInt(dealerID, 10))),
		row(btn(k.msgs.Get("back_btn"), cbAdminBack)),
	)
}

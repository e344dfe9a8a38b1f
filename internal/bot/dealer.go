package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cs230426/Car-Rental/internal/cars"
	"github.com/cs230426/Car-Rental/internal/messages"
	"github.com/cs230426/Car-Rental/internal/session"
)

const minCarYear = 1950

func (d *Dispatcher) handleDealerCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	b := d.bundleFor(ctx, chatID, msg.From)
	if msg.From == nil {
		return
	}
	ok, err := d.dealers.IsDealer(ctx, msg.From.ID)
	if err != nil {
		d.logger.Error("bot: dealer lookup", "telegram_id", msg.From.ID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	if !ok {
		d.reply(chatID, b.Get("not_dealer"), nil)
		return
	}
	d.reply(chatID, b.Get("dealer_menu"), keyboard(NewKeyboards(b).DealerMenu()))
}

func (d *Dispatcher) handleDealerCallback(ctx context.Context, chatID, telegramID int64, data string, b messages.Bundle) {
	ok, err := d.dealers.IsDealer(ctx, telegramID)
	if err != nil {
		d.logger.Error("bot: dealer lookup", "telegram_id", telegramID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	if !ok {
		d.reply(chatID, b.Get("not_dealer"), nil)
		return
	}

	switch {
	case data == cbDealerAddCar:
		d.startAddCar(ctx, chatID, b)
	case data == cbDealerMyCars:
		d.showDealerCars(ctx, chatID, telegramID, b)
	case data == cbDealerStats:
		d.showDealerStats(ctx, chatID, telegramID, b)
	case data == cbDealerBack:
		d.reply(chatID, b.Get("dealer_menu"), keyboard(NewKeyboards(b).DealerMenu()))
	case strings.HasPrefix(data, cbViewDealerCarPrefix):
		if carID, ok := parseIDSuffix(data, cbViewDealerCarPrefix); ok {
			d.showDealerCar(ctx, chatID, telegramID, carID, b)
		}
	case strings.HasPrefix(data, cbConfirmDelCarPrefix):
		if carID, ok := parseIDSuffix(data, cbConfirmDelCarPrefix); ok {
			d.deleteDealerCar(ctx, chatID, telegramID, carID, b)
		}
	case strings.HasPrefix(data, cbDeleteDealerCarPrefix):
		if carID, ok := parseIDSuffix(data, cbDeleteDealerCarPrefix); ok {
			d.confirmDeleteCar(ctx, chatID, telegramID, carID, b)
		}
	case strings.HasPrefix(data, cbRefreshImagePrefix):
		if carID, ok := parseIDSuffix(data, cbRefreshImagePrefix); ok {
			d.startRefreshPhoto(ctx, chatID, telegramID, carID, b)
		}
	default:
		d.reply(chatID, b.Get("unknown_action"), nil)
	}
}

func (d *Dispatcher) startAddCar(ctx context.Context, chatID int64, b messages.Bundle) {
	state := session.State{Step: session.StepAddCarMake}
	if err := d.sessions.Put(ctx, chatID, state); err != nil {
		d.logger.Error("bot: save session", "chat_id", chatID, "error", err)
		d.reply(chatID, b.Get("error_try_again"), nil)
		return
	}
	d.reply(chatID, b.Get("add_car_make_prompt"), keyboard(NewKeyboards(b).Cancel()))
}

// addCarText advances the add-car dialog by one text answer.
func (d *Dispatcher) addCarText(ctx context.Context, msg *tgbotapi.Message, state session.State, b messages.Bundle) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch state.Step {
	case session.StepAddCarMake:
		state = state.WithDraft("make", text)
		state.Step = session.StepAddCarModel
		d.advanceDialog(ctx, chatID, state, b.Get("add_car_model_prompt"), b)

	case session.StepAddCarModel:
		state = state.WithDraft("model", text)
		state.Step = session.StepAddCarYear
		d.advanceDialog(ctx, chatID, state, b.Get("add_car_year_prompt"), b)

	case session.StepAddCarYear:
		maxYear := time.Now().Year() + 1
		year, err := strconv.Atoi(text)
		if err != nil || year < minCarYear || year > maxYear {
			d.reply(chatID, b.Get("invalid_year", messages.Params{"max_year": strconv.Itoa(maxYear)}),
				keyboard(NewKeyboards(b).Cancel()))
			return
		}
		state = state.WithDraft("year", strconv.Itoa(year))
		state.Step = session.StepAddCarPhoto
		d.advanceDialog(ctx, chatID, state, b.Get("add_car_photo_prompt"), b)

	case session.StepAddCarPhoto, session.StepRefreshPhoto:
		d.reply(chatID, b.Get("photo_required"), keyboard(NewKeyboards(b).Cancel()))
	}
}

func (d *Dispatcher) advanceDialog(ctx context.Context, chatID int64, state session.State, prompt string, b messages.Bundle) {
	if err := d.sessions.Put(ctx, chatID, state); err != nil {
		d.logger.Error("bot: save session", "chat_id", chatID, "error", err)
		d.reply(chatID, b.Get("error_try_again"), nil)
		return
	}
	d.reply(chatID, prompt, keyboard(NewKeyboards(b).Cancel()))
}

// addCarPhoto finishes the add-car dialog with the uploaded photo.
func (d *Dispatcher) addCarPhoto(ctx context.Context, msg *tgbotapi.Message, state session.State, b messages.Bundle) {
	chatID := msg.Chat.ID
	fileID := largestPhoto(msg.Photo)

	dealer, err := d.dealers.GetByTelegramID(ctx, msg.From.ID)
	if err != nil {
		d.reply(chatID, b.Get("not_dealer"), nil)
		return
	}
	year, _ := strconv.Atoi(state.Draft["year"])
	if _, err := d.cars.Add(ctx, dealer.ID, state.Draft["make"], state.Draft["model"], year, fileID); err != nil {
		d.logger.Error("bot: add car", "dealer_id", dealer.ID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	if err := d.sessions.Clear(ctx, chatID); err != nil {
		d.logger.Error("bot: clear session", "chat_id", chatID, "error", err)
	}

	d.reply(chatID, b.Get("car_added", messages.Params{
		"make":  state.Draft["make"],
		"model": state.Draft["model"],
		"year":  state.Draft["year"],
	}), keyboard(NewKeyboards(b).DealerMenu()))
}

func (d *Dispatcher) startRefreshPhoto(ctx context.Context, chatID, telegramID, carID int64, b messages.Bundle) {
	dealer, err := d.dealers.GetByTelegramID(ctx, telegramID)
	if err != nil {
		d.reply(chatID, b.Get("not_dealer"), nil)
		return
	}
	details, err := d.cars.Get(ctx, carID)
	if errors.Is(err, cars.ErrNotFound) || (err == nil && details.Car.DealerID != dealer.ID) {
		d.reply(chatID, b.Get("car_not_found"), keyboard(NewKeyboards(b).Back(cbDealerMyCars)))
		return
	}
	if err != nil {
		d.logger.Error("bot: get car", "car_id", carID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}

	state := session.State{Step: session.StepRefreshPhoto}
	state = state.WithDraft("car_id", strconv.FormatInt(carID, 10))
	if err := d.sessions.Put(ctx, chatID, state); err != nil {
		d.logger.Error("bot: save session", "chat_id", chatID, "error", err)
		d.reply(chatID, b.Get("error_try_again"), nil)
		return
	}
	d.reply(chatID, b.Get("refresh_photo_prompt"), keyboard(NewKeyboards(b).Cancel()))
}

func (d *Dispatcher) refreshPhoto(ctx context.Context, msg *tgbotapi.Message, state session.State, b messages.Bundle) {
	chatID := msg.Chat.ID
	carID, err := strconv.ParseInt(state.Draft["car_id"], 10, 64)
	if err != nil {
		d.reply(chatID, b.Get("error_try_again"), nil)
		return
	}

	if err := d.cars.SetPrimaryImage(ctx, carID, largestPhoto(msg.Photo)); err != nil {
		d.logger.Error("bot: refresh photo", "car_id", carID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	if err := d.sessions.Clear(ctx, chatID); err != nil {
		d.logger.Error("bot: clear session", "chat_id", chatID, "error", err)
	}
	d.reply(chatID, b.Get("photo_updated"), keyboard(NewKeyboards(b).DealerMenu()))
}

// largestPhoto picks the highest-resolution size Telegram offers.
func largestPhoto(sizes []tgbotapi.PhotoSize) string {
	if len(sizes) == 0 {
		return ""
	}
	return sizes[len(sizes)-1].FileID
}

func (d *Dispatcher) showDealerCars(ctx context.Context, chatID, telegramID int64, b messages.Bundle) {
	dealer, err := d.dealers.GetByTelegramID(ctx, telegramID)
	if err != nil {
		d.reply(chatID, b.Get("not_dealer"), nil)
		return
	}
	list, err := d.cars.ListByDealer(ctx, dealer.ID)
	if err != nil {
		d.logger.Error("bot: dealer cars", "dealer_id", dealer.ID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}
	if len(list) == 0 {
		d.reply(chatID, b.Get("no_dealer_cars"), keyboard(NewKeyboards(b).Back(cbDealerBack)))
		return
	}
	d.reply(chatID, b.Get("dealer_my_cars_btn"), keyboard(NewKeyboards(b).DealerCars(list)))
}

func (d *Dispatcher) showDealerCar(ctx context.Context, chatID, telegramID, carID int64, b messages.Bundle) {
	dealer, err := d.dealers.GetByTelegramID(ctx, telegramID)
	if err != nil {
		d.reply(chatID, b.Get("not_dealer"), nil)
		return
	}
	details, err := d.cars.Get(ctx, carID)
	if errors.Is(err, cars.ErrNotFound) || (err == nil && details.Car.DealerID != dealer.ID) {
		d.reply(chatID, b.Get("car_not_found"), keyboard(NewKeyboards(b).Back(cbDealerMyCars)))
		return
	}
	if err != nil {
		d.logger.Error("bot: get car", "car_id", carID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}

	status := "car_booked"
	if details.Car.Available {
		status = "car_available"
	}
	text := b.Get("dealer_car_details", messages.Params{
		"make":   details.Car.Make,
		"model":  details.Car.Model,
		"year":   strconv.Itoa(details.Car.Year),
		"status": b.Get(status),
	})
	kb := NewKeyboards(b).DealerCarActions(carID)
	if fileID := details.PrimaryImage(); fileID != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(fileID))
		photo.Caption = text
		photo.ReplyMarkup = kb
		d.send(photo)
		return
	}
	d.reply(chatID, text, keyboard(kb))
}

func (d *Dispatcher) confirmDeleteCar(ctx context.Context, chatID, telegramID, carID int64, b messages.Bundle) {
	details, err := d.cars.Get(ctx, carID)
	if err != nil {
		d.reply(chatID, b.Get("car_not_found"), keyboard(NewKeyboards(b).Back(cbDealerMyCars)))
		return
	}
	d.reply(chatID, b.Get("confirm_delete_car", messages.Params{
		"make":  details.Car.Make,
		"model": details.Car.Model,
		"year":  strconv.Itoa(details.Car.Year),
	}), keyboard(NewKeyboards(b).ConfirmDeleteCar(carID)))
}

func (d *Dispatcher) deleteDealerCar(ctx context.Context, chatID, telegramID, carID int64, b messages.Bundle) {
	dealer, err := d.dealers.GetByTelegramID(ctx, telegramID)
	if err != nil {
		d.reply(chatID, b.Get("not_dealer"), nil)
		return
	}

	err = d.cars.Delete(ctx, dealer.ID, carID)
	switch {
	case errors.Is(err, cars.ErrBooked):
		d.reply(chatID, b.Get("car_delete_booked"), keyboard(NewKeyboards(b).Back(cbDealerMyCars)))
	case errors.Is(err, cars.ErrNotFound):
		d.reply(chatID, b.Get("car_not_found"), keyboard(NewKeyboards(b).Back(cbDealerMyCars)))
	case err != nil:
		d.logger.Error("bot: delete car", "car_id", carID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
	default:
		d.reply(chatID, b.Get("car_deleted"), keyboard(NewKeyboards(b).DealerMenu()))
	}
}

func (d *Dispatcher) showDealerStats(ctx context.Context, chatID, telegramID int64, b messages.Bundle) {
	dealer, err := d.dealers.GetByTelegramID(ctx, telegramID)
	if err != nil {
		d.reply(chatID, b.Get("not_dealer"), nil)
		return
	}
	stats, err := d.bookings.StatsForDealer(ctx, dealer.ID)
	if err != nil {
		d.logger.Error("bot: dealer stats", "dealer_id", dealer.ID, "error", err)
		d.reply(chatID, b.Get("db_error"), nil)
		return
	}

	var sb strings.Builder
	sb.WriteString(b.Get("dealer_stats", messages.Params{
		"total_cars":         strconv.Itoa(stats.TotalCars),
		"total_bookings":     strconv.Itoa(stats.TotalBookings),
		"active_bookings":    strconv.Itoa(stats.ActiveBookings),
		"completed_bookings": strconv.Itoa(stats.CompletedBookings),
	}))
	for _, c := range stats.Cars {
		sb.WriteString("\n")
		sb.WriteString(b.Get("dealer_car_stat_line", messages.Params{
			"make":     c.Make,
			"model":    c.Model,
			"year":     strconv.Itoa(c.Year),
			"bookings": strconv.Itoa(c.Bookings),
		}))
	}
	d.reply(chatID, sb.String(), keyboard(NewKeyboards(b).Back(cbDealerBack)))
}

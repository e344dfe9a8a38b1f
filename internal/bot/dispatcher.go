package bot

import (
	"context"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cs230426/Car-Rental/internal/messages"
	"github.com/cs230426/Car-Rental/internal/observability/metrics"
	"github.com/cs230426/Car-Rental/internal/session"
	"github.com/cs230426/Car-Rental/pkg/logging"
)

// Config wires the dispatcher's dependencies.
type Config struct {
	API          API
	Customers    CustomerStore
	Dealers      DealerStore
	Cars         CarStore
	Bookings     BookingStore
	Sessions     SessionStore
	Metrics      *metrics.BotMetrics
	Logger       *logging.Logger
	AdminGroupID int64
	PageSize     int
}

// Dispatcher routes inbound updates to role-specific handlers. Roles are
// resolved per update: the admin group chat gets admin handling, dealers
// get dealer handling, everyone else is a customer.
type Dispatcher struct {
	api          API
	customers    CustomerStore
	dealers      DealerStore
	cars         CarStore
	bookings     BookingStore
	sessions     SessionStore
	metrics      *metrics.BotMetrics
	logger       *logging.Logger
	adminGroupID int64
	pageSize     int
}

func New(cfg Config) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Dispatcher{
		api:          cfg.API,
		customers:    cfg.Customers,
		dealers:      cfg.Dealers,
		cars:         cfg.Cars,
		bookings:     cfg.Bookings,
		sessions:     cfg.Sessions,
		metrics:      cfg.Metrics,
		logger:       logger,
		adminGroupID: cfg.AdminGroupID,
		pageSize:     pageSize,
	}
}

// Run consumes updates until the channel closes or the context is done.
func (d *Dispatcher) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			d.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate routes a single update. It never panics outward; handler
// errors are logged and answered with a localized error message.
func (d *Dispatcher) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	kind := updateKind(update)
	start := time.Now()
	defer func() {
		d.metrics.ObserveHandlerLatency(kind, time.Since(start).Seconds())
	}()

	switch {
	case update.CallbackQuery != nil:
		d.handleCallback(ctx, update.CallbackQuery)
		d.metrics.ObserveUpdate(kind, "handled")
	case update.Message != nil && update.Message.IsCommand():
		d.handleCommand(ctx, update.Message)
		d.metrics.ObserveUpdate(kind, "handled")
	case update.Message != nil:
		d.handleMessage(ctx, update.Message)
		d.metrics.ObserveUpdate(kind, "handled")
	default:
		d.metrics.ObserveUpdate(kind, "ignored")
	}
}

func updateKind(update tgbotapi.Update) string {
	switch {
	case update.CallbackQuery != nil:
		return "callback"
	case update.Message != nil && update.Message.IsCommand():
		return "command"
	case update.Message != nil && len(update.Message.Photo) > 0:
		return "photo"
	case update.Message != nil:
		return "message"
	default:
		return "other"
	}
}

func (d *Dispatcher) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		d.handleStart(ctx, msg)
	case "dealer":
		d.handleDealerCommand(ctx, msg)
	case "admin":
		d.handleAdminCommand(ctx, msg)
	case "cancel":
		d.handleCancel(ctx, msg)
	default:
		b := d.bundleFor(ctx, chatID, msg.From)
		d.reply(chatID, b.Get("unknown_action"), nil)
	}
}

func (d *Dispatcher) handleCancel(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if err := d.sessions.Clear(ctx, chatID); err != nil {
		d.logger.Error("bot: clear session", "chat_id", chatID, "error", err)
	}
	b := d.bundleFor(ctx, chatID, msg.From)
	if chatID == d.adminGroupID {
		d.reply(chatID, b.Get("operation_cancelled"), keyboard(NewKeyboards(b).AdminMenu()))
		return
	}
	d.reply(chatID, b.Get("operation_cancelled"), keyboard(NewKeyboards(b).MainMenu()))
}

// handleMessage feeds plain text and photos into whatever dialog step the
// chat is in.
func (d *Dispatcher) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	state, err := d.sessions.Get(ctx, chatID)
	if err != nil {
		d.logger.Error("bot: load session", "chat_id", chatID, "error", err)
		state = session.State{}
	}
	b := d.bundleFor(ctx, chatID, msg.From)

	if len(msg.Photo) > 0 {
		d.handleDialogPhoto(ctx, msg, state, b)
		return
	}
	d.handleDialogText(ctx, msg, state, b)
}

func (d *Dispatcher) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	// Stop the client-side spinner regardless of the outcome.
	if _, err := d.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		d.logger.Error("bot: answer callback", "error", err)
	}
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	data := cq.Data
	b := d.bundleFor(ctx, chatID, cq.From)

	if data == cbNoop {
		return
	}

	switch {
	case strings.HasPrefix(data, "admin_"),
		strings.HasPrefix(data, cbApprovePrefix),
		strings.HasPrefix(data, cbRejectPrefix),
		strings.HasPrefix(data, cbDeleteBookingPrefix),
		strings.HasPrefix(data, cbConfirmDelBooking),
		isDealerConfirmDeleteCallback(data),
		isDealerDeleteCallback(data):
		if chatID != d.adminGroupID {
			d.reply(chatID, b.Get("not_admin"), nil)
			return
		}
		d.handleAdminCallback(ctx, chatID, data, b)

	case strings.HasPrefix(data, "dealer_"),
		strings.HasPrefix(data, cbViewDealerCarPrefix),
		strings.HasPrefix(data, cbDeleteDealerCarPrefix),
		strings.HasPrefix(data, cbConfirmDelCarPrefix),
		strings.HasPrefix(data, cbRefreshImagePrefix):
		d.handleDealerCallback(ctx, chatID, cq.From.ID, data, b)

	default:
		d.handleCustomerCallback(ctx, chatID, cq.From, data, b)
	}
}

// isDealerDeleteCallback distinguishes the admin's delete_dealer_<id> from
// the dealer's delete_dealer_car_<id>, which shares the prefix.
func isDealerDeleteCallback(data string) bool {
	return strings.HasPrefix(data, cbDeleteDealerPrefix) &&
		!strings.HasPrefix(data, cbDeleteDealerCarPrefix)
}

// isDealerConfirmDeleteCallback is the same disambiguation for the
// confirm_delete_dealer_ / confirm_delete_dealer_car_ pair.
func isDealerConfirmDeleteCallback(data string) bool {
	return strings.HasPrefix(data, cbConfirmDelDealer) &&
		!strings.HasPrefix(data, cbConfirmDelCarPrefix)
}

// bundleFor resolves the message bundle for a chat. The admin group is
// always served in English; everyone else gets their stored language.
func (d *Dispatcher) bundleFor(ctx context.Context, chatID int64, from *tgbotapi.User) messages.Bundle {
	if chatID == d.adminGroupID {
		return messages.ForLanguage("en")
	}
	if from == nil {
		return messages.ForLanguage("en")
	}
	lang, err := d.customers.Language(ctx, from.ID)
	if err != nil {
		d.logger.Error("bot: load language", "telegram_id", from.ID, "error", err)
	}
	return messages.ForLanguage(lang)
}

// reply sends a text message, attaching the keyboard when given.
func (d *Dispatcher) reply(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	d.send(msg)
}

func (d *Dispatcher) send(c tgbotapi.Chattable) {
	if _, err := d.api.Send(c); err != nil {
		d.metrics.ObserveReply("error")
		d.logger.Error("bot: send", "error", err)
		return
	}
	d.metrics.ObserveReply("sent")
}

func keyboard(kb tgbotapi.InlineKeyboardMarkup) *tgbotapi.InlineKeyboardMarkup {
	return &kb
}

// parseIDSuffix extracts the numeric tail of a prefixed callback value.
func parseIDSuffix(data, prefix string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

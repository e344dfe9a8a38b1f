package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cs230426/Car-Rental/internal/messages"
	"github.com/cs230426/Car-Rental/internal/session"
)

// handleDialogText routes a plain text message into the pending dialog
// step, if any.
func (d *Dispatcher) handleDialogText(ctx context.Context, msg *tgbotapi.Message, state session.State, b messages.Bundle) {
	switch state.Step {
	case session.StepAddCarMake, session.StepAddCarModel, session.StepAddCarYear,
		session.StepAddCarPhoto, session.StepRefreshPhoto:
		d.addCarText(ctx, msg, state, b)
	case session.StepAddDealerName, session.StepAddDealerID:
		if msg.Chat.ID != d.adminGroupID {
			d.reply(msg.Chat.ID, b.Get("not_admin"), nil)
			return
		}
		d.addDealerText(ctx, msg, state, b)
	default:
		if err := d.sessions.Clear(ctx, msg.Chat.ID); err != nil {
			d.logger.Error("bot: clear session", "chat_id", msg.Chat.ID, "error", err)
		}
		d.reply(msg.Chat.ID, b.Get("unknown_action"), nil)
	}
}

// handleDialogPhoto routes an uploaded photo into the pending dialog step.
func (d *Dispatcher) handleDialogPhoto(ctx context.Context, msg *tgbotapi.Message, state session.State, b messages.Bundle) {
	switch state.Step {
	case session.StepAddCarPhoto:
		d.addCarPhoto(ctx, msg, state, b)
	case session.StepRefreshPhoto:
		d.refreshPhoto(ctx, msg, state, b)
	default:
		if err := d.sessions.Clear(ctx, msg.Chat.ID); err != nil {
			d.logger.Error("bot: clear session", "chat_id", msg.Chat.ID, "error", err)
		}
		d.reply(msg.Chat.ID, b.Get("unknown_action"), nil)
	}
}

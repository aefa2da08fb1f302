package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/studentai/campus_bot/internal/dialog"
	"go.uber.org/zap"
)

// HandleAppointmentStart enters the appointment dialog. A chat can run only
// one dialog at a time; re-entry leaves the running one untouched.
func (h *Handlers) HandleAppointmentStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chat := update.Message.Chat
	if _, _, err := h.userService.EnsureUser(ctx, chat.ID, chat.FirstName, chat.LastName); err != nil {
		h.logger.Error("Failed to ensure user before dialog", zap.Int64("chat_id", chat.ID), zap.Error(err))
		h.sendError(ctx, b, chat.ID, "Es ist ein Fehler aufgetreten. Bitte versuche es später nochmal.")
		return
	}

	sess, ok := h.sessions.Start(chat.ID)
	if !ok {
		h.sendMessage(ctx, b, chat.ID,
			"Du bist schon dabei, einen Termin zu vereinbaren. Schließe den Vorgang erst ab oder schreibe /stop.")
		return
	}

	h.logger.Info("Appointment dialog started", zap.Int64("chat_id", chat.ID))

	res := h.machine.Start(sess)
	h.renderDialogResult(ctx, b, chat.ID, res)
}

// HandleProfessorSelection feeds a pressed candidate button into the dialog.
func (h *Handlers) HandleProfessorSelection(ctx context.Context, b *bot.Bot, chatID int64, callbackData string) {
	if !h.sessions.Active(chatID) {
		return
	}
	buttonID := strings.TrimPrefix(callbackData, SelectProfessor)
	h.advanceDialog(ctx, b, chatID, dialog.ButtonInput(buttonID))
}

// advanceDialog applies one input to the chat's session and renders the
// outcome.
func (h *Handlers) advanceDialog(ctx context.Context, b *bot.Bot, chatID int64, in dialog.Input) {
	sess, ok := h.sessions.Get(chatID)
	if !ok {
		return
	}

	res := h.machine.Advance(sess, in)

	h.logger.Info("Dialog advanced",
		zap.Int64("chat_id", chatID),
		zap.String("step", string(sess.Step)),
		zap.String("status", string(res.Status)))

	h.renderDialogResult(ctx, b, chatID, res)
}

// renderDialogResult sends the dialog outputs and finishes the session on a
// terminal status. On completion the appointment is persisted first; only a
// successful save yields the confirmation message.
func (h *Handlers) renderDialogResult(ctx context.Context, b *bot.Bot, chatID int64, res dialog.Result) {
	for _, out := range res.Outputs {
		h.sendDialogOutput(ctx, b, chatID, out)
	}

	switch res.Status {
	case dialog.StatusCompleted:
		h.sessions.End(chatID)

		appointment, err := h.appointmentService.Save(ctx, chatID, res.Request)
		if err != nil {
			h.logger.Error("Failed to persist appointment",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
			h.sendError(ctx, b, chatID, dialog.MsgPersistFailed)
			return
		}

		h.logger.Info("Appointment dialog completed",
			zap.Int64("chat_id", chatID),
			zap.String("appointment_id", appointment.ID))
		h.sendMessage(ctx, b, chatID, dialog.FormatConfirmation(res.Request, h.clockOffsetHours))

	case dialog.StatusAborted:
		h.sessions.End(chatID)
		h.logger.Info("Appointment dialog aborted", zap.Int64("chat_id", chatID))
	}
}

func (h *Handlers) sendDialogOutput(ctx context.Context, b *bot.Bot, chatID int64, out dialog.Output) {
	if out.PhotoURL != "" {
		_, err := b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:  chatID,
			Photo:   &models.InputFileString{Data: out.PhotoURL},
			Caption: out.Text,
		})
		if err != nil {
			h.logger.Error("Failed to send photo",
				zap.Int64("chat_id", chatID),
				zap.String("photo_url", out.PhotoURL),
				zap.Error(err))
		}
		return
	}

	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   out.Text,
	}
	if len(out.Options) > 0 {
		rows := make([][]models.InlineKeyboardButton, 0, len(out.Options))
		for _, option := range out.Options {
			rows = append(rows, []models.InlineKeyboardButton{
				{Text: option.Label, CallbackData: SelectProfessor + option.ID},
			})
		}
		params.ReplyMarkup = &models.InlineKeyboardMarkup{InlineKeyboard: rows}
	}

	if _, err := b.SendMessage(ctx, params); err != nil {
		h.logger.Error("Failed to send dialog message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

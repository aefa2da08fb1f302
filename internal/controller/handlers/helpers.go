package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// sendMessage sends a plain text message and logs a failure.
func (h *Handlers) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// sendMarkdown sends a Markdown-formatted message and logs a failure.
func (h *Handlers) sendMarkdown(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		h.logger.Error("Failed to send markdown message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// sendError sends an error notice to the user.
func (h *Handlers) sendError(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	h.sendMessage(ctx, b, chatID, text)
}

// mainMenuKeyboard is the persistent reply keyboard of the bot.
func mainMenuKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{
				{Text: MenuTimetableToday},
				{Text: MenuTimetableTomorrow},
				{Text: MenuTimetableDayAfter},
			},
			{
				{Text: MenuNews},
				{Text: MenuCanteen},
				{Text: MenuAppointments},
			},
			{
				{Text: MenuNewAppointment},
				{Text: MenuSettings},
			},
		},
		ResizeKeyboard: true,
	}
}

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/studentai/campus_bot/internal/dialog"
	"go.uber.org/zap"
)

const welcomeText = "Herzlich willkommen zu deinem *persönlichen Helfer*, um dir deinen Campus Alltag zu " +
	"erleichtern. Ich kann dich bei den folgenden Dingen unterstützen: \n \n" +
	"*Termine mit Professoren* \n" +
	"Termin vereinbaren \n" +
	"Vereinbarte Termine anzeigen \n \n" +
	"*Mensa*\n" +
	"Essen für den heutigen Tag anzeigen\n" +
	"Persönliche Standardmensa festlegen\n\n" +
	"*Stundenplan*\n" +
	"Persönlichen Standardstundenplan festlegen\n" +
	"Stundenplan für heute, morgen oder übermorgen anzeigen\n\n" +
	"*Intranet-News*\n" +
	"News der Fakultät Wirtschaftsinformatik anzeigen\n\n" +
	"Solltest du diese Nachricht zu einem späteren Zeitpunkt nochmal anzeigen wollen, " +
	"schreibe einfach /help."

// HandleStart registers the user and shows the main menu keyboard.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chat := update.Message.Chat
	user, existed, err := h.userService.EnsureUser(ctx, chat.ID, chat.FirstName, chat.LastName)
	if err != nil {
		h.logger.Error("Failed to register user", zap.Int64("chat_id", chat.ID), zap.Error(err))
		h.sendError(ctx, b, chat.ID, "Es ist ein Fehler aufgetreten. Bitte versuche es später nochmal.")
		return
	}

	if existed {
		_, err = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chat.ID,
			Text:        fmt.Sprintf("Hey %s, willkommen zurück! Benutze /help für Hilfe.", user.GivenName),
			ReplyMarkup: mainMenuKeyboard(),
		})
	} else {
		_, err = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chat.ID,
			Text:        welcomeText,
			ParseMode:   models.ParseModeMarkdown,
			ReplyMarkup: mainMenuKeyboard(),
		})
	}
	if err != nil {
		h.logger.Error("Failed to send welcome message", zap.Int64("chat_id", chat.ID), zap.Error(err))
	}
}

// HandleHelp re-sends the welcome message.
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendMarkdown(ctx, b, update.Message.Chat.ID, welcomeText)
}

// HandleCancel aborts an active appointment dialog, if any.
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.sessions.Active(chatID) {
		h.sendMessage(ctx, b, chatID, "Es gibt gerade nichts abzubrechen.")
		return
	}

	h.sessions.End(chatID)
	h.logger.Info("Dialog cancelled via /cancel", zap.Int64("chat_id", chatID))
	h.sendMessage(ctx, b, chatID, "Alles klar, ich habe die Termin Anlegung abgebrochen.")
}

// HandleStop routes the /stop command into the dialog's abort handling so it
// behaves exactly like typing the abort keyword.
func (h *Handlers) HandleStop(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	if !h.sessions.Active(update.Message.Chat.ID) {
		return
	}
	h.advanceDialog(ctx, b, update.Message.Chat.ID, dialog.TextInput(update.Message.Text))
}

// HandleTextMessage routes free text. While an appointment dialog is active
// every non-command message belongs to it; otherwise plain text outside the
// menu labels is ignored.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Commands are handled by their registered handlers.
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.sessions.Active(chatID) {
		h.logger.Debug("No active dialog, ignoring message", zap.Int64("chat_id", chatID))
		return
	}

	h.advanceDialog(ctx, b, chatID, dialog.TextInput(update.Message.Text))
}

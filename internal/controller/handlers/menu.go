package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleTimetable builds the three "Stundenplan …" handlers; daysAhead is 0
// for today, 1 for tomorrow, 2 for the day after.
func (h *Handlers) HandleTimetable(daysAhead int) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}
		chatID := update.Message.Chat.ID

		user, err := h.userService.GetByChatID(ctx, chatID)
		if err != nil {
			h.logger.Error("Failed to load user", zap.Int64("chat_id", chatID), zap.Error(err))
			h.sendError(ctx, b, chatID, "Es ist ein Fehler aufgetreten. Bitte versuche es später nochmal.")
			return
		}

		if user == nil || user.Timetable == nil || user.Timetable.ICalLink == "" {
			h.sendMessage(ctx, b, chatID,
				"Du hast noch keinen Standardstundenplan. Hier kannst du die entsprechende Fakultät, Studiengang und Semester auswählen.")
			h.sendTimetableSettings(ctx, b, chatID)
			return
		}

		date := time.Now().AddDate(0, 0, daysAhead)
		events, err := h.timetable.EventsForDate(ctx, user.Timetable.ICalLink, date)
		if err != nil {
			h.logger.Error("Failed to load timetable",
				zap.Int64("chat_id", chatID),
				zap.String("ical_link", user.Timetable.ICalLink),
				zap.Error(err))
			h.sendError(ctx, b, chatID, "Dein Stundenplan konnte gerade nicht geladen werden. Bitte versuche es später nochmal.")
			return
		}

		if len(events) == 0 {
			h.sendMessage(ctx, b, chatID, "Du hast keine Vorlesung :) Genieße den freien Tag.")
			return
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Dein Stundenplan für den %s ist folgender: \n", date.Format("02.01.2006"))
		for _, event := range events {
			fmt.Fprintf(&sb, "*%s* (%s - %s) - %s \n",
				event.Block,
				event.Start.Format("15:04"),
				event.End.Format("15:04"),
				strings.ReplaceAll(strings.TrimSpace(event.Summary), "*", ""))
		}

		h.sendMarkdown(ctx, b, chatID, sb.String())
	}
}

// HandleNews shows the latest intranet news.
func (h *Handlers) HandleNews(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	news, err := h.newsFeed.Latest(ctx, newsLimit)
	if err != nil {
		h.logger.Error("Failed to load news", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, "Die News konnten gerade nicht geladen werden. Bitte versuche es später nochmal.")
		return
	}

	var sb strings.Builder
	for _, item := range news {
		fmt.Fprintf(&sb, "*%s*\n%s\n\n",
			strings.ReplaceAll(item.Title, "*", ""),
			strings.ReplaceAll(item.Content, "*", ""))
	}

	h.sendMarkdown(ctx, b, chatID, sb.String())
}

// HandleCanteen shows today's menu of the user's default canteen.
func (h *Handlers) HandleCanteen(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	user, err := h.userService.GetByChatID(ctx, chatID)
	if err != nil {
		h.logger.Error("Failed to load user", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, "Es ist ein Fehler aufgetreten. Bitte versuche es später nochmal.")
		return
	}

	if user == nil || user.CanteenID == nil {
		h.sendMessage(ctx, b, chatID, "Du hast noch keine Standardmensa. Hier kannst du diese auswählen.")
		h.sendCanteenSettings(ctx, b, chatID)
		return
	}

	menu, err := h.campusClient.MenuOfTheDay(ctx, *user.CanteenID, time.Now())
	if err != nil {
		h.logger.Error("Failed to load canteen menu",
			zap.Int64("chat_id", chatID),
			zap.Int64("canteen_id", *user.CanteenID),
			zap.Error(err))
		h.sendError(ctx, b, chatID, "Der Speiseplan konnte gerade nicht geladen werden. Bitte versuche es später nochmal.")
		return
	}

	if len(menu.Lines) == 0 {
		h.sendMarkdown(ctx, b, chatID,
			fmt.Sprintf("*%s*\nHeute gibt es kein Essen. Vielleicht ist ja Feiertag?", menu.Name))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s*\n", menu.Name)
	for _, line := range menu.Lines {
		fmt.Fprintf(&sb, "*%s*\n", line.Name)
		for _, meal := range line.Meals {
			fmt.Fprintf(&sb, "%s %.2f€\n", meal.Name, meal.Price)
		}
		sb.WriteString("\n")
	}

	h.sendMarkdown(ctx, b, chatID, sb.String())
}

// HandleAppointments lists the user's requested appointments.
func (h *Handlers) HandleAppointments(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	appointments, err := h.appointmentService.List(ctx, chatID)
	if err != nil {
		h.logger.Error("Failed to load appointments", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, "Deine Termine konnten gerade nicht geladen werden. Bitte versuche es später nochmal.")
		return
	}

	if len(appointments) == 0 {
		h.sendMessage(ctx, b, chatID,
			"Du hast noch keine vereinbarten Termine, du kannst die Vereinbarung von einem Termin über den Button '"+MenuNewAppointment+"' starten.")
		return
	}

	var sb strings.Builder
	sb.WriteString("*Du hast ein Termin mit*: \n")
	for i, appointment := range appointments {
		shown := appointment.Date.Add(time.Duration(h.clockOffsetHours) * time.Hour)
		fmt.Fprintf(&sb, "%s %s am %s um %s für %s",
			appointment.ProfessorDegree,
			appointment.ProfessorName,
			shown.Format("2.1.2006"),
			shown.Format("15:04"),
			appointment.Subject)
		if i == len(appointments)-1 {
			sb.WriteString(".")
		} else {
			sb.WriteString(", \n")
		}
	}

	h.sendMarkdown(ctx, b, chatID, sb.String())
}

// parseID extracts the numeric id behind a callback-data prefix.
func parseID(callbackData, prefix string) (int64, error) {
	raw := strings.TrimPrefix(callbackData, prefix)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse callback id %q: %w", raw, err)
	}
	return id, nil
}

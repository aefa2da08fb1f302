package handlers

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const settingsHelpText = "Über die Einstellungen kannst du deine Standardmensa und deinen " +
	"Standardstundenplan festlegen. Beides brauche ich, um dir den Speiseplan und deinen " +
	"Stundenplan anzeigen zu können. Du kannst die Auswahl jederzeit hier wieder ändern."

// HandleSettings opens the settings menu.
func (h *Handlers) HandleSettings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   "Was möchtest du einstellen?",
		ReplyMarkup: &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{{Text: "Standardmensa auswählen", CallbackData: OpenCanteenSettings}},
				{{Text: "Standardstundenplan auswählen", CallbackData: OpenTimetableSettings}},
				{{Text: "Hilfe", CallbackData: SettingsHelp}},
			},
		},
	})
	if err != nil {
		h.logger.Error("Failed to send settings menu",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.Error(err))
	}
}

// sendCanteenSettings lists all canteens for selection.
func (h *Handlers) sendCanteenSettings(ctx context.Context, b *bot.Bot, chatID int64) {
	rows := make([][]models.InlineKeyboardButton, 0, len(h.canteens))
	for _, canteen := range h.canteens {
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: canteen.Name, CallbackData: SelectCanteen + strconv.FormatInt(canteen.ID, 10)},
		})
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Welche Mensa soll deine Standardmensa sein?",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
	if err != nil {
		h.logger.Error("Failed to send canteen settings", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// sendTimetableSettings starts the faculty → course → semester selection.
func (h *Handlers) sendTimetableSettings(ctx context.Context, b *bot.Bot, chatID int64) {
	rows := make([][]models.InlineKeyboardButton, 0, len(h.courseCatalog.Faculties))
	for _, facultyID := range h.courseCatalog.Faculties {
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: facultyID, CallbackData: SelectFaculty + facultyID},
		})
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Zu welcher Fakultät gehört dein Studiengang?",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
	if err != nil {
		h.logger.Error("Failed to send faculty settings", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// handleFacultySelected lists the faculty's courses. The callback data carries
// the course's index into the sorted name list because full course names would
// blow the 64 byte callback-data limit.
func (h *Handlers) handleFacultySelected(ctx context.Context, b *bot.Bot, chatID int64, callbackData string) {
	facultyID := strings.TrimPrefix(callbackData, SelectFaculty)
	names := h.sortedCourses(facultyID)
	if len(names) == 0 {
		h.sendMessage(ctx, b, chatID, "Für diese Fakultät kenne ich leider keine Studiengänge.")
		return
	}

	rows := make([][]models.InlineKeyboardButton, 0, len(names))
	for i, name := range names {
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: name, CallbackData: fmt.Sprintf("%s%s:%d", SelectCourse, facultyID, i)},
		})
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Welchen Studiengang studierst du?",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
	if err != nil {
		h.logger.Error("Failed to send course settings", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// handleCourseSelected lists the course's selectable semesters.
func (h *Handlers) handleCourseSelected(ctx context.Context, b *bot.Bot, chatID int64, callbackData string) {
	raw := strings.TrimPrefix(callbackData, SelectCourse)
	sep := strings.LastIndex(raw, ":")
	if sep < 0 {
		h.logger.Warn("Malformed course callback", zap.String("data", callbackData))
		return
	}
	facultyID := raw[:sep]
	index, err := strconv.Atoi(raw[sep+1:])
	if err != nil {
		h.logger.Warn("Malformed course callback", zap.String("data", callbackData), zap.Error(err))
		return
	}

	names := h.sortedCourses(facultyID)
	if index < 0 || index >= len(names) {
		h.logger.Warn("Course index out of range",
			zap.String("faculty_id", facultyID),
			zap.Int("index", index))
		return
	}

	semesters := h.courseCatalog.CoursesByFaculty[facultyID][names[index]]
	sorted := make([]int, 0, len(semesters))
	byNumber := make(map[int]int64, len(semesters))
	for _, semester := range semesters {
		sorted = append(sorted, semester.Semester)
		byNumber[semester.Semester] = semester.ID
	}
	sort.Ints(sorted)

	rows := make([][]models.InlineKeyboardButton, 0, len(sorted))
	for _, number := range sorted {
		rows = append(rows, []models.InlineKeyboardButton{
			{
				Text:         fmt.Sprintf("%d. Semester", number),
				CallbackData: SelectTimetable + strconv.FormatInt(byNumber[number], 10),
			},
		})
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "In welchem Semester bist du?",
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
	if err != nil {
		h.logger.Error("Failed to send semester settings", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// handleTimetableSelected stores the chosen timetable as the user's default.
func (h *Handlers) handleTimetableSelected(ctx context.Context, b *bot.Bot, chatID int64, callbackData string) {
	timetableID, err := parseID(callbackData, SelectTimetable)
	if err != nil {
		h.logger.Warn("Malformed timetable callback", zap.String("data", callbackData), zap.Error(err))
		return
	}

	timetable, ok := h.courseCatalog.FindTimetable(timetableID)
	if !ok {
		h.logger.Warn("Unknown timetable selected",
			zap.Int64("chat_id", chatID),
			zap.Int64("timetable_id", timetableID))
		h.sendError(ctx, b, chatID, "Diesen Stundenplan kenne ich leider nicht mehr. Bitte wähle nochmal aus.")
		return
	}

	if err := h.userService.SetDefaultTimetable(ctx, chatID, timetable); err != nil {
		h.logger.Error("Failed to store default timetable", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, "Dein Stundenplan konnte nicht gespeichert werden. Bitte versuche es später nochmal.")
		return
	}

	h.sendMessage(ctx, b, chatID, fmt.Sprintf(
		"Dein Standardstundenplan ist jetzt %s (%d. Semester). Über den Button '%s' bekommst du ihn angezeigt.",
		timetable.Name, timetable.Semester, MenuTimetableToday))
}

// handleCanteenSelected stores the chosen canteen as the user's default.
func (h *Handlers) handleCanteenSelected(ctx context.Context, b *bot.Bot, chatID int64, callbackData string) {
	canteenID, err := parseID(callbackData, SelectCanteen)
	if err != nil {
		h.logger.Warn("Malformed canteen callback", zap.String("data", callbackData), zap.Error(err))
		return
	}

	if err := h.userService.SetDefaultCanteen(ctx, chatID, canteenID); err != nil {
		h.logger.Error("Failed to store default canteen", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(ctx, b, chatID, "Deine Mensa konnte nicht gespeichert werden. Bitte versuche es später nochmal.")
		return
	}

	name := h.canteenName(canteenID)
	h.sendMessage(ctx, b, chatID, fmt.Sprintf(
		"Deine Standardmensa ist die %s, du kannst dir jetzt über den Button '%s' den aktuellen Speiseplan anzeigen lassen.",
		name, MenuCanteen))
}

// HandleCallbackQuery answers the callback and dispatches it by prefix.
func (h *Handlers) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: query.ID,
	})
	if err != nil {
		h.logger.Error("Failed to answer callback query", zap.Error(err))
	}

	if query.Message.Message == nil {
		h.logger.Warn("Callback without accessible message", zap.String("data", query.Data))
		return
	}

	chatID := query.Message.Message.Chat.ID
	data := query.Data

	switch {
	case strings.HasPrefix(data, SelectProfessor):
		h.HandleProfessorSelection(ctx, b, chatID, data)
	case data == OpenCanteenSettings:
		h.sendCanteenSettings(ctx, b, chatID)
	case data == OpenTimetableSettings:
		h.sendTimetableSettings(ctx, b, chatID)
	case data == SettingsHelp:
		h.sendMessage(ctx, b, chatID, settingsHelpText)
	case strings.HasPrefix(data, SelectCanteen):
		h.handleCanteenSelected(ctx, b, chatID, data)
	case strings.HasPrefix(data, SelectFaculty):
		h.handleFacultySelected(ctx, b, chatID, data)
	case strings.HasPrefix(data, SelectCourse):
		h.handleCourseSelected(ctx, b, chatID, data)
	case strings.HasPrefix(data, SelectTimetable):
		h.handleTimetableSelected(ctx, b, chatID, data)
	default:
		h.logger.Debug("Unhandled callback query", zap.String("data", data))
	}
}

func (h *Handlers) sortedCourses(facultyID string) []string {
	courses := h.courseCatalog.CoursesByFaculty[facultyID]
	names := make([]string, 0, len(courses))
	for name := range courses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (h *Handlers) canteenName(canteenID int64) string {
	for _, canteen := range h.canteens {
		if canteen.ID == canteenID {
			return canteen.Name
		}
	}
	return "ausgewählte Mensa"
}

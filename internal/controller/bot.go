package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/studentai/campus_bot/internal/campus"
	"github.com/studentai/campus_bot/internal/controller/handlers"
	"github.com/studentai/campus_bot/internal/dialog"
	"github.com/studentai/campus_bot/internal/service"
	"go.uber.org/zap"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	appointmentService *service.AppointmentService,
	campusClient *campus.Client,
	newsFeed *campus.NewsFeed,
	timetable *campus.Timetable,
	courseCatalog *campus.CourseCatalog,
	canteens []campus.Canteen,
	sessions *dialog.Manager,
	machine *dialog.Machine,
	clockOffsetHours int,
	logger *zap.Logger,
) *BotController {
	cmdHandlers := handlers.NewHandlers(
		userService,
		appointmentService,
		campusClient,
		newsFeed,
		timetable,
		courseCatalog,
		canteens,
		sessions,
		machine,
		clockOffsetHours,
		logger,
	)

	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		logger:   logger,
	}
}

// Handlers exposes the handler set, used to wire the session janitor.
func (c *BotController) Handlers() *handlers.Handlers {
	return c.handlers
}

// RegisterHandlers registers all command, menu and callback handlers.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/stop", bot.MatchTypeExact, c.handlers.HandleStop)

	// Main menu reply-keyboard buttons arrive as plain text.
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, handlers.MenuTimetableToday, bot.MatchTypeExact, c.handlers.HandleTimetable(0))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, handlers.MenuTimetableTomorrow, bot.MatchTypeExact, c.handlers.HandleTimetable(1))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, handlers.MenuTimetableDayAfter, bot.MatchTypeExact, c.handlers.HandleTimetable(2))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, handlers.MenuNews, bot.MatchTypeExact, c.handlers.HandleNews)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, handlers.MenuCanteen, bot.MatchTypeExact, c.handlers.HandleCanteen)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, handlers.MenuAppointments, bot.MatchTypeExact, c.handlers.HandleAppointments)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, handlers.MenuNewAppointment, bot.MatchTypeExact, c.handlers.HandleAppointmentStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, handlers.MenuSettings, bot.MatchTypeExact, c.handlers.HandleSettings)

	// Free text feeds the appointment dialog.
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Inline keyboard buttons.
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.handlers.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands publishes the command menu shown by Telegram clients.
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "Bot starten und Hauptmenü anzeigen"},
		{Command: "help", Description: "Übersicht über alle Funktionen"},
		{Command: "cancel", Description: "Laufende Terminvereinbarung abbrechen"},
		{Command: "stop", Description: "Laufende Terminvereinbarung abbrechen"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start runs the long-polling loop until the context is cancelled.
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studentai/campus_bot/internal/app"
	"github.com/studentai/campus_bot/internal/campus"
	"github.com/studentai/campus_bot/internal/config"
	"github.com/studentai/campus_bot/internal/controller"
	"github.com/studentai/campus_bot/internal/dialog"
	"github.com/studentai/campus_bot/internal/directory"
	"github.com/studentai/campus_bot/internal/repository"
	"github.com/studentai/campus_bot/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting campus bot",
		zap.String("environment", cfg.Environment),
		zap.Int("clock_offset_hours", cfg.ClockOffsetHours))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, "migrations", logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	campusClient := campus.NewClient(cfg.BrokerBaseURL, logger)

	// The professor directory is the heart of the appointment dialog; without
	// it the bot cannot do its job, so a failed fetch is fatal.
	persons, err := campusClient.Persons(ctx)
	if err != nil {
		logger.Fatal("Failed to fetch people catalog", zap.Error(err))
	}
	index := directory.Build(persons)
	if index.Len() == 0 {
		logger.Fatal("People catalog contains no professors")
	}
	logger.Info("Professor directory built",
		zap.Int("persons", len(persons)),
		zap.Int("surnames", index.Len()))

	canteens, err := campusClient.Canteens(ctx)
	if err != nil {
		logger.Fatal("Failed to fetch canteen list", zap.Error(err))
	}

	semesters, err := campusClient.Semesters(ctx)
	if err != nil {
		logger.Fatal("Failed to fetch semester catalog", zap.Error(err))
	}
	courseCatalog := campus.BuildCourseCatalog(semesters)
	logger.Info("Course catalog built",
		zap.Int("canteens", len(canteens)),
		zap.Int("faculties", len(courseCatalog.Faculties)))

	newsFeed := campus.NewNewsFeed(cfg.NewsFeedURL)
	timetable := campus.NewTimetable(cfg.ClockOffsetHours)

	userRepo := repository.NewUserRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)

	userService := service.NewUserService(userRepo, logger)
	appointmentService := service.NewAppointmentService(appointmentRepo, logger)

	filter, err := dialog.NewFilter(dialog.DefaultDenyList)
	if err != nil {
		logger.Fatal("Failed to build profanity filter", zap.Error(err))
	}
	sessions := dialog.NewManager()
	machine := dialog.NewMachine(index, filter, cfg.ClockOffsetHours)

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		botInstance,
		userService,
		appointmentService,
		campusClient,
		newsFeed,
		timetable,
		courseCatalog,
		canteens,
		sessions,
		machine,
		cfg.ClockOffsetHours,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	janitor := app.NewJanitor(sessions, cfg.SessionTTL, func(ctx context.Context, chatID int64) {
		_, err := botInstance.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   dialog.MsgExpired,
		})
		if err != nil {
			logger.Error("Failed to notify expired dialog",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
		}
	}, logger)
	janitor.Start(ctx)
	defer janitor.Stop()

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Campus bot shut down")
}

package main

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"weatherbot/internal/adapters/discord"
	"weatherbot/internal/application"
	"weatherbot/internal/config"
	"weatherbot/internal/infrastructure/database"
	"weatherbot/internal/infrastructure/i18n"
	"weatherbot/internal/infrastructure/memory"
	"weatherbot/internal/infrastructure/weatherapi"
	"weatherbot/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		initLogger("info").Fatal("load config", zap.Error(err))
	}

	level := cfg.LogLevel
	if cfg.Development() {
		level = "debug"
	}
	logger := initLogger(level)
	defer func() { _ = logger.Sync() }()

	locales := i18n.NewRegistry(logger)
	if err := locales.Load(cfg.LocalesDir); err != nil {
		logger.Fatal("load locales", zap.Error(err))
	}

	prefRepo, closeRepo := preferenceRepository(cfg, logger)
	defer closeRepo()

	client := weatherapi.NewClient(cfg.WeatherAPIBaseURL, cfg.WeatherAPIKey, cfg.WeatherAPITimeout, logger)
	weather := application.NewWeatherService(client, prefRepo, cfg.ForecastDays)

	bot, err := discord.NewBot(cfg, weather, locales, logger)
	if err != nil {
		logger.Fatal("create bot", zap.Error(err))
	}
	if err := bot.Start(); err != nil {
		logger.Error("bot stopped", zap.Error(err))
		closeRepo()
		_ = logger.Sync()
		os.Exit(1)
	}
}

// preferenceRepository uses PostgreSQL when DATABASE_URL is set and keeps
// home cities in memory otherwise.
func preferenceRepository(cfg *config.Config, logger *zap.Logger) (output.PreferenceRepository, func()) {
	if cfg.DatabaseURL == "" {
		logger.Info("DATABASE_URL not set, home cities are kept in memory")
		return memory.NewPreferenceRepository(), func() {}
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}
	pool, err := database.NewPool(context.Background(), cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	return database.NewPreferenceRepository(pool), pool.Close
}

func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	zapConfig := zap.Config{
		Level:       zap.NewAtomicLevelAt(zapLevel),
		Development: zapLevel == zapcore.DebugLevel,
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

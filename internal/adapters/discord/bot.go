package discord

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"weatherbot/internal/config"
	"weatherbot/internal/ports/input"
	"weatherbot/internal/ports/output"
)

// Localizer resolves user-facing strings and can be reloaded while running.
type Localizer interface {
	output.Translator
	commandLocalizer
	Load(dir string) error
}

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	locales Localizer
	logger  *zap.Logger
}

// NewBot creates a Bot around the weather use case and the locale registry.
func NewBot(cfg *config.Config, weather input.WeatherUseCase, locales Localizer, logger *zap.Logger) (*Bot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(weather, locales, cfg.ViewTimeout, cfg.CommandCooldown, logger),
		locales: locales,
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.handler.Handle(s, i)
}

// registerCommands replaces the application commands, in the test guild
// when one is configured and globally otherwise.
func (b *Bot) registerCommands() error {
	commands := buildCommands(b.locales, b.logger)
	created, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.TestGuildID, commands)
	if err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	b.logger.Info("commands registered",
		zap.Int("count", len(created)),
		zap.String("guild_id", b.config.TestGuildID),
	)
	return nil
}

// reload re-reads the locale tables. On failure the previous tables stay in use.
func (b *Bot) reload() {
	if err := b.locales.Load(b.config.LocalesDir); err != nil {
		b.logger.Error("reload locales, keeping previous tables", zap.Error(err))
		return
	}
	if err := b.registerCommands(); err != nil {
		b.logger.Error("re-register commands", zap.Error(err))
	}
}

// Start runs the bot until interrupted. SIGHUP reloads the locales.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()
	defer b.handler.Close()

	if err := b.registerCommands(); err != nil {
		return err
	}

	b.logger.Info("bot online, press CTRL+C to quit",
		zap.String("user", b.session.State.User.Username),
		zap.Bool("development", b.config.Development()),
	)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	for sig := range signals {
		if sig == syscall.SIGHUP {
			b.reload()
			continue
		}
		b.logger.Info("shutting down", zap.Stringer("signal", sig))
		break
	}
	return nil
}

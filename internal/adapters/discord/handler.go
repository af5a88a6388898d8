package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"weatherbot/internal/ports/input"
	"weatherbot/internal/ports/output"
)

const (
	commandWeather = "weather"
	commandPing    = "ping"

	subcommandCurrent  = "current"
	subcommandForecast = "forecast"
	subcommandHome     = "home"

	optionCity = "city"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	weather  input.WeatherUseCase
	locales  output.Translator
	cooldown *cooldown
	alerts   *sessionStore[*alertView]
	pagers   *sessionStore[*pagerView]
	logger   *zap.Logger
}

// NewHandler creates a Handler. Views lose their buttons after viewTimeout
// without use; each user may run a weather command once per cooldownWindow.
func NewHandler(
	weather input.WeatherUseCase,
	locales output.Translator,
	viewTimeout time.Duration,
	cooldownWindow time.Duration,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		weather:  weather,
		locales:  locales,
		cooldown: newCooldown(cooldownWindow),
		logger:   logger.Named("discord"),
	}
	h.alerts = newSessionStore(viewTimeout, h.expireAlerts)
	h.pagers = newSessionStore(viewTimeout, h.expirePager)
	return h
}

// Close drops every open view without touching their messages.
func (h *Handler) Close() {
	h.alerts.Close()
	h.pagers.Close()
}

func (h *Handler) translator(locale discordgo.Locale) tfunc {
	return h.locales.For(string(locale))
}

// Handle routes an interaction. A panic in any handler is logged and
// answered with a private error message.
func (h *Handler) Handle(s responder, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("interaction handler panicked",
				zap.Any("panic", r),
				zap.String("interaction_id", i.ID),
				zap.Stack("stack"),
			)
			t := h.translator(i.Locale)
			if err := replyEphemeral(s, i.Interaction, execErrorEmbed(t, r)); err != nil {
				h.logger.Warn("report panic to user", zap.Error(err))
			}
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

func (h *Handler) handleCommand(s responder, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	switch data.Name {
	case commandPing:
		h.handlePing(s, i)
	case commandWeather:
		if len(data.Options) == 0 {
			h.logger.Warn("weather command without subcommand", zap.String("interaction_id", i.ID))
			return
		}
		sub := data.Options[0]
		city := ""
		for _, opt := range sub.Options {
			if opt.Name == optionCity {
				city = opt.StringValue()
			}
		}

		t := h.translator(i.Locale)
		if ok, wait := h.cooldown.Allow(actorID(i.Interaction), data.Name+" "+sub.Name); !ok {
			if err := respondEphemeral(s, i.Interaction, cooldownEmbed(t, wait)); err != nil {
				h.logger.Warn("respond cooldown", zap.Error(err))
			}
			return
		}

		switch sub.Name {
		case subcommandCurrent:
			h.handleCurrent(s, i, city)
		case subcommandForecast:
			h.handleForecast(s, i, city)
		case subcommandHome:
			h.handleHome(s, i, city)
		default:
			h.logger.Warn("unknown weather subcommand", zap.String("subcommand", sub.Name))
		}
	default:
		h.logger.Warn("unknown command", zap.String("command", data.Name))
	}
}

func (h *Handler) handleComponent(s responder, i *discordgo.InteractionCreate) {
	id, ok := parseCustomID(i.MessageComponentData().CustomID)
	if !ok {
		h.logger.Debug("ignoring foreign component", zap.String("custom_id", i.MessageComponentData().CustomID))
		h.ack(s, i)
		return
	}
	switch id.Kind {
	case kindAlerts:
		h.handleShowAlerts(s, i, id.Session)
	case kindPager:
		h.handlePage(s, i, id.Session, id.Action)
	}
}

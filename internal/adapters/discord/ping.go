package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	colorGreen  = 0x2ECC71
	colorYellow = 0xF1C40F
	colorRed    = 0xE74C3C
)

func latencyStyle(ms int64) (emoji string, color int) {
	switch {
	case ms < 100:
		return "🟢", colorGreen
	case ms < 200:
		return "🟡", colorYellow
	default:
		return "🔴", colorRed
	}
}

func (h *Handler) handlePing(s responder, i *discordgo.InteractionCreate) {
	t := h.translator(i.Locale)
	ms := s.HeartbeatLatency().Round(time.Millisecond).Milliseconds()
	emoji, color := latencyStyle(ms)

	embed := &discordgo.MessageEmbed{
		Title:       "🏓 " + t("commands.ping.pong", nil),
		Description: emoji + " " + t("commands.ping.response", map[string]any{"latency": fmt.Sprintf("`%dms`", ms)}),
		Color:       color,
	}
	if err := respondEphemeral(s, i.Interaction, embed); err != nil {
		h.logger.Error("respond ping", zap.Error(err))
	}
}

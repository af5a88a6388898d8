package discord

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"weatherbot/internal/domain"
	pkgdiscord "weatherbot/pkg/discord"
)

// weatherErrorEmbed maps a weather use case error to a localized error embed.
func weatherErrorEmbed(t tfunc, err error) *discordgo.MessageEmbed {
	switch {
	case errors.Is(err, domain.ErrCityNotFound):
		return pkgdiscord.ErrorEmbed(t("errors.city_not_found", nil))
	case errors.Is(err, domain.ErrNoCity):
		return pkgdiscord.ErrorEmbed(t("errors.no_city", nil))
	}
	embed := pkgdiscord.ErrorEmbed(t("errors.request_error", nil))
	if code, ok := domain.UpstreamCode(err); ok {
		pkgdiscord.WithFooter(embed, t("errors.error_code", map[string]any{"error_code": code}))
	}
	return embed
}

func cooldownEmbed(t tfunc, retryAfter time.Duration) *discordgo.MessageEmbed {
	return pkgdiscord.ErrorEmbed(t("errors.command_on_cooldown", map[string]any{
		"retry_after": fmt.Sprintf("%.2f", retryAfter.Seconds()),
	}))
}

func execErrorEmbed(t tfunc, cause any) *discordgo.MessageEmbed {
	return pkgdiscord.ErrorEmbed(t("errors.exec_error", map[string]any{"error": cause}))
}

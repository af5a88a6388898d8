package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"weatherbot/internal/domain/entities"
	pkgdiscord "weatherbot/pkg/discord"
)

func (h *Handler) handleCurrent(s responder, i *discordgo.InteractionCreate, city string) {
	h.replyWithReport(s, i, func(ctx context.Context) (*entities.Report, error) {
		return h.weather.Current(ctx, actorID(i.Interaction), city)
	}, func(t tfunc, r *entities.Report) []*discordgo.MessageEmbed {
		return []*discordgo.MessageEmbed{currentEmbed(t, r)}
	})
}

func (h *Handler) handleForecast(s responder, i *discordgo.InteractionCreate, city string) {
	h.replyWithReport(s, i, func(ctx context.Context) (*entities.Report, error) {
		return h.weather.Forecast(ctx, actorID(i.Interaction), city)
	}, forecastEmbeds)
}

// replyWithReport defers the reply, fetches the report and edits the reply
// with its embeds. Alerts add a banner and a button opening them.
func (h *Handler) replyWithReport(
	s responder,
	i *discordgo.InteractionCreate,
	fetch func(ctx context.Context) (*entities.Report, error),
	render func(t tfunc, r *entities.Report) []*discordgo.MessageEmbed,
) {
	t := h.translator(i.Locale)
	if err := deferReply(s, i.Interaction, false); err != nil {
		h.logger.Error("defer weather reply", zap.Error(err))
		return
	}

	report, err := fetch(context.Background())
	if err != nil {
		h.logger.Info("weather request failed", zap.String("user_id", actorID(i.Interaction)), zap.Error(err))
		if _, err := editReply(s, i.Interaction, []*discordgo.MessageEmbed{weatherErrorEmbed(t, err)}, nil); err != nil {
			h.logger.Error("edit weather error reply", zap.Error(err))
		}
		return
	}

	embeds := render(t, report)
	if len(report.Alerts) == 0 {
		if _, err := editReply(s, i.Interaction, embeds, nil); err != nil {
			h.logger.Error("edit weather reply", zap.Error(err))
		}
		return
	}

	embeds = append([]*discordgo.MessageEmbed{alertBannerEmbed(t)}, embeds...)
	session := h.alerts.Add(&alertView{alerts: report.Alerts, responder: s, interaction: i.Interaction})
	components := alertsButton(t("commands.weather.show_alert", nil), session)
	if _, err := editReply(s, i.Interaction, embeds, components); err != nil {
		h.alerts.Remove(session)
		h.logger.Error("edit weather reply", zap.Error(err))
	}
}

func (h *Handler) handleHome(s responder, i *discordgo.InteractionCreate, city string) {
	t := h.translator(i.Locale)
	if err := deferReply(s, i.Interaction, true); err != nil {
		h.logger.Error("defer home reply", zap.Error(err))
		return
	}

	userID := actorID(i.Interaction)
	loc, err := h.weather.SetHomeCity(context.Background(), userID, city)
	var embed *discordgo.MessageEmbed
	if err != nil {
		h.logger.Info("set home city failed", zap.String("user_id", userID), zap.Error(err))
		embed = weatherErrorEmbed(t, err)
	} else {
		h.logger.Debug("home city saved", zap.String("user_id", userID), zap.String("city", loc.Name))
		embed = pkgdiscord.SuccessEmbed(t("commands.weather.home.saved", map[string]any{"city": locationTitle(*loc)}))
	}
	if _, err := editReply(s, i.Interaction, []*discordgo.MessageEmbed{embed}, nil); err != nil {
		h.logger.Error("edit home reply", zap.Error(err))
	}
}

package discord

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"weatherbot/internal/domain/entities"
	pkgdiscord "weatherbot/pkg/discord"
)

const (
	weatherColor  = 0x5ea3d8
	weatherAPIURL = "https://www.weatherapi.com/"

	maxTitleLen       = 256
	maxDescriptionLen = 4096
)

// tfunc resolves a key path for the locale of the current interaction.
type tfunc func(key string, params map[string]any) string

// UV index bands as WHO defines them.
func classifyUV(t tfunc, uv float64) string {
	switch index := int(uv); {
	case index <= 3:
		return t("commands.weather.uv_index_rating.low", nil)
	case index <= 6:
		return t("commands.weather.uv_index_rating.moderate", nil)
	case index <= 8:
		return t("commands.weather.uv_index_rating.high", nil)
	case index <= 11:
		return t("commands.weather.uv_index_rating.very_high", nil)
	default:
		return t("commands.weather.uv_index_rating.extreme", nil)
	}
}

func conditionText(t tfunc, code int, isDay bool) string {
	period := "night"
	if isDay {
		period = "day"
	}
	return t(fmt.Sprintf("commands.weather.codes.%d.%s", code, period), nil)
}

func locationTitle(loc entities.Location) string {
	if loc.Country == "" {
		return loc.Name
	}
	return loc.Name + ", " + loc.Country
}

// iconURL turns the protocol-relative icon path of the API into an absolute URL.
func iconURL(icon string) string {
	if strings.HasPrefix(icon, "//") {
		return "https:" + icon
	}
	return icon
}

func thumbnail(icon string) *discordgo.MessageEmbedThumbnail {
	if icon == "" {
		return nil
	}
	return &discordgo.MessageEmbedThumbnail{URL: iconURL(icon)}
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sourceFooter(t tfunc) *discordgo.MessageEmbedFooter {
	return &discordgo.MessageEmbedFooter{Text: weatherAPIURL + " | " + t("commands.weather.last_updated", nil)}
}

func currentEmbed(t tfunc, r *entities.Report) *discordgo.MessageEmbed {
	c := r.Current
	return &discordgo.MessageEmbed{
		Title:       locationTitle(r.Location),
		Description: conditionText(t, c.ConditionCode, c.IsDay),
		Color:       weatherColor,
		Timestamp:   pkgdiscord.EmbedTimestamp(c.LastUpdated),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🌡 " + t("commands.weather.temperature", nil), Value: fmt.Sprintf("%s° C | %s° F", number(c.TempC), number(c.TempF))},
			{Name: "💧 " + t("commands.weather.humidity", nil), Value: fmt.Sprintf("%d%%", c.Humidity)},
			{Name: "💨 " + t("commands.weather.wind_speed", nil), Value: number(c.WindKPH) + " km/h"},
			{Name: "☀ " + t("commands.weather.uv_index", nil), Value: classifyUV(t, c.UV)},
		},
		Footer:    sourceFooter(t),
		Thumbnail: thumbnail(c.ConditionIcon),
	}
}

// forecastEmbeds renders one embed per day. The first carries the location
// as author and the last carries the source footer and update time.
func forecastEmbeds(t tfunc, r *entities.Report) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(r.Forecast))
	for n, day := range r.Forecast {
		embed := &discordgo.MessageEmbed{
			Title:       pkgdiscord.FormatTimestamp(day.Date, pkgdiscord.ShortDate),
			Description: conditionText(t, day.ConditionCode, true),
			Color:       weatherColor,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name: "🌡 " + t("commands.weather.temperature", nil),
					Value: fmt.Sprintf("🔼 %s° C | %s° F\n🔽 %s° C | %s° F",
						number(day.MaxTempC), number(day.MaxTempF), number(day.MinTempC), number(day.MinTempF)),
					Inline: true,
				},
			},
			Thumbnail: thumbnail(day.ConditionIcon),
		}
		if day.DailyChanceOfRain > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "🌧 " + t("commands.weather.chance_of_rain", nil), Value: fmt.Sprintf("%d%%", day.DailyChanceOfRain), Inline: true,
			})
		}
		if day.DailyChanceOfSnow > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "❄ " + t("commands.weather.chance_of_snow", nil), Value: fmt.Sprintf("%d%%", day.DailyChanceOfSnow), Inline: true,
			})
		}
		if n == 0 {
			embed.Author = &discordgo.MessageEmbedAuthor{Name: locationTitle(r.Location)}
		}
		if n == len(r.Forecast)-1 {
			embed.Footer = sourceFooter(t)
			embed.Timestamp = pkgdiscord.EmbedTimestamp(r.Current.LastUpdated)
		}
		embeds = append(embeds, embed)
	}
	return embeds
}

func alertBannerEmbed(t tfunc) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: t("commands.weather.alert_available", nil),
		Color:       pkgdiscord.ColorBrandRed,
	}
}

func alertEmbeds(alerts []entities.Alert) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(alerts))
	for _, a := range alerts {
		title := a.Headline
		if title == "" {
			title = a.Event
		}
		embeds = append(embeds, &discordgo.MessageEmbed{
			Title:       truncate(title, maxTitleLen),
			Description: truncate(a.Description, maxDescriptionLen),
			Color:       pkgdiscord.ColorBrandRed,
		})
	}
	return embeds
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}

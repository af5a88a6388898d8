package discord

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// baseLocale supplies the default descriptions; command names stay fixed
// because interactions are routed on them.
const baseLocale = discordgo.EnglishUS

const (
	maxCommandNameLen        = 32
	maxCommandDescriptionLen = 100
)

// commandLocalizer is what command definitions need from the locale registry.
type commandLocalizer interface {
	Lookup(locale, key string, params map[string]any) (string, error)
	Locales() []string
}

type commandBuilder struct {
	locales commandLocalizer
	logger  *zap.Logger
}

// buildCommands returns the slash commands with their names and descriptions
// localized for every loaded locale Discord supports.
func buildCommands(locales commandLocalizer, logger *zap.Logger) []*discordgo.ApplicationCommand {
	b := commandBuilder{locales: locales, logger: logger}

	weatherName := b.names("commands.weather.name")
	weatherDesc, weatherDescs := b.descriptions("commands.weather.description")
	pingName := b.names("commands.ping.name")
	pingDesc, pingDescs := b.descriptions("commands.ping.description")

	return []*discordgo.ApplicationCommand{
		{
			Name:                     commandWeather,
			NameLocalizations:        &weatherName,
			Description:              weatherDesc,
			DescriptionLocalizations: &weatherDescs,
			Options: []*discordgo.ApplicationCommandOption{
				b.subcommand(subcommandCurrent, false),
				b.subcommand(subcommandForecast, false),
				b.subcommand(subcommandHome, true),
			},
		},
		{
			Name:                     commandPing,
			NameLocalizations:        &pingName,
			Description:              pingDesc,
			DescriptionLocalizations: &pingDescs,
		},
	}
}

func (b commandBuilder) subcommand(name string, cityRequired bool) *discordgo.ApplicationCommandOption {
	prefix := "commands.weather." + name
	desc, descs := b.descriptions(prefix + ".description")
	cityDesc, cityDescs := b.descriptions(prefix + ".options.city.description")

	return &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionSubCommand,
		Name:                     name,
		NameLocalizations:        b.names(prefix + ".name"),
		Description:              desc,
		DescriptionLocalizations: descs,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:                     discordgo.ApplicationCommandOptionString,
				Name:                     optionCity,
				NameLocalizations:        b.names(prefix + ".options.city.name"),
				Description:              cityDesc,
				DescriptionLocalizations: cityDescs,
				Required:                 cityRequired,
			},
		},
	}
}

// names collects the localized names for key. Entries Discord would reject
// are skipped so one bad translation cannot block command registration.
func (b commandBuilder) names(key string) map[discordgo.Locale]string {
	return b.collect(key, validCommandName)
}

// descriptions returns the base description for key and its localizations.
func (b commandBuilder) descriptions(key string) (string, map[discordgo.Locale]string) {
	base, err := b.locales.Lookup(string(baseLocale), key, nil)
	if err != nil || !validDescription(base) {
		b.logger.Warn("missing base command description", zap.String("key", key), zap.Error(err))
		base = "..."
	}
	return base, b.collect(key, validDescription)
}

func (b commandBuilder) collect(key string, valid func(string) bool) map[discordgo.Locale]string {
	out := make(map[discordgo.Locale]string)
	for _, tag := range b.locales.Locales() {
		locale := discordgo.Locale(tag)
		if _, ok := discordgo.Locales[locale]; !ok {
			continue
		}
		text, err := b.locales.Lookup(tag, key, nil)
		if err != nil {
			continue
		}
		if !valid(text) {
			b.logger.Warn("skipping invalid command localization",
				zap.String("locale", tag), zap.String("key", key), zap.String("text", text))
			continue
		}
		out[locale] = text
	}
	return out
}

func validCommandName(s string) bool {
	n := utf8.RuneCountInString(s)
	if n == 0 || n > maxCommandNameLen || s != strings.ToLower(s) {
		return false
	}
	for _, r := range s {
		if !(unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) || r == '-' || r == '_') {
			return false
		}
	}
	return true
}

func validDescription(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= maxCommandDescriptionLen
}

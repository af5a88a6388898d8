package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Discord brand colours.
const (
	ColorBrandRed   = 0xED4245
	ColorBrandGreen = 0x57F287
)

const (
	successEmoji = "✅"
	errorEmoji   = "❌"
)

// SuccessEmbed builds a green embed whose description is prefixed with ✅.
func SuccessEmbed(msg string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: successEmoji + " " + msg,
		Color:       ColorBrandGreen,
	}
}

// ErrorEmbed builds a red embed whose description is prefixed with ❌.
func ErrorEmbed(msg string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: errorEmoji + " " + msg,
		Color:       ColorBrandRed,
	}
}

// WithFooter sets the footer text and returns the embed for chaining.
func WithFooter(embed *discordgo.MessageEmbed, text string) *discordgo.MessageEmbed {
	if text == "" {
		return embed
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return embed
}

package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// responder is the part of *discordgo.Session the handlers talk to.
type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	HeartbeatLatency() time.Duration
}

// actorID returns the ID of the user behind the interaction, in guilds and DMs.
func actorID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respondEphemeral(s responder, i *discordgo.Interaction, embeds ...*discordgo.MessageEmbed) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: embeds,
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// deferReply acknowledges a command whose answer comes later through editReply.
func deferReply(s responder, i *discordgo.Interaction, ephemeral bool) error {
	resp := &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredChannelMessageWithSource}
	if ephemeral {
		resp.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	return s.InteractionRespond(i, resp)
}

func editReply(s responder, i *discordgo.Interaction, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) (*discordgo.Message, error) {
	edit := &discordgo.WebhookEdit{Embeds: &embeds}
	if components != nil {
		edit.Components = &components
	}
	return s.InteractionResponseEdit(i, edit)
}

// updateMessage replaces the message a component belongs to.
func updateMessage(s responder, i *discordgo.Interaction, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}

// acknowledge answers a component click without changing anything.
func acknowledge(s responder, i *discordgo.Interaction) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

// stripComponents removes the buttons from the message answering i.
func stripComponents(s responder, i *discordgo.Interaction) error {
	components := noComponents()
	_, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Components: &components})
	return err
}

// replyEphemeral answers i privately whether or not it was already acknowledged.
func replyEphemeral(s responder, i *discordgo.Interaction, embed *discordgo.MessageEmbed) error {
	if err := respondEphemeral(s, i, embed); err == nil {
		return nil
	}
	_, err := s.FollowupMessageCreate(i, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
	return err
}

package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"weatherbot/pkg/paginator"
)

// Custom IDs carry the session they belong to:
//
//	alerts:<session>
//	pager:<session>:prev|pos|next
const (
	kindAlerts = "alerts"
	kindPager  = "pager"

	actionPrev = "prev"
	actionPos  = "pos"
	actionNext = "next"
)

type customID struct {
	Kind    string
	Session string
	Action  string
}

func (c customID) String() string {
	if c.Action == "" {
		return c.Kind + ":" + c.Session
	}
	return c.Kind + ":" + c.Session + ":" + c.Action
}

func parseCustomID(raw string) (customID, bool) {
	parts := strings.Split(raw, ":")
	switch {
	case len(parts) == 2 && parts[0] == kindAlerts && parts[1] != "":
		return customID{Kind: kindAlerts, Session: parts[1]}, true
	case len(parts) == 3 && parts[0] == kindPager && parts[1] != "":
		switch parts[2] {
		case actionPrev, actionPos, actionNext:
			return customID{Kind: kindPager, Session: parts[1], Action: parts[2]}, true
		}
	}
	return customID{}, false
}

func alertsButton(label, session string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    label,
				Emoji:    &discordgo.ComponentEmoji{Name: "⚠"},
				Style:    discordgo.PrimaryButton,
				CustomID: customID{Kind: kindAlerts, Session: session}.String(),
			},
		}},
	}
}

// pagerComponents renders ◀ / position / ▶ for the paginator's current state.
// The position button is never clickable; the arrows are disabled at the ends.
func pagerComponents[P any](session string, p *paginator.Paginator[P]) []discordgo.MessageComponent {
	id := func(action string) string {
		return customID{Kind: kindPager, Session: session, Action: action}.String()
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Emoji: &discordgo.ComponentEmoji{Name: "◀"}, Style: discordgo.SecondaryButton, CustomID: id(actionPrev), Disabled: p.AtStart()},
			discordgo.Button{Label: p.PositionLabel(), Style: discordgo.SecondaryButton, CustomID: id(actionPos), Disabled: true},
			discordgo.Button{Emoji: &discordgo.ComponentEmoji{Name: "▶"}, Style: discordgo.SecondaryButton, CustomID: id(actionNext), Disabled: p.AtEnd()},
		}},
	}
}

// noComponents clears every component when sent in an edit or update.
func noComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{}
}

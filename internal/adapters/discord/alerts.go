package discord

import (
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"weatherbot/internal/domain/entities"
	"weatherbot/pkg/paginator"
)

// alertView is a weather reply whose alerts have not been opened yet.
type alertView struct {
	alerts      []entities.Alert
	responder   responder
	interaction *discordgo.Interaction
}

// pagerView pages through alerts for the user who opened them. mu
// serializes clicks since the paginator itself is not safe for concurrent use.
type pagerView struct {
	mu          sync.Mutex
	pager       *paginator.Paginator[*discordgo.MessageEmbed]
	responder   responder
	interaction *discordgo.Interaction
}

func (h *Handler) handleShowAlerts(s responder, i *discordgo.InteractionCreate, session string) {
	view, ok := h.alerts.Remove(session)
	if !ok {
		h.ack(s, i)
		return
	}

	embeds := alertEmbeds(view.alerts)
	if len(embeds) == 1 {
		if err := updateMessage(s, i.Interaction, embeds[0], noComponents()); err != nil {
			h.logger.Error("show alert", zap.Error(err))
		}
		return
	}

	owner := actorID(i.Interaction)
	pager, err := paginator.New(embeds, func(actor string) bool { return actor == owner })
	if err != nil {
		h.logger.Error("build alert pager", zap.Error(err))
		h.ack(s, i)
		return
	}

	pv := &pagerView{pager: pager, responder: s, interaction: i.Interaction}
	id := h.pagers.Add(pv)
	if err := updateMessage(s, i.Interaction, pager.Current(), pagerComponents(id, pager)); err != nil {
		h.pagers.Remove(id)
		h.logger.Error("show alert pager", zap.Error(err))
	}
}

func (h *Handler) handlePage(s responder, i *discordgo.InteractionCreate, session, action string) {
	// Only a page turn keeps the session alive: it is also what refreshes the
	// interaction token used to strip the buttons on expiry.
	view, ok := h.pagers.Peek(session)
	if !ok {
		h.ack(s, i)
		return
	}

	view.mu.Lock()
	defer view.mu.Unlock()

	actor := actorID(i.Interaction)
	var (
		page   *discordgo.MessageEmbed
		result paginator.Result
	)
	switch action {
	case actionPrev:
		page, result = view.pager.Previous(actor)
	case actionNext:
		page, result = view.pager.Next(actor)
	default:
		h.ack(s, i)
		return
	}

	if result != paginator.Moved {
		h.logger.Debug("page click ignored", zap.String("user_id", actor), zap.Stringer("result", result))
		h.ack(s, i)
		return
	}

	if err := updateMessage(s, i.Interaction, page, pagerComponents(session, view.pager)); err != nil {
		h.logger.Error("turn alert page", zap.Error(err))
		return
	}
	view.responder, view.interaction = s, i.Interaction
	h.pagers.Touch(session)
}

func (h *Handler) ack(s responder, i *discordgo.InteractionCreate) {
	if err := acknowledge(s, i.Interaction); err != nil {
		h.logger.Warn("acknowledge component", zap.Error(err))
	}
}

func (h *Handler) expireAlerts(id string, view *alertView) {
	if err := stripComponents(view.responder, view.interaction); err != nil {
		h.logger.Debug("strip alert button", zap.String("session", id), zap.Error(err))
	}
}

func (h *Handler) expirePager(id string, view *pagerView) {
	view.mu.Lock()
	defer view.mu.Unlock()
	if err := stripComponents(view.responder, view.interaction); err != nil {
		h.logger.Debug("strip pager buttons", zap.String("session", id), zap.Error(err))
	}
}

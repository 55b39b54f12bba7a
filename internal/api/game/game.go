package game

import (
	"fmt"
	"net/http"
	"royal_casino/internal/api/apierr"
	dto "royal_casino/internal/api/dto/game"
	"royal_casino/internal/api/middleware"
	"royal_casino/internal/converter"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"royal_casino/pkg/req"
	"royal_casino/pkg/resp"
	"strings"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Sessions   service.SessionService
	Settlement service.SettlementService
}

type Handler struct {
	sessions   service.SessionService
	settlement service.SettlementService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		sessions:   deps.Sessions,
		settlement: deps.Settlement,
	}
}

// gameParam accepts the kind in any case, with dashes for underscores.
func gameParam(r *http.Request) (model.GameKind, error) {
	raw := strings.ToUpper(strings.ReplaceAll(chi.URLParam(r, "game"), "-", "_"))
	kind, ok := model.ParseGameKind(raw)
	if !ok {
		return "", fmt.Errorf("game %q: %w", raw, model.ErrUnknownGame)
	}
	return kind, nil
}

func (h *Handler) request(w http.ResponseWriter, r *http.Request) (string, model.GameKind, bool) {
	playerID, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		apierr.Write(w, model.ErrUnauthorized)
		return "", "", false
	}
	kind, err := gameParam(r)
	if err != nil {
		apierr.Write(w, err)
		return "", "", false
	}
	return playerID, kind, true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, playerID string, snap model.Snapshot, err error) {
	if err != nil {
		apierr.Write(w, err)
		return
	}
	balance, err := h.settlement.Balance(r.Context(), playerID)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(snap, balance))
}

func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	playerID, kind, ok := h.request(w, r)
	if !ok {
		return
	}
	snap, err := h.sessions.Snapshot(r.Context(), playerID, kind)
	h.respond(w, r, playerID, snap, err)
}

func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	playerID, kind, ok := h.request(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}
	snap, err := h.sessions.PlaceBet(r.Context(), playerID, kind, payload.Amount, payload.Selection)
	h.respond(w, r, playerID, snap, err)
}

func (h *Handler) Act(w http.ResponseWriter, r *http.Request) {
	playerID, kind, ok := h.request(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.ActionRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}
	action := converter.ToAction(chi.URLParam(r, "action"), payload)
	snap, err := h.sessions.Act(r.Context(), playerID, kind, action)
	h.respond(w, r, playerID, snap, err)
}

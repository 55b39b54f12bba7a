package session

import (
	"net/http"
	"royal_casino/internal/api/apierr"
	dto "royal_casino/internal/api/dto/session"
	"royal_casino/internal/api/middleware"
	"royal_casino/internal/converter"
	"royal_casino/internal/model"
	"royal_casino/internal/repository"
	"royal_casino/internal/service"
	"royal_casino/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Sessions    service.SessionService
	Settlement  service.SettlementService
	Vault       service.VaultService
	Leaderboard service.LeaderboardService
	Stats       repository.StatsRepository
}

type Handler struct {
	sessions    service.SessionService
	settlement  service.SettlementService
	vault       service.VaultService
	leaderboard service.LeaderboardService
	stats       repository.StatsRepository
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		sessions:    deps.Sessions,
		settlement:  deps.Settlement,
		vault:       deps.Vault,
		leaderboard: deps.Leaderboard,
		stats:       deps.Stats,
	}
}

func playerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		apierr.Write(w, model.ErrUnauthorized)
	}
	return id, ok
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	view, err := h.sessions.Overview(r.Context(), id)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, view)
}

func (h *Handler) Ledger(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	entries, err := h.settlement.Ledger(r.Context(), id)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLedgerResponse(entries))
}

func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	item, err := h.vault.Purchase(r.Context(), id, chi.URLParam(r, "item"))
	if err != nil {
		apierr.Write(w, err)
		return
	}
	balance, err := h.settlement.Balance(r.Context(), id)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.PurchaseResponse{Item: item, Balance: balance})
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	standings, err := h.leaderboard.Standings(r.Context(), id)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(standings))
}

// Stats is public: RTP figures are aggregated over all players.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.stats.All()))
}

package game

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"royal_casino/internal/api/middleware"
	"royal_casino/internal/config/env"
	"royal_casino/internal/model"
	"royal_casino/internal/repository/balance_repo"
	"royal_casino/internal/repository/ledger_repo"
	"royal_casino/internal/repository/stats_repo"
	"royal_casino/internal/repository/vault_repo"
	"royal_casino/internal/service"
	"royal_casino/internal/service/game/slots"
	"royal_casino/internal/service/jackpot"
	"royal_casino/internal/service/notify"
	"royal_casino/internal/service/session"
	"royal_casino/internal/service/settlement"
	"royal_casino/internal/service/vault"
	"royal_casino/pkg/rng"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRouter serves the game routes for player-1 with slots that always
// land three crowns.
func newRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := env.NewDefaultGamesConfig()
	st := settlement.NewSettlementService(
		balance_repo.NewMemoryRepository(),
		ledger_repo.NewMemoryRepository(model.LedgerCap),
		nil, nil, 1000,
	)
	sessions := session.NewSessionService(
		st,
		vault.NewVaultService(st, vault_repo.NewMemoryRepository()),
		jackpot.NewJackpotService(rng.New(1), cfg.Jackpot(), 0),
		notify.NewNotificationService(),
		stats_repo.NewStatsRepository(10),
		map[model.GameKind]service.EngineFactory{
			model.Slots: func(w service.Wallet) service.GameEngine {
				return slots.NewSlotsService(w, rng.NewSequence(nil, []int{5}), cfg.Slots())
			},
		},
		0,
	)
	h := NewHandler(HandlerDeps{Sessions: sessions, Settlement: st})

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithPlayerID(r.Context(), "player-1")))
		})
	})
	r.Get("/games/{game}", h.Snapshot)
	r.Post("/games/{game}/bet", h.Bet)
	r.Post("/games/{game}/actions/{action}", h.Act)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestBetAndSpin(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodPost, "/games/slots/bet", `{"amount": 10}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/games/slots/actions/spin", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got struct {
		Snapshot model.Snapshot `json:"snapshot"`
		Balance  int            `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, model.PhaseResolved, got.Snapshot.Phase)
	require.NotNil(t, got.Snapshot.Result)
	assert.Equal(t, 500, got.Snapshot.Result.Payout)
	assert.Equal(t, 1490, got.Balance)
}

func TestErrorStatuses(t *testing.T) {
	h := newRouter(t)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/games/pachinko", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/games/roulette", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/games/slots/bet", `{"amount":`).Code)
	assert.Equal(t, http.StatusPaymentRequired, do(t, h, http.MethodPost, "/games/slots/bet", `{"amount": 5000}`).Code)
	assert.Equal(t, http.StatusConflict, do(t, h, http.MethodPost, "/games/slots/actions/spin", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/games/slots/actions/fly", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/games/SLOTS", "").Code)
}

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("ACCESS_TOKEN", "test-secret")
	t.Setenv("STORAGE", "memory")
	t.Setenv("INITIAL_BALANCE", "1000")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")

	sp := newServiceProvider()
	t.Cleanup(sp.Close)
	return sp.Router(context.Background())
}

func call(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestRouter_GuestFlow(t *testing.T) {
	h := newTestRouter(t)

	rec := call(t, h, http.MethodPost, "/auth/guest", "", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var guest struct {
		AccessToken string `json:"access_token"`
		PlayerID    string `json:"player_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guest))
	require.NotEmpty(t, guest.AccessToken)

	rec = call(t, h, http.MethodGet, "/session", guest.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var view struct {
		PlayerID string `json:"player_id"`
		Balance  int    `json:"balance"`
		Rank     string `json:"rank"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, guest.PlayerID, view.PlayerID)
	assert.Equal(t, 1000, view.Balance)
	assert.Equal(t, "GUEST", view.Rank)

	rec = call(t, h, http.MethodPost, "/games/roulette/bet", guest.AccessToken, `{"amount": 10, "selection": "red"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var bet struct {
		Balance int `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bet))
	assert.Equal(t, 990, bet.Balance)

	rec = call(t, h, http.MethodPost, "/games/roulette/actions/spin", guest.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = call(t, h, http.MethodGet, "/ledger", guest.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"game":"ROULETTE"`)

	rec = call(t, h, http.MethodPost, "/vault/yacht", guest.AccessToken, "")
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)

	rec = call(t, h, http.MethodPost, "/concierge", guest.AccessToken, `{"prompt": "Any news?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Market report")

	rec = call(t, h, http.MethodGet, "/stats", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"game":"ROULETTE"`)
}

func TestRouter_RequiresToken(t *testing.T) {
	h := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, call(t, h, http.MethodGet, "/session", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(t, h, http.MethodGet, "/games/slots", "forged", "").Code)
}

func TestEngineFactories_CoverEveryGame(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "test-secret")
	sp := newServiceProvider()
	factories := sp.EngineFactories()

	w := sp.SettlementService(context.Background()).Wallet("p1")
	for kind, factory := range factories {
		assert.Equal(t, kind, factory(w).Kind())
	}
	assert.Len(t, factories, 13)
}

func TestRouter_Leaderboard(t *testing.T) {
	h := newTestRouter(t)

	rec := call(t, h, http.MethodGet, "/leaderboard", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, h, http.MethodPost, "/auth/guest", "", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var guest struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guest))

	rec = call(t, h, http.MethodGet, "/leaderboard", guest.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var board struct {
		Entries []struct {
			Position int    `json:"position"`
			Name     string `json:"name"`
			Balance  int    `json:"balance"`
			You      bool   `json:"you"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &board))
	require.Len(t, board.Entries, 10)
	assert.Equal(t, "Sheikh Al-Maktoum", board.Entries[0].Name)

	last := board.Entries[9]
	assert.True(t, last.You)
	assert.Equal(t, 10, last.Position)
	assert.Equal(t, 1000, last.Balance)
}

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"royal_casino/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeAuth struct{}

func (fakeAuth) Guest(context.Context) (*model.AuthData, error) { return nil, nil }

func (fakeAuth) PlayerID(_ context.Context, tok string) (string, error) {
	if tok == "good" {
		return "player-1", nil
	}
	return "", model.ErrUnauthorized
}

func TestAuth(t *testing.T) {
	var seen string
	h := Auth(fakeAuth{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = PlayerIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	cases := []struct {
		header string
		status int
	}{
		{"", http.StatusUnauthorized},
		{"Basic good", http.StatusUnauthorized},
		{"Bearer bad", http.StatusUnauthorized},
		{"Bearer good", http.StatusNoContent},
	}
	for _, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "/session", nil)
		if tc.header != "" {
			r.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		assert.Equal(t, tc.status, rec.Code, tc.header)
	}
	assert.Equal(t, "player-1", seen)
}

func TestPlayerIDFromContext_Missing(t *testing.T) {
	_, ok := PlayerIDFromContext(context.Background())
	assert.False(t, ok)
}

package middleware

import (
	"context"
	"net/http"
	"royal_casino/internal/api/apierr"
	"royal_casino/internal/model"
	"royal_casino/internal/service"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

type ctxKey string

const playerIDKey ctxKey = "royal_casino.player_id"

func WithPlayerID(ctx context.Context, playerID string) context.Context {
	return context.WithValue(ctx, playerIDKey, playerID)
}

func PlayerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(playerIDKey).(string)
	return id, ok && id != ""
}

// Auth resolves the bearer token into a player ID and stores it in the
// request context.
func Auth(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			accessToken, ok := strings.CutPrefix(raw, "Bearer ")
			if !ok || strings.TrimSpace(accessToken) == "" {
				apierr.Write(w, model.ErrUnauthorized)
				return
			}

			playerID, err := auth.PlayerID(r.Context(), strings.TrimSpace(accessToken))
			if err != nil {
				apierr.Write(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPlayerID(r.Context(), playerID)))
		})
	}
}

func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		log.WithFields(log.Fields{
			"request_id":  chimw.GetReqID(r.Context()),
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"bytes":       ww.BytesWritten(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("http request")
	})
}

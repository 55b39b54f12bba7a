package apierr

import (
	"errors"
	"net/http"
	"royal_casino/internal/model"
	"royal_casino/pkg/resp"

	log "github.com/sirupsen/logrus"
)

// Status maps a domain error onto an HTTP status.
func Status(err error) int {
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrInvalidSelection):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, model.ErrUnknownGame), errors.Is(err, model.ErrUnknownItem):
		return http.StatusNotFound
	case errors.Is(err, model.ErrRoundInProgress),
		errors.Is(err, model.ErrNoActiveRound),
		errors.Is(err, model.ErrAlreadyOwned),
		errors.Is(err, model.ErrInsufficientCards):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Write logs unexpected failures and answers with the mapped status. The
// message of internal errors is not exposed.
func Write(w http.ResponseWriter, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}

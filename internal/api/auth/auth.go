package auth

import (
	"net/http"
	"royal_casino/internal/api/apierr"
	"royal_casino/internal/converter"
	"royal_casino/internal/service"
	"royal_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Guest opens an anonymous session and returns its bearer token.
func (h *Handler) Guest(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.Guest(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToGuestResponse(data))
}

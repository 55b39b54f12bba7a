package concierge

import (
	"net/http"
	dto "royal_casino/internal/api/dto/session"
	"royal_casino/internal/service"
	"royal_casino/pkg/req"
	"royal_casino/pkg/resp"
	"strings"
)

const maxPromptLen = 2000

type HandlerDeps struct {
	Serv service.ConciergeService
}

type Handler struct {
	serv service.ConciergeService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ConciergeRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}
	prompt := strings.TrimSpace(payload.Prompt)
	if prompt == "" || len(prompt) > maxPromptLen {
		resp.WriteError(w, http.StatusBadRequest, "prompt must be 1..2000 characters")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, h.serv.Ask(r.Context(), prompt))
}

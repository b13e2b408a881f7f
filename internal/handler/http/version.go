package http

import (
	"net/http"

	"github.com/veilpost/veilpost-go/internal/utils"
)

// version reports the server build version, date and commit. The client calls
// this during startup to confirm the server is reachable before asking the
// user for credentials.
func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.BuildInfo(r.Context())
	utils.WriteJSON(w, info, http.StatusOK)
}

package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) getGlobalInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.services.AppInfoService.GetGlobalInfo(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, r, info)
}

// getLockoutStatus stays reachable during a lockout so the client can show
// the failure records and when retrying becomes possible.
func (h *Handler) getLockoutStatus(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.services.LockoutService.Status())
}

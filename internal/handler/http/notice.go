package http

import (
	"net/http"

	"github.com/MKhiriev/go-cert-keeper/models"
)

func (h *Handler) listNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.services.NoticeService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if notices == nil {
		notices = []models.Notice{}
	}
	writeResult(w, r, notices)
}

func (h *Handler) markNoticesRead(w http.ResponseWriter, r *http.Request) {
	if err := h.services.NoticeService.MarkAllRead(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r)
}

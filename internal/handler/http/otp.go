package http

import (
	"net/http"

	"github.com/MKhiriev/go-cert-keeper/models"
)

func (h *Handler) getTotpQRCode(w http.ResponseWriter, r *http.Request) {
	enrollment, err := h.services.TotpService.IssueEnrollment(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, r, enrollment)
}

func (h *Handler) bindTotp(w http.ResponseWriter, r *http.Request) {
	var req models.TotpCodeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.TotpService.ConfirmEnrollment(r.Context(), req.Code); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r)
}

func (h *Handler) requireRemoveTotp(w http.ResponseWriter, r *http.Request) {
	challenge, err := h.services.TotpService.RequireRemove(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, r, models.ChallengeResponse{Challenge: challenge})
}

func (h *Handler) removeTotp(w http.ResponseWriter, r *http.Request) {
	var req models.TotpRemoveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.TotpService.RemoveEnrollment(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r)
}

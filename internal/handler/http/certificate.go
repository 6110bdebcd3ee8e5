package http

import (
	"net/http"

	"github.com/MKhiriev/go-cert-keeper/models"
)

func (h *Handler) listCertificates(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	groupID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	certs, err := h.services.CertificateService.ListByGroup(r.Context(), sessionID, groupID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if certs == nil {
		certs = []models.Certificate{}
	}
	writeResult(w, r, certs)
}

func (h *Handler) getCertificate(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cert, err := h.services.CertificateService.Get(r.Context(), sessionID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, r, cert)
}

func (h *Handler) createCertificate(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var cert models.Certificate
	if err = decodeBody(r, &cert); err != nil {
		writeError(w, r, err)
		return
	}
	cert.ID = 0

	created, err := h.services.CertificateService.Create(r.Context(), sessionID, cert)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, r, created)
}

// updateCertificate takes the id from the path; an id in the body is
// ignored.
func (h *Handler) updateCertificate(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var cert models.Certificate
	if err = decodeBody(r, &cert); err != nil {
		writeError(w, r, err)
		return
	}
	cert.ID = id

	if err = h.services.CertificateService.Update(r.Context(), sessionID, cert); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r)
}

func (h *Handler) deleteCertificate(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CertificateService.Delete(r.Context(), sessionID, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r)
}

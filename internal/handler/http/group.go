package http

import (
	"net/http"

	"github.com/MKhiriev/go-cert-keeper/models"
)

func (h *Handler) listGroups(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	groups, err := h.services.GroupService.List(r.Context(), sessionID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if groups == nil {
		groups = []models.GroupView{}
	}
	writeResult(w, r, groups)
}

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGroupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	group, err := h.services.GroupService.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, r, group)
}

func (h *Handler) updateGroupLock(w http.ResponseWriter, r *http.Request) {
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

	var req models.GroupLockRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.GroupService.UpdateLock(r.Context(), sessionID, id, req.ToLock()); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r)
}

func (h *Handler) setDefaultGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.GroupService.SetDefault(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r)
}

func (h *Handler) deleteGroup(w http.ResponseWriter, r *http.Request) {
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

	defaultID, err := h.services.GroupService.Delete(r.Context(), sessionID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, r, models.DeleteGroupResponse{DefaultGroupID: defaultID})
}

func (h *Handler) requireGroupUnlock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	challenge, err := h.services.GroupService.RequireUnlock(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, r, challenge)
}

// unlockGroup accepts a password proof for Password groups and a TOTP code
// for Totp groups in the same field.
func (h *Handler) unlockGroup(w http.ResponseWriter, r *http.Request) {
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

	var req models.UnlockGroupRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.GroupService.Unlock(r.Context(), sessionID, id, req.Proof); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r)
}

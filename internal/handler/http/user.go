// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
	"github.com/MKhiriev/go-cert-keeper/models"
)

func (h *Handler) createAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdminRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.CreateAdmin(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Msg("administrator created")
	writeOK(w, r)
}

func (h *Handler) requireLogin(w http.ResponseWriter, r *http.Request) {
	challenge, err := h.services.AuthService.RequireLogin(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, r, challenge)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	resp, err := h.services.AuthService.Login(ctx, models.LoginAttempt{
		LoginRequest: req,
		IP:           utils.GetClientIPFromContext(ctx),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, r, resp)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.Logout(r.Context(), sessionID); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r)
}

func (h *Handler) requireChangePassword(w http.ResponseWriter, r *http.Request) {
	challenge, err := h.services.AuthService.RequireChangePassword(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, r, models.ChallengeResponse{Challenge: challenge})
}

// changePassword needs the raw bearer token: the payload key is derived
// from it.
func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, token, req); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r)
}

func (h *Handler) updatePwdGenPrefs(w http.ResponseWriter, r *http.Request) {
	var prefs models.PwdGenPrefs
	if err := decodeBody(r, &prefs); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.UpdatePwdGenPrefs(r.Context(), prefs); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, r)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cert-keeper/internal/service"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
)

// withClientIP stores the originating address of the request in its context
// so services can attach it to lockout records and notices. Forwarding
// headers count only when the peer is a trusted proxy.
func (h *Handler) withClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := utils.WithClientIP(r.Context(), utils.ClientIP(r, h.trustedProxies))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// checkLockout answers 423 Locked while the global login lockout is
// tripped. Routes that must stay reachable during a lockout are registered
// outside of it.
func (h *Handler) checkLockout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.services.LockoutService.IsLocked() {
			writeError(w, r, service.ErrLocked)
			return
		}
		next.ServeHTTP(w, r)
	})
}

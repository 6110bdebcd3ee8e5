package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
	"github.com/MKhiriev/go-cert-keeper/models"
)

// checkLogin resolves the bearer token to a live session and stores its id
// and the raw token in the request context.
//
// Requests without a valid "Authorization: Bearer <token>" header, or whose
// session expired, went idle or was superseded by a newer login, are
// rejected with 401 Unauthenticated.
func (h *Handler) checkLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		session, err := h.services.SessionService.Resolve(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log := logger.FromRequest(r).GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("session_id", session.ID)
		})
		ctx = log.WithContext(utils.WithSessionID(ctx, session.ID, token))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// checkReplayAttack verifies the replay headers of a session request against
// its exact request URI. It must run after [Handler.checkLogin].
func (h *Handler) checkReplayAttack(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := utils.GetSessionIDFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		err := h.services.SessionService.VerifyReplay(
			sessionID,
			r.URL.RequestURI(),
			r.Header.Get(models.HeaderReplayNonce),
			r.Header.Get(models.HeaderReplayTimestamp),
			r.Header.Get(models.HeaderReplaySignature),
		)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Str("uri", r.URL.RequestURI()).Msg("replay check failed")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

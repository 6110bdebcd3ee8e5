package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cert-keeper/internal/app"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/service"
	"github.com/MKhiriev/go-cert-keeper/internal/store"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
	"github.com/MKhiriev/go-cert-keeper/models"
)

// Result codes shared with API clients.
const (
	CodeNotRegistered          = app.CodeNotRegistered
	CodeAlreadyRegistered      = app.CodeAlreadyRegistered
	CodeChallengeError         = app.CodeChallengeError
	CodeWrongPassword          = app.CodeWrongPassword
	CodeSamePassword           = app.CodeSamePassword
	CodeNeedCode               = app.CodeNeedCode
	CodeInvalidCode            = app.CodeInvalidCode
	CodeNoTotpBound            = app.CodeNoTotpBound
	CodeEnrollmentExpired      = app.CodeEnrollmentExpired
	CodeDependentGroupsExist   = app.CodeDependentGroupsExist
	CodeGroupPasswordError     = app.CodeGroupPasswordError
	CodeGroupLocked            = app.CodeGroupLocked
	CodeCantDelete             = app.CodeCantDelete
	CodeUnauthenticated        = app.CodeUnauthenticated
	CodeReplaySignatureInvalid = app.CodeReplaySignatureInvalid
	CodeLocked                 = app.CodeLocked
	CodeInvalidData            = app.CodeInvalidData
	CodeNotFound               = app.CodeNotFound
	CodeConflict               = app.CodeConflict
	CodeServerError            = app.CodeServerError
)

type errorMapping struct {
	target error
	status int
	code   string
}

// errorStatusMap is matched in order with [errors.Is]; the first hit wins.
var errorStatusMap = []errorMapping{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, CodeInvalidData},
	{ErrInvalidPathID, http.StatusBadRequest, CodeInvalidData},
	{ErrDecodingBody, http.StatusBadRequest, CodeInvalidData},
	{models.ErrInvalidGroupLock, http.StatusBadRequest, CodeInvalidData},

	{service.ErrNotRegistered, http.StatusNotFound, CodeNotRegistered},
	{service.ErrAlreadyRegistered, http.StatusConflict, CodeAlreadyRegistered},
	{store.ErrAccountAlreadyExists, http.StatusConflict, CodeAlreadyRegistered},
	{service.ErrChallenge, http.StatusBadRequest, CodeChallengeError},
	{service.ErrWrongPassword, http.StatusUnauthorized, CodeWrongPassword},
	{service.ErrSamePassword, http.StatusBadRequest, CodeSamePassword},
	{service.ErrNeedCode, http.StatusUnauthorized, CodeNeedCode},
	{service.ErrInvalidCode, http.StatusUnauthorized, CodeInvalidCode},
	{service.ErrNoTotpBound, http.StatusConflict, CodeNoTotpBound},
	{service.ErrEnrollmentExpired, http.StatusBadRequest, CodeEnrollmentExpired},
	{service.ErrDependentGroups, http.StatusConflict, CodeDependentGroupsExist},
	{service.ErrGroupPassword, http.StatusForbidden, CodeGroupPasswordError},
	{service.ErrGroupLocked, http.StatusForbidden, CodeGroupLocked},
	{service.ErrCantDelete, http.StatusConflict, CodeCantDelete},
	{store.ErrLastGroup, http.StatusConflict, CodeCantDelete},
	{service.ErrUnauthenticated, http.StatusUnauthorized, CodeUnauthenticated},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, CodeUnauthenticated},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, CodeUnauthenticated},
	{service.ErrReplaySignatureInvalid, http.StatusUnauthorized, CodeReplaySignatureInvalid},
	{service.ErrLocked, http.StatusLocked, CodeLocked},

	{ErrRouteNotFound, http.StatusNotFound, CodeNotFound},
	{store.ErrAccountNotFound, http.StatusNotFound, CodeNotFound},
	{store.ErrGroupNotFound, http.StatusNotFound, CodeNotFound},
	{store.ErrCertificateNotFound, http.StatusNotFound, CodeNotFound},
	{store.ErrGroupNameTaken, http.StatusConflict, CodeConflict},
}

func statusFromError(err error) (int, string) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, CodeServerError
}

// errorResponse builds the JSON body for err. Internal errors get a generic
// message.
func errorResponse(err error) (int, models.ErrorResponse) {
	status, code := statusFromError(err)
	if status == http.StatusInternalServerError {
		return status, models.ErrorResponse{Code: code, Message: app.MsgInternalServerError}
	}

	body := models.ErrorResponse{Code: code, Message: err.Error()}

	var wrongPassword *service.WrongPasswordError
	if errors.As(err, &wrongPassword) {
		retries := wrongPassword.RetriesRemaining
		body.RetriesRemaining = &retries
	}

	var dependent *service.DependentGroupsError
	if errors.As(err, &dependent) {
		body.GroupNames = dependent.GroupNames
	}

	return status, body
}

// writeError logs err and writes its mapped JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("code", body.Code).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, body, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

func writeOK(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, models.OKResponse{OK: true})
}

func writeResult(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

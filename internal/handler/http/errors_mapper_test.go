package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cert-keeper/internal/service"
	"github.com/MKhiriev/go-cert-keeper/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{service.ErrNotRegistered, http.StatusNotFound, CodeNotRegistered},
		{service.ErrAlreadyRegistered, http.StatusConflict, CodeAlreadyRegistered},
		{store.ErrAccountAlreadyExists, http.StatusConflict, CodeAlreadyRegistered},
		{service.ErrChallenge, http.StatusBadRequest, CodeChallengeError},
		{&service.WrongPasswordError{RetriesRemaining: 1}, http.StatusUnauthorized, CodeWrongPassword},
		{service.ErrSamePassword, http.StatusBadRequest, CodeSamePassword},
		{service.ErrNeedCode, http.StatusUnauthorized, CodeNeedCode},
		{service.ErrInvalidCode, http.StatusUnauthorized, CodeInvalidCode},
		{service.ErrNoTotpBound, http.StatusConflict, CodeNoTotpBound},
		{service.ErrEnrollmentExpired, http.StatusBadRequest, CodeEnrollmentExpired},
		{&service.DependentGroupsError{GroupNames: []string{"Bank"}}, http.StatusConflict, CodeDependentGroupsExist},
		{service.ErrGroupPassword, http.StatusForbidden, CodeGroupPasswordError},
		{service.ErrGroupLocked, http.StatusForbidden, CodeGroupLocked},
		{service.ErrCantDelete, http.StatusConflict, CodeCantDelete},
		{store.ErrLastGroup, http.StatusConflict, CodeCantDelete},
		{service.ErrUnauthenticated, http.StatusUnauthorized, CodeUnauthenticated},
		{service.ErrReplaySignatureInvalid, http.StatusUnauthorized, CodeReplaySignatureInvalid},
		{service.ErrLocked, http.StatusLocked, CodeLocked},
		{fmt.Errorf("%w: name", service.ErrInvalidDataProvided), http.StatusBadRequest, CodeInvalidData},
		{fmt.Errorf("get: %w", store.ErrCertificateNotFound), http.StatusNotFound, CodeNotFound},
		{store.ErrGroupNameTaken, http.StatusConflict, CodeConflict},
		{fmt.Errorf("list: %w", store.ErrExecutingQuery), http.StatusInternalServerError, CodeServerError},
		{errors.New("anything else"), http.StatusInternalServerError, CodeServerError},
	}

	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			status, code := statusFromError(tc.err)

			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, code)
		})
	}
}

func TestErrorResponse_CarriesRetries(t *testing.T) {
	_, body := errorResponse(fmt.Errorf("login: %w", &service.WrongPasswordError{RetriesRemaining: 0}))

	require.NotNil(t, body.RetriesRemaining)
	assert.Equal(t, 0, *body.RetriesRemaining)
	assert.Nil(t, body.GroupNames)
}

func TestErrorResponse_CarriesGroupNames(t *testing.T) {
	_, body := errorResponse(&service.DependentGroupsError{GroupNames: []string{"Bank", "Mail"}})

	assert.Equal(t, []string{"Bank", "Mail"}, body.GroupNames)
	assert.Nil(t, body.RetriesRemaining)
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/group", nil)

	writeError(rec, req, fmt.Errorf("%w: pq: relation \"groups\" does not exist", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeErrorBody(t, rec)
	assert.Equal(t, CodeServerError, body.Code)
	assert.NotContains(t, body.Message, "relation")
}

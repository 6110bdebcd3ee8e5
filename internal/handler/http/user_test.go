// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cert-keeper/internal/service"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
	"github.com/MKhiriev/go-cert-keeper/models"
)

func newHandlerWithAuthService(auth *mockAuthService) *Handler {
	return newTestHandler(&service.Services{AuthService: auth})
}

func TestCreateAdmin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{name: "created", body: `{"proof":"p","salt":"s"}`, wantStatus: http.StatusOK},
		{name: "already registered", body: `{"proof":"p","salt":"s"}`, svcErr: service.ErrAlreadyRegistered, wantStatus: http.StatusConflict, wantCode: CodeAlreadyRegistered},
		{name: "invalid data", body: `{"proof":"","salt":""}`, svcErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantCode: CodeInvalidData},
		{name: "malformed json", body: `{"proof":`, wantStatus: http.StatusBadRequest, wantCode: CodeInvalidData},
		{name: "unknown field", body: `{"proof":"p","salt":"s","password":"x"}`, wantStatus: http.StatusBadRequest, wantCode: CodeInvalidData},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got models.CreateAdminRequest
			h := newHandlerWithAuthService(&mockAuthService{
				createAdminFn: func(_ context.Context, req models.CreateAdminRequest) error {
					got = req
					return tc.svcErr
				},
			})
			rec := httptest.NewRecorder()

			h.createAdmin(rec, httptest.NewRequest(http.MethodPost, "/api/user/createAdmin", strings.NewReader(tc.body)))

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantCode != "" {
				assert.Equal(t, tc.wantCode, decodeErrorBody(t, rec).Code)
				return
			}
			assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
			assert.Equal(t, models.CreateAdminRequest{Proof: "p", Salt: "s"}, got)
		})
	}
}

func TestRequireLogin(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		requireLoginFn: func(context.Context) (models.LoginChallenge, error) {
			return models.LoginChallenge{}, service.ErrNotRegistered
		},
	})
	rec := httptest.NewRecorder()

	h.requireLogin(rec, httptest.NewRequest(http.MethodPost, "/api/user/requireLogin", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeNotRegistered, decodeErrorBody(t, rec).Code)
}

func TestLogin_PassesClientIP(t *testing.T) {
	var got models.LoginAttempt
	h := newHandlerWithAuthService(&mockAuthService{
		loginFn: func(_ context.Context, attempt models.LoginAttempt) (models.LoginResponse, error) {
			got = attempt
			return models.LoginResponse{
				Grant:          models.Grant{Token: "tok", ReplaySecret: "sec"},
				Groups:         []models.GroupView{{ID: 1, Name: "Default", LockType: models.LockNone, Unlocked: true}},
				DefaultGroupID: 1,
				HasNotice:      true,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"proof":"pr","totp_code":"123456"}`))
	req = req.WithContext(utils.WithClientIP(req.Context(), "198.51.100.7"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pr", got.Proof)
	assert.Equal(t, "123456", got.TotpCode)
	assert.Equal(t, "198.51.100.7", got.IP)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "sec", resp.ReplaySecret)
	assert.Equal(t, int64(1), resp.DefaultGroupID)
	assert.True(t, resp.HasNotice)
	assert.Len(t, resp.Groups, 1)
}

func TestLogin_ErrorCodes(t *testing.T) {
	tests := []struct {
		name        string
		svcErr      error
		wantStatus  int
		wantCode    string
		wantRetries *int
	}{
		{name: "need code", svcErr: service.ErrNeedCode, wantStatus: http.StatusUnauthorized, wantCode: CodeNeedCode},
		{name: "wrong password", svcErr: &service.WrongPasswordError{RetriesRemaining: 1}, wantStatus: http.StatusUnauthorized, wantCode: CodeWrongPassword, wantRetries: intPtr(1)},
		{name: "locked", svcErr: service.ErrLocked, wantStatus: http.StatusLocked, wantCode: CodeLocked},
		{name: "replayed challenge", svcErr: service.ErrChallenge, wantStatus: http.StatusBadRequest, wantCode: CodeChallengeError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHandlerWithAuthService(&mockAuthService{
				loginFn: func(context.Context, models.LoginAttempt) (models.LoginResponse, error) {
					return models.LoginResponse{}, tc.svcErr
				},
			})
			rec := httptest.NewRecorder()

			h.login(rec, httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"proof":"x"}`)))

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, tc.wantCode, body.Code)
			assert.Equal(t, tc.wantRetries, body.RetriesRemaining)
		})
	}
}

func TestLogout(t *testing.T) {
	var ended string
	h := newHandlerWithAuthService(&mockAuthService{
		logoutFn: func(_ context.Context, sessionID string) error {
			ended = sessionID
			return nil
		},
	})
	rec := httptest.NewRecorder()

	h.logout(rec, sessionRequest(http.MethodPost, "/api/user/logout", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testSessionID, ended)
}

func TestRequireChangePassword(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		requireChangePasswordFn: func(context.Context) (string, error) {
			return "a1b2", nil
		},
	})
	rec := httptest.NewRecorder()

	h.requireChangePassword(rec, sessionRequest(http.MethodGet, "/api/user/requireChangePwd", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"challenge":"a1b2"}`, rec.Body.String())
}

func TestChangePassword_UsesSessionToken(t *testing.T) {
	var gotToken, gotPayload string
	h := newHandlerWithAuthService(&mockAuthService{
		changePasswordFn: func(_ context.Context, token string, req models.ChangePasswordRequest) error {
			gotToken, gotPayload = token, req.EncryptedPayload
			return nil
		},
	})
	rec := httptest.NewRecorder()

	h.changePassword(rec, sessionRequest(http.MethodPut, "/api/user/changePwd", `{"encrypted_payload":"U2FsdGVk"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testToken, gotToken)
	assert.Equal(t, "U2FsdGVk", gotPayload)
}

func TestChangePassword_Errors(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"same password", service.ErrSamePassword, http.StatusBadRequest, CodeSamePassword},
		{"wrong old password", &service.WrongPasswordError{RetriesRemaining: 2}, http.StatusUnauthorized, CodeWrongPassword},
		{"totp required", service.ErrNeedCode, http.StatusUnauthorized, CodeNeedCode},
		{"challenge consumed", service.ErrChallenge, http.StatusBadRequest, CodeChallengeError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHandlerWithAuthService(&mockAuthService{
				changePasswordFn: func(context.Context, string, models.ChangePasswordRequest) error {
					return tc.svcErr
				},
			})
			rec := httptest.NewRecorder()

			h.changePassword(rec, sessionRequest(http.MethodPut, "/api/user/changePwd", `{"encrypted_payload":"x"}`))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, decodeErrorBody(t, rec).Code)
		})
	}
}

func TestUpdatePwdGenPrefs(t *testing.T) {
	var got models.PwdGenPrefs
	h := newHandlerWithAuthService(&mockAuthService{
		updatePwdGenPrefsFn: func(_ context.Context, prefs models.PwdGenPrefs) error {
			got = prefs
			return nil
		},
	})
	rec := httptest.NewRecorder()

	h.updatePwdGenPrefs(rec, sessionRequest(http.MethodPut, "/api/user/pwdGenPrefs",
		`{"length":24,"uppercase":true,"lowercase":true,"digits":true,"symbols":false}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.PwdGenPrefs{Length: 24, Uppercase: true, Lowercase: true, Digits: true}, got)
}

func intPtr(v int) *int {
	return &v
}

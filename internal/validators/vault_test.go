// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cert-keeper/internal/crypto"
	"github.com/MKhiriev/go-cert-keeper/models"
)

func ptr(s string) *string { return &s }

func validCertificate() models.Certificate {
	return models.Certificate{Name: "github", GroupID: 1, Content: "U2FsdGVkX1"}
}

func TestNewVaultValidator(t *testing.T) {
	require.NotNil(t, NewVaultValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewVaultValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_Certificate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *models.Certificate)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Certificate) {}},
		{name: "blank name", mutate: func(c *models.Certificate) { c.Name = "   " }, wantErr: ErrEmptyName},
		{name: "long name", mutate: func(c *models.Certificate) { c.Name = strings.Repeat("n", 129) }, wantErr: ErrNameTooLong},
		{name: "no group", mutate: func(c *models.Certificate) { c.GroupID = 0 }, wantErr: ErrInvalidGroupID},
		{name: "negative group", mutate: func(c *models.Certificate) { c.GroupID = -1 }, wantErr: ErrInvalidGroupID},
		{name: "no content", mutate: func(c *models.Certificate) { c.Content = "" }, wantErr: ErrEmptyContent},
		{name: "valid color", mutate: func(c *models.Certificate) { c.MarkColor = ptr("#1a2B3c") }},
		{name: "empty color", mutate: func(c *models.Certificate) { c.MarkColor = ptr("") }},
		{name: "bad color", mutate: func(c *models.Certificate) { c.MarkColor = ptr("red") }, wantErr: ErrInvalidColor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cert := validCertificate()
			tc.mutate(&cert)

			err := NewVaultValidator().Validate(context.Background(), cert)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}

			// pointer form behaves the same
			errPtr := NewVaultValidator().Validate(context.Background(), &cert)
			assert.Equal(t, err, errPtr)
		})
	}
}

func TestValidate_CertificateFields(t *testing.T) {
	v := NewVaultValidator()
	cert := models.Certificate{Name: "only-name"}

	assert.NoError(t, v.Validate(context.Background(), cert, FieldName))
	assert.ErrorIs(t, v.Validate(context.Background(), cert, FieldName, FieldContent), ErrEmptyContent)
	assert.ErrorIs(t, v.Validate(context.Background(), cert, "owner"), ErrUnknownField)
}

func TestValidate_CreateAdmin(t *testing.T) {
	proof := crypto.Hash("salt" + "master password")

	tests := []struct {
		name    string
		req     models.CreateAdminRequest
		wantErr error
	}{
		{name: "valid", req: models.CreateAdminRequest{Proof: proof, Salt: "salt"}},
		{name: "lower case digest", req: models.CreateAdminRequest{Proof: strings.ToLower(proof), Salt: "salt"}},
		{name: "empty", req: models.CreateAdminRequest{}, wantErr: ErrEmptyProof},
		{name: "no salt", req: models.CreateAdminRequest{Proof: proof}, wantErr: ErrEmptySalt},
		{name: "plain password", req: models.CreateAdminRequest{Proof: "hunter2", Salt: "salt"}, wantErr: ErrInvalidHash},
		{name: "not hex", req: models.CreateAdminRequest{Proof: strings.Repeat("Z", 128), Salt: "salt"}, wantErr: ErrInvalidHash},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := NewVaultValidator().Validate(context.Background(), tc.req)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidate_PwdGenPrefs(t *testing.T) {
	tests := []struct {
		name    string
		prefs   models.PwdGenPrefs
		wantErr error
	}{
		{name: "defaults", prefs: models.DefaultPwdGenPrefs()},
		{name: "digits only", prefs: models.PwdGenPrefs{Length: 6, Digits: true}},
		{name: "too short", prefs: models.PwdGenPrefs{Length: 3, Digits: true}, wantErr: ErrInvalidLength},
		{name: "too long", prefs: models.PwdGenPrefs{Length: 129, Digits: true}, wantErr: ErrInvalidLength},
		{name: "no class", prefs: models.PwdGenPrefs{Length: 12}, wantErr: ErrNoCharacterClass},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := NewVaultValidator().Validate(context.Background(), tc.prefs)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidate_GroupName(t *testing.T) {
	v := NewVaultValidator()

	assert.NoError(t, v.Validate(context.Background(), models.CreateGroupRequest{Name: "Bank"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.CreateGroupRequest{Name: " "}), ErrEmptyName)
}

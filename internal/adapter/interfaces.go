// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP collaborators of go-cert-keeper.
//
// [GeoLocator] resolves client IP addresses to a coarse location string for
// the login anomaly check. [VaultClient] is the command line client's view
// of the vault API: it runs the challenge-response login, signs every
// session request with the replay headers and keeps the content key derived
// from the master password on the client side.
//
// Non-2xx responses are decoded into [*APIError], which unwraps to the
// sentinel matching the HTTP status (e.g. [ErrLocked] for 423).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cert-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GeoLocator resolves an IP address to a "country region city" string.
// Implementations never fail: lookups that cannot be answered resolve to
// [LocationUnknown].
type GeoLocator interface {
	Locate(ctx context.Context, ip string) string
}

// VaultClient talks to a running vault server on behalf of the administrator.
type VaultClient interface {
	GlobalInfo(ctx context.Context) (models.GlobalInfo, error)
	LockoutStatus(ctx context.Context) (models.LockoutStatus, error)

	// CreateAdmin bootstraps the vault with password as master password.
	CreateAdmin(ctx context.Context, password string) error

	// Login runs requireLogin and login. totpCode is only needed when the
	// server answers NeedCode for a login from a new location.
	Login(ctx context.Context, password, totpCode string) (models.LoginResponse, error)
	Logout(ctx context.Context) error

	// UnlockGroup unlocks group for the current session. secret is the group
	// password for Password locks and a TOTP code for Totp locks.
	UnlockGroup(ctx context.Context, group models.GroupView, secret string) error

	ListCertificates(ctx context.Context, groupID int64) ([]models.Certificate, error)
	GetCertificate(ctx context.Context, id int64) (models.Certificate, error)
	CreateCertificate(ctx context.Context, groupID int64, name string, fields []models.CertificateField) (models.Certificate, error)

	// OpenCertificate decrypts cert content with the key derived at login.
	OpenCertificate(cert models.Certificate) ([]models.CertificateField, error)

	ChangePassword(ctx context.Context, oldPassword, newPassword, totpCode string) error
	Notices(ctx context.Context) ([]models.Notice, error)
}

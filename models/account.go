// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Account is the singleton administrator record. The vault is single-admin,
// so at most one row ever exists and it is never deleted.
type Account struct {
	// ID is the database identifier of the account row.
	ID int64 `json:"-"`

	// PasswordHash is the uppercase hex SHA-512 digest of PasswordSalt
	// concatenated with the master password.
	PasswordHash string `json:"-"`

	// PasswordSalt is the random salt mixed into PasswordHash. It is handed
	// to the client so it can compute login proofs locally.
	PasswordSalt string `json:"-"`

	// TotpSecret is the sealed TOTP shared secret. Empty means no
	// authenticator is bound.
	TotpSecret string `json:"-"`

	// CommonLocation is the geolocation string of the last successful login.
	CommonLocation string `json:"-"`

	// DefaultGroupID is the group selected after login.
	DefaultGroupID int64 `json:"default_group_id"`

	// PwdGenPrefs are the client's password generator preferences.
	PwdGenPrefs PwdGenPrefs `json:"pwd_gen_prefs"`

	// InitTime is when the account was bootstrapped.
	InitTime time.Time `json:"init_time"`
}

// HasTotp reports whether an authenticator is bound to the account.
func (a Account) HasTotp() bool {
	return a.TotpSecret != ""
}

// PwdGenPrefs controls how the client generates new passwords.
type PwdGenPrefs struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`
}

// DefaultPwdGenPrefs returns the preferences written at bootstrap.
func DefaultPwdGenPrefs() PwdGenPrefs {
	return PwdGenPrefs{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Value stores the preferences as a JSON document.
func (p PwdGenPrefs) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan reads preferences written by Value.
func (p *PwdGenPrefs) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = DefaultPwdGenPrefs()
		return nil
	case string:
		return json.Unmarshal([]byte(v), p)
	case []byte:
		return json.Unmarshal(v, p)
	default:
		return fmt.Errorf("unsupported pwd_gen_prefs type %T", src)
	}
}

// PasswordRotation is the atomic unit written by a successful password
// change: the new salted hash plus every certificate re-encrypted under the
// new key.
type PasswordRotation struct {
	PasswordHash string
	PasswordSalt string
	Certificates []Certificate
}

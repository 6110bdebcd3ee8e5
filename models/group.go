// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// LockType is the gate protecting a group's certificates.
type LockType string

const (
	// LockNone means the group is always unlocked.
	LockNone LockType = "None"
	// LockPassword gates the group behind its own salted password hash.
	LockPassword LockType = "Password"
	// LockTotp gates the group behind the account-level TOTP secret.
	LockTotp LockType = "Totp"
)

// ErrInvalidGroupLock is returned by [GroupLock.Validate] when the lock
// variant and its password material disagree.
var ErrInvalidGroupLock = errors.New("invalid group lock configuration")

// Valid reports whether t is one of the known lock types.
func (t LockType) Valid() bool {
	switch t {
	case LockNone, LockPassword, LockTotp:
		return true
	}
	return false
}

// PasswordLock is the material of a [LockPassword] gate.
type PasswordLock struct {
	Hash string `json:"password_hash"`
	Salt string `json:"password_salt"`
}

// GroupLock is the tagged lock state of a group. Password is non-nil exactly
// when Type is [LockPassword].
type GroupLock struct {
	Type     LockType      `json:"lock_type"`
	Password *PasswordLock `json:"-"`
}

// NoLock returns an open lock.
func NoLock() GroupLock {
	return GroupLock{Type: LockNone}
}

// NewPasswordLock returns a password lock over the given hash and salt.
func NewPasswordLock(hash, salt string) GroupLock {
	return GroupLock{Type: LockPassword, Password: &PasswordLock{Hash: hash, Salt: salt}}
}

// TotpLock returns a lock gated by the account TOTP secret.
func TotpLock() GroupLock {
	return GroupLock{Type: LockTotp}
}

// Validate enforces that password material is present iff the lock is a
// password lock.
func (l GroupLock) Validate() error {
	if !l.Type.Valid() {
		return ErrInvalidGroupLock
	}
	if l.Type == LockPassword {
		if l.Password == nil || l.Password.Hash == "" || l.Password.Salt == "" {
			return ErrInvalidGroupLock
		}
		return nil
	}
	if l.Password != nil {
		return ErrInvalidGroupLock
	}
	return nil
}

// Group is a folder-like container of certificates with its own lock.
type Group struct {
	ID   int64     `json:"id"`
	Name string    `json:"name"`
	Lock GroupLock `json:"lock"`
}

// GroupView is the client-facing projection of a group for a session.
type GroupView struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	LockType LockType `json:"lock_type"`
	Unlocked bool     `json:"unlocked"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GlobalInfo is served to anonymous clients before login.
type GlobalInfo struct {
	AppName     string `json:"app_name"`
	Version     string `json:"version"`
	Initialized bool   `json:"initialized"`
}

// CreateAdminRequest bootstraps the single administrator account. Proof is
// hash(salt + password) computed client-side.
type CreateAdminRequest struct {
	Proof string `json:"proof"`
	Salt  string `json:"salt"`
}

// LoginChallenge is returned by requireLogin.
type LoginChallenge struct {
	Salt      string `json:"salt"`
	Challenge string `json:"challenge"`
}

// ChallengeResponse carries a bare challenge for flows whose salt the
// client already knows.
type ChallengeResponse struct {
	Challenge string `json:"challenge"`
}

// LoginRequest carries hash(hash(salt + password) + challenge) and an
// optional TOTP code for the geolocation step-up.
type LoginRequest struct {
	Proof    string `json:"proof"`
	TotpCode string `json:"totp_code,omitempty"`
}

// LoginAttempt is the transport-independent login input.
type LoginAttempt struct {
	LoginRequest
	IP string
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Grant
	Groups         []GroupView `json:"groups"`
	DefaultGroupID int64       `json:"default_group_id"`
	HasNotice      bool        `json:"has_notice"`
	PwdGenPrefs    PwdGenPrefs `json:"pwd_gen_prefs"`
}

// ChangePasswordRequest carries an AES ciphertext of [ChangePasswordPayload]
// keyed by deriveKeyIv(passwordHash + challenge + token).
type ChangePasswordRequest struct {
	EncryptedPayload string `json:"encrypted_payload"`
}

// ChangePasswordPayload is the decrypted body of [ChangePasswordRequest].
type ChangePasswordPayload struct {
	OldPassword string `json:"old_pwd"`
	NewPassword string `json:"new_pwd"`
	TotpCode    string `json:"totp_code,omitempty"`
}

// TotpEnrollment is the answer to otp/getQrcode.
type TotpEnrollment struct {
	Registered bool   `json:"registered"`
	QRCode     string `json:"qr_code,omitempty"`
	URI        string `json:"uri,omitempty"`
}

// TotpCodeRequest carries a single TOTP code.
type TotpCodeRequest struct {
	Code string `json:"code"`
}

// TotpRemoveRequest removes the bound authenticator. Proof is
// hash(passwordHash + challenge) over a challenge from otp/requireRemove.
type TotpRemoveRequest struct {
	Proof string `json:"proof"`
	Code  string `json:"code"`
}

// GroupChallenge is returned before a password group unlock.
type GroupChallenge struct {
	Salt      string `json:"salt"`
	Challenge string `json:"challenge"`
}

// UnlockGroupRequest carries a password proof or a TOTP code depending on
// the group's lock type.
type UnlockGroupRequest struct {
	Proof string `json:"proof"`
}

// CreateGroupRequest creates a new unlocked group.
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// GroupLockRequest replaces a group's lock configuration. PasswordHash and
// PasswordSalt are required for Password and must be empty otherwise.
type GroupLockRequest struct {
	LockType     LockType `json:"lock_type"`
	PasswordHash string   `json:"password_hash,omitempty"`
	PasswordSalt string   `json:"password_salt,omitempty"`
}

// ToLock converts the request into a [GroupLock].
func (r GroupLockRequest) ToLock() GroupLock {
	if r.LockType == LockPassword || r.PasswordHash != "" || r.PasswordSalt != "" {
		return GroupLock{Type: r.LockType, Password: &PasswordLock{Hash: r.PasswordHash, Salt: r.PasswordSalt}}
	}
	return GroupLock{Type: r.LockType}
}

// DeleteGroupResponse reports the default group after a deletion, which
// changes when the deleted group was the default.
type DeleteGroupResponse struct {
	DefaultGroupID int64 `json:"default_group_id"`
}

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Code             string   `json:"code"`
	Message          string   `json:"message"`
	RetriesRemaining *int     `json:"retries_remaining,omitempty"`
	GroupNames       []string `json:"group_names,omitempty"`
}

// OKResponse is the JSON body of a successful call with nothing to return.
type OKResponse struct {
	OK bool `json:"ok"`
}

// Replay-attack headers carried by every request made inside a session.
const (
	HeaderReplayTimestamp = "X-Replay-Timestamp"
	HeaderReplayNonce     = "X-Replay-Nonce"
	HeaderReplaySignature = "X-Replay-Signature"
)

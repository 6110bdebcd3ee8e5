// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains application-layer constants shared by the vault
// server and the command line client.
//
// Code* constants are the result codes written into every failed API
// response. The server maps internal errors onto them and the client turns
// them back into human-readable messages with [Describe].
package app

// Result codes of the vault API.
const (
	CodeNotRegistered          = "NotRegistered"
	CodeAlreadyRegistered      = "AlreadyRegistered"
	CodeChallengeError         = "ChallengeError"
	CodeWrongPassword          = "WrongPassword"
	CodeSamePassword           = "SamePassword"
	CodeNeedCode               = "NeedCode"
	CodeInvalidCode            = "InvalidCode"
	CodeNoTotpBound            = "NoTotpBound"
	CodeEnrollmentExpired      = "EnrollmentExpired"
	CodeDependentGroupsExist   = "DependentGroupsExist"
	CodeGroupPasswordError     = "GroupPasswordError"
	CodeGroupLocked            = "GroupLocked"
	CodeCantDelete             = "CantDelete"
	CodeUnauthenticated        = "Unauthenticated"
	CodeReplaySignatureInvalid = "ReplaySignatureInvalid"
	CodeLocked                 = "Locked"
	CodeInvalidData            = "InvalidData"
	CodeNotFound               = "NotFound"
	CodeConflict               = "Conflict"
	CodeServerError            = "ServerError"
)

const (
	// MsgInternalServerError is the only message a client ever sees for an
	// unexpected server-side failure.
	MsgInternalServerError = "internal server error"

	// MsgUnknownError describes a result code this build does not know.
	MsgUnknownError = "unexpected server response"
)

var messages = map[string]string{
	CodeNotRegistered:          "the vault has no administrator yet, run init first",
	CodeAlreadyRegistered:      "the vault already has an administrator",
	CodeChallengeError:         "login challenge expired or was already used, try again",
	CodeWrongPassword:          "wrong master password",
	CodeSamePassword:           "the new password must differ from the old one",
	CodeNeedCode:               "login from a new location, a TOTP code is required",
	CodeInvalidCode:            "invalid TOTP code",
	CodeNoTotpBound:            "no authenticator is bound to this vault",
	CodeEnrollmentExpired:      "the authenticator enrollment expired, request a new QR code",
	CodeDependentGroupsExist:   "some groups are still locked with TOTP",
	CodeGroupPasswordError:     "wrong group password",
	CodeGroupLocked:            "the group is locked, unlock it first",
	CodeCantDelete:             "the group cannot be deleted",
	CodeUnauthenticated:        "not logged in or the session expired",
	CodeReplaySignatureInvalid: "request signature rejected",
	CodeLocked:                 "too many failed logins, the vault is locked until tomorrow",
	CodeInvalidData:            "invalid data provided",
	CodeNotFound:               "not found",
	CodeConflict:               "already exists",
	CodeServerError:            MsgInternalServerError,
}

// Describe returns the human-readable message for an API result code.
func Describe(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return MsgUnknownError
}

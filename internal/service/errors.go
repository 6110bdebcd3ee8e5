package service

import (
	"errors"
	"fmt"
	"strings"
)

// Result errors of the security core. Each one maps to a stable result code
// at the transport boundary.
var (
	ErrNotRegistered     = errors.New("administrator account is not registered")
	ErrAlreadyRegistered = errors.New("administrator account is already registered")

	// ErrChallenge is returned when a proof references a challenge that was
	// never issued, already consumed or expired.
	ErrChallenge = errors.New("challenge is missing or expired")

	ErrWrongPassword = errors.New("wrong password")
	ErrSamePassword  = errors.New("new password equals the old one")

	// ErrNeedCode asks the client to collect a TOTP code and retry. It is a
	// step-up request, not a failure.
	ErrNeedCode          = errors.New("totp code required")
	ErrInvalidCode       = errors.New("invalid totp code")
	ErrNoTotpBound       = errors.New("no totp authenticator bound")
	ErrEnrollmentExpired = errors.New("totp enrollment expired")
	ErrDependentGroups   = errors.New("groups still depend on totp")

	ErrGroupPassword = errors.New("wrong group password")
	ErrGroupLocked   = errors.New("group is locked")
	ErrCantDelete    = errors.New("cannot delete the last group")

	ErrUnauthenticated        = errors.New("session is missing or invalid")
	ErrReplaySignatureInvalid = errors.New("replay signature invalid")
	ErrLocked                 = errors.New("login is locked after repeated failures")

	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// WrongPasswordError is [ErrWrongPassword] carrying how many attempts are
// left before the lockout trips.
type WrongPasswordError struct {
	RetriesRemaining int
}

func (e *WrongPasswordError) Error() string {
	return fmt.Sprintf("%s: %d retries remaining", ErrWrongPassword, e.RetriesRemaining)
}

func (e *WrongPasswordError) Unwrap() error {
	return ErrWrongPassword
}

// DependentGroupsError is [ErrDependentGroups] naming the groups that are
// still locked with TOTP.
type DependentGroupsError struct {
	GroupNames []string
}

func (e *DependentGroupsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDependentGroups, strings.Join(e.GroupNames, ", "))
}

func (e *DependentGroupsError) Unwrap() error {
	return ErrDependentGroups
}

package adapter

import (
	"errors"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrLocked              = errors.New("login locked")
	ErrInternalServerError = errors.New("internal server error")

	ErrNotLoggedIn = errors.New("not logged in")
)

// APIError is a decoded error response of the vault server. It unwraps to
// the sentinel matching its HTTP status so callers can use [errors.Is].
type APIError struct {
	Status           int
	Code             string
	Message          string
	RetriesRemaining *int
	GroupNames       []string

	sentinel error
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Code)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.GroupNames) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.GroupNames, ", "))
		b.WriteString(")")
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}

// HasCode reports whether err is an [APIError] carrying code.
func HasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cert-keeper/internal/adapter"
	"github.com/MKhiriev/go-cert-keeper/internal/app"
)

var (
	ErrUnknownCommand      = errors.New("unknown command")
	ErrPasswordRequired    = errors.New("master password is required")
	ErrGroupNotFound       = errors.New("group not found")
	ErrGroupSecretRequired = errors.New("group is locked, provide its password or TOTP code")
	ErrFieldNotFound       = errors.New("certificate has no such field")
	ErrInvalidField        = errors.New("field must look like label=value")
	ErrInvalidID           = errors.New("certificate id must be positive")
)

// Explain renders err for a human. API errors are described by their
// result code; everything else is printed as is.
func Explain(err error) string {
	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(app.Describe(apiErr.Code))
	if apiErr.RetriesRemaining != nil {
		fmt.Fprintf(&b, " (%d attempts left today)", *apiErr.RetriesRemaining)
	}
	if len(apiErr.GroupNames) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(apiErr.GroupNames, ", "))
	}
	return b.String()
}

package validators

import (
	"context"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-cert-keeper/models"
)

const (
	FieldName      = "name"
	FieldGroupID   = "group_id"
	FieldContent   = "content"
	FieldMarkColor = "mark_color"
	FieldProof     = "proof"
	FieldSalt      = "salt"
	FieldLength    = "length"
	FieldClasses   = "classes"
)

const (
	maxNameLength      = 128
	minGeneratedLength = 4
	maxGeneratedLength = 128
	sha512HexLength    = 128
)

var markColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// VaultValidator checks the user supplied records of the vault:
// certificates, group names, the admin bootstrap request and password
// generator preferences.
type VaultValidator struct{}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Certificate:
		return v.validateCertificate(value, fields...)
	case *models.Certificate:
		return v.validateCertificate(*value, fields...)

	case models.CreateGroupRequest:
		return validateName(value.Name)

	case models.CreateAdminRequest:
		return v.validateCreateAdmin(value, fields...)
	case *models.CreateAdminRequest:
		return v.validateCreateAdmin(*value, fields...)

	case models.PwdGenPrefs:
		return v.validatePwdGenPrefs(value, fields...)
	case *models.PwdGenPrefs:
		return v.validatePwdGenPrefs(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// checkFields runs the named checks, or all of them when fields is empty.
func checkFields(checks map[string]func() error, order []string, fields ...string) error {
	if len(fields) == 0 {
		fields = order
	}
	for _, f := range fields {
		check, ok := checks[f]
		if !ok {
			return ErrUnknownField
		}
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (v *VaultValidator) validateCertificate(c models.Certificate, fields ...string) error {
	checks := map[string]func() error{
		FieldName: func() error { return validateName(c.Name) },
		FieldGroupID: func() error {
			if c.GroupID <= 0 {
				return ErrInvalidGroupID
			}
			return nil
		},
		FieldContent: func() error {
			if c.Content == "" {
				return ErrEmptyContent
			}
			return nil
		},
		FieldMarkColor: func() error {
			if c.MarkColor != nil && *c.MarkColor != "" && !markColorPattern.MatchString(*c.MarkColor) {
				return ErrInvalidColor
			}
			return nil
		},
	}
	return checkFields(checks, []string{FieldName, FieldGroupID, FieldContent, FieldMarkColor}, fields...)
}

func (v *VaultValidator) validateCreateAdmin(r models.CreateAdminRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldProof: func() error {
			if r.Proof == "" {
				return ErrEmptyProof
			}
			if !isSHA512Hex(r.Proof) {
				return ErrInvalidHash
			}
			return nil
		},
		FieldSalt: func() error {
			if r.Salt == "" {
				return ErrEmptySalt
			}
			return nil
		},
	}
	return checkFields(checks, []string{FieldProof, FieldSalt}, fields...)
}

func (v *VaultValidator) validatePwdGenPrefs(p models.PwdGenPrefs, fields ...string) error {
	checks := map[string]func() error{
		FieldLength: func() error {
			if p.Length < minGeneratedLength || p.Length > maxGeneratedLength {
				return ErrInvalidLength
			}
			return nil
		},
		FieldClasses: func() error {
			if !(p.Uppercase || p.Lowercase || p.Digits || p.Symbols) {
				return ErrNoCharacterClass
			}
			return nil
		},
	}
	return checkFields(checks, []string{FieldLength, FieldClasses}, fields...)
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func isSHA512Hex(s string) bool {
	if len(s) != sha512HexLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

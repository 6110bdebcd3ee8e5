package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrEmptyContent     = errors.New("content is required")
	ErrInvalidGroupID   = errors.New("invalid group id")
	ErrInvalidColor     = errors.New("mark color must be #rrggbb")
	ErrEmptyProof       = errors.New("proof is required")
	ErrEmptySalt        = errors.New("salt is required")
	ErrInvalidHash      = errors.New("proof must be a sha-512 hex digest")
	ErrInvalidLength    = errors.New("password length out of range")
	ErrNoCharacterClass = errors.New("at least one character class is required")
)

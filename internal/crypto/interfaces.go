package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects server-side secrets at rest (the TOTP shared secret).
// It is unrelated to certificate content, which the server never decrypts.
type Sealer interface {
	// Seal encrypts plaintext and returns a printable token.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It fails with [ErrWrongKey] when the token was not
	// sealed by this key or has been tampered with.
	Open(sealed string) (string, error)
}

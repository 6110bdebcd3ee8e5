package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const sealerInfo = "go-cert-keeper/totp-secret/v1"

// secretSealer implements [Sealer] with XChaCha20-Poly1305 under a key
// expanded from the server secret by HKDF-SHA256.
type secretSealer struct {
	key []byte
}

// NewSealer derives the sealing key from serverSecret.
func NewSealer(serverSecret string) (Sealer, error) {
	if serverSecret == "" {
		return nil, errors.New("empty server secret")
	}

	key := make([]byte, chacha20poly1305.KeySize)
	r := hkdf.New(sha256.New, []byte(serverSecret), nil, []byte(sealerInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("error deriving sealing key: %w", err)
	}

	return &secretSealer{key: key}, nil
}

// Seal implements [Sealer]. The output is base64(nonce ‖ ciphertext).
func (s *secretSealer) Seal(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), []byte(sealerInfo))
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open implements [Sealer].
func (s *secretSealer) Open(sealed string) (string, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", err
	}

	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil || len(raw) < aead.NonceSize() {
		return "", ErrWrongKey
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, []byte(sealerInfo))
	if err != nil {
		return "", ErrWrongKey
	}
	return string(plain), nil
}

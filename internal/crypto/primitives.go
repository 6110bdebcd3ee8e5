// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the vault's envelope scheme and proof chains.
//
// The formats are fixed by the browser client: digests are hex strings,
// the AES key and IV are the UTF-8 bytes of hex digests of the password,
// and ciphertext is base64 of AES-256-CBC with PKCS#7 padding.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrWrongKey is returned when ciphertext does not decrypt under the given
// key: bad padding, truncated blocks or garbage input.
var ErrWrongKey = errors.New("ciphertext does not match key")

// KeyIV is the AES-256-CBC key material derived from a password.
type KeyIV struct {
	Key []byte
	IV  []byte
}

// Hash returns the uppercase hex SHA-512 digest of input.
func Hash(input string) string {
	sum := sha512.Sum512([]byte(input))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// ProofFor returns hash(passwordHash + challenge), the value a client must
// present for a challenge.
func ProofFor(passwordHash, challenge string) string {
	return Hash(passwordHash + challenge)
}

// Equal compares two digests in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// DeriveKeyIV derives the AES key and IV from password. The key is the
// 32-character MD5 hex digest; the IV is the first 16 characters of the
// SHA-256 hex digest.
func DeriveKeyIV(password string) KeyIV {
	md := md5.Sum([]byte(password))
	sh := sha256.Sum256([]byte(password))

	return KeyIV{
		Key: []byte(hex.EncodeToString(md[:])),
		IV:  []byte(hex.EncodeToString(sh[:])[:aes.BlockSize]),
	}
}

// ValidateKeyIV reports whether candidate derives exactly kv.
func ValidateKeyIV(candidate string, kv KeyIV) bool {
	derived := DeriveKeyIV(candidate)
	return subtle.ConstantTimeCompare(derived.Key, kv.Key) == 1 &&
		subtle.ConstantTimeCompare(derived.IV, kv.IV) == 1
}

// Encrypt returns base64(AES-256-CBC(PKCS7(plaintext))).
func Encrypt(plaintext string, kv KeyIV) (string, error) {
	block, err := aes.NewCipher(kv.Key)
	if err != nil {
		return "", fmt.Errorf("error creating cipher: %w", err)
	}
	if len(kv.IV) != aes.BlockSize {
		return "", fmt.Errorf("iv must be %d bytes", aes.BlockSize)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, kv.IV).CryptBlocks(out, padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Every failure that can stem from a wrong key or
// corrupted input yields [ErrWrongKey].
func Decrypt(ciphertext string, kv KeyIV) (string, error) {
	block, err := aes.NewCipher(kv.Key)
	if err != nil {
		return "", fmt.Errorf("error creating cipher: %w", err)
	}
	if len(kv.IV) != aes.BlockSize {
		return "", fmt.Errorf("iv must be %d bytes", aes.BlockSize)
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil || len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", ErrWrongKey
	}

	out := make([]byte, len(raw))
	cipher.NewCBCDecrypter(block, kv.IV).CryptBlocks(out, raw)

	plain, ok := pkcs7Unpad(out, aes.BlockSize)
	if !ok {
		return "", ErrWrongKey
	}
	return string(plain), nil
}

// EncryptJSON marshals v and encrypts the result.
func EncryptJSON(v any, kv KeyIV) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error marshaling payload: %w", err)
	}
	return Encrypt(string(data), kv)
}

// DecryptJSON decrypts ciphertext and unmarshals it into target. Plaintext
// that is not valid JSON is reported as [ErrWrongKey] since a wrong key
// occasionally yields valid padding over garbage.
func DecryptJSON(ciphertext string, kv KeyIV, target any) error {
	plain, err := Decrypt(ciphertext, kv)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(plain), target); err != nil {
		return ErrWrongKey
	}
	return nil
}

// SignReplay computes the signature of an authenticated request.
func SignReplay(url, nonce, timestamp, secret string) string {
	return Hash(url + nonce + timestamp + secret)
}

// VerifyReplay reports whether signature matches the request fields.
func VerifyReplay(url, nonce, timestamp, secret, signature string) bool {
	return Equal(SignReplay(url, nonce, timestamp, secret), strings.ToUpper(signature))
}

// RandomHex returns n random bytes as lowercase hex.
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, bool) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, false
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize {
		return nil, false
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, false
		}
	}
	return b[:len(b)-n], true
}

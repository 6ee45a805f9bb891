// Package hash provides one-way hashing for credentials: a slow, salted bcrypt
// transform for passwords and a fast sha256 digest for short-lived activation codes.
package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Password hashes a plaintext password with bcrypt at the default cost.
func Password(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the bcrypt digest.
// bcrypt's comparison is constant-time.
func VerifyPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// ActivationCode returns the sha256 hex digest of an activation code.
// A fast digest is acceptable here: the code is 4 digits, single-use and
// time-boxed by its TTL, but it must never be stored in plaintext.
func ActivationCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// VerifyActivationCode reports whether code matches the stored digest,
// comparing in constant time.
func VerifyActivationCode(code, hashed string) bool {
	digest := ActivationCode(code)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(hashed)) == 1
}

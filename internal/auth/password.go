// internal/auth/password.go
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned when an encoded hash cannot be decoded.
var ErrMalformedHash = errors.New("malformed password hash")

const (
	saltLen = 16
	keyLen  = 32
	passes  = 1
	memory  = 64 * 1024
	threads = 4
)

// HashPassword generates a salted Argon2id hash of the password, encoded as
// "salt$hash" in standard base64.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "read salt")
	}

	hash := argon2.IDKey([]byte(password), salt, passes, memory, threads, keyLen)

	encodedSalt := base64.StdEncoding.EncodeToString(salt)
	encodedHash := base64.StdEncoding.EncodeToString(hash)

	return encodedSalt + "$" + encodedHash, nil
}

// VerifyPassword compares a password with an encoded hash made by
// HashPassword.
func VerifyPassword(password, encoded string) (bool, error) {
	salt, hash, ok := strings.Cut(encoded, "$")
	if !ok {
		return false, ErrMalformedHash
	}

	decodedSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false, errors.Wrap(err, "decode salt")
	}

	decodedHash, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false, errors.Wrap(err, "decode hash")
	}

	comparisonHash := argon2.IDKey([]byte(password), decodedSalt, passes, memory, threads, uint32(len(decodedHash)))

	return subtle.ConstantTimeCompare(decodedHash, comparisonHash) == 1, nil
}

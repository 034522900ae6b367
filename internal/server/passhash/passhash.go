// Package passhash derives and verifies password hashes. Passwords are run
// through PBKDF2-SHA256 with a random per-password salt; the stored form is
// "hex(salt):hex(key)" so a single text column holds both parts.
package passhash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/reddsec/scoreboard/internal/common"
)

const (
	iterations = 100000
	saltSize   = 16
	keySize    = 32
)

// Hash derives a key from password with a fresh random salt and returns the
// colon-joined hex pair.
func Hash(password string) string {
	salt := common.GenerateRandByteArray(saltSize)
	key := pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key)
}

// Verify re-derives the key with the stored salt and compares it against the
// stored key in constant time. Malformed stored values verify as false.
func Verify(stored, password string) bool {
	parts := strings.Split(stored, ":")
	if len(parts) != 2 {
		return false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	key, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	candidate := pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

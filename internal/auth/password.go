package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const saltLength = 5

func makeSalt() string {
	b := make([]byte, saltLength)
	if _, err := rand.Read(b); err != nil {
		panic("auth: failed to read random salt: " + err.Error())
	}
	for i := range b {
		b[i] = saltAlphabet[int(b[i])%len(saltAlphabet)]
	}
	return string(b)
}

func hashWithSalt(username, password, salt string) string {
	sum := sha256.Sum256([]byte(username + password + salt))
	return hex.EncodeToString(sum[:]) + "," + salt
}

// HashPassword returns a salted digest of the form "<hex_digest>,<salt>".
// The username is mixed into the digest alongside the salt, so the same
// password hashes differently per user even if two salts ever collide.
func HashPassword(username, password string) string {
	return hashWithSalt(username, password, makeSalt())
}

// VerifyPassword recomputes the digest with the salt extracted from stored
// and compares. Malformed stored values (missing separator) verify as false
// rather than erroring.
func VerifyPassword(username, password, stored string) bool {
	_, salt, ok := strings.Cut(stored, ",")
	if !ok {
		return false
	}
	recomputed := hashWithSalt(username, password, salt)
	return subtle.ConstantTimeCompare([]byte(stored), []byte(recomputed)) == 1
}

package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the password.
// Hashes are unsalted; every stored patient credential uses this format, so
// changing the scheme would make existing rows unverifiable.
func HashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

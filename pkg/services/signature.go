package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SignPath computes the webhook digest for a canonical path: the lowercase
// hex SHA-256 of "secret:path". Both sides must sign the same path string,
// leading slash included.
func SignPath(secret, path string) string {
	sum := sha256.Sum256([]byte(secret + ":" + path))
	return hex.EncodeToString(sum[:])
}

// VerifyPath checks a caller-supplied digest against a freshly computed one.
// Fails closed when no secret is configured. The comparison is constant-time.
func VerifyPath(secret, path, digest string) bool {
	if secret == "" {
		return false
	}
	want := SignPath(secret, path)
	return subtle.ConstantTimeCompare([]byte(want), []byte(digest)) == 1
}

package hasher

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex SHA-256 of b.
func Sum(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// ETag formats a digest as a strong HTTP entity tag.
func ETag(digest string) string {
	if digest == "" {
		return ""
	}
	return `"` + digest + `"`
}

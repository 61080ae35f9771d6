package updater

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns the hex-encoded SHA-256 digest of the exact bytes
// supplied. Content must be pre-ordered by the caller so the digest is stable
// across runs with identical logical content.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

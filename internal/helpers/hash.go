package helpers

import (
	"crypto/sha256"
	"encoding/hex"
)

// ShortHash returns the first eight hex digits of the SHA-256 of content. It
// names inline sources, so it only needs to be stable, not collision-proof.
func ShortHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:4])
}

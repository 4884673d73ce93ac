package manifest

import (
	"crypto/sha256"
	"fmt"
)

// Checksum returns the hex-encoded SHA-256 of the given data.
func Checksum(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h)
}

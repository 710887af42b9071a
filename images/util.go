package images

import (
	"crypto/md5"
	"fmt"
)

// ComputeChecksum generates a deterministic checksum for a sample buffer to
// verify idempotency.
//
// Arguments:
// - data: The buffer to compute checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string.
//
// Example:
//
// ```go
//
//	checksum := ComputeChecksum(result.Pix)
//	fmt.Printf("Energy checksum: %s\n", checksum)
//
// ```
func ComputeChecksum(data []byte) string {
	if len(data) == 0 {
		return "empty"
	}

	hash := md5.New()
	hash.Write(data)
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// Package identity computes content fingerprints for uploaded media.
package identity

import (
	"crypto/md5"
	"encoding/hex"
)

// Fingerprint returns the MD5 hex digest of data. The digest is used to
// correlate log lines for the same upload across runs, not for integrity
// checks.
func Fingerprint(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

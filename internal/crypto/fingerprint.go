package crypto

import "docket/internal/domain"

// Fingerprint returns a short display form of a digest.
//
// It keeps the first 20 hex characters (10 bytes).
func Fingerprint(d domain.Digest) string {
	s := d.String()
	if len(s) > 20 {
		return s[:20]
	}
	return s
}

package crypto

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"

	"docket/internal/domain"
)

// DigestBytes returns the BLAKE2b-256 digest of b.
func DigestBytes(b []byte) domain.Digest {
	sum := blake2b.Sum256(b)
	return domain.Digest(hex.EncodeToString(sum[:]))
}

// DigestFile streams the file at path through BLAKE2b-256.
func DigestFile(path string) (domain.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return domain.Digest(hex.EncodeToString(h.Sum(nil))), nil
}

package schedule

import (
	"encoding/json"
	"fmt"

	"github.com/zeebo/blake3"
)

// Canonicalize returns the JSON encoding of s. Struct fields encode in
// declaration order, so equal schedules always produce equal bytes.
func Canonicalize(s *Schedule) ([]byte, error) {
	return json.Marshal(s)
}

// Fingerprint computes the blake3 hash of the canonical encoding of s
func Fingerprint(s *Schedule) (string, error) {
	canonical, err := Canonicalize(s)
	if err != nil {
		return "", fmt.Errorf("canonicalize schedule: %w", err)
	}

	hasher := blake3.New()
	if _, err := hasher.Write(canonical); err != nil {
		return "", fmt.Errorf("hash schedule: %w", err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

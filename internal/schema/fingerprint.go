package schema

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a hex encoded BLAKE3 hash over the canonical encoding
// of a [Config]. Two configurations declaring the same structure have the
// same fingerprint.
func Fingerprint(cfg *Config) (string, error) {
	data, err := cfg.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("(schema-fingerprint) %w", err)
	}

	hasher := blake3.New()
	if _, err := hasher.Write(data); err != nil {
		return "", fmt.Errorf("(schema-fingerprint) %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

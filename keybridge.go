package keybridge

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
)

// SeedSize is the size of both the seed and the derived key in bytes. The
// vendor call signature is fixed; there is no variable-length variant.
const SeedSize = 8

// Seed is the 8-byte challenge handed to the vendor module.
type Seed [SeedSize]byte

// Key is the 8-byte response written by the vendor module.
type Key [SeedSize]byte

// ParseSeed decodes a seed from exactly 16 hexadecimal characters.
// Case-insensitive, no prefix, no separators.
func ParseSeed(s string) (Seed, error) {
	var seed Seed
	if len(s) != hex.EncodedLen(SeedSize) {
		return seed, fmt.Errorf("seed must be %d hex characters, got %d", hex.EncodedLen(SeedSize), len(s))
	}
	if _, err := hex.Decode(seed[:], []byte(s)); err != nil {
		return seed, fmt.Errorf("seed is not valid hex: %w", err)
	}
	return seed, nil
}

// String returns the seed as 16 uppercase hex characters.
func (s Seed) String() string {
	return strings.ToUpper(hex.EncodeToString(s[:]))
}

// String returns the key as 16 uppercase hex characters, the exact line the
// bridge prints on stdout.
func (k Key) String() string {
	return strings.ToUpper(hex.EncodeToString(k[:]))
}

// KeyGenerator transforms an 8-byte seed into an 8-byte key. The real
// implementation is an opaque vendor function behind a module loader;
// callers must treat it as a black box and must not assume anything about
// the derivation.
type KeyGenerator interface {
	GenerateKey(ctx context.Context, seed Seed) (Key, error)
}

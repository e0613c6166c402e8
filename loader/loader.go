package loader

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/candiag/keybridge"
	"github.com/candiag/keybridge/errors"
)

// Function is a resolved export with the fixed vendor signature: read 8
// bytes from seed, write 8 bytes to key, return nothing. The signature is
// an out-of-band agreement with the module; it is not negotiated at
// runtime, and whatever the callee writes is trusted as-is.
type Function interface {
	Call(ctx context.Context, seed keybridge.Seed, key *keybridge.Key) error
}

// Module is an open handle to a loaded module. It is valid from Open until
// Close; Functions obtained from it must not be used after Close.
type Module interface {
	// Lookup resolves an exported function by name.
	Lookup(name string) (Function, error)

	// Close releases the module. Safe to call exactly once.
	Close(ctx context.Context) error
}

// OpenFunc opens the module at path. Implementations: native.Open,
// wasm.Open, bridge.Open (which dispatches between them).
type OpenFunc func(ctx context.Context, path string) (Module, error)

// Kind identifies a module's container format.
type Kind int

const (
	KindNative Kind = iota // platform shared library (.dll, .so, .dylib)
	KindWASM               // core WebAssembly module
)

var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6d}

// Detect sniffs the module format from the first four bytes of the file.
// Files too short to hold a magic number are classified as native and left
// to the platform loader to reject with its own diagnostic.
func Detect(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindNative, errors.Load("open module", err)
	}
	defer f.Close()

	var magic [4]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		return KindNative, nil
	}
	if bytes.Equal(magic[:], wasmMagic) {
		return KindWASM, nil
	}
	return KindNative, nil
}

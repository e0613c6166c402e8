package wasm

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/candiag/keybridge"
	"github.com/candiag/keybridge/errors"
)

// Module exporting ASK_KeyGenerate(seed: i32, key: i32) that copies the
// 8 input bytes to the output buffer unchanged.
var echoWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	// Type section: (i32, i32) -> ()
	0x01, 0x06, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x00,
	// Function section: func 0 uses type 0
	0x03, 0x02, 0x01, 0x00,
	// Memory section: min 1 page
	0x05, 0x03, 0x01, 0x00, 0x01,
	// Export section: "memory" -> mem 0, "ASK_KeyGenerate" -> func 0
	0x07, 0x1c, 0x02,
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00,
	0x0f, 0x41, 0x53, 0x4b, 0x5f, 0x4b, 0x65, 0x79, 0x47, 0x65, 0x6e,
	0x65, 0x72, 0x61, 0x74, 0x65, 0x00, 0x00,
	// Code section: i64.store(key, i64.load(seed))
	0x0a, 0x0e, 0x01, 0x0c, 0x00,
	0x20, 0x01, // local.get 1 (key)
	0x20, 0x00, // local.get 0 (seed)
	0x29, 0x03, 0x00, // i64.load
	0x37, 0x03, 0x00, // i64.store
	0x0b, // end
}

// Module with memory but no function exports.
var noExportWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	// Memory section: min 1 page
	0x05, 0x03, 0x01, 0x00, 0x01,
	// Export section: "memory" -> mem 0
	0x07, 0x0a, 0x01,
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00,
}

func openEcho(t *testing.T) (*Module, context.Context) {
	t.Helper()
	ctx := context.Background()

	mod, err := OpenBinary(ctx, "echo.wasm", echoWASM)
	if err != nil {
		t.Fatalf("OpenBinary error: %v", err)
	}
	t.Cleanup(func() { mod.Close(ctx) })
	return mod.(*Module), ctx
}

func TestCall_Echo(t *testing.T) {
	mod, ctx := openEcho(t)

	fn, err := mod.Lookup("ASK_KeyGenerate")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}

	seed, err := keybridge.ParseSeed("0102030405060708")
	if err != nil {
		t.Fatalf("ParseSeed error: %v", err)
	}

	var key keybridge.Key
	if err := fn.Call(ctx, seed, &key); err != nil {
		t.Fatalf("Call error: %v", err)
	}

	if key.String() != "0102030405060708" {
		t.Errorf("key = %s, want echoed seed 0102030405060708", key)
	}
}

func TestCall_ByteOrderPreserved(t *testing.T) {
	mod, ctx := openEcho(t)

	fn, err := mod.Lookup("ASK_KeyGenerate")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}

	seed := keybridge.Seed{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}
	var key keybridge.Key
	if err := fn.Call(ctx, seed, &key); err != nil {
		t.Fatalf("Call error: %v", err)
	}

	for i := range seed {
		if key[i] != seed[i] {
			t.Fatalf("key[%d] = %#x, want %#x (no reordering)", i, key[i], seed[i])
		}
	}
}

func TestCall_Deterministic(t *testing.T) {
	mod, ctx := openEcho(t)

	fn, err := mod.Lookup("ASK_KeyGenerate")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}

	seed := keybridge.Seed{0xde, 0xad, 0xbe, 0xef, 0x00, 0x00, 0x00, 0x01}
	var first keybridge.Key
	if err := fn.Call(ctx, seed, &first); err != nil {
		t.Fatalf("first Call error: %v", err)
	}

	for i := 0; i < 3; i++ {
		var key keybridge.Key
		if err := fn.Call(ctx, seed, &key); err != nil {
			t.Fatalf("Call %d error: %v", i, err)
		}
		if key != first {
			t.Fatalf("call %d: key = %s, want %s", i, key, first)
		}
	}
}

func TestLookup_MissingExport(t *testing.T) {
	ctx := context.Background()

	mod, err := OpenBinary(ctx, "noexport.wasm", noExportWASM)
	if err != nil {
		t.Fatalf("OpenBinary error: %v", err)
	}
	defer mod.Close(ctx)

	_, err = mod.Lookup("ASK_KeyGenerate")
	if err == nil {
		t.Fatal("expected error for missing export")
	}
	if errors.ExitStatus(err) != errors.ExitResolve {
		t.Errorf("ExitStatus = %d, want %d", errors.ExitStatus(err), errors.ExitResolve)
	}
}

func TestOpenBinary_Garbage(t *testing.T) {
	ctx := context.Background()

	_, err := OpenBinary(ctx, "garbage.wasm", []byte{0x00, 0x61, 0x73, 0x6d, 0xff, 0xff})
	if err == nil {
		t.Fatal("expected error for malformed module")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindOpenFailed}) {
		t.Errorf("error = %v, want load phase", err)
	}
}

func TestOpen_FromFile(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "echo.wasm")
	if err := os.WriteFile(path, echoWASM, 0o644); err != nil {
		t.Fatalf("write module: %v", err)
	}

	mod, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer mod.Close(ctx)

	if _, err := mod.Lookup("ASK_KeyGenerate"); err != nil {
		t.Errorf("Lookup error: %v", err)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, filepath.Join(t.TempDir(), "absent.wasm"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.ExitStatus(err) != errors.ExitLoad {
		t.Errorf("ExitStatus = %d, want %d", errors.ExitStatus(err), errors.ExitLoad)
	}
}

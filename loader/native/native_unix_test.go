//go:build darwin || linux || freebsd

package native

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/candiag/keybridge/errors"
)

func TestOpen_MissingFile(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, filepath.Join(t.TempDir(), "no_such_lib.so"))
	if err == nil {
		t.Fatal("expected error for missing library")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindOpenFailed}) {
		t.Errorf("error = %v, want load phase", err)
	}
}

func TestOpen_NotALibrary(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "junk.so")
	if err := os.WriteFile(path, []byte("definitely not a shared object"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	_, err := Open(ctx, path)
	if err == nil {
		t.Fatal("expected error for non-library file")
	}
	if errors.ExitStatus(err) != errors.ExitLoad {
		t.Errorf("ExitStatus = %d, want %d", errors.ExitStatus(err), errors.ExitLoad)
	}
}

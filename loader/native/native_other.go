//go:build !windows && !darwin && !linux && !freebsd

package native

import (
	"fmt"
	"runtime"

	"github.com/candiag/keybridge/errors"
)

func dlOpen(path string) (uintptr, error) {
	return 0, errors.Unsupported(errors.PhaseLoad,
		fmt.Sprintf("native modules are not supported on %s/%s", runtime.GOOS, runtime.GOARCH))
}

func dlSym(handle uintptr, name string) (uintptr, error) {
	return 0, errors.Unsupported(errors.PhaseResolve, "native modules unsupported")
}

func dlClose(handle uintptr) error {
	return nil
}

func call(fn uintptr, seed, key *byte) {}

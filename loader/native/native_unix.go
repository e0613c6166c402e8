//go:build darwin || linux || freebsd

package native

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

func dlOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_GLOBAL|purego.RTLD_NOW)
}

func dlSym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func dlClose(handle uintptr) error {
	return purego.Dlclose(handle)
}

func call(fn uintptr, seed, key *byte) {
	purego.SyscallN(fn, uintptr(unsafe.Pointer(seed)), uintptr(unsafe.Pointer(key)))
	runtime.KeepAlive(seed)
	runtime.KeepAlive(key)
}

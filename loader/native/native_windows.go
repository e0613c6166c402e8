//go:build windows

package native

import (
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

func dlOpen(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}

func dlSym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func dlClose(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

func call(fn uintptr, seed, key *byte) {
	// The vendor DLLs use the default stdcall/cdecl convention; with two
	// register arguments the two are indistinguishable here.
	syscall.SyscallN(fn, uintptr(unsafe.Pointer(seed)), uintptr(unsafe.Pointer(key)))
	runtime.KeepAlive(seed)
	runtime.KeepAlive(key)
}

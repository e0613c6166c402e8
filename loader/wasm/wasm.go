package wasm

import (
	"context"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/candiag/keybridge"
	"github.com/candiag/keybridge/errors"
	"github.com/candiag/keybridge/loader"
)

const wasmPageSize = 65536

// Module is an instantiated core WebAssembly module with its own runtime.
type Module struct {
	runtime  wazero.Runtime
	instance api.Module
	path     string
}

// Open reads and instantiates the module at path.
func Open(ctx context.Context, path string) (loader.Module, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read module "+path, err)
	}
	return OpenBinary(ctx, path, bin)
}

// OpenBinary instantiates an in-memory module binary. path is used for
// diagnostics only.
func OpenBinary(ctx context.Context, path string, bin []byte) (loader.Module, error) {
	rt := wazero.NewRuntime(ctx)

	instance, err := rt.Instantiate(ctx, bin)
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Load("instantiate module "+path, err)
	}

	if instance.Memory() == nil {
		rt.Close(ctx)
		return nil, errors.Load("module "+path+" defines no linear memory", nil)
	}

	loader.Logger().Debug("wasm module instantiated",
		zap.String("path", path))

	return &Module{runtime: rt, instance: instance, path: path}, nil
}

// Lookup resolves an exported function by name.
func (m *Module) Lookup(name string) (loader.Function, error) {
	fn := m.instance.ExportedFunction(name)
	if fn == nil {
		return nil, errors.Resolve(name, nil)
	}
	return &guestFunc{module: m, fn: fn, name: name}, nil
}

// Close releases the module and its runtime.
func (m *Module) Close(ctx context.Context) error {
	return m.runtime.Close(ctx)
}

type guestFunc struct {
	module *Module
	fn     api.Function
	name   string
}

// Call stages seed and a zeroed key buffer in a freshly grown memory page,
// invokes the guest with the two offsets, and reads the key back. A guest
// trap is an invoke-phase error; the bridge has no trap story for native
// modules, but sandboxed ones can fail cleanly.
func (g *guestFunc) Call(ctx context.Context, seed keybridge.Seed, key *keybridge.Key) error {
	mem := g.module.instance.Memory()

	prevPages, ok := mem.Grow(1)
	if !ok {
		return errors.Invoke("grow guest memory", nil)
	}
	base := prevPages * wasmPageSize

	if !mem.Write(base, seed[:]) {
		return errors.Invoke("write seed to guest memory", nil)
	}
	// Fresh pages are zeroed, but the zero-initialized key buffer is part
	// of the call contract, not an artifact of page allocation.
	if !mem.Write(base+keybridge.SeedSize, make([]byte, keybridge.SeedSize)) {
		return errors.Invoke("zero key buffer in guest memory", nil)
	}

	if _, err := g.fn.Call(ctx, uint64(base), uint64(base+keybridge.SeedSize)); err != nil {
		return errors.Invoke("call "+g.name, err)
	}

	out, ok := mem.Read(base+keybridge.SeedSize, keybridge.SeedSize)
	if !ok {
		return errors.Invoke("read key from guest memory", nil)
	}
	copy(key[:], out)
	return nil
}

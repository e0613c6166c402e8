package bridge

import (
	"context"

	"go.uber.org/zap"

	"github.com/candiag/keybridge"
	"github.com/candiag/keybridge/errors"
	"github.com/candiag/keybridge/loader"
	"github.com/candiag/keybridge/loader/native"
	"github.com/candiag/keybridge/loader/wasm"
)

// ExportName is the exported function every module must provide. It is a
// fixed out-of-band agreement with the vendor libraries, not configurable
// at runtime.
const ExportName = "ASK_KeyGenerate"

// Open loads the module at path, selecting the backend from the file's
// magic bytes: WebAssembly modules go to wazero, everything else to the
// platform's dynamic loader.
func Open(ctx context.Context, path string) (loader.Module, error) {
	kind, err := loader.Detect(path)
	if err != nil {
		return nil, err
	}
	if kind == loader.KindWASM {
		return wasm.Open(ctx, path)
	}
	return native.Open(ctx, path)
}

// Bridge performs a single seed-to-key invocation against a loadable
// module. The zero value is not usable; construct with New.
type Bridge struct {
	open loader.OpenFunc
	log  *zap.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithOpener replaces the module opener. Tests use this to inject fakes.
func WithOpener(open loader.OpenFunc) Option {
	return func(b *Bridge) { b.open = open }
}

// WithLogger sets the bridge's logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(b *Bridge) { b.log = log }
}

// New creates a Bridge that opens real modules via Open.
func New(opts ...Option) *Bridge {
	b := &Bridge{
		open: Open,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run executes the whole contract: decode seedHex, load the module at
// path, resolve ExportName, invoke it with the seed and a zeroed key
// buffer, and return the key. The module is released on every path reached
// after a successful open. Every failure is terminal; there are no retries.
func (b *Bridge) Run(ctx context.Context, path, seedHex string) (keybridge.Key, error) {
	var key keybridge.Key

	seed, err := keybridge.ParseSeed(seedHex)
	if err != nil {
		return key, errors.InvalidSeed(err)
	}

	mod, err := b.open(ctx, path)
	if err != nil {
		return key, err
	}
	defer mod.Close(ctx)

	fn, err := mod.Lookup(ExportName)
	if err != nil {
		return key, err
	}

	gen := AsGenerator(fn)
	key, err = gen.GenerateKey(ctx, seed)
	if err != nil {
		return key, err
	}

	b.log.Debug("key generated",
		zap.String("module", path),
		zap.Stringer("seed", seed))

	return key, nil
}

// AsGenerator adapts a resolved module function to the KeyGenerator
// capability.
func AsGenerator(fn loader.Function) keybridge.KeyGenerator {
	return &generator{fn: fn}
}

type generator struct {
	fn loader.Function
}

func (g *generator) GenerateKey(ctx context.Context, seed keybridge.Seed) (keybridge.Key, error) {
	var key keybridge.Key
	if err := g.fn.Call(ctx, seed, &key); err != nil {
		return keybridge.Key{}, err
	}
	return key, nil
}

package native

import (
	"context"

	"go.uber.org/zap"

	"github.com/candiag/keybridge"
	"github.com/candiag/keybridge/errors"
	"github.com/candiag/keybridge/loader"
)

// Library is an open handle to a platform shared library.
type Library struct {
	handle uintptr
	path   string
}

// Open loads the shared library at path into this process.
func Open(ctx context.Context, path string) (loader.Module, error) {
	handle, err := dlOpen(path)
	if err != nil {
		return nil, errors.Load("load library "+path, err)
	}

	loader.Logger().Debug("library loaded",
		zap.String("path", path))

	return &Library{handle: handle, path: path}, nil
}

// Path returns the path the library was loaded from.
func (l *Library) Path() string { return l.path }

// Lookup resolves an exported symbol by name.
func (l *Library) Lookup(name string) (loader.Function, error) {
	addr, err := dlSym(l.handle, name)
	if err != nil {
		return nil, errors.Resolve(name, err)
	}

	loader.Logger().Debug("symbol resolved",
		zap.String("path", l.path),
		zap.String("symbol", name))

	return &proc{addr: addr, name: name}, nil
}

// Close unloads the library. Functions resolved from it are invalid
// afterwards.
func (l *Library) Close(ctx context.Context) error {
	return dlClose(l.handle)
}

// proc is a resolved export. The call itself cannot fail observably: the
// vendor signature returns nothing, so the only outcomes are a filled key
// buffer or a crashed process.
type proc struct {
	addr uintptr
	name string
}

func (p *proc) Call(ctx context.Context, seed keybridge.Seed, key *keybridge.Key) error {
	call(p.addr, &seed[0], &key[0])
	return nil
}

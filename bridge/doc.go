// Package bridge implements the one-shot invoker: decode the seed, open the
// module, resolve the fixed vendor export, call it once, hand back the key.
//
// The module loader is injected, so the invoker's own logic is testable
// against fakes with no real module present.
package bridge

// Package loader defines the capability the bridge needs from a loadable
// module: open it by path, resolve one export by name, call it with the
// fixed two-buffer signature, release it.
//
// Two backends implement the capability: native (dlopen/LoadLibrary, in
// loader/native) and wasm (wazero, in loader/wasm). Detect picks between
// them from the file's magic bytes.
package loader

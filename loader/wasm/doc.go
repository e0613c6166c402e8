// Package wasm loads core WebAssembly modules with wazero and calls their
// exports through the bridge's fixed two-buffer convention.
//
// The guest convention: the module defines a linear memory and exports the
// vendor function as (param i32 i32) with no results. The host grows the
// memory by one page per call and stages the seed and key buffers in the
// fresh page, so no guest allocator export is required and existing guest
// data is never clobbered.
package wasm

// Package keybridge computes seed-key challenge responses by delegating to
// a dynamically loaded vendor module.
//
// Diagnostic security-access flows hand an ECU-supplied 8-byte seed to a
// vendor library that derives the matching 8-byte key. Those libraries are
// often built for a different architecture than the caller (a 32-bit DLL
// behind a 64-bit tool), so the call has to happen in a separate process
// built to match the module. The keybridge binary is that process: it loads
// the module, calls its single exported function once, prints the key as
// hex on stdout and exits.
//
// # Architecture Overview
//
//	keybridge/           Root package with the Seed/Key types and the
//	│                    KeyGenerator capability interface
//	├── bridge/          The invoker: decode seed, open module, resolve the
//	│                    export, call it, format the key
//	├── loader/          Module and Function capability interfaces plus
//	│                    module-format detection
//	│   ├── native/      dlopen/LoadLibrary backend for platform shared
//	│   │                libraries
//	│   └── wasm/        wazero backend for core WebAssembly modules
//	├── errors/          Structured error types carrying the failure phase
//	└── cmd/keybridge/   The command-line binary
//
// # Quick Start
//
// Invoke the binary with a module path and a 16-hex-character seed:
//
//	keybridge ./vendor_seedkey.so 750D4C7799B585A6
//	1F00C2A4E98D3B77
//
// Or embed the invoker:
//
//	key, err := bridge.New().Run(ctx, path, seedHex)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(key)
package keybridge

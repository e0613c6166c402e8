// Package native loads platform shared libraries (.so, .dylib, .dll) and
// calls their exports through the platform's default C calling convention.
//
// The library must be built for the same architecture as this process; a
// mismatch surfaces as the platform's own load error. Bridging to a
// 32-bit module means building keybridge itself for that architecture
// (GOARCH=386) and running it as a helper process.
package native

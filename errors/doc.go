// Package errors provides the structured error types used across keybridge.
//
// Every failure carries the Phase it occurred in, which determines the
// process exit status, and a Kind for programmatic matching. Callers of the
// binary branch on the exit status; the message text is for humans only.
package errors

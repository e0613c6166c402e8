// Command keybridge loads a seed-key module, calls its ASK_KeyGenerate
// export with an 8-byte seed, and prints the 8-byte key as hex.
//
// It exists as a separate binary so a caller of one architecture can use a
// module built for another: build keybridge to match the module and run it
// as a helper process.
//
//	keybridge <module-path> <seed-hex>
//
// seed-hex is exactly 16 hexadecimal characters. On success the only
// output is one line of 16 uppercase hex characters on stdout. On failure
// a single diagnostic line goes to stderr and the exit status identifies
// the phase: 1 usage, 2 load, 3 symbol resolution, 4 invocation trap.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/candiag/keybridge/bridge"
	"github.com/candiag/keybridge/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "Usage: keybridge <module-path> <seed-hex>")
		return errors.ExitUsage
	}

	key, err := bridge.New().Run(context.Background(), args[0], args[1])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return errors.ExitStatus(err)
	}

	fmt.Fprintln(stdout, key)
	return errors.ExitOK
}

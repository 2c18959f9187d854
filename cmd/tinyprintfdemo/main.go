// Command tinyprintfdemo exercises the Host facade against a raw stdout
// file descriptor instead of a buffered Writer, to show the engine driving
// a one-character sink end to end rather than through a test harness.
package main

import (
	"fmt"
	"os"

	"github.com/db47h/tinyprintf"
	"github.com/xyproto/env/v2"
)

func main() {
	verbose := env.Bool("TINYPRINTF_VERBOSE")

	n := tinyprintf.Host(rawPutChar, "tinyprintf demo: %d items, %.2f%% done, addr=%p\n",
		7, 42.5, &verbose)

	if verbose {
		fmt.Fprintf(os.Stderr, "tinyprintfdemo: wrote %d bytes via the host sink\n", n)
	}
}

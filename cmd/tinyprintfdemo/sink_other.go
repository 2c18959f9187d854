//go:build !unix

package main

import "os"

// rawPutChar falls back to a one-byte os.Stdout write on platforms without
// golang.org/x/sys/unix support (e.g. plan9, js/wasm).
func rawPutChar(b byte) {
	os.Stdout.Write([]byte{b})
}

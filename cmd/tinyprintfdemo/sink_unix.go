//go:build unix

package main

import "golang.org/x/sys/unix"

// rawPutChar writes directly to file descriptor 1 via the write(2) syscall,
// one byte per call, bypassing os.Stdout entirely. This is the
// "host single-character sink" of the core engine's design, made concrete
// against a real freestanding-style I/O path rather than an in-process
// buffer.
func rawPutChar(b byte) {
	buf := [1]byte{b}
	for {
		_, err := unix.Write(1, buf[:])
		if err != unix.EINTR {
			return
		}
	}
}

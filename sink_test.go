package tinyprintf

import "testing"

func TestCursorBufferTruncation(t *testing.T) {
	buf := make([]byte, 4)
	c := newBufferCursor(buf)
	for _, b := range []byte("hello") {
		c.emit(b)
	}
	c.terminate()
	if c.idx != 5 {
		t.Fatalf("idx = %d, want 5", c.idx)
	}
	if string(buf) != "hel\x00" {
		t.Fatalf("buf = %q, want %q", buf, "hel\x00")
	}
}

func TestCursorCapacityZeroInert(t *testing.T) {
	buf := []byte{0x42}
	c := newBufferCursor(buf[:0])
	c.emit('x')
	c.terminate()
	if buf[0] != 0x42 {
		t.Fatalf("buf[0] = %v, want untouched 0x42", buf[0])
	}
	if c.idx != 1 {
		t.Fatalf("idx = %d, want 1", c.idx)
	}
}

func TestCursorCallback(t *testing.T) {
	var got []byte
	c := newCallbackCursor(func(b byte, ctx any) {
		got = append(got, b)
		if ctx != "ctx" {
			t.Fatalf("ctx = %v, want ctx", ctx)
		}
	}, "ctx")
	c.emitString("ab")
	c.terminate() // no-op for callback sinks
	if string(got) != "ab" {
		t.Fatalf("got = %q, want %q", got, "ab")
	}
}

func TestCursorHost(t *testing.T) {
	var got []byte
	c := newHostCursor(func(b byte) { got = append(got, b) })
	c.emitString("xyz")
	if string(got) != "xyz" {
		t.Fatalf("got = %q, want %q", got, "xyz")
	}
}

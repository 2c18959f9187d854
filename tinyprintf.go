package tinyprintf

import "github.com/db47h/tinyprintf/arg"

// Bounded renders format against args into dest, a fixed-capacity buffer.
// dest is NUL-terminated at min(n, len(dest)-1) when len(dest) >= 1; a
// zero-length dest is left untouched. The returned count is the number of
// bytes that would have been written had dest been unbounded, independent
// of truncation (spec §4.5, §7).
func Bounded(dest []byte, format string, args ...any) int {
	return BoundedArgs(dest, format, arg.Collect(args...))
}

// BoundedArgs is Bounded's explicit-argument-list counterpart (spec §9's
// "bounded-format-va"), for callers that already hold an arg.List.
func BoundedArgs(dest []byte, format string, args arg.List) int {
	c := newBufferCursor(dest)
	return run(c, format, args)
}

// Callback renders format against args, invoking cb once per output byte
// with the running byte and the supplied opaque context. There is no
// capacity limit.
func Callback(cb func(b byte, ctx any), ctx any, format string, args ...any) int {
	return CallbackArgs(cb, ctx, format, arg.Collect(args...))
}

// CallbackArgs is Callback's explicit-argument-list counterpart.
func CallbackArgs(cb func(b byte, ctx any), ctx any, format string, args arg.List) int {
	c := newCallbackCursor(cb, ctx)
	return run(c, format, args)
}

// Host renders format against args, invoking put once per output byte, in
// order. There is no capacity limit and no error channel: put is a
// best-effort sink (spec §6).
func Host(put PutFunc, format string, args ...any) int {
	return HostArgs(put, format, arg.Collect(args...))
}

// HostArgs is Host's explicit-argument-list counterpart.
func HostArgs(put PutFunc, format string, args arg.List) int {
	c := newHostCursor(put)
	return run(c, format, args)
}

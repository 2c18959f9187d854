/*
Package tinyprintf implements a reentrant, allocation-hostile formatted-text
engine in the tradition of C's printf family, sized for resource-constrained
output targets (microcontrollers, freestanding code, kernels).

The engine understands a well-defined subset of the printf grammar: flags
(-, +, space, #, 0), width (including "*"), precision (including "."  alone
and "*"), the length modifiers hh, h, l, ll, j, z, t, and the specifiers
d i u b o x X f F c s p %. The b specifier (base 2) is a deliberate
extension; e, g, a, n, positional arguments and locale handling are not
supported, and %n in particular is omitted on security grounds.

Output is always directed through a Sink, never returned as an allocated
string. Three sink flavors are available, each exposed as a pair of
facades — one taking a Go-idiomatic ...any argument list, the other taking
an explicit arg.List for callers that already have their arguments in
tagged form:

	Bounded / BoundedArgs       write into a fixed-capacity []byte, NUL-terminated
	Callback / CallbackArgs     invoke a per-byte callback with an opaque context
	Host / HostArgs             invoke a single-character sink function

All three report the number of bytes that would have been written had the
destination been unbounded, independent of truncation — so callers can
detect truncation by comparing the return value against the supplied
capacity, exactly as with C's snprintf.

The package performs no file I/O, no locale lookups and no heap allocation
of its own in the rendering hot path: the integer and float renderers use
fixed-size stack scratch arrays and defer all output to the Sink.
*/
package tinyprintf

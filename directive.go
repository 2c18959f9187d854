package tinyprintf

// flags is the directive flag set of spec §3: a small bitset rather than a
// struct of bools, since every flag interaction rule in §4.2/§4.3 is phrased
// in terms of set/clear/test.
type flags uint16

const (
	flagLeftJustify flags = 1 << iota
	flagPlus
	flagSpace
	flagZeroPad
	flagAlternateForm
	flagPrecisionGiven
	flagUppercase
	flagSignedInteger
	flagNegative
)

func (f flags) has(bit flags) bool { return f&bit != 0 }

// length is the length modifier sub-grammar of spec §4.4. In this engine the
// modifiers act as post-extraction casts (spec §9 design note) rather than
// extraction-width selectors, since the argument has already arrived as a
// Go-typed value by the time the interpreter sees it.
type length byte

const (
	lenDefault length = iota
	lenHH
	lenH
	lenL
	lenLL
	lenJ
	lenZ
	lenT
)

// directive is the transient per-% record assembled by the scanner and
// consumed by the integer/float renderers. It exists only for the duration
// of one %-scan iteration.
type directive struct {
	flags     flags
	width     int
	precision int
	length    length
	specifier byte
}

package tinyprintf

import (
	"unsafe"

	"github.com/db47h/tinyprintf/arg"
)

const pointerHexWidth = int(unsafe.Sizeof(uintptr(0))) * 2

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// run is the Format Interpreter of spec §4.4: it scans format, assembling a
// directive per %-sequence, pulls the matching tagged argument, and
// dispatches to the integer/float/string/char/pointer renderers or emits
// literal bytes. It NUL-terminates a buffer sink via c.terminate before
// returning the byte count the sink would have received (spec §4.5).
func run(c *cursor, format string, args arg.List) int {
	i := 0
	argi := 0
	for i < len(format) {
		if format[i] != '%' {
			c.emit(format[i])
			i++
			continue
		}
		i++
		if i >= len(format) {
			break // malformed tail: "%" with nothing following
		}
		if format[i] == '%' {
			c.emit('%')
			i++
			continue
		}

		var d directive

		for i < len(format) {
			switch format[i] {
			case '-':
				d.flags |= flagLeftJustify
			case '+':
				d.flags |= flagPlus
			case ' ':
				d.flags |= flagSpace
			case '#':
				d.flags |= flagAlternateForm
			case '0':
				d.flags |= flagZeroPad
			default:
				goto flagsDone
			}
			i++
		}
	flagsDone:

		if i < len(format) && format[i] == '*' {
			i++
			w := nextInt(args, &argi)
			if w < 0 {
				d.flags |= flagLeftJustify
				w = -w
			}
			d.width = int(w)
		} else {
			w, has := scanDigits(format, &i)
			if has {
				d.width = w
			}
		}

		if i < len(format) && format[i] == '.' {
			i++
			d.flags |= flagPrecisionGiven
			if i < len(format) && format[i] == '*' {
				i++
				p := nextInt(args, &argi)
				if p < 0 {
					d.flags &^= flagPrecisionGiven
				} else {
					d.precision = int(p)
				}
			} else {
				p, _ := scanDigits(format, &i)
				d.precision = p
			}
		}

		d.length = lenDefault
		if i < len(format) {
			switch format[i] {
			case 'h':
				i++
				d.length = lenH
				if i < len(format) && format[i] == 'h' {
					d.length = lenHH
					i++
				}
			case 'l':
				i++
				d.length = lenL
				if i < len(format) && format[i] == 'l' {
					d.length = lenLL
					i++
				}
			case 'j':
				d.length = lenJ
				i++
			case 'z':
				d.length = lenZ
				i++
			case 't':
				d.length = lenT
				i++
			}
		}

		if i >= len(format) {
			break // malformed tail: flags/width/precision/length with no specifier
		}
		specifier := format[i]
		d.specifier = specifier
		i++

		dispatch(c, specifier, d, args, &argi)
	}
	c.terminate()
	return c.idx
}

func scanDigits(format string, i *int) (int, bool) {
	has := false
	n := 0
	for *i < len(format) && isDigit(format[*i]) {
		has = true
		n = n*10 + int(format[*i]-'0')
		*i++
	}
	return n, has
}

func dispatch(c *cursor, specifier byte, d directive, args arg.List, argi *int) {
	switch specifier {
	case 'd', 'i':
		d.flags |= flagSignedInteger
		v := castSigned(nextSigned(args, argi), d.length)
		var mag uint64
		if v < 0 {
			mag = uint64(-v)
			d.flags |= flagNegative
		} else {
			mag = uint64(v)
		}
		renderInteger(c, mag, 10, d)
	case 'u':
		renderInteger(c, castUnsigned(nextUnsigned(args, argi), d.length), 10, d)
	case 'b':
		renderInteger(c, castUnsigned(nextUnsigned(args, argi), d.length), 2, d)
	case 'o':
		renderInteger(c, castUnsigned(nextUnsigned(args, argi), d.length), 8, d)
	case 'x':
		renderInteger(c, castUnsigned(nextUnsigned(args, argi), d.length), 16, d)
	case 'X':
		d.flags |= flagUppercase
		renderInteger(c, castUnsigned(nextUnsigned(args, argi), d.length), 16, d)
	case 'f', 'F':
		renderFloat(c, nextFloat(args, argi), d)
	case 'c':
		renderChar(c, byte(castSigned(nextSigned(args, argi), d.length)), d)
	case 's':
		renderString(c, nextString(args, argi), d)
	case 'p':
		d.flags = flagUppercase | flagZeroPad
		d.width = pointerHexWidth
		renderInteger(c, uint64(nextPointer(args, argi)), 16, d)
	default:
		// unknown specifier: emit literally, the directive's argument (if
		// any) is not pulled from the list (spec §4.4).
		c.emit(specifier)
	}
}

func castSigned(v int64, l length) int64 {
	switch l {
	case lenHH:
		return int64(int8(v))
	case lenH:
		return int64(int16(v))
	default:
		return v
	}
}

func castUnsigned(v uint64, l length) uint64 {
	switch l {
	case lenHH:
		return uint64(uint8(v))
	case lenH:
		return uint64(uint16(v))
	default:
		return v
	}
}

func nextInt(args arg.List, argi *int) int64 {
	v, ok := args.At(*argi)
	*argi++
	if !ok {
		return 0
	}
	switch v.Kind {
	case arg.KindInt:
		return v.I
	case arg.KindUint:
		return int64(v.U)
	case arg.KindFloat:
		return int64(v.F)
	default:
		return 0
	}
}

func nextSigned(args arg.List, argi *int) int64 {
	v, ok := args.At(*argi)
	*argi++
	if !ok {
		return 0
	}
	switch v.Kind {
	case arg.KindInt:
		return v.I
	case arg.KindUint:
		return int64(v.U)
	case arg.KindFloat:
		return int64(v.F)
	case arg.KindPointer:
		return int64(v.Ptr)
	default:
		return 0
	}
}

func nextUnsigned(args arg.List, argi *int) uint64 {
	v, ok := args.At(*argi)
	*argi++
	if !ok {
		return 0
	}
	switch v.Kind {
	case arg.KindUint:
		return v.U
	case arg.KindInt:
		return uint64(v.I)
	case arg.KindFloat:
		return uint64(v.F)
	case arg.KindPointer:
		return uint64(v.Ptr)
	default:
		return 0
	}
}

func nextFloat(args arg.List, argi *int) float64 {
	v, ok := args.At(*argi)
	*argi++
	if !ok {
		return 0
	}
	switch v.Kind {
	case arg.KindFloat:
		return v.F
	case arg.KindInt:
		return float64(v.I)
	case arg.KindUint:
		return float64(v.U)
	default:
		return 0
	}
}

func nextString(args arg.List, argi *int) string {
	v, ok := args.At(*argi)
	*argi++
	if !ok || v.Kind != arg.KindString {
		return ""
	}
	return v.S
}

func nextPointer(args arg.List, argi *int) uintptr {
	v, ok := args.At(*argi)
	*argi++
	if !ok {
		return 0
	}
	switch v.Kind {
	case arg.KindPointer:
		return v.Ptr
	case arg.KindUint:
		return uintptr(v.U)
	case arg.KindInt:
		return uintptr(v.I)
	default:
		return 0
	}
}

// renderChar emits one character, applying width and pad direction; the
// precision and zero-pad flags have no effect on %c (spec §4.4 table).
func renderChar(c *cursor, ch byte, d directive) {
	pad := d.width - 1
	if pad < 0 {
		pad = 0
	}
	if d.flags.has(flagLeftJustify) {
		c.emit(ch)
		c.emitRepeat(' ', pad)
	} else {
		c.emitRepeat(' ', pad)
		c.emit(ch)
	}
}

// renderString emits up to precision bytes of s (all of s if precision is
// unset), applying width and pad direction.
func renderString(c *cursor, s string, d directive) {
	n := len(s)
	if d.flags.has(flagPrecisionGiven) && d.precision < n {
		n = d.precision
	}
	pad := d.width - n
	if pad < 0 {
		pad = 0
	}
	if d.flags.has(flagLeftJustify) {
		c.emitString(s[:n])
		c.emitRepeat(' ', pad)
	} else {
		c.emitRepeat(' ', pad)
		c.emitString(s[:n])
	}
}

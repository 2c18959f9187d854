package tinyprintf

const lowerDigits = "0123456789abcdef"
const upperDigits = "0123456789ABCDEF"

// renderInteger implements the Integer Renderer of spec §4.2: an unsigned
// 64-bit magnitude plus sign/flag state, rendered in the given base through
// the sink, respecting width, precision and all numeric flags.
//
// NEGATIVE and SIGNED_INTEGER are only meaningful for base-10 signed
// specifiers (d, i); callers for u/o/x/X/b omit both, per the flag
// interaction rule in spec §4.2.6.
func renderInteger(c *cursor, mag uint64, base int, d directive) {
	alphabet := lowerDigits
	if d.flags.has(flagUppercase) {
		alphabet = upperDigits
	}

	var scratch [33]byte
	n := 0
	v := mag
	for {
		scratch[n] = alphabet[v%uint64(base)]
		n++
		v /= uint64(base)
		if v == 0 {
			break
		}
	}

	var signChar byte
	if d.flags.has(flagSignedInteger) {
		switch {
		case d.flags.has(flagNegative):
			signChar = '-'
		case d.flags.has(flagPlus):
			signChar = '+'
		case d.flags.has(flagSpace):
			signChar = ' '
		}
	}

	altHex := base == 16 && d.flags.has(flagAlternateForm) && mag != 0

	// effective digit count: spec §4.2 step 3
	digitCount := n
	if d.flags.has(flagPrecisionGiven) {
		if digitCount < d.precision {
			digitCount = d.precision
		}
		if d.precision == 0 && mag == 0 {
			digitCount = 0
		}
	}
	zerosForPrecision := digitCount - n
	if zerosForPrecision < 0 {
		zerosForPrecision = 0
	}
	if digitCount == 0 {
		n = 0 // magnitude-0, precision-0: no digits at all
	}

	octalZero := base == 8 && d.flags.has(flagAlternateForm) && digitCount > 0 &&
		zerosForPrecision == 0 && scratch[n-1] != '0'
	if octalZero {
		digitCount++
	}

	prefixLen := 0
	if signChar != 0 {
		prefixLen++
	}
	if altHex {
		prefixLen += 2
	}

	total := prefixLen + digitCount
	pad := d.width - total
	if pad < 0 {
		pad = 0
	}

	emitPrefix := func() {
		if signChar != 0 {
			c.emit(signChar)
		}
		if altHex {
			if d.flags.has(flagUppercase) {
				c.emitString("0X")
			} else {
				c.emitString("0x")
			}
		}
	}
	emitDigits := func() {
		if octalZero {
			c.emit('0')
		}
		c.emitRepeat('0', zerosForPrecision)
		for i := n - 1; i >= 0; i-- {
			c.emit(scratch[i])
		}
	}

	zeroPad := d.flags.has(flagZeroPad) && !d.flags.has(flagLeftJustify) && !d.flags.has(flagPrecisionGiven)

	switch {
	case zeroPad:
		emitPrefix()
		c.emitRepeat('0', pad)
		emitDigits()
	case !d.flags.has(flagLeftJustify):
		c.emitRepeat(' ', pad)
		emitPrefix()
		emitDigits()
	default: // left-justify
		emitPrefix()
		emitDigits()
		c.emitRepeat(' ', pad)
	}
}

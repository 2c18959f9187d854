package tinyprintf

const floatMagnitudeLimit = 1e17

// maxFloatPrecision bounds the number of fraction digits actually computed
// by rounding (spec §4.3 step 2 / §7): requests beyond this are still
// honored in full in the output, but digits past position 9 are emitted as
// '0' rather than rounded.
const maxFloatPrecision = 9

var pow10Table = [maxFloatPrecision + 1]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// renderFloat implements the Float Renderer of spec §4.3: a finite float64
// split into integral and fractional parts at the requested precision,
// rounded half-away-from-zero, with fractional carry propagated into the
// integral part.
func renderFloat(c *cursor, value float64, d directive) {
	precision := 6
	if d.flags.has(flagPrecisionGiven) {
		precision = d.precision
	}
	roundPrecision := precision
	if roundPrecision > maxFloatPrecision {
		roundPrecision = maxFloatPrecision
	}

	if value < 0 {
		d.flags |= flagNegative
	}
	negative := d.flags.has(flagNegative)
	magnitude := value
	if negative {
		magnitude = -magnitude
	}

	var signChar byte
	switch {
	case negative:
		signChar = '-'
	case d.flags.has(flagPlus):
		signChar = '+'
	case d.flags.has(flagSpace):
		signChar = ' '
	}

	if magnitude >= floatMagnitudeLimit {
		emitFloatField(c, d, signChar, nil, 0, nil, 0, 0, false)
		return
	}

	whole := uint64(magnitude)
	frac := magnitude - float64(whole)

	scale := pow10Table[roundPrecision]
	fracInt := uint64(frac*float64(scale) + 0.5)
	if fracInt >= scale {
		fracInt -= scale
		whole++
	}

	// whole digits, LSB-first, reversed at emission time (mirrors intfmt.go)
	var wholeScratch [20]byte
	wn := 0
	wv := whole
	for {
		wholeScratch[wn] = lowerDigits[wv%10]
		wn++
		wv /= 10
		if wv == 0 {
			break
		}
	}

	// rounded fraction digits, MSB-first, zero-padded to roundPrecision;
	// positions roundPrecision..precision-1 are emitted as plain '0' by
	// emitFloatField rather than rounded (spec §4.3 step 2 / §7).
	var fracScratch [maxFloatPrecision]byte
	fv := fracInt
	for i := roundPrecision - 1; i >= 0; i-- {
		fracScratch[i] = lowerDigits[fv%10]
		fv /= 10
	}

	emitFloatField(c, d, signChar, &wholeScratch, wn, &fracScratch, roundPrecision, precision, precision > 0)
}

// emitFloatField composes sign + whole digits + optional '.' + fraction
// digits and applies width/ZERO_PAD/LEFT_JUSTIFY in the same three-phase
// style as the integer renderer (spec §4.3 steps 9-10). whole is stored
// LSB-first with length wn; frac holds realDigits rounded MSB-first digits,
// followed by totalDigits-realDigits emitted digits of '0' for requested
// precision beyond the rounding cap.
func emitFloatField(c *cursor, d directive, signChar byte, whole *[20]byte, wn int, frac *[maxFloatPrecision]byte, realDigits, totalDigits int, dot bool) {
	bodyLen := wn + totalDigits
	if dot {
		bodyLen++
	}
	prefixLen := 0
	if signChar != 0 {
		prefixLen = 1
	}
	total := prefixLen + bodyLen
	pad := d.width - total
	if pad < 0 {
		pad = 0
	}

	emitSign := func() {
		if signChar != 0 {
			c.emit(signChar)
		}
	}
	emitBody := func() {
		for i := wn - 1; i >= 0; i-- {
			c.emit(whole[i])
		}
		if dot {
			c.emit('.')
		}
		for i := 0; i < realDigits; i++ {
			c.emit(frac[i])
		}
		c.emitRepeat('0', totalDigits-realDigits)
	}

	zeroPad := d.flags.has(flagZeroPad) && !d.flags.has(flagLeftJustify)

	switch {
	case zeroPad:
		emitSign()
		c.emitRepeat('0', pad)
		emitBody()
	case !d.flags.has(flagLeftJustify):
		c.emitRepeat(' ', pad)
		emitSign()
		emitBody()
	default:
		emitSign()
		emitBody()
		c.emitRepeat(' ', pad)
	}
}

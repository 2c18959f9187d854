package tinyprintf

import "testing"

func render(t *testing.T, fn func(c *cursor)) string {
	t.Helper()
	buf := make([]byte, 256)
	c := newBufferCursor(buf)
	fn(c)
	c.terminate()
	return string(buf[:c.idx])
}

func TestRenderIntegerBasic(t *testing.T) {
	cases := []struct {
		name string
		mag  uint64
		base int
		d    directive
		want string
	}{
		{"decimal", 42, 10, directive{}, "42"},
		{"hex-lower", 0xabcd, 16, directive{}, "abcd"},
		{"hex-upper", 0xabcd, 16, directive{flags: flagUppercase}, "ABCD"},
		{"octal", 8, 8, directive{}, "10"},
		{"binary", 5, 2, directive{}, "101"},
		{"width-space-pad", 9, 10, directive{width: 5}, "    9"},
		{"width-left-justify", 9, 10, directive{width: 5, flags: flagLeftJustify}, "9    "},
		{"zero-pad", 9, 10, directive{width: 5, flags: flagZeroPad}, "00009"},
		{"zero-pad-cancelled-by-left", 9, 10, directive{width: 5, flags: flagZeroPad | flagLeftJustify}, "9    "},
		{"precision-cancels-zero-pad", 42, 10, directive{width: 8, flags: flagZeroPad | flagPrecisionGiven, precision: 3}, "     042"},
		{"alt-hex", 0x1234abcd, 16, directive{flags: flagAlternateForm}, "0x1234abcd"},
		{"alt-octal", 8, 8, directive{flags: flagAlternateForm}, "010"},
		{"alt-octal-already-zero", 0, 8, directive{flags: flagAlternateForm}, "0"},
		{"precision-zero-value-zero", 0, 10, directive{flags: flagPrecisionGiven, precision: 0}, ""},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, func(c *cursor) { renderInteger(c, tt.mag, tt.base, tt.d) })
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderIntegerSignedFlags(t *testing.T) {
	cases := []struct {
		name string
		mag  uint64
		flag flags
		want string
	}{
		{"plus", 4232, flagSignedInteger | flagPlus, "+4232"},
		{"space", 4232, flagSignedInteger | flagSpace, " 4232"},
		{"plus-beats-space", 4232, flagSignedInteger | flagPlus | flagSpace, "+4232"},
		{"negative-beats-both", 4232, flagSignedInteger | flagNegative | flagPlus, "-4232"},
		{"unsigned-ignores-plus", 4232, flagPlus, "4232"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, func(c *cursor) { renderInteger(c, tt.mag, 10, directive{flags: tt.flag}) })
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExplicitWidthHexZeroPad(t *testing.T) {
	d := directive{width: 20, flags: flagAlternateForm | flagZeroPad}
	got := render(t, func(c *cursor) { renderInteger(c, 0x1234abcd, 16, d) })
	want := "0x00000000001234abcd"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

package wtf8

// validate checks that b is well-formed WTF-8. With allowSplit, b may begin
// with the last three bytes of a 4-byte sequence and end with its first three,
// as views produced by slicing at a FourByteSeq2 offset do.
func validate(b []byte, allowSplit bool) error {
	n := len(b)
	i := 0
	if allowSplit && n >= 3 && isContinuation(b[0]) {
		if !isContinuation(b[1]) || !isContinuation(b[2]) {
			return &ValidationError{Offset: 0, Reason: "malformed split low surrogate"}
		}
		i = 3
	}

	prevHigh := false
	for i < n {
		width, ok, short := sequenceLen(b[i:])
		if !ok {
			if short && allowSplit && n-i == 3 && b[i] >= 0xf0 {
				// split high surrogate closing the view
				return nil
			}
			if short {
				return &ValidationError{Offset: i, Reason: "truncated sequence"}
			}
			return &ValidationError{Offset: i, Reason: "invalid byte sequence"}
		}

		isHigh, isLow := false, false
		if width == 3 {
			seq := newThreeByteSeq(b[i:])
			isHigh, isLow = seq.isCanonicalHigh(), seq.isCanonicalLow()
		}
		if prevHigh && isLow {
			return &ValidationError{Offset: i - 3, Reason: "unmerged surrogate pair"}
		}
		prevHigh = isHigh
		i += width
	}
	return nil
}

// Valid reports whether b is well-formed, canonical WTF-8: the content a Buf
// may hold.
func Valid(b []byte) bool {
	return validate(b, false) == nil
}

package wtf8

// Frozen is an immutable, canonical WTF-8 string. Nothing writes to its bytes
// after construction, so it may be read from many goroutines without
// synchronization. The zero value is the empty string.
type Frozen struct {
	bytes []byte
}

// Freeze copies the view and canonicalizes the copy's edges.
func (v Wtf8) Freeze() *Frozen {
	bytes := make([]byte, len(v.bytes))
	copy(bytes, v.bytes)
	canonicalizeInPlace(bytes)
	return &Frozen{bytes: bytes}
}

// View returns a read-only view of the frozen content.
func (f *Frozen) View() Wtf8 {
	return viewUnchecked(f.bytes)
}

func (f *Frozen) Len() int {
	return len(f.bytes)
}

// AsString returns the content as UTF-8 without copying, or false if it holds
// surrogates.
func (f *Frozen) AsString() (string, bool) {
	if _, _, found := nextSurrogate(f.bytes, 0); found {
		return "", false
	}
	return unsafeBytesToString(f.bytes), true
}

// ToBuf copies the content into a new mutable buffer.
func (f *Frozen) ToBuf() *Buf {
	bytes := make([]byte, len(f.bytes))
	copy(bytes, f.bytes)
	return FromBytesUnchecked(bytes)
}

func (f *Frozen) Equal(other *Frozen) bool {
	return f.View().Equal(other.View())
}

func (f *Frozen) Hash() uint64 {
	return f.View().Hash()
}

func (f *Frozen) String() string {
	return f.View().String()
}

func (f *Frozen) GoString() string {
	return f.View().GoString()
}

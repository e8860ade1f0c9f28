// Package wtf8 implements WTF-8, a superset of UTF-8 that can also hold
// unpaired UTF-16 surrogate code points, so that strings coming from UTF-16
// APIs (file names and environment variables on Windows, JavaScript strings)
// survive a round trip without loss.
//
// Buf is the owned, growable string. It always holds canonical WTF-8: a high
// surrogate followed by a low surrogate is stored as the 4-byte encoding of
// the supplementary character they form, never as two 3-byte sequences.
//
// Wtf8 is a borrowed view. Views follow the OMG-WTF-8 variant: slicing at the
// midpoint of a 4-byte sequence is allowed, and the resulting view keeps the
// surrogate half it cut off in "split" form, which is the three bytes of the
// original sequence on its side of the cut. Equality, ordering and hashing
// look through split form, and pushing a view into a Buf rewrites it
// canonically, merging it with its other half when they meet again:
//
//	smile := wtf8.ViewString("😀")       // F0 9F 98 80
//	high := smile.MustSlice(0, 2)       // F0 9F 98, split U+D83D
//	low := smile.MustSlice(2, 4)        // 9F 98 80, split U+DE00
//	buf := high.ToBuf()                 // ED A0 BD
//	buf.PushWtf8(low)                   // F0 9F 98 80 again
//
// Frozen is an immutable canonical string that may be shared between
// goroutines. NewWideEncoder and NewWideDecoder stream between WTF-8 and
// WTF-16 bytes as golang.org/x/text transformers.
package wtf8

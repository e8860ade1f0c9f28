package wtf8

import (
	"fmt"
	"iter"
)

type stateKind uint8

const (
	stateHasNext stateKind = iota
	stateMatch
	stateFinished
)

// replaceState is the cursor state shared by split, match and replace.
//
//   - HasNext(cursor): search forward from cursor; emit the gap up to the next
//     match and move to Match, or emit the final gap and move to Finished.
//   - Match(start, end): emit the match and move to HasNext(end).
//   - Finished: terminal, emits nothing.
type replaceState struct {
	kind  stateKind
	start int // cursor for HasNext, match start for Match
	end   int
}

func (st replaceState) String() string {
	switch st.kind {
	case stateHasNext:
		return fmt.Sprintf("HasNext(%d)", st.start)
	case stateMatch:
		return fmt.Sprintf("Match(%d, %d)", st.start, st.end)
	default:
		return "Finished"
	}
}

// Segment is one piece of a haystack: either the text between two matches or
// a match itself. Start and End are byte offsets into the haystack; either may
// be a FourByteSeq2 midpoint.
type Segment struct {
	Text    Wtf8
	Start   int
	End     int
	IsMatch bool
}

// Segmenter walks a haystack as alternating gaps and matches:
// gap, match, gap, ..., gap. There is always one more gap than matches.
type Segmenter struct {
	search *searcher
	limit  int // remaining matches, negative for no limit
	state  replaceState
}

// Segments returns a Segmenter over v. At most limit matches are reported;
// a negative limit means all of them.
func (v Wtf8) Segments(needle Wtf8, limit int) *Segmenter {
	return &Segmenter{
		search: newSearcher(v, needle),
		limit:  limit,
		state:  replaceState{kind: stateHasNext},
	}
}

func (sg *Segmenter) nextMatch() (int, int, bool) {
	if sg.limit == 0 {
		return 0, 0, false
	}
	if sg.limit > 0 {
		sg.limit--
	}
	return sg.search.next()
}

// Next returns the next segment, or false once the haystack is exhausted.
func (sg *Segmenter) Next() (Segment, bool) {
	h := sg.search.haystack
	switch sg.state.kind {
	case stateHasNext:
		last := sg.state.start
		gapEnd := len(h)
		if start, end, ok := sg.nextMatch(); ok {
			sg.state = replaceState{kind: stateMatch, start: start, end: end}
			gapEnd = start
		} else {
			sg.state = replaceState{kind: stateFinished}
		}
		return Segment{Text: sliceTrusted(h, last, gapEnd), Start: last, End: gapEnd}, true
	case stateMatch:
		start, end := sg.state.start, sg.state.end
		sg.state = replaceState{kind: stateHasNext, start: end}
		return Segment{Text: sliceTrusted(h, start, end), Start: start, End: end, IsMatch: true}, true
	default:
		return Segment{}, false
	}
}

// All drains the segmenter as a range-over-func sequence.
func (sg *Segmenter) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for {
			seg, ok := sg.Next()
			if !ok || !yield(seg) {
				return
			}
		}
	}
}

// Split slices v into all substrings separated by sep. The pieces are views
// into v; a piece cut at the midpoint of a supplementary character carries
// that half in split form.
func (v Wtf8) Split(sep Wtf8) []Wtf8 {
	return v.SplitN(sep, -1)
}

// SplitN is like Split but returns at most n pieces, the last one holding the
// unsplit remainder. n == 0 returns nil; n < 0 returns all pieces.
func (v Wtf8) SplitN(sep Wtf8, n int) []Wtf8 {
	if n == 0 {
		return nil
	}
	limit := n - 1
	if n < 0 {
		limit = -1
	}
	var pieces []Wtf8
	for seg := range v.Segments(sep, limit).All() {
		if !seg.IsMatch {
			pieces = append(pieces, seg.Text)
		}
	}
	return pieces
}

// Matches returns every non-overlapping occurrence of needle as a view into v.
func (v Wtf8) Matches(needle Wtf8) []Wtf8 {
	var out []Wtf8
	for _, m := range v.MatchIndices(needle) {
		out = append(out, m.Text)
	}
	return out
}

// MatchIndices returns every non-overlapping occurrence of needle with its
// byte offsets.
func (v Wtf8) MatchIndices(needle Wtf8) []Segment {
	var out []Segment
	for seg := range v.Segments(needle, -1).All() {
		if seg.IsMatch {
			out = append(out, seg)
		}
	}
	return out
}

// ReplaceWith yields the pieces of v with at most n occurrences of needle
// passed through to (all of them when n < 0). Gaps are yielded unchanged.
func (v Wtf8) ReplaceWith(needle Wtf8, to func(Wtf8) Wtf8, n int) iter.Seq[Wtf8] {
	return func(yield func(Wtf8) bool) {
		for seg := range v.Segments(needle, n).All() {
			out := seg.Text
			if seg.IsMatch {
				out = to(seg.Text)
			}
			if !yield(out) {
				return
			}
		}
	}
}

// Replace returns a new buffer with every occurrence of needle replaced by
// with. Pieces are joined with the concatenation rules of PushWtf8, so
// surrogate halves that end up adjacent merge.
func (v Wtf8) Replace(needle, with Wtf8) *Buf {
	return v.ReplaceN(needle, with, -1)
}

// ReplaceN is like Replace but replaces at most n occurrences (all when n < 0).
func (v Wtf8) ReplaceN(needle, with Wtf8, n int) *Buf {
	buf := WithCapacity(len(v.bytes))
	for piece := range v.ReplaceWith(needle, func(Wtf8) Wtf8 { return with }, n) {
		buf.PushWtf8(piece)
	}
	return buf
}

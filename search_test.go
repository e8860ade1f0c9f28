package wtf8

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type SearchTestSuite struct {
	suite.Suite
	emoji Wtf8 // 😀😂😄
	high  Wtf8 // U+D83D
	low   Wtf8 // U+DE00
}

func (suite *SearchTestSuite) SetupTest() {
	suite.emoji = ViewString("😀😂😄")
	suite.high = w("\xed\xa0\xbd")
	suite.low = w("\xed\xb8\x80")
}

// Test suite runner
func TestSearchTestSuite(t *testing.T) {
	suite.Run(t, new(SearchTestSuite))
}

func (suite *SearchTestSuite) TestIndex() {
	testCases := []struct {
		name     string
		haystack Wtf8
		needle   Wtf8
		expected int
	}{
		{name: "ASCII", haystack: ViewString("hello world"), needle: ViewString("o"), expected: 4},
		{name: "missing", haystack: ViewString("abc"), needle: ViewString("d"), expected: -1},
		{name: "empty needle", haystack: ViewString("abc"), needle: ViewString(""), expected: 0},
		{name: "both empty", haystack: ViewString(""), needle: ViewString(""), expected: 0},
		{name: "needle too long", haystack: ViewString("ab"), needle: ViewString("abc"), expected: -1},
		{name: "supplementary", haystack: ViewString("a💩b"), needle: ViewString("💩"), expected: 1},
		{name: "high half of a 4-byte sequence", haystack: suite.emoji, needle: suite.high, expected: 0},
		{name: "low half of a 4-byte sequence", haystack: suite.emoji, needle: suite.low, expected: 2},
		{name: "canonical high", haystack: w("x\xed\xa0\xbd"), needle: suite.high, expected: 1},
		{name: "split needle finds canonical high", haystack: w("x\xed\xa0\xbd"), needle: suite.emoji.MustSlice(0, 2), expected: 1},
		{name: "low half followed by text", haystack: ViewString("a😀b😀"), needle: w("\x9f\x98\x80b"), expected: 3},
		{name: "lone surrogate is not a scalar", haystack: ViewString("a💩"), needle: w("\xed\xb2\xa9a"), expected: -1},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, tc.haystack.Index(tc.needle))
			suite.Equal(tc.expected >= 0, tc.haystack.Contains(tc.needle))
		})
	}
}

func (suite *SearchTestSuite) TestMatchEnds() {
	start, end, ok := newSearcher(suite.emoji, suite.high).next()
	suite.True(ok)
	suite.Equal(0, start)
	suite.Equal(2, end, "a high needle ends at the midpoint")

	start, end, ok = newSearcher(suite.emoji, suite.low).next()
	suite.True(ok)
	suite.Equal(2, start, "a low needle starts at the midpoint")
	suite.Equal(4, end)
}

func (suite *SearchTestSuite) TestCount() {
	suite.Equal(3, ViewString("cheese").Count(ViewString("e")))
	suite.Equal(5, ViewString("five").Count(ViewString("")))
	suite.Equal(3, ViewString("aé").Count(ViewString("")), "only code point boundaries")
	suite.Equal(3, suite.emoji.Count(suite.high))
	suite.Equal(1, suite.emoji.Count(suite.low))
	suite.Equal(0, suite.emoji.Count(ViewString("x")))
}

func (suite *SearchTestSuite) TestHasPrefix() {
	suite.True(ViewString("abc").HasPrefix(ViewString("ab")))
	suite.True(ViewString("abc").HasPrefix(ViewString("")))
	suite.False(ViewString("abc").HasPrefix(ViewString("bc")))
	suite.True(ViewString("😀x").HasPrefix(suite.high))
	suite.False(ViewString("😀x").HasPrefix(suite.low))
	suite.True(suite.emoji.MustSlice(2, 12).HasPrefix(suite.low), "split low edge")
}

func (suite *SearchTestSuite) TestHasSuffix() {
	suite.True(ViewString("abc").HasSuffix(ViewString("bc")))
	suite.True(ViewString("abc").HasSuffix(ViewString("")))
	suite.False(ViewString("bc").HasSuffix(ViewString("abc")))
	suite.False(ViewString("abc").HasSuffix(ViewString("ab")))
	suite.True(ViewString("x😀").HasSuffix(suite.low))
	suite.False(ViewString("x😀").HasSuffix(suite.high))
	suite.True(suite.emoji.MustSlice(0, 10).HasSuffix(suite.high), "split high edge")
}

func BenchmarkIndex(b *testing.B) {
	haystack := ViewString("Zephen Blakewood fictional software architect 石田花子 😀😂😄 developer at CodeCraft")
	needles := map[string]Wtf8{
		"ascii":   ViewString("developer"),
		"unicode": ViewString("花子"),
		"low":     w("\xed\xb8\x82"),
		"missing": ViewString("nonexistent"),
	}

	for name, needle := range needles {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = haystack.Index(needle)
			}
		})
	}
}

package wtf8

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestAppendCodePoint(t *testing.T) {
	tests := []struct {
		name     string
		cp       rune
		expected []byte
	}{
		{
			name:     "ASCII",
			cp:       'a',
			expected: []byte{'a'},
		},
		{
			name:     "2-byte rune",
			cp:       'é',
			expected: []byte{0xc3, 0xa9},
		},
		{
			name:     "3-byte rune",
			cp:       '漢',
			expected: []byte{0xe6, 0xbc, 0xa2},
		},
		{
			name:     "high surrogate",
			cp:       0xd800,
			expected: []byte{0xed, 0xa0, 0x80},
		},
		{
			name:     "low surrogate",
			cp:       0xdfff,
			expected: []byte{0xed, 0xbf, 0xbf},
		},
		{
			name:     "4-byte rune",
			cp:       '💩',
			expected: []byte{0xf0, 0x9f, 0x92, 0xa9},
		},
		{
			name:     "negative",
			cp:       -1,
			expected: []byte{0xef, 0xbf, 0xbd},
		},
		{
			name:     "beyond Unicode",
			cp:       utf8.MaxRune + 1,
			expected: []byte{0xef, 0xbf, 0xbd},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, appendCodePoint(nil, tt.cp))
			assert.Equal(t, append([]byte("x"), tt.expected...), appendCodePoint([]byte("x"), tt.cp))
		})
	}
}

func TestDecodeCodePoint(t *testing.T) {
	tests := []struct {
		name        string
		s           string
		expected    rune
		expectedLen int
	}{
		{
			name:        "ASCII character",
			s:           "a",
			expected:    'a',
			expectedLen: 1,
		},
		{
			name:        "2-byte rune",
			s:           "é",
			expected:    'é',
			expectedLen: 2,
		},
		{
			name:        "3-byte rune",
			s:           "漢",
			expected:    '漢',
			expectedLen: 3,
		},
		{
			name:        "surrogate",
			s:           "\xed\xa0\xbd",
			expected:    0xd83d,
			expectedLen: 3,
		},
		{
			name:        "4-byte rune",
			s:           "💩x",
			expected:    '💩',
			expectedLen: 4,
		},
		{
			name:        "Invalid sequence",
			s:           "\xc3",
			expected:    utf8.RuneError,
			expectedLen: 1,
		},
		{
			name:        "Empty",
			s:           "",
			expected:    utf8.RuneError,
			expectedLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, n := decodeCodePoint([]byte(tt.s))
			assert.Equal(t, tt.expected, r)
			assert.Equal(t, tt.expectedLen, n)
		})
	}
}

func TestSequenceLen(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		ok    bool
		short bool
	}{
		{name: "ASCII", input: "ab", width: 1, ok: true},
		{name: "2-byte", input: "é", width: 2, ok: true},
		{name: "3-byte", input: "漢", width: 3, ok: true},
		{name: "surrogate", input: "\xed\xa0\x80", width: 3, ok: true},
		{name: "4-byte", input: "💩", width: 4, ok: true},
		{name: "max rune", input: "\xf4\x8f\xbf\xbf", width: 4, ok: true},
		{name: "empty", input: "", short: true},
		{name: "truncated 2-byte", input: "\xc3", short: true},
		{name: "truncated 4-byte", input: "\xf0\x9f\x92", short: true},
		{name: "lone continuation", input: "\x80"},
		{name: "overlong 2-byte", input: "\xc0\x80"},
		{name: "overlong 3-byte", input: "\xe0\x80\x80"},
		{name: "overlong 4-byte", input: "\xf0\x80\x80\x80"},
		{name: "beyond Unicode", input: "\xf4\x90\x80\x80"},
		{name: "bad lead", input: "\xff"},
		{name: "missing continuation", input: "\xe3\x80a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, ok, short := sequenceLen([]byte(tt.input))
			assert.Equal(t, tt.width, width)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.short, short)
		})
	}
}

func TestSeqWidthLUT(t *testing.T) {
	for b := 0; b < 256; b++ {
		switch {
		case b < 0x80:
			assert.Equal(t, uint8(1), seqWidthLUT[b], "byte %#x", b)
		case b < 0xc2, b > 0xf4:
			assert.Equal(t, uint8(0), seqWidthLUT[b], "byte %#x", b)
		case b <= 0xdf:
			assert.Equal(t, uint8(2), seqWidthLUT[b], "byte %#x", b)
		case b <= 0xef:
			assert.Equal(t, uint8(3), seqWidthLUT[b], "byte %#x", b)
		default:
			assert.Equal(t, uint8(4), seqWidthLUT[b], "byte %#x", b)
		}
	}
}

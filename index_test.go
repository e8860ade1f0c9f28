package wtf8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIndex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []IndexType
	}{
		{
			name:     "empty",
			input:    "",
			expected: []IndexType{CharBoundary, OutOfBounds, OutOfBounds},
		},
		{
			name:     "ASCII",
			input:    "aa",
			expected: []IndexType{CharBoundary, CharBoundary, CharBoundary, OutOfBounds},
		},
		{
			name:     "2-byte",
			input:    "á",
			expected: []IndexType{CharBoundary, Interior, CharBoundary, OutOfBounds},
		},
		{
			name:     "3-byte",
			input:    "\u3000",
			expected: []IndexType{CharBoundary, Interior, Interior, CharBoundary, OutOfBounds},
		},
		{
			name:  "4-byte",
			input: "\U00030000",
			expected: []IndexType{
				CharBoundary, FourByteSeq1, FourByteSeq2, FourByteSeq3, CharBoundary, OutOfBounds,
			},
		},
		{
			name:  "surrogates",
			input: "\xed\xbf\xbf\xed\xa0\x80",
			expected: []IndexType{
				CharBoundary, Interior, Interior,
				CharBoundary, Interior, Interior,
				CharBoundary, OutOfBounds,
			},
		},
		{
			name:  "split edges",
			input: "\x90\x80\x80\xf0\x90\x80\x80\xf0\x90\x80",
			expected: []IndexType{
				CharBoundary, Interior, Interior,
				CharBoundary, FourByteSeq1, FourByteSeq2, FourByteSeq3,
				CharBoundary, Interior, Interior,
				CharBoundary, OutOfBounds,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := []byte(tt.input)
			actual := make([]IndexType, len(tt.expected))
			for i := range tt.expected {
				actual[i] = classifyIndex(b, i)
			}
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestClassifyIndexNegative(t *testing.T) {
	assert.Equal(t, OutOfBounds, classifyIndex([]byte("abc"), -1))
}

func TestIndexTypeString(t *testing.T) {
	assert.Equal(t, "CharBoundary", CharBoundary.String())
	assert.Equal(t, "FourByteSeq2", FourByteSeq2.String())
	assert.Equal(t, "OutOfBounds", OutOfBounds.String())
	assert.Equal(t, "IndexType(42)", IndexType(42).String())
}

func TestIndexTypeLegal(t *testing.T) {
	legal := map[IndexType]bool{
		CharBoundary: true,
		FourByteSeq1: false,
		FourByteSeq2: true,
		FourByteSeq3: false,
		Interior:     false,
		OutOfBounds:  false,
	}
	for kind, expected := range legal {
		assert.Equal(t, expected, kind.legal(), kind.String())
	}
}

package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/42atomys/go-wtf8"
	"github.com/rs/zerolog"
	"golang.org/x/text/transform"
)

// Supported encodings. debug is output only.
const (
	encWTF8    = "wtf8"
	encUTF8    = "utf8"
	encUTF16LE = "utf16le"
	encUTF16BE = "utf16be"
	encDebug   = "debug"
)

var (
	bomLE = []byte{0xff, 0xfe}
	bomBE = []byte{0xfe, 0xff}
)

func (c ConvertConfig) validate() error {
	switch c.From {
	case encWTF8, encUTF8, encUTF16LE, encUTF16BE:
	default:
		return fmt.Errorf("unknown input encoding %q", c.From)
	}
	switch c.To {
	case encWTF8, encUTF8, encUTF16LE, encUTF16BE, encDebug:
	default:
		return fmt.Errorf("unknown output encoding %q", c.To)
	}
	return nil
}

func byteOrder(enc string) (binary.ByteOrder, []byte) {
	if enc == encUTF16BE {
		return binary.BigEndian, bomBE
	}
	return binary.LittleEndian, bomLE
}

// run transcodes r into w as described by cfg.
func run(r io.Reader, w io.Writer, cfg ConvertConfig, log zerolog.Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	buf, err := decode(r, cfg.From)
	if err != nil {
		return fmt.Errorf("decode %s: %w", cfg.From, err)
	}
	log.Debug().
		Str("from", cfg.From).
		Int("bytes", buf.Len()).
		Msg("input decoded")

	n, err := encode(w, buf, cfg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", cfg.To, err)
	}
	log.Debug().
		Str("to", cfg.To).
		Int("bytes", n).
		Msg("output written")
	return nil
}

func decode(r io.Reader, enc string) (*wtf8.Buf, error) {
	switch enc {
	case encUTF16LE, encUTF16BE:
		order, _ := byteOrder(enc)
		data, err := io.ReadAll(transform.NewReader(r, wtf8.NewWideDecoder(order)))
		if err != nil {
			return nil, err
		}
		// A BOM in the expected order decodes to U+FEFF.
		data = bytes.TrimPrefix(data, []byte("\ufeff"))
		return wtf8.FromBytesUnchecked(data), nil
	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		buf, err := wtf8.FromBytes(data)
		if err != nil {
			return nil, err
		}
		if enc == encUTF8 {
			if _, ok := buf.AsSlice().AsString(); !ok {
				return nil, fmt.Errorf("input holds a surrogate code point, which UTF-8 cannot")
			}
		}
		return buf, nil
	}
}

func encode(w io.Writer, buf *wtf8.Buf, cfg ConvertConfig) (int, error) {
	switch cfg.To {
	case encUTF16LE, encUTF16BE:
		order, bom := byteOrder(cfg.To)
		n := 0
		if cfg.BOM {
			if _, err := w.Write(bom); err != nil {
				return 0, err
			}
			n += len(bom)
		}
		tw := transform.NewWriter(w, wtf8.NewWideEncoder(order))
		if _, err := tw.Write(buf.Bytes()); err != nil {
			return n, err
		}
		if err := tw.Close(); err != nil {
			return n, err
		}
		for range buf.AsSlice().WideUnits() {
			n += 2
		}
		return n, nil
	case encUTF8:
		var s string
		if cfg.Lossy {
			s = buf.IntoStringLossy()
		} else {
			var err error
			if s, err = buf.IntoString(); err != nil {
				var lossy *wtf8.LossyConversionError
				if errors.As(err, &lossy) {
					return 0, fmt.Errorf("%w (rerun with -lossy to substitute U+FFFD)", err)
				}
				return 0, err
			}
		}
		return io.WriteString(w, s)
	case encDebug:
		return fmt.Fprintf(w, "%#v\n", buf)
	default:
		return w.Write(buf.Bytes())
	}
}

// Package compactwire frames encoded vectors for storage or transfer.
//
// A data frame is laid out as
//
//	magic(2) type(1) length(u32) flags(1) payload crc32(u32)
//
// with little endian integers. length counts the whole frame and the CRC
// covers every byte after the magic up to the end of the payload.
package compactwire

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	magic0 byte = 'V'
	magic1 byte = 'W'

	TypeData byte = 0x01

	// FlagCompressed marks a zstd-compressed payload.
	FlagCompressed byte = 1 << 0

	headerSize = 8
	crcSize    = 4
)

var (
	ErrBadMagic       = errors.New("compactwire: bad magic")
	ErrNotDataFrame   = errors.New("compactwire: not a data frame")
	ErrLengthMismatch = errors.New("compactwire: length mismatch")
	ErrCRCMismatch    = errors.New("compactwire: crc mismatch")
	ErrTruncated      = errors.New("compactwire: truncated payload")
	ErrUnsupported    = errors.New("compactwire: unsupported element type")
)

// Options mirrors the safe/unsafe switches of the codec. The zero value
// copies everything and never compresses.
type Options struct {
	// UnsafePrimitives lets the encoder write element memory as is and the
	// decoder alias payload bytes as the vector's storage.
	UnsafePrimitives bool

	// CheckAlignment makes the decoder copy instead of aliasing when the
	// payload is not aligned for the element type.
	CheckAlignment bool

	// Compress zstd-compresses payloads.
	Compress bool

	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func writePreamble(w *bytes.Buffer, t byte) {
	w.WriteByte(magic0)
	w.WriteByte(magic1)
	w.WriteByte(t)
}

func readPreamble(r io.ByteReader) (byte, error) {
	m0, err := r.ReadByte()
	if err != nil {
		return 0, errors.Wrap(ErrTruncated, "preamble")
	}
	m1, err := r.ReadByte()
	if err != nil {
		return 0, errors.Wrap(ErrTruncated, "preamble")
	}
	if m0 != magic0 || m1 != magic1 {
		return 0, ErrBadMagic
	}
	t, err := r.ReadByte()
	if err != nil {
		return 0, errors.Wrap(ErrTruncated, "preamble")
	}
	return t, nil
}

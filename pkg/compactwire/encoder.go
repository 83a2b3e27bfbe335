package compactwire

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/rawbytedev/vector"
)

// Encoder turns vectors into data frames. It is not safe for concurrent use.
type Encoder struct {
	Opts    Options
	buf     *bytes.Buffer
	payload []byte
	zenc    *zstd.Encoder
}

func NewEncoder(opts Options) (*Encoder, error) {
	e := &Encoder{Opts: opts, buf: &bytes.Buffer{}}
	if opts.Compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, errors.Wrap(err, "compactwire: zstd encoder")
		}
		e.zenc = enc
	}
	return e, nil
}

// EncodeDataFrame wraps payload in a data frame, compressing it first when
// the encoder was built with Compress.
func (e *Encoder) EncodeDataFrame(payload []byte) []byte {
	var flags byte
	if e.zenc != nil {
		payload = e.zenc.EncodeAll(payload, nil)
		flags |= FlagCompressed
	}
	e.buf.Reset()
	writePreamble(e.buf, TypeData)

	// length placeholder, filled once the size is known
	binary.Write(e.buf, binary.LittleEndian, uint32(0))
	e.buf.WriteByte(flags)
	e.buf.Write(payload)

	out := e.buf.Bytes()
	total := uint32(len(out) + crcSize)
	binary.LittleEndian.PutUint32(out[3:], total)

	crc := crc32.ChecksumIEEE(out[2:])
	out = append(out, 0, 0, 0, 0)
	binary.LittleEndian.PutUint32(out[len(out)-crcSize:], crc)

	// out may alias the internal buffer
	return bytes.Clone(out)
}

// Close releases the compressor.
func (e *Encoder) Close() error {
	if e.zenc != nil {
		return e.zenc.Close()
	}
	return nil
}

// EncodeVector encodes v and frames it.
func EncodeVector[T any](e *Encoder, v *vector.Vector[T]) ([]byte, error) {
	var err error
	e.payload, err = AppendVector(e.payload[:0], v, e.Opts)
	if err != nil {
		return nil, err
	}
	return e.EncodeDataFrame(e.payload), nil
}

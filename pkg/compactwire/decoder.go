package compactwire

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rawbytedev/vector"
)

// Decoder reads data frames. It is not safe for concurrent use.
type Decoder struct {
	Opts Options
	rdr  *bytes.Reader
	zdec *zstd.Decoder
}

func NewDecoder(opts Options) *Decoder {
	return &Decoder{Opts: opts}
}

// DecodeDataFrame validates a data frame and returns its payload, which
// aliases data unless it had to be decompressed.
func (d *Decoder) DecodeDataFrame(data []byte) ([]byte, byte, error) {
	payload, flags, err := d.decodeDataFrame(data)
	if err != nil {
		if ce := d.Opts.logger().Check(zap.DebugLevel, "frame rejected"); ce != nil {
			ce.Write(zap.Int("size", len(data)), zap.Error(err))
		}
		return nil, 0, err
	}
	return payload, flags, nil
}

func (d *Decoder) decodeDataFrame(data []byte) ([]byte, byte, error) {
	if len(data) < headerSize+crcSize {
		return nil, 0, errors.Wrapf(ErrTruncated, "frame of %d bytes", len(data))
	}
	d.rdr = bytes.NewReader(data)
	t, err := readPreamble(d.rdr)
	if err != nil {
		return nil, 0, err
	}
	if t != TypeData {
		return nil, 0, errors.Wrapf(ErrNotDataFrame, "type %#x", t)
	}

	var length uint32
	if err := binary.Read(d.rdr, binary.LittleEndian, &length); err != nil {
		return nil, 0, errors.Wrap(ErrTruncated, "length")
	}
	if int(length) != len(data) {
		return nil, 0, errors.Wrapf(ErrLengthMismatch, "header says %d, got %d", length, len(data))
	}
	flags, _ := d.rdr.ReadByte()

	payloadEnd := len(data) - crcSize
	want := binary.LittleEndian.Uint32(data[payloadEnd:])
	if crc32.ChecksumIEEE(data[2:payloadEnd]) != want {
		return nil, 0, ErrCRCMismatch
	}

	payload := data[headerSize:payloadEnd]
	if flags&FlagCompressed != 0 {
		if d.zdec == nil {
			dec, err := zstd.NewReader(nil)
			if err != nil {
				return nil, 0, errors.Wrap(err, "compactwire: zstd decoder")
			}
			d.zdec = dec
		}
		payload, err = d.zdec.DecodeAll(payload, nil)
		if err != nil {
			return nil, 0, errors.Wrap(err, "compactwire: decompress")
		}
	}
	return payload, flags, nil
}

// Close releases the decompressor.
func (d *Decoder) Close() {
	if d.zdec != nil {
		d.zdec.Close()
	}
}

// DecodeVector unframes data and rebuilds the vector it carries.
func DecodeVector[T any](d *Decoder, data []byte) (*vector.Vector[T], error) {
	payload, _, err := d.DecodeDataFrame(data)
	if err != nil {
		return nil, err
	}
	return ReadVector[T](payload, d.Opts)
}

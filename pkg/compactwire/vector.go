package compactwire

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/rawbytedev/vector"
	"github.com/rawbytedev/vector/internal/common"
)

// Payload: varint count, then count fixed-width little endian elements.

func fixedKind[T any]() (reflect.Kind, int, error) {
	t := reflect.TypeFor[T]()
	k := t.Kind()
	if !common.IsFixedKind(k) {
		return k, 0, errors.Wrapf(ErrUnsupported, "%s", t)
	}
	return k, common.FixedSize(k), nil
}

// AppendVector appends the payload encoding of v to dst.
func AppendVector[T any](dst []byte, v *vector.Vector[T], opts Options) ([]byte, error) {
	_, width, err := fixedKind[T]()
	if err != nil {
		return dst, err
	}
	elems := v.AsSlice()
	dst = common.WriteVarUint(dst, uint64(len(elems)))
	if len(elems) == 0 {
		return dst, nil
	}
	if opts.UnsafePrimitives && common.LittleEndian() {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(elems))), len(elems)*width)
		return append(dst, raw...), nil
	}
	dst = growBytes(dst, len(elems)*width)
	for _, e := range elems {
		dst = common.AppendFixed(dst, reflect.ValueOf(e))
	}
	return dst, nil
}

// ReadVector decodes a payload. With UnsafePrimitives the returned vector
// uses payload itself as storage: payload must outlive it and must not be
// modified by the caller. The vector owns those bytes from then on, and
// mutations such as pops, removals, truncation, drains and Drop rewrite them,
// so the frame they came from no longer decodes afterwards. Misaligned
// payloads are copied when CheckAlignment is set.
func ReadVector[T any](payload []byte, opts Options) (*vector.Vector[T], error) {
	kind, width, err := fixedKind[T]()
	if err != nil {
		return nil, err
	}
	count, n := common.ReadVarUint(payload)
	if n == 0 {
		return nil, errors.Wrap(ErrTruncated, "element count")
	}
	body := payload[n:]
	if count > uint64(len(body)/width) {
		return nil, errors.Wrapf(ErrTruncated, "%d elements of %d bytes in %d bytes", count, width, len(body))
	}
	size := int(count)
	if size == 0 {
		return vector.New[T](), nil
	}
	body = body[:size*width]

	if opts.UnsafePrimitives && common.LittleEndian() {
		aligned := uintptr(unsafe.Pointer(&body[0]))%uintptr(common.Alignment(kind)) == 0
		if aligned || !opts.CheckAlignment {
			return vector.FromRawParts((*T)(unsafe.Pointer(&body[0])), size, size), nil
		}
	}

	v := vector.WithCapacity[T](size)
	for off := 0; off < len(body); off += width {
		var e T
		common.SetFixed(reflect.ValueOf(&e).Elem(), body[off:off+width], kind)
		v.PushFront(e)
	}
	return v, nil
}

func growBytes(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	return out
}

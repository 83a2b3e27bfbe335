package common

import (
	"encoding/binary"
	"math"
	"math/bits"
	"reflect"
	"unsafe"
)

// IsFixedKind reports whether k is a fixed-size primitive kind.
func IsFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// FixedSize returns the byte width for fixed-size primitive kinds.
func FixedSize(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	default:
		return -1
	}
}

// Alignment is the natural alignment of a fixed kind; it matches FixedSize
// on every platform Go supports for these kinds.
func Alignment(k reflect.Kind) int {
	if n := FixedSize(k); n > 0 {
		return n
	}
	return 1
}

// LittleEndian reports whether the host stores integers little endian, which
// is what makes aliasing encoded bytes as primitive slices legal.
func LittleEndian() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}

// NextPowerOfTwo rounds n up to a power of two. Zero stays zero.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return n
	}
	shift := bits.Len(uint(n - 1))
	if shift >= bits.UintSize-1 {
		return math.MaxInt
	}
	return 1 << shift
}

// WriteVarUint appends a varint to buf (allocating if needed).
func WriteVarUint(buf []byte, x uint64) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// A zero count means b ended mid-varint.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}

// AppendFixed writes v little endian. v must be of a fixed kind.
func AppendFixed(dst []byte, v reflect.Value) []byte {
	var scratch [8]byte
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return append(dst, 1)
		}
		return append(dst, 0)
	case reflect.Int8:
		return append(dst, byte(v.Int()))
	case reflect.Uint8:
		return append(dst, byte(v.Uint()))
	case reflect.Int16:
		binary.LittleEndian.PutUint16(scratch[:], uint16(v.Int()))
		return append(dst, scratch[:2]...)
	case reflect.Uint16:
		binary.LittleEndian.PutUint16(scratch[:], uint16(v.Uint()))
		return append(dst, scratch[:2]...)
	case reflect.Int32:
		binary.LittleEndian.PutUint32(scratch[:], uint32(v.Int()))
		return append(dst, scratch[:4]...)
	case reflect.Uint32:
		binary.LittleEndian.PutUint32(scratch[:], uint32(v.Uint()))
		return append(dst, scratch[:4]...)
	case reflect.Int64:
		binary.LittleEndian.PutUint64(scratch[:], uint64(v.Int()))
		return append(dst, scratch[:8]...)
	case reflect.Uint64:
		binary.LittleEndian.PutUint64(scratch[:], v.Uint())
		return append(dst, scratch[:8]...)
	case reflect.Float32:
		binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(float32(v.Float())))
		return append(dst, scratch[:4]...)
	case reflect.Float64:
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v.Float()))
		return append(dst, scratch[:8]...)
	default:
		panic("not fixed")
	}
}

// SetFixed decodes a fixed-width primitive from b and sets dst.
func SetFixed(dst reflect.Value, b []byte, k reflect.Kind) {
	switch k {
	case reflect.Bool:
		dst.SetBool(b[0] != 0)
	case reflect.Int8:
		dst.SetInt(int64(int8(b[0])))
	case reflect.Uint8:
		dst.SetUint(uint64(b[0]))
	case reflect.Int16:
		dst.SetInt(int64(int16(binary.LittleEndian.Uint16(b))))
	case reflect.Uint16:
		dst.SetUint(uint64(binary.LittleEndian.Uint16(b)))
	case reflect.Int32:
		dst.SetInt(int64(int32(binary.LittleEndian.Uint32(b))))
	case reflect.Uint32:
		dst.SetUint(uint64(binary.LittleEndian.Uint32(b)))
	case reflect.Int64:
		dst.SetInt(int64(binary.LittleEndian.Uint64(b)))
	case reflect.Uint64:
		dst.SetUint(binary.LittleEndian.Uint64(b))
	case reflect.Float32:
		dst.SetFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))))
	case reflect.Float64:
		dst.SetFloat(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	}
}

package vm

import (
	"fmt"
	"math"
)

// Value is one 64-bit virtual register or local slot, NaN-boxed so the JIT
// can move values between slots with plain 64-bit loads and stores.
// Float64 values are stored as their raw IEEE 754 bits; every other kind is
// encoded inside the quiet-NaN space with a 16-bit tag in the top bits.
// The encoding is part of the JIT calling contract: generated code reads
// and writes slot arrays using exactly this layout.
type Value uint64

const (
	tagShift = 48

	tagInt32 = 0x7FFC
	tagBool  = 0x7FFD
	tagNil   = 0x7FFE

	payloadMask = (1 << tagShift) - 1
)

// Nil is the singleton nil value.
const Nil = Value(tagNil << tagShift)

// True and False are the boolean values.
const (
	False = Value(tagBool << tagShift)
	True  = Value(tagBool<<tagShift | 1)
)

// NewInt32 returns a Value holding a 32-bit integer.
func NewInt32(i int32) Value {
	return Value(tagInt32<<tagShift | uint64(uint32(i)))
}

// NewFloat64 returns a Value holding a float. NaN inputs are canonicalized
// so they cannot collide with tagged encodings.
func NewFloat64(f float64) Value {
	if math.IsNaN(f) {
		return Value(math.Float64bits(math.NaN()))
	}
	return Value(math.Float64bits(f))
}

// NewBool returns the boolean Value for b.
func NewBool(b bool) Value {
	if b {
		return True
	}
	return False
}

func (v Value) tag() uint16 {
	return uint16(v >> tagShift)
}

// IsNil reports whether the value is nil.
func (v Value) IsNil() bool {
	return v == Nil
}

// IsBool reports whether the value holds a boolean.
func (v Value) IsBool() bool {
	return v.tag() == tagBool
}

// IsInt32 reports whether the value holds a 32-bit integer.
func (v Value) IsInt32() bool {
	return v.tag() == tagInt32
}

// IsFloat64 reports whether the value holds a float.
func (v Value) IsFloat64() bool {
	return !v.IsNil() && !v.IsBool() && !v.IsInt32()
}

// AsInt32 returns the integer payload. Valid only when IsInt32 is true.
func (v Value) AsInt32() int32 {
	return int32(uint32(v & payloadMask))
}

// AsBool returns the boolean payload. Valid only when IsBool is true.
func (v Value) AsBool() bool {
	return v&1 != 0
}

// AsFloat64 returns the float payload. Valid only when IsFloat64 is true.
func (v Value) AsFloat64() float64 {
	return math.Float64frombits(uint64(v))
}

// String returns a human-readable rendering of the value.
func (v Value) String() string {
	switch {
	case v.IsNil():
		return "nil"
	case v.IsBool():
		return fmt.Sprintf("%t", v.AsBool())
	case v.IsInt32():
		return fmt.Sprintf("%d", v.AsInt32())
	default:
		return fmt.Sprintf("%g", v.AsFloat64())
	}
}

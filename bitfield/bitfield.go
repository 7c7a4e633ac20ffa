// Package bitfield describes register fields as runs of bits inside a 8 or 16 bit word.
//
// Layouts are declared in field order. By default the first field occupies the least
// significant bits; building with the bitorder_msb tag makes the first field occupy the
// most significant bits instead. Every layout in a binary honors the same order.
package bitfield

import "fmt"

// Field is a contiguous run of bits at a fixed offset.
type Field struct {
	Offset uint8
	Width  uint8
	Signed bool
}

// Spec is a field declaration used to build a Layout.
type Spec struct {
	Width  uint8
	Signed bool
}

// U declares an unsigned field of the given width.
func U(width uint8) Spec {
	return Spec{Width: width}
}

// S declares a two's-complement field of the given width.
func S(width uint8) Spec {
	return Spec{Width: width, Signed: true}
}

// Layout assigns offsets to specs within a word of size bits. The widths must add up
// to size exactly; a mismatch is a programming error and panics.
func Layout(size uint8, specs ...Spec) []Field {
	var total uint8
	for _, s := range specs {
		total += s.Width
	}
	if total != size {
		panic(fmt.Sprintf("bitfield: layout covers %d bits, want %d", total, size))
	}
	fields := make([]Field, len(specs))
	var used uint8
	for i, s := range specs {
		offset := used
		if MSBFirst {
			offset = size - used - s.Width
		}
		fields[i] = Field{Offset: offset, Width: s.Width, Signed: s.Signed}
		used += s.Width
	}
	return fields
}

// Mask returns the field mask aligned at bit 0.
func (f Field) Mask() uint16 {
	return uint16(uint32(1)<<f.Width - 1)
}

// Get extracts the raw field value.
func (f Field) Get(word uint16) uint16 {
	return (word >> f.Offset) & f.Mask()
}

// Set overwrites the field span with v, truncated to the field width. Bits outside the
// span are left untouched.
func (f Field) Set(word uint16, v uint16) uint16 {
	m := f.Mask() << f.Offset
	return word&^m | (v<<f.Offset)&m
}

// GetSigned extracts the field and sign-extends it from its width when the field is signed.
func (f Field) GetSigned(word uint16) int16 {
	v := f.Get(word)
	if !f.Signed {
		return int16(v)
	}
	shift := 16 - f.Width
	return int16(v<<shift) >> shift
}

// SetSigned stores the two's-complement representation of v truncated to the field width.
func (f Field) SetSigned(word uint16, v int16) uint16 {
	return f.Set(word, uint16(v))
}

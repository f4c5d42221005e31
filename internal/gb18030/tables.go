// Package gb18030 implements the GB18030/GBK decoder and encoder state
// machines (spec.md §4.6/§4.7), grounded on
// original_source/src/gb18030.rs.
package gb18030

// As with internal/big5 and internal/eucjp, the full WHATWG
// gb18030/gb18030-ranges tables are out of scope; these are
// representative fragments. twoByteTable backs the 2-byte pointer
// space (gb18030_decode/gb18030_encode); rangeLowTable backs the
// sub-astral portion of the 4-byte range space
// (gb18030_range_decode/gb18030_range_encode) — the astral portion
// above pointer 189000 is pure arithmetic and needs no table (see
// decoder.go/encoder.go).

type entry struct {
	pointer int
	scalar  rune
}

// twoByteTable includes pointer 0 -> U+4E02 and pointer 6432 -> U+20AC;
// the latter is the real WHATWG gb18030-two-byte pointer for the euro
// sign, reconstructed from lead 0xA2/trail 0xE3 the same way the real
// table assigns it.
var twoByteTable = []entry{
	{pointer: 0, scalar: 0x4E02},
	{pointer: 7, scalar: 0x4E04},
	{pointer: 6432, scalar: 0x20AC},
}

var twoByteReverse map[rune]int

// rangeLowTable covers the sub-astral 4-byte range space. Pointer 0 ->
// U+0080 matches the real gb18030-ranges.txt, whose first range starts
// exactly there.
var rangeLowTable = []entry{
	{pointer: 0, scalar: 0x0080},
	{pointer: 36, scalar: 0x00A5},
}

var rangeLowReverse map[rune]int

func init() {
	twoByteReverse = make(map[rune]int, len(twoByteTable))
	for _, e := range twoByteTable {
		twoByteReverse[e.scalar] = e.pointer
	}
	rangeLowReverse = make(map[rune]int, len(rangeLowTable))
	for _, e := range rangeLowTable {
		rangeLowReverse[e.scalar] = e.pointer
	}
}

// astralRangeBase is the pointer value corresponding to scalar
// U+10000, per spec.md §4.7: rangePointer = scalar + (189000-0x10000)
// for astral scalars, and its inverse in the decoder.
const astralRangeBase = 189000 - 0x10000

// gb18030Decode returns the BMP scalar for a 2-byte pointer, or 0 if
// unmapped.
func gb18030Decode(pointer int) uint16 {
	for _, e := range twoByteTable {
		if e.pointer == pointer {
			return uint16(e.scalar)
		}
	}
	return 0
}

// gb18030Encode returns the 2-byte pointer for a BMP scalar.
func gb18030Encode(bmp uint16) (pointer int, ok bool) {
	p, has := twoByteReverse[rune(bmp)]
	return p, has
}

// gb18030RangeDecode returns the scalar a 4-byte range pointer decodes
// to, or 0 if unmapped. Pointers at or above 189000 are astral and
// decode by pure arithmetic; everything below is a table lookup over
// the (comparatively few) BMP codepoints the 4-byte form covers.
func gb18030RangeDecode(pointer int) rune {
	if pointer >= 189000 {
		scalar := rune(pointer - astralRangeBase)
		if scalar > 0x10FFFF {
			return 0
		}
		return scalar
	}
	for _, e := range rangeLowTable {
		if e.pointer == pointer {
			return e.scalar
		}
	}
	return 0
}

// gb18030RangeEncode returns the 4-byte range pointer for a BMP scalar
// that has no 2-byte mapping.
func gb18030RangeEncode(bmp uint16) (pointer int, ok bool) {
	p, has := rangeLowReverse[rune(bmp)]
	return p, has
}

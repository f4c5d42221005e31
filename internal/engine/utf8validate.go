package engine

// utf8Width classifies a lead byte: 1 for ASCII, 2/3/4 for a multibyte
// lead of that length, 0 for a byte that can never start a valid UTF-8
// sequence (continuation bytes and the unused C0/C1/F5-FF range).
var utf8Width = [256]byte{
	// 0x00-0x7F: ASCII
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	// 0x80-0xBF: continuation bytes, invalid as a lead
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0xC0-0xC1: overlong 2-byte lead, invalid
	0, 0,
	// 0xC2-0xDF: valid 2-byte lead
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	// 0xE0-0xEF: 3-byte lead
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	// 0xF0-0xF4: 4-byte lead
	4, 4, 4, 4, 4,
	// 0xF5-0xFF: invalid
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

const contMask = 0x3F
const tagCont = 0x80

func isCont(b byte) bool { return b&^contMask == tagCont }

// ValidateUTF8 walks buf verifying it is well-formed UTF-8 per RFC 3629,
// including exclusion of surrogate code points and overlong encodings.
// It returns true and len(buf) on success, or false and the byte index
// of the first invalid byte.
func ValidateUTF8(buf []byte) (ok bool, firstInvalid int) {
	offset := 0
	n := len(buf)
	for offset < n {
		first := buf[offset]
		if first < 0x80 {
			// ASCII: skip the whole run with a byte loop.
			rest := buf[offset:]
			i := 0
			for i < len(rest) && rest[i] < 0x80 {
				i++
			}
			offset += i
			continue
		}
		width := utf8Width[first]
		switch width {
		case 2:
			if offset+1 >= n || !isCont(buf[offset+1]) {
				return false, offset
			}
		case 3:
			if offset+2 >= n {
				return false, offset
			}
			second := buf[offset+1]
			third := buf[offset+2]
			if !isCont(third) {
				return false, offset
			}
			switch {
			case first == 0xE0 && second >= 0xA0 && second <= 0xBF:
			case first >= 0xE1 && first <= 0xEC && second >= 0x80 && second <= 0xBF:
			case first == 0xED && second >= 0x80 && second <= 0x9F:
			case first >= 0xEE && first <= 0xEF && second >= 0x80 && second <= 0xBF:
			default:
				return false, offset
			}
		case 4:
			if offset+3 >= n {
				return false, offset
			}
			second := buf[offset+1]
			third := buf[offset+2]
			fourth := buf[offset+3]
			if !isCont(third) || !isCont(fourth) {
				return false, offset
			}
			switch {
			case first == 0xF0 && second >= 0x90 && second <= 0xBF:
			case first >= 0xF1 && first <= 0xF3 && second >= 0x80 && second <= 0xBF:
			case first == 0xF4 && second >= 0x80 && second <= 0x8F:
			default:
				return false, offset
			}
		default:
			return false, offset
		}
		offset += int(width)
	}
	return true, n
}

package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"unicode/utf16"
)

const (
	surrogateHigh = 0xD800 // first high surrogate
	surrogateLow  = 0xDC00 // first low surrogate
	surrogateEnd  = 0xE000 // first unit past the surrogate block
	surrogateBase = 0x10000
)

// SurrogateError is reported by ValidateUTF16 when a surrogate code unit has no partner.
type SurrogateError struct {
	Index int
	Unit  uint16
}

func (e *SurrogateError) Error() string {
	return fmt.Sprintf("unpaired surrogate 0x%04X at index %d", e.Unit, e.Index)
}

// UTF8Len returns the number of bytes the code point takes when encoded. Everything from
// 0x200000 upwards uses the legacy 5 and 6 byte forms instead of being rejected.
func UTF8Len(cp uint32) int {
	switch {
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	case cp < 0x200000:
		return 4
	case cp < 0x4000000:
		return 5
	default:
		return 6
	}
}

// codePointAt reads the scalar value starting at units[i] and returns it together with the
// number of units it occupies. A high surrogate followed by a low one is combined; any other
// unit, including a lone surrogate, is returned as is.
func codePointAt(units []uint16, i int) (uint32, int) {
	hi := units[i]
	if hi >= surrogateHigh && hi < surrogateLow && i+1 < len(units) {
		if lo := units[i+1]; lo >= surrogateLow && lo < surrogateEnd {
			return (uint32(hi)-surrogateHigh)<<10 | (uint32(lo) - surrogateLow) + surrogateBase, 2
		}
	}
	return uint32(hi), 1
}

// putUTF8 writes cp into dst, which must hold at least UTF8Len(cp) bytes.
func putUTF8(dst []byte, cp uint32) int {
	n := UTF8Len(cp)
	if n == 1 {
		dst[0] = byte(cp)
		return 1
	}
	for i := n - 1; i > 0; i-- {
		dst[i] = 0x80 | byte(cp&0x3F)
		cp >>= 6
	}
	dst[0] = byte(0xFF<<uint(8-n)) | byte(cp)
	return n
}

// EncodeUTF8 converts UTF-16 code units into UTF-8. The output is sized by a first pass over
// the input and filled by a second one, both walking the units the same way.
func EncodeUTF8(units []uint16) []byte {
	size := 0
	for i := 0; i < len(units); {
		cp, w := codePointAt(units, i)
		size += UTF8Len(cp)
		i += w
	}

	dst := make([]byte, size)
	pos := 0
	for i := 0; i < len(units); {
		cp, w := codePointAt(units, i)
		pos += putUTF8(dst[pos:], cp)
		i += w
	}
	return dst
}

// EncodeRunes converts scalar values into UTF-8. Unlike utf8.EncodeRune it does not replace
// values above U+10FFFF; they get the extended 4, 5 or 6 byte forms.
func EncodeRunes(runes []rune) []byte {
	size := 0
	for _, r := range runes {
		size += UTF8Len(uint32(r))
	}

	dst := make([]byte, size)
	pos := 0
	for _, r := range runes {
		pos += putUTF8(dst[pos:], uint32(r))
	}
	return dst
}

// EncodeUTF8String encodes a Go string the same way a UTF-16 based host would see it.
func EncodeUTF8String(s string) []byte {
	return EncodeUTF8(utf16.Encode([]rune(s)))
}

// ValidateUTF16 returns a *SurrogateError (with stack) for the first unpaired surrogate.
func ValidateUTF16(units []uint16) error {
	for i := 0; i < len(units); {
		cp, w := codePointAt(units, i)
		if w == 1 && cp >= surrogateHigh && cp < surrogateEnd {
			return errors.WithStack(&SurrogateError{Index: i, Unit: units[i]})
		}
		i += w
	}
	return nil
}

package enc

import (
	"fmt"
	"go.chromium.org/luci/common/data/base128"
)

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters. Every output byte is below 0x80 so the
// result is valid UTF-8, but it is not printable: control characters will get escaped by
// JSON encoders.
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

func (b *Base128Encoder) Encode(src []byte) string {
	return base128.EncodeToString(src)
}

func (b *Base128Encoder) TestPatterns() []string {
	return []string{
		"aA-Aaahhh-Drink-mal-ein-J\344germeister-",
		"aA-La-fl\373te-na\357ve-fran\347aise-est-retir\351-\340-Cr\350te",
	}
}

package enc

import (
	"encoding/ascii85"
	"fmt"
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters (btoa / Adobe flavour, without delimiters).
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) string {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	return string(dst[:n])
}

func (b *Base85Encoder) TestPatterns() []string {
	return []string{
		"\x00\x00\x00\x00\xff\xff\xff\xff",
		"Man is distinguished",
	}
}

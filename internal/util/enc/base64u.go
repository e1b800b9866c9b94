package enc

import (
	"encoding/base64"
	"fmt"
)

// -------------------------------------------------------

// Base64uEncoder encodes 3 bytes to 4 characters and uses the URL-safe character map. It
// produces one unbroken line without padding, which is handy for URLs and HTTP headers.
type Base64uEncoder struct {
}

func (b *Base64uEncoder) Name() string {
	return "Base64u"
}

func (b *Base64uEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64uEncoder) Code() byte {
	return 'U'
}

func (b *Base64uEncoder) Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func (b *Base64uEncoder) TestPatterns() []string {
	return []string{
		"\xfb\xef\xbe\xff\xff\xff",
		"?>?>?>",
	}
}

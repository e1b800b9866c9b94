// Package payload turns editor text into the armored payload and the JSON request bodies which
// carry it.
package payload

import (
	"github.com/bokysan/payloadenc/internal/util/enc"
	"github.com/pkg/errors"
)

// EncodeText returns the UTF-8 bytes of text, armored with the MIME Base64 encoder.
func EncodeText(text string) string {
	return Encode(text, enc.DefaultEncoder)
}

// Encode returns the UTF-8 bytes of text, armored with the given encoder.
func Encode(text string, encoder enc.Encoder) string {
	return encoder.Encode(enc.EncodeUTF8String(text))
}

// EncodeUnits works like Encode on UTF-16 code units. If strict is set, unpaired surrogates are
// reported instead of being encoded as they are.
func EncodeUnits(units []uint16, encoder enc.Encoder, strict bool) (string, error) {
	if strict {
		if err := enc.ValidateUTF16(units); err != nil {
			return "", errors.Wrapf(err, "Invalid text")
		}
	}
	return encoder.Encode(enc.EncodeUTF8(units)), nil
}

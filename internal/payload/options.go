package payload

import (
	"encoding/binary"
	"github.com/bokysan/payloadenc/internal/util/enc"
	"github.com/pkg/errors"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	CharsetUTF8    = "utf-8"
	CharsetUTF16LE = "utf-16le"
	CharsetUTF16BE = "utf-16be"

	byteOrderMark = 0xFEFF
)

// Options control how raw input is interpreted and armored
type Options struct {
	Format  enc.Format `yaml:"format"  short:"f" long:"format"  env:"FORMAT"  description:"Output format: Base64 (MIME, default), Base64u, Base32, Base85, Base91, Base128 or Raw. One-letter codes work, too." default:"Base64"`
	Charset string     `yaml:"charset" short:"e" long:"charset" env:"CHARSET" description:"Character set of the input" choice:"utf-8" choice:"utf-16le" choice:"utf-16be" default:"utf-8"`
	Strict  bool       `yaml:"strict"            long:"strict"  env:"STRICT"  description:"Refuse malformed input instead of encoding it as it is"`
}

// Encode decodes data according to the charset and armors the text with the selected encoder.
func (o *Options) Encode(data []byte) (string, error) {
	encoder, err := o.Format.Encoder()
	if err != nil {
		return "", err
	}
	units, err := DecodeUnits(data, o.Charset, o.Strict)
	if err != nil {
		return "", err
	}
	return EncodeUnits(units, encoder, o.Strict)
}

// DecodeUnits converts raw input into UTF-16 code units, which is how the editor holds text.
// UTF-16 input is taken over unit by unit, lone surrogates included; a leading byte order mark
// is dropped. Invalid UTF-8 is replaced by U+FFFD unless strict is set.
func DecodeUnits(data []byte, charset string, strict bool) ([]uint16, error) {
	switch strings.ToLower(charset) {
	case "", CharsetUTF8:
		if strict && !utf8.Valid(data) {
			return nil, errors.Errorf("Input is not valid UTF-8")
		}
		return utf16.Encode([]rune(string(data))), nil
	case CharsetUTF16LE:
		return decodeUTF16(data, binary.LittleEndian)
	case CharsetUTF16BE:
		return decodeUTF16(data, binary.BigEndian)
	default:
		return nil, errors.Errorf("Unsupported charset: '%s'", charset)
	}
}

func decodeUTF16(data []byte, order binary.ByteOrder) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, errors.Errorf("UTF-16 input must have an even number of bytes, got %v", len(data))
	}
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = order.Uint16(data[i*2:])
	}
	if len(units) > 0 && units[0] == byteOrderMark {
		units = units[1:]
	}
	return units, nil
}

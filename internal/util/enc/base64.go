package enc

import (
	"encoding/base64"
	"fmt"
	"github.com/emersion/go-textwrapper"
	"io"
)

const (
	cb64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// MimeLineLength is the number of encoded characters on every line but the last one
	MimeLineLength = 76
	// mimeLineBytes is the number of input bytes which fill exactly one line
	mimeLineBytes = MimeLineLength / 4 * 3
	crlf          = "\r\n"
)

// padding is indexed by the position (mod 3) of the last input byte
var padding = [3]string{"==", "=", ""}

// WrappedEncodedLen returns the length of EncodeBase64Wrapped output for n input bytes,
// line breaks included.
func WrappedEncodedLen(n int) int {
	if n == 0 {
		return 0
	}
	return (n+2)/3*4 + (n-1)/mimeLineBytes*len(crlf)
}

// EncodeBase64Wrapped encodes src with the standard alphabet and padding and breaks the
// output with CRLF after every 76 characters. There is no trailing line break.
func EncodeBase64Wrapped(src []byte) string {
	l := len(src)
	dst := make([]byte, 0, WrappedEncodedLen(l))

	mod3 := 2
	acc := uint32(0)
	for i, b := range src {
		mod3 = i % 3

		// (i * 4 / 3) % 76 == 0 holds exactly when i is a multiple of 57
		if i > 0 && i%mimeLineBytes == 0 {
			dst = append(dst, crlf...)
		}

		acc |= uint32(b) << uint(16-8*mod3)
		if mod3 == 2 || i == l-1 {
			dst = append(dst, cb64[acc>>18&63], cb64[acc>>12&63], cb64[acc>>6&63], cb64[acc&63])
			acc = 0
		}
	}

	// A short final group was emitted as four characters; replace the surplus with padding.
	return string(dst[:len(dst)-2+mod3]) + padding[mod3]
}

// NewWrappedWriter returns a writer producing the same output as EncodeBase64Wrapped for
// everything written to it. Close must be called to flush the final group.
func NewWrappedWriter(dst io.Writer) io.WriteCloser {
	return base64.NewEncoder(base64.StdEncoding, textwrapper.New(dst, crlf, MimeLineLength))
}

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters, MIME style: standard alphabet, padding and
// CRLF line breaks every 76 characters.
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return EncodeBase64Wrapped(data)
}

func (b *Base64Encoder) TestPatterns() []string {
	return []string{
		"\x00\x10\x83\x10\x51\x87\x20\x92\x8b\x30\xd3\x8f\x41\x14\x93\x51\x55\x97\x61\x96\x9b\x71\xd7\x9f" +
			"\x82\x18\xa3\x92\x59\xa7\xa2\x9a\xab\xb2\xdb\xaf\xc3\x1c\xb3\xd3\x5d\xb7\xe3\x9e\xbb\xf3\xdf\xbf",
		"Aaahhh, drink mal ein Jägermeister!",
		"La flûte naïve française est retirée à Crète \U0001F3B6",
	}
}

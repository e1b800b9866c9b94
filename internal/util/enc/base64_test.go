package enc

import (
	"bytes"
	"encoding/base64"
	"github.com/stretchr/testify/require"
	"math/rand"
	"strings"
	"testing"
)

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

var encoderTests = [][]byte{
	{},
	{'A'},
	{'A', 'B'},
	{'A', 'B', 'C'},
	encoderTest,
	bytes.Repeat(encoderTest, 5),
}

func randomBytes(seed int64, n int) []byte {
	r := rand.New(rand.NewSource(seed))
	res := make([]byte, n)
	r.Read(res)
	return res
}

func Test_Base64Wrapped_Padding(t *testing.T) {
	require.Equal(t, "QQ==", EncodeBase64Wrapped([]byte("A")))
	require.Equal(t, "QUI=", EncodeBase64Wrapped([]byte("AB")))
	require.Equal(t, "QUJD", EncodeBase64Wrapped([]byte("ABC")))
	require.Equal(t, "QUJDRA==", EncodeBase64Wrapped([]byte("ABCD")))
}

func Test_Base64Wrapped_Empty(t *testing.T) {
	require.Equal(t, "", EncodeBase64Wrapped(nil))
	require.Equal(t, "", EncodeBase64Wrapped([]byte{}))
	require.Equal(t, 0, WrappedEncodedLen(0))
}

func Test_Base64Wrapped_Alphabet(t *testing.T) {
	encoder := Base64Encoder{}
	encoded := encoder.Encode([]byte(encoder.TestPatterns()[0]))
	require.Equal(t, cb64, encoded)
}

func Test_Base64Wrapped_LineBoundary(t *testing.T) {
	src := make([]byte, 58)
	for k := range src {
		src[k] = byte(k)
	}

	oneLine := EncodeBase64Wrapped(src[:57])
	require.Len(t, oneLine, MimeLineLength)
	require.NotContains(t, oneLine, "\r\n")

	twoLines := EncodeBase64Wrapped(src)
	require.Equal(t, 1, strings.Count(twoLines, "\r\n"))
	require.Equal(t, "\r\n", twoLines[MimeLineLength:MimeLineLength+2])
	require.Equal(t, oneLine+"\r\nOQ==", twoLines)
	require.Equal(t,
		"AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8gISIjJCUmJygpKissLS4vMDEyMzQ1Njc4\r\nOQ==",
		twoLines)
}

func Test_Base64Wrapped_RoundTrip(t *testing.T) {
	for n := 0; n < 400; n++ {
		src := randomBytes(int64(n), n)
		encoded := EncodeBase64Wrapped(src)
		require.Len(t, encoded, WrappedEncodedLen(n), "Invalid length for %v bytes", n)

		lines := strings.Split(encoded, "\r\n")
		for i, line := range lines {
			if i < len(lines)-1 {
				require.Len(t, line, MimeLineLength, "Line %v of %v bytes is not full", i, n)
			} else {
				require.True(t, len(line) <= MimeLineLength)
			}
		}

		joined := strings.Join(lines, "")
		require.Len(t, joined, (n+2)/3*4)
		require.Equal(t, base64.StdEncoding.EncodeToString(src), joined)

		decoded, err := base64.StdEncoding.DecodeString(joined)
		require.NoError(t, err)
		require.Equal(t, len(src), len(decoded))
		require.True(t, bytes.Equal(src, decoded))
	}
}

func Test_Base64Wrapped_Writer(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 56, 57, 58, 113, 114, 115, 1000} {
		src := randomBytes(int64(n)+1000, n)

		buf := &bytes.Buffer{}
		w := NewWrappedWriter(buf)
		for len(src) > 0 {
			chunk := 7
			if chunk > len(src) {
				chunk = len(src)
			}
			_, err := w.Write(src[:chunk])
			require.NoError(t, err)
			src = src[chunk:]
		}
		require.NoError(t, w.Close())

		require.Equal(t, EncodeBase64Wrapped(randomBytes(int64(n)+1000, n)), buf.String(), "Mismatch for %v bytes", n)
	}
}

func Test_Base64Encoder(t *testing.T) {
	for _, encoderTest := range encoderTests {
		encoder := Base64Encoder{}
		encoded := encoder.Encode(encoderTest)
		require.NotContains(t, encoded, ".")
		decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(encoded, "\r\n", ""))
		require.NoError(t, err)
		require.Equal(t, len(encoderTest), len(decoded))
		require.True(t, bytes.Equal(encoderTest, decoded))
	}
}

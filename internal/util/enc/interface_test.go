package enc

import (
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func Test_Lookup(t *testing.T) {
	for _, e := range Encoders() {
		byName, err := Lookup(e.Name())
		require.NoError(t, err)
		require.Equal(t, e, byName)

		byCode, err := Lookup(string(e.Code()))
		require.NoError(t, err)
		require.Equal(t, e, byCode)
	}

	e, err := Lookup("base91")
	require.NoError(t, err)
	require.Equal(t, "Base91", e.Name())

	_, err = Lookup("base65536")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Base64u")
}

func Test_Encoders_UniqueCodes(t *testing.T) {
	codes := make(map[byte]string)
	for _, e := range Encoders() {
		_, found := codes[e.Code()]
		require.False(t, found, "Duplicate code %v", string(e.Code()))
		codes[e.Code()] = e.Name()
	}
	require.Equal(t, DefaultEncoder, Encoders()[0])
}

func Test_Format(t *testing.T) {
	var f Format
	e, err := f.Encoder()
	require.NoError(t, err)
	require.Equal(t, DefaultEncoder, e)

	require.NoError(t, f.UnmarshalFlag(" base32 "))
	require.Equal(t, Format("base32"), f)
	e, err = f.Encoder()
	require.NoError(t, err)
	require.Equal(t, "Base32", e.Name())

	require.Error(t, f.UnmarshalFlag("nope"))
	require.Equal(t, Format("base32"), f)
}

func Test_Format_MarshalFlag(t *testing.T) {
	name, err := Format("").MarshalFlag()
	require.NoError(t, err)
	require.Equal(t, DefaultEncoder.Name(), name)

	name, err = Format("X").MarshalFlag()
	require.NoError(t, err)
	require.Equal(t, "Base91", name)

	var f Format
	require.NoError(t, f.UnmarshalFlag("base64U"))
	name, err = f.MarshalFlag()
	require.NoError(t, err)
	require.Equal(t, "Base64u", name)

	_, err = Format("nope").MarshalFlag()
	require.Error(t, err)
}

// Every encoder must produce ASCII; all but Base128 must stay printable apart from CRLF.
func Test_Encoders_Output(t *testing.T) {
	expected := map[string]string{
		"Base64":  "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/",
		"Base64u": "----____",
		"Base32":  "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567",
		"Base85":  "z",
	}

	for _, e := range Encoders() {
		patterns := e.TestPatterns()
		for i, pattern := range patterns {
			encoded := e.Encode([]byte(pattern))
			if i == 0 {
				if want, ok := expected[e.Name()]; ok {
					require.True(t, strings.HasPrefix(encoded, want), "%v encoded to %v", e, encoded)
				}
			}
			for _, c := range []byte(encoded) {
				require.True(t, c < 0x80, "%v produced a non-ASCII character", e)
				if e.Code() != 'V' && c != '\r' && c != '\n' {
					require.True(t, c > ' ' && c < 0x7F, "%v produced a non-printable character %q", e, c)
				}
			}
		}
	}
}

package enc

import (
	"encoding/base64"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Base64uEncoder(t *testing.T) {
	encoder := Base64uEncoder{}
	require.Equal(t, "----____", encoder.Encode([]byte("\xfb\xef\xbe\xff\xff\xff")))
	require.Equal(t, "QUI", encoder.Encode([]byte("AB")))

	for _, encoderTest := range encoderTests {
		encoded := encoder.Encode(encoderTest)
		require.NotContains(t, encoded, "=")
		decoded, err := base64.RawURLEncoding.DecodeString(encoded)
		require.NoError(t, err)
		require.Equal(t, encoderTest, decoded)
	}
}

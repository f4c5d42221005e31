package xtext

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestBig5DecoderTransformsCleanInput(t *testing.T) {
	dec := Big5.NewDecoder()
	out, _, err := transform.Bytes(dec, []byte{0x87, 0x40})
	require.NoError(t, err)
	assert.Equal(t, "䏰", string(out))
}

func TestGB18030DecoderSplicesReplacementForMalformedInput(t *testing.T) {
	dec := GB18030.NewDecoder()
	out, _, err := transform.Bytes(dec, []byte{0xFF})
	require.NoError(t, err)
	assert.Equal(t, "�", string(out))
}

func TestGBKEncoderSingleByteEuroSign(t *testing.T) {
	enc := GBK.NewEncoder()
	out, _, err := transform.Bytes(enc, []byte("€"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, out)
}

func TestEUCJPEncoderSubstitutesQuestionMarkForUnmappable(t *testing.T) {
	enc := EUCJP.NewEncoder()
	out, _, err := transform.Bytes(enc, []byte(string(rune(0x0391))))
	require.NoError(t, err)
	assert.Equal(t, "?", string(out))
}

func TestBig5DecoderReaderStreams(t *testing.T) {
	r := transform.NewReader(strings.NewReader(string([]byte{0x87, 0x40, 'h', 'i'})), Big5.NewDecoder())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "䏰hi", string(out))
}

func TestEncodingStringers(t *testing.T) {
	assert.Equal(t, "Big5", Big5.(interface{ String() string }).String())
	assert.Equal(t, "GB18030", GB18030.(interface{ String() string }).String())
}

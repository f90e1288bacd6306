package codec

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "voice-notes/internal/app/errors"
)

func TestBase64RoundTrip(t *testing.T) {
	random := make([]byte, 4096)
	_, err := rand.Read(random)
	require.NoError(t, err)

	payloads := map[string][]byte{
		"empty":     {},
		"one byte":  {0x00},
		"two bytes": {0xff, 0xfe},
		"text":      []byte("hello voice notes"),
		"random":    random,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			enc := ToBase64(payload, "audio/webm")

			fromURL, err := FromBase64(enc.DataURL)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(payload, fromURL), "data URL round trip mismatch")

			fromBody, err := FromBase64(enc.Body)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(payload, fromBody), "body round trip mismatch")
		})
	}
}

func TestToBase64DataURLPrefix(t *testing.T) {
	enc := ToBase64([]byte("abc"), "audio/ogg;codecs=opus")
	assert.Equal(t, "data:audio/ogg;codecs=opus;base64,YWJj", enc.DataURL)
	assert.Equal(t, "YWJj", enc.Body)

	enc = ToBase64([]byte("abc"), "")
	assert.Equal(t, "data:application/octet-stream;base64,YWJj", enc.DataURL)
}

func TestFromBase64Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "illegal characters", input: "not base64!!"},
		{name: "data URL without comma", input: "data:audio/webm;base64"},
		{name: "data URL not base64", input: "data:text/plain,hello"},
		{name: "garbage body in data URL", input: "data:audio/webm;base64,@@@@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := FromBase64(tt.input)
			assert.Nil(t, data)
			require.Error(t, err)
			assert.True(t, apperrors.IsDecode(err))
		})
	}
}

func TestFromBase64TrimsWhitespace(t *testing.T) {
	data, err := FromBase64("  YWJj\n")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)
}

func TestMimeTypeFromDataURL(t *testing.T) {
	assert.Equal(t, "audio/webm;codecs=opus", MimeTypeFromDataURL("data:audio/webm;codecs=opus;base64,AAAA"))
	assert.Equal(t, "", MimeTypeFromDataURL("AAAA"))
	assert.Equal(t, "", MimeTypeFromDataURL("data:broken"))
}

func TestSizeLabel(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{-5, "0 Bytes"},
		{512, "512 Bytes"},
		{1023, "1023 Bytes"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
		{2048 * 1024 * 1024 * 1024, "2048.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeLabel(tt.bytes))
		})
	}
}

func TestExtensionForMimeType(t *testing.T) {
	assert.Equal(t, ".webm", ExtensionForMimeType("audio/webm;codecs=opus"))
	assert.Equal(t, ".ogg", ExtensionForMimeType("audio/ogg; codecs=opus"))
	assert.Equal(t, ".wav", ExtensionForMimeType("audio/wav"))
	assert.Equal(t, ".m4a", ExtensionForMimeType("audio/mp4"))
	assert.Equal(t, ".mp3", ExtensionForMimeType("audio/mpeg"))
}

func TestDetectMimeType(t *testing.T) {
	wav := append([]byte("RIFF\x24\x00\x00\x00WAVEfmt "), make([]byte, 32)...)
	assert.Contains(t, DetectMimeType(wav), "wav")
	assert.Equal(t, "text/plain; charset=utf-8", DetectMimeType([]byte("plain words")))
}

func TestPreferredMimeType(t *testing.T) {
	onlyOgg := func(m string) bool { return m == "audio/ogg" }
	assert.Equal(t, "audio/ogg", PreferredMimeType(onlyOgg))
	assert.Equal(t, FallbackAudioMimeType, PreferredMimeType(func(string) bool { return false }))
	assert.Equal(t, FallbackAudioMimeType, PreferredMimeType(nil))
}

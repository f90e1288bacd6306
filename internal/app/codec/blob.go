// Package codec converts audio payloads between raw bytes and transportable forms
// (base64 data URLs, process-local playback handles) and formats payload sizes.
package codec

import (
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	apperrors "voice-notes/internal/app/errors"
)

// DefaultMimeType is used when a payload has no declared encoding.
const DefaultMimeType = "application/octet-stream"

// FallbackAudioMimeType is the recording format used when nothing better is supported.
const FallbackAudioMimeType = "audio/webm"

// PreferredAudioMimeTypes lists recording formats in order of preference.
var PreferredAudioMimeTypes = []string{
	"audio/webm;codecs=opus",
	"audio/webm",
	"audio/mp4",
	"audio/ogg;codecs=opus",
	"audio/ogg",
	"audio/wav",
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// Encoded holds both textual forms of a payload.
type Encoded struct {
	DataURL string `json:"dataUrl"`
	Body    string `json:"base64"`
}

// ToBase64 encodes payload as a data URL and as a bare base64 body.
func ToBase64(payload []byte, mimeType string) Encoded {
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	body := base64.StdEncoding.EncodeToString(payload)
	return Encoded{
		DataURL: "data:" + mimeType + ";base64," + body,
		Body:    body,
	}
}

// FromBase64 decodes a data URL or a bare base64 body.
// Malformed input yields a *errors.DecodeError; it never substitutes empty data.
func FromBase64(s string) ([]byte, error) {
	body := strings.TrimSpace(s)
	if strings.HasPrefix(body, "data:") {
		comma := strings.IndexByte(body, ',')
		if comma < 0 {
			return nil, &apperrors.DecodeError{Reason: "data URL has no payload separator"}
		}
		header := body[len("data:"):comma]
		if !strings.HasSuffix(header, ";base64") {
			return nil, &apperrors.DecodeError{Reason: "data URL is not base64 encoded"}
		}
		body = body[comma+1:]
	}

	data, err := base64.StdEncoding.DecodeString(body)
	if err != nil && len(body)%4 != 0 {
		data, err = base64.RawStdEncoding.DecodeString(body)
	}
	if err != nil {
		return nil, &apperrors.DecodeError{Reason: "malformed base64", Err: err}
	}
	return data, nil
}

// MimeTypeFromDataURL returns the declared mime type of a data URL, or "" for bare bodies.
func MimeTypeFromDataURL(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return ""
	}
	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return ""
	}
	header := strings.TrimSuffix(s[len("data:"):comma], ";base64")
	return header
}

// SizeLabel formats a byte count with 1024-based units, e.g. 1536 -> "1.50 KB".
func SizeLabel(byteCount int64) string {
	if byteCount <= 0 {
		return "0 Bytes"
	}
	if byteCount < 1024 {
		return fmt.Sprintf("%d Bytes", byteCount)
	}

	value := float64(byteCount)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}

// DetectMimeType sniffs the payload's encoding from its leading bytes.
func DetectMimeType(payload []byte) string {
	return mimetype.Detect(payload).String()
}

// BaseMimeType strips parameters such as ";codecs=opus".
func BaseMimeType(mimeType string) string {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0])
	}
	return mediaType
}

// ExtensionForMimeType returns a file extension (with dot) suitable for the given encoding.
func ExtensionForMimeType(mimeType string) string {
	switch BaseMimeType(mimeType) {
	case "audio/webm", "video/webm":
		return ".webm"
	case "audio/mp4", "audio/x-m4a":
		return ".m4a"
	case "audio/ogg":
		return ".ogg"
	case "audio/wav", "audio/x-wav", "audio/wave":
		return ".wav"
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	}
	if m := mimetype.Lookup(BaseMimeType(mimeType)); m != nil && m.Extension() != "" {
		return m.Extension()
	}
	return ".bin"
}

// PreferredMimeType returns the first preferred recording format the platform supports.
func PreferredMimeType(supported func(string) bool) string {
	for _, t := range PreferredAudioMimeTypes {
		if supported != nil && supported(t) {
			return t
		}
	}
	return FallbackAudioMimeType
}

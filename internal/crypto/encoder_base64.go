package crypto

import (
	"encoding/base64"
	"unicode/utf8"
)

// base64Encoder is the keyless scheme: standard base64 over the UTF-8 bytes.
// It only obscures values from a casual look at the file.
type base64Encoder struct{}

// NewBase64Encoder returns the keyless [Encoder].
func NewBase64Encoder() Encoder {
	return base64Encoder{}
}

// Encode implements [Encoder].
func (base64Encoder) Encode(plaintext string) string {
	return base64.StdEncoding.EncodeToString([]byte(plaintext))
}

// Decode implements [Encoder].
func (base64Encoder) Decode(encoded string) string {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || !utf8.Valid(raw) {
		return ""
	}
	return string(raw)
}

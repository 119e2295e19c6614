package sealbox

import (
	"encoding/base64"
	"strings"
)

// EncodeToString returns the text-safe form of a container (standard base64 with padding)
func EncodeToString(container []byte) string {
	return base64.StdEncoding.EncodeToString(container)
}

// DecodeString reverses EncodeToString. Whitespace anywhere in text (spaces,
// tabs and line breaks) is ignored, so wrapped or indented forms decode.
func DecodeString(text string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, text)

	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, &FormatError{
			Message: ErrBadEncoding.Error(),
			Err:     ErrBadEncoding,
		}
	}
	return data, nil
}

package agenda

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeDataURL wraps binary data in a data URI with a base64 payload,
// the text-safe encoding used by snapshot documents:
// "data:<mime>;base64,<payload>".
func EncodeDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL extracts the binary payload of a data URI produced by
// EncodeDataURL, or by the web capture flow this format originates from.
func DecodeDataURL(s string) ([]byte, error) {
	_, payload, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("%w: data url has no payload separator", ErrMalformedSnapshot)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return data, nil
}

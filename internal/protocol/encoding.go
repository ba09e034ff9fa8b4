package protocol

import (
	"encoding/base64"
	"unicode/utf8"
)

func encodeRaw(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// utf8Text returns b as a string with trailing NULs trimmed, or false when b
// is not valid UTF-8.
func utf8Text(b []byte) (string, bool) {
	if !utf8.Valid(b) {
		return "", false
	}
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end]), true
}

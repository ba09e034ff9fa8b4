package input

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Encoding is the text wrapping of the input, if any.
type Encoding string

const (
	EncodingRaw    Encoding = "raw"
	EncodingHex    Encoding = "hex"
	EncodingBase64 Encoding = "base64"
	// EncodingAuto picks hex, then base64, then raw by looking at the bytes.
	EncodingAuto Encoding = "auto"
)

func ParseEncoding(raw string) (Encoding, error) {
	switch e := Encoding(normalize(raw)); e {
	case EncodingRaw, EncodingHex, EncodingBase64, EncodingAuto:
		return e, nil
	case "":
		return EncodingRaw, nil
	default:
		return "", fmt.Errorf("input: unknown encoding %q", raw)
	}
}

// DecodeText unwraps hex or base64 text. Whitespace and a leading "0x" are
// ignored for hex.
func DecodeText(data []byte, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingRaw, "":
		return data, nil
	case EncodingHex:
		out, err := decodeHex(data)
		return out, errors.Wrap(err, "decode hex input")
	case EncodingBase64:
		out, err := decodeBase64(data)
		return out, errors.Wrap(err, "decode base64 input")
	case EncodingAuto:
		return DecodeText(data, DetectEncoding(data))
	default:
		return nil, fmt.Errorf("input: unknown encoding %q", enc)
	}
}

// DetectEncoding reports hex when data is only hex digits, base64 when it is
// only base64 alphabet and decodes, raw otherwise.
func DetectEncoding(data []byte) Encoding {
	compact := stripSpace(data)
	if len(compact) == 0 {
		return EncodingRaw
	}
	if len(compact)%2 == 0 && isHex(bytes.TrimPrefix(compact, []byte("0x"))) {
		return EncodingHex
	}
	if isBase64(compact) {
		if _, err := decodeBase64(compact); err == nil {
			return EncodingBase64
		}
	}
	return EncodingRaw
}

func decodeHex(data []byte) ([]byte, error) {
	compact := bytes.TrimPrefix(stripSpace(data), []byte("0x"))
	out := make([]byte, hex.DecodedLen(len(compact)))
	n, err := hex.Decode(out, compact)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

func decodeBase64(data []byte) ([]byte, error) {
	compact := string(stripSpace(data))
	if strings.HasSuffix(compact, "=") || len(compact)%4 == 0 {
		return base64.StdEncoding.DecodeString(compact)
	}
	return base64.RawStdEncoding.DecodeString(compact)
}

func stripSpace(data []byte) []byte {
	return bytes.Join(bytes.Fields(data), nil)
}

func isHex(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func isBase64(b []byte) bool {
	for _, c := range b {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '+', c == '/', c == '=':
		default:
			return false
		}
	}
	return true
}

package input

import (
	"bytes"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Compression is the container the protobuf bytes are wrapped in.
type Compression string

const (
	CompressionNone   Compression = "none"
	CompressionGzip   Compression = "gzip"
	CompressionZstd   Compression = "zstd"
	CompressionSnappy Compression = "snappy"
	// CompressionAuto sniffs gzip, zstd and framed snappy magic bytes.
	CompressionAuto Compression = "auto"
)

var (
	gzipMagic         = []byte{0x1f, 0x8b}
	zstdMagic         = []byte{0x28, 0xb5, 0x2f, 0xfd}
	snappyStreamMagic = []byte{0xff, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

func ParseCompression(raw string) (Compression, error) {
	switch c := Compression(normalize(raw)); c {
	case CompressionNone, CompressionGzip, CompressionZstd, CompressionSnappy, CompressionAuto:
		return c, nil
	case "":
		return CompressionAuto, nil
	default:
		return "", fmt.Errorf("input: unknown compression %q", raw)
	}
}

// DetectCompression returns CompressionNone when no magic matches. Block
// snappy has no magic and is never detected.
func DetectCompression(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, snappyStreamMagic):
		return CompressionSnappy
	default:
		return CompressionNone
	}
}

// Decompress unwraps data, refusing output larger than max bytes.
func Decompress(data []byte, c Compression, max int64) ([]byte, error) {
	if c == CompressionAuto {
		c = DetectCompression(data)
	}
	switch c {
	case CompressionNone, "":
		if int64(len(data)) > max {
			return nil, errors.Wrapf(ErrTooLarge, "more than %d bytes", max)
		}
		return data, nil
	case CompressionGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(err, "open gzip input")
		}
		defer zr.Close()
		return inflate(zr, max, "gzip")
	case CompressionZstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(err, "open zstd input")
		}
		defer zr.Close()
		return inflate(zr, max, "zstd")
	case CompressionSnappy:
		if bytes.HasPrefix(data, snappyStreamMagic) {
			return inflate(snappy.NewReader(bytes.NewReader(data)), max, "snappy")
		}
		n, err := snappy.DecodedLen(data)
		if err != nil {
			return nil, errors.Wrap(err, "decode snappy input")
		}
		if int64(n) > max {
			return nil, errors.Wrapf(ErrTooLarge, "snappy output of %d bytes", n)
		}
		out, err := snappy.Decode(nil, data)
		return out, errors.Wrap(err, "decode snappy input")
	default:
		return nil, fmt.Errorf("input: unknown compression %q", c)
	}
}

func inflate(r io.Reader, max int64, name string) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, errors.Wrapf(err, "decompress %s input", name)
	}
	if int64(len(out)) > max {
		return nil, errors.Wrapf(ErrTooLarge, "%s output over %d bytes", name, max)
	}
	return out, nil
}

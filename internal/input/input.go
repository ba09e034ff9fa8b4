// Package input turns files and stdin into the raw bytes handed to the
// decoder: size limit, text encodings and decompression.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// DefaultMaxBytes caps a single input after decoding and decompression.
const DefaultMaxBytes int64 = 64 << 20

var ErrTooLarge = errors.New("input: exceeds size limit")

// Options select how raw input bytes are interpreted.
type Options struct {
	Encoding    Encoding
	Compression Compression
	MaxBytes    int64
}

func DefaultOptions() Options {
	return Options{
		Encoding:    EncodingRaw,
		Compression: CompressionAuto,
		MaxBytes:    DefaultMaxBytes,
	}
}

func (o Options) Validate() error {
	if _, err := ParseEncoding(string(o.Encoding)); err != nil {
		return err
	}
	if _, err := ParseCompression(string(o.Compression)); err != nil {
		return err
	}
	if o.MaxBytes <= 0 {
		return fmt.Errorf("input: max bytes must be positive, got %d", o.MaxBytes)
	}
	return nil
}

// Load reads path ("-" for stdin) and returns the bytes to decode.
func Load(path string, opts Options) ([]byte, error) {
	if path == "" || path == "-" {
		return Read(bufio.NewReader(os.Stdin), opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	data, err := Read(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return data, nil
}

// Read applies the size limit, text decoding and decompression to r.
func Read(r io.Reader, opts Options) ([]byte, error) {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	data, err := readLimited(r, opts.MaxBytes)
	if err != nil {
		return nil, err
	}
	return Prepare(data, opts)
}

// Prepare applies text decoding and decompression to data already in memory.
func Prepare(data []byte, opts Options) ([]byte, error) {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	data, err := DecodeText(data, opts.Encoding)
	if err != nil {
		return nil, err
	}
	return Decompress(data, opts.Compression, opts.MaxBytes)
}

func readLimited(r io.Reader, max int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	if int64(len(data)) > max {
		return nil, errors.Wrapf(ErrTooLarge, "more than %d bytes", max)
	}
	return data, nil
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

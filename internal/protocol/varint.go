package protocol

import (
	"github.com/pkg/errors"

	"github.com/danmuck/pbscope/internal/protocol/cursor"
)

// readVarint decodes a base-128 varint. Seven-bit groups are summed into a
// signed accumulator; no zig-zag decoding is applied. An empty buffer decodes
// to 0 without consuming anything.
func readVarint(buf []byte) (int64, []byte, error) {
	var acc int64
	rest := buf
	for shift := uint(0); len(rest) > 0; shift += 7 {
		b, next, err := cursor.U8(rest)
		if err != nil {
			return 0, buf, err
		}
		acc += int64(b&0x7f) << shift
		rest = next
		if b&0x80 == 0 {
			return acc, rest, nil
		}
		if len(rest) == 0 {
			return 0, buf, errors.Wrapf(cursor.ErrInsufficientBytes, "unterminated varint after %d bytes", len(buf))
		}
	}
	return acc, rest, nil
}

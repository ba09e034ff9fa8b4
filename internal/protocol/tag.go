package protocol

import (
	"github.com/pkg/errors"

	"github.com/danmuck/pbscope/internal/protocol/cursor"
)

// readTag decodes a field header. The wire type comes from the first byte.
// While the previous byte has its high bit set, the field number is
// multiplied by the next byte; this is not varint accumulation and only
// matches protobuf for some field numbers (128, 1024, 32768, ...).
func readTag(buf []byte) (Tag, []byte, error) {
	first, rest, err := cursor.U8(buf)
	if err != nil {
		return Tag{}, buf, errors.Wrap(err, "tag")
	}
	tag := Tag{
		TagByte:  first,
		WireType: wireTypeOf(first),
		Field:    uint64(first >> 3),
	}
	for last := first; last&0x80 != 0; {
		next, r, err := cursor.U8(rest)
		if err != nil {
			return Tag{}, buf, errors.Wrap(err, "tag continuation")
		}
		tag.Field *= uint64(next)
		last, rest = next, r
	}
	return tag, rest, nil
}

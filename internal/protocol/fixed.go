package protocol

import (
	"github.com/pkg/errors"

	"github.com/danmuck/pbscope/internal/protocol/cursor"
)

// readFixed64 reads 8 little-endian bytes as signed, unsigned and double.
func readFixed64(buf []byte) (Value, []byte, error) {
	bits, rest, err := cursor.U64(buf, cursor.LittleEndian)
	if err != nil {
		return Value{}, buf, errors.Wrap(err, "fixed64")
	}
	return Fixed64Value(bits), rest, nil
}

// readFixed32 reads 4 little-endian bytes as signed, unsigned and float.
func readFixed32(buf []byte) (Value, []byte, error) {
	bits, rest, err := cursor.U32(buf, cursor.LittleEndian)
	if err != nil {
		return Value{}, buf, errors.Wrap(err, "fixed32")
	}
	return Fixed32Value(bits), rest, nil
}

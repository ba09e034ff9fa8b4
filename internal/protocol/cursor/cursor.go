// Package cursor holds the fixed-width byte reads the protobuf decoder is
// built on. Every read returns the decoded value and the unconsumed rest of
// the buffer; nothing is copied.
package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrInsufficientBytes = errors.New("cursor: insufficient bytes")

// Endian selects the byte order of multi-byte reads. Protobuf only uses
// little endian.
type Endian uint8

const (
	LittleEndian Endian = iota
	BigEndian
)

func (e Endian) order() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Take splits n bytes off the front of buf.
func Take(buf []byte, n int) ([]byte, []byte, error) {
	if n < 0 || len(buf) < n {
		return nil, buf, fmt.Errorf("%w: need %d, have %d", ErrInsufficientBytes, n, len(buf))
	}
	return buf[:n], buf[n:], nil
}

func U8(buf []byte) (uint8, []byte, error) {
	b, rest, err := Take(buf, 1)
	if err != nil {
		return 0, buf, err
	}
	return b[0], rest, nil
}

func U32(buf []byte, e Endian) (uint32, []byte, error) {
	b, rest, err := Take(buf, 4)
	if err != nil {
		return 0, buf, err
	}
	return e.order().Uint32(b), rest, nil
}

func U64(buf []byte, e Endian) (uint64, []byte, error) {
	b, rest, err := Take(buf, 8)
	if err != nil {
		return 0, buf, err
	}
	return e.order().Uint64(b), rest, nil
}

func I32(buf []byte, e Endian) (int32, []byte, error) {
	v, rest, err := U32(buf, e)
	return int32(v), rest, err
}

func I64(buf []byte, e Endian) (int64, []byte, error) {
	v, rest, err := U64(buf, e)
	return int64(v), rest, err
}

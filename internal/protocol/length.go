package protocol

import (
	"github.com/pkg/errors"

	"github.com/danmuck/pbscope/internal/protocol/cursor"
)

// Non-UTF-8 payloads above this size are reported by length only.
const maxLoggedPayload = 2 << 20

// readLength decodes a length-delimited value: UTF-8 text first, then a
// nested message, then base64 of the raw payload.
func (d *Decoder) readLength(buf []byte, depth int) (Value, []byte, error) {
	n, rest, err := d.readLengthPrefix(buf)
	if err != nil {
		return Value{}, buf, err
	}
	payload, rest, err := cursor.Take(rest, n)
	if err != nil {
		return Value{}, buf, errors.Wrap(err, "length payload")
	}

	if s, ok := utf8Text(payload); ok {
		return StringValue(s), rest, nil
	}

	ev := d.logger.Warn().Int("depth", depth).Int("size", len(payload))
	if len(payload) < maxLoggedPayload {
		ev = ev.Str("payload", encodeRaw(payload))
	}
	ev.Msg("length payload is not UTF-8, trying nested message")

	nested, err := d.parseMessage(payload, depth+1)
	if err != nil {
		d.logger.Debug().Err(err).Int("depth", depth).Msg("nested message decode failed, keeping raw bytes")
		return BytesValue(payload), rest, nil
	}
	return MessageValue(nested), rest, nil
}

func (d *Decoder) readLengthPrefix(buf []byte) (int, []byte, error) {
	if d.opts.VarintLengths {
		n, rest, err := readVarint(buf)
		if err != nil {
			return 0, buf, errors.Wrap(err, "length prefix")
		}
		if len(rest) == len(buf) {
			return 0, buf, errors.Wrap(cursor.ErrInsufficientBytes, "length prefix")
		}
		if n < 0 {
			return 0, buf, errors.Errorf("length prefix %d out of range", n)
		}
		return int(n), rest, nil
	}
	n, rest, err := cursor.U8(buf)
	if err != nil {
		return 0, buf, errors.Wrap(err, "length prefix")
	}
	return int(n), rest, nil
}

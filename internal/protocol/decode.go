package protocol

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options tune decoding. The zero value reads single-byte length prefixes.
type Options struct {
	// VarintLengths reads length prefixes as full varints instead of a
	// single byte, so payloads of 128 bytes or more decode correctly.
	VarintLengths bool
}

// Decoder holds options and a logger. It keeps no state between calls and is
// safe for concurrent use.
type Decoder struct {
	opts   Options
	logger zerolog.Logger
}

func NewDecoder(opts Options, logger zerolog.Logger) *Decoder {
	return &Decoder{opts: opts, logger: logger.With().Str("component", "protocol").Logger()}
}

// Decode parses data as one top-level protobuf message. On failure no
// partial result is returned and the error matches ErrParse.
func (d *Decoder) Decode(data []byte) (Fields, error) {
	fields, err := d.parseMessage(data, 0)
	if err != nil {
		d.logger.Error().Err(err).Int("size", len(data)).Msg("could not parse provided protobuf bytes")
		return nil, &ParseError{Reason: err.Error()}
	}
	return fields, nil
}

// Extract decodes data with default options and the global logger.
func Extract(data []byte) (Fields, error) {
	return NewDecoder(Options{}, log.Logger).Decode(data)
}

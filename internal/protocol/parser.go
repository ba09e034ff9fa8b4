package protocol

// parseMessage walks buf tag by tag until it is consumed or a group or
// unknown wire type ends the stream. Any primitive failure aborts the whole
// buffer.
func (d *Decoder) parseMessage(buf []byte, depth int) (Fields, error) {
	fields := make(Fields)
	for len(buf) > 0 {
		tag, rest, err := readTag(buf)
		if err != nil {
			return nil, err
		}

		var value Value
		switch tag.WireType {
		case WireVarInt:
			var n int64
			n, rest, err = readVarint(rest)
			value = IntValue(n)
		case WireFixed64:
			value, rest, err = readFixed64(rest)
		case WireFixed32:
			value, rest, err = readFixed32(rest)
		case WireLen:
			value, rest, err = d.readLength(rest, depth)
		case WireStartGroup, WireEndGroup:
			d.logger.Warn().Uint64("field", tag.Field).Stringer("wire_type", tag.WireType).
				Msg("deprecated group wire type, ending decode and keeping the remainder as base64")
			value, rest = BytesValue(rest), nil
		default:
			d.logger.Warn().Uint64("field", tag.Field).Uint8("tag_byte", tag.TagByte).
				Msg("unknown wire type, data may be corrupt or not protobuf; keeping the remainder as base64")
			value, rest = BytesValue(rest), nil
		}
		if err != nil {
			return nil, err
		}

		fields.merge(tag, value)
		buf = rest
	}
	return fields, nil
}

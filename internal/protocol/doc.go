// Package protocol decodes protobuf wire-format bytes without a schema.
//
// Ownership boundary:
// - tag and wire type primitives
// - varint, fixed-width and length-delimited value decoding
// - the field map value tree and its JSON form
//
// The decoder guesses: length-delimited payloads are tried as UTF-8 text,
// then as a nested message, then kept as base64 text. Fixed-width values
// carry every numeric interpretation.
package protocol

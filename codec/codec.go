// Package codec persists vecunits records.
//
// Records are marshaled with a Codec (JSON by default) and wrapped in a
// self-describing frame that stores the codec name and the compression
// algorithm in its header:
//
//	data, _ := codec.Encode(ctx, records, codec.WithCompression(codec.CompressionZSTD))
//	records, _ := codec.Decode(ctx, data)
//
// Changing codecs is a breaking-change boundary for persisted bytes; frames
// always select the codec by name on decode.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

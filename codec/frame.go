package codec

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/vecunits"
	"github.com/hupe1980/vecunits/internal/conv"
	"github.com/hupe1980/vecunits/unit"
)

var (
	// ErrCorruptFrame is returned when a frame cannot be parsed.
	ErrCorruptFrame = errors.New("corrupt frame")
	// ErrUnknownCodec is returned when a frame names a codec that is not built in.
	ErrUnknownCodec = errors.New("unknown codec")
	// ErrFrameTooLarge is returned when a frame exceeds the decode size limit.
	ErrFrameTooLarge = errors.New("frame too large")
)

const (
	frameVersion = 1
	// Fixed part of the header: magic, version, compression, name length.
	frameFixedSize = 7
	// Sizes after the codec name: uncompressed, stored, count.
	frameSizesSize = 12
)

var frameMagic = [4]byte{'V', 'U', '3', 'R'}

// Frame layout (little endian):
//
//	[magic "VU3R"][version u8][compression u8][name len u8][codec name]
//	[uncompressed size u32][stored size u32][record count u32][payload]
//
// The compression byte is CompressionNone when compressing did not help.

// Encode marshals records into a frame.
func Encode(ctx context.Context, records []vecunits.Record, opts ...Option) ([]byte, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	data, err := encode(records, o)
	o.metrics.RecordEncode(len(records), len(data), time.Since(start), err)
	o.logger.WithCompression(o.compression.String()).LogEncode(ctx, len(records), len(data), err)
	return data, err
}

func encode(records []vecunits.Record, o options) ([]byte, error) {
	count, err := conv.IntToUint32(len(records))
	if err != nil {
		return nil, err
	}
	name := o.codec.Name()
	if len(name) > 255 {
		return nil, fmt.Errorf("codec name too long: %q", name)
	}

	if records == nil {
		records = []vecunits.Record{}
	}
	payload, err := o.codec.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	rawSize, err := conv.IntToUint32(len(payload))
	if err != nil {
		return nil, err
	}

	compression := o.compression
	stored, err := compress(payload, compression)
	if err != nil {
		return nil, fmt.Errorf("compress %s: %w", compression, err)
	}
	if stored == nil {
		stored = payload
		compression = CompressionNone
	}

	buf := bytes.NewBuffer(make([]byte, 0, frameFixedSize+len(name)+frameSizesSize+len(stored)))
	buf.Write(frameMagic[:])
	buf.WriteByte(frameVersion)
	buf.WriteByte(byte(compression))
	buf.WriteByte(byte(len(name)))
	buf.WriteString(name)

	var sizes [frameSizesSize]byte
	binary.LittleEndian.PutUint32(sizes[0:], rawSize)
	binary.LittleEndian.PutUint32(sizes[4:], uint32(len(stored)))
	binary.LittleEndian.PutUint32(sizes[8:], count)
	buf.Write(sizes[:])
	buf.Write(stored)

	return buf.Bytes(), nil
}

// Decode parses a frame produced by Encode.
func Decode(ctx context.Context, data []byte, opts ...Option) ([]vecunits.Record, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	records, err := decode(data, o)
	o.metrics.RecordDecode(len(records), len(data), time.Since(start), err)
	o.logger.LogDecode(ctx, len(records), len(data), err)
	return records, err
}

func decode(data []byte, o options) ([]vecunits.Record, error) {
	if len(data) < frameFixedSize {
		return nil, fmt.Errorf("%w: frame too small for header", ErrCorruptFrame)
	}
	if !bytes.Equal(data[:4], frameMagic[:]) {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptFrame)
	}
	if data[4] != frameVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptFrame, data[4])
	}
	compression := Compression(data[5])
	nameLen := int(data[6])

	off := frameFixedSize
	if len(data) < off+nameLen+frameSizesSize {
		return nil, fmt.Errorf("%w: truncated header", ErrCorruptFrame)
	}
	name := string(data[off : off+nameLen])
	off += nameLen

	c, ok := ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	rawSize := binary.LittleEndian.Uint32(data[off:])
	storedSize := binary.LittleEndian.Uint32(data[off+4:])
	count := binary.LittleEndian.Uint32(data[off+8:])
	off += frameSizesSize

	if uint64(len(data)-off) < uint64(storedSize) {
		return nil, fmt.Errorf("%w: payload extends beyond data", ErrCorruptFrame)
	}
	stored := data[off : off+int(storedSize)]

	if compression != CompressionNone && uint64(rawSize) > maxExpansion(compression, storedSize) {
		return nil, fmt.Errorf("%w: %s payload of %d bytes cannot expand to %d", ErrCorruptFrame, compression, storedSize, rawSize)
	}
	if rawSize > o.maxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFrameTooLarge, rawSize, o.maxFrameSize)
	}

	payload := stored
	if compression != CompressionNone {
		var err error
		payload, err = decompress(stored, rawSize, compression)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
		}
	} else if storedSize != rawSize {
		return nil, fmt.Errorf("%w: size mismatch", ErrCorruptFrame)
	}

	var records []vecunits.Record
	if err := c.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("%w: unmarshal records: %w", ErrCorruptFrame, err)
	}

	n, err := conv.Uint32ToInt(count)
	if err != nil {
		return nil, err
	}
	if len(records) != n {
		return nil, fmt.Errorf("%w: expected %d records, got %d", ErrCorruptFrame, n, len(records))
	}
	return records, nil
}

// WriteFrame encodes records and writes the frame to w.
// It returns the number of bytes written.
func WriteFrame(ctx context.Context, w io.Writer, records []vecunits.Record, opts ...Option) (int, error) {
	data, err := Encode(ctx, records, opts...)
	if err != nil {
		return 0, err
	}
	return w.Write(data)
}

// ReadFrame reads a whole frame from r and decodes it.
func ReadFrame(ctx context.Context, r io.Reader, opts ...Option) ([]vecunits.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(ctx, data, opts...)
}

// EncodeVectors encodes vectors of one layout into a frame.
func EncodeVectors[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]](
	ctx context.Context,
	vs []vecunits.Vector3[T, D, U1, U2, U3],
	opts ...Option,
) ([]byte, error) {
	records := make([]vecunits.Record, len(vs))
	for i, v := range vs {
		records[i] = vecunits.ToRecord(v)
	}
	return Encode(ctx, records, opts...)
}

// DecodeVectors decodes a frame into vectors of the layout (U1, U2, U3).
//
// Compatible units are converted (see vecunits.FromRecord). The first
// failing record aborts decoding and its index is part of the error.
func DecodeVectors[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]](
	ctx context.Context,
	data []byte,
	opts ...Option,
) ([]vecunits.Vector3[T, D, U1, U2, U3], error) {
	records, err := Decode(ctx, data, opts...)
	if err != nil {
		return nil, err
	}

	vs := make([]vecunits.Vector3[T, D, U1, U2, U3], len(records))
	for i, r := range records {
		if err := vecunits.FromRecord(r, &vs[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return vs, nil
}

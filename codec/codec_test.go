package codec

import (
	"bytes"
	"context"
	"encoding/binary"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecunits"
	"github.com/hupe1980/vecunits/unit"
)

type mixed = vecunits.Vector3[float64, unit.Length, unit.Meter, unit.Centimeter, unit.Foot]

func newMixed(x, y, z float64) mixed {
	return vecunits.New[float64, unit.Length, unit.Meter, unit.Centimeter, unit.Foot](x, y, z)
}

func sampleVectors(n int) []mixed {
	vs := make([]mixed, n)
	for i := range vs {
		f := float64(i % 17)
		vs[i] = newMixed(f, f+0.5, -f)
	}
	return vs
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAreInterchangeable(t *testing.T) {
	r := vecunits.ToRecord(newMixed(1, 2, 3))

	for _, enc := range []Codec{JSON{}, GoJSON{}} {
		for _, dec := range []Codec{JSON{}, GoJSON{}} {
			var got vecunits.Record
			require.NoError(t, dec.Unmarshal(MustMarshal(enc, r), &got))
			assert.Equal(t, r, got, "%s -> %s", enc.Name(), dec.Name())
		}
	}

	assert.JSONEq(t, `{"units":["m","cm","ft"],"values":[1,2,3]}`, string(MustMarshal(nil, r)))
}

func TestFrame(t *testing.T) {
	ctx := context.Background()
	vs := sampleVectors(500)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		for _, cd := range []Codec{JSON{}, GoJSON{}} {
			t.Run(c.String()+"/"+cd.Name(), func(t *testing.T) {
				data, err := EncodeVectors(ctx, vs, WithCompression(c), WithCodec(cd))
				require.NoError(t, err)

				got, err := DecodeVectors[float64, unit.Length, unit.Meter, unit.Centimeter, unit.Foot](ctx, data)
				require.NoError(t, err)
				assert.Equal(t, vs, got)
			})
		}
	}
}

func TestFrameCompresses(t *testing.T) {
	ctx := context.Background()
	vs := sampleVectors(2000)

	plain, err := EncodeVectors(ctx, vs)
	require.NoError(t, err)
	packed, err := EncodeVectors(ctx, vs, WithCompression(CompressionZSTD))
	require.NoError(t, err)

	assert.Less(t, len(packed), len(plain))
	assert.Equal(t, byte(CompressionZSTD), packed[5])
}

func TestFrameIncompressibleFallsBack(t *testing.T) {
	data, err := Encode(context.Background(), nil, WithCompression(CompressionLZ4))
	require.NoError(t, err)
	assert.Equal(t, byte(CompressionNone), data[5])

	got, err := Decode(context.Background(), data)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFrameConvertsOnDecode(t *testing.T) {
	ctx := context.Background()
	data, err := EncodeVectors(ctx, []mixed{newMixed(1, 2, 3)})
	require.NoError(t, err)

	got, err := DecodeVectors[float64, unit.Length, unit.Centimeter, unit.Centimeter, unit.Centimeter](ctx, data)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 100, got[0].X().Value(), 1e-9)
	assert.InDelta(t, 2, got[0].Y().Value(), 1e-9)
	assert.InDelta(t, 91.44, got[0].Z().Value(), 1e-9)

	_, err = DecodeVectors[float64, unit.Time, unit.Second, unit.Second, unit.Second](ctx, data)
	var dm *vecunits.ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Contains(t, err.Error(), "record 0")
}

func TestFrameCorrupt(t *testing.T) {
	ctx := context.Background()
	data, err := EncodeVectors(ctx, sampleVectors(10), WithCompression(CompressionZSTD))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func([]byte) []byte
		target error
	}{
		{"Empty", func([]byte) []byte { return nil }, ErrCorruptFrame},
		{"Magic", func(b []byte) []byte { b[0] = 'X'; return b }, ErrCorruptFrame},
		{"Version", func(b []byte) []byte { b[4] = 99; return b }, ErrCorruptFrame},
		{"Truncated", func(b []byte) []byte { return b[:len(b)-4] }, ErrCorruptFrame},
		{"Codec", func(b []byte) []byte { b[7] = 'x'; return b }, ErrUnknownCodec},
		{"Payload", func(b []byte) []byte { b[len(b)-1] ^= 0xFF; return b }, ErrCorruptFrame},
		{"LZ4Expansion", func(b []byte) []byte {
			b[5] = byte(CompressionLZ4)
			return withRawSize(b, 0x7FFFFFFF)
		}, ErrCorruptFrame},
		{"ZSTDTooLarge", func(b []byte) []byte { return withRawSize(b, 0x7FFFFFFF) }, ErrFrameTooLarge},
		{"UncompressedTooLarge", func(b []byte) []byte {
			b[5] = byte(CompressionNone)
			return withRawSize(b, 0xFFFFFFFF)
		}, ErrFrameTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(ctx, tt.mutate(bytes.Clone(data)))
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

// withRawSize overwrites the uncompressed size field of a frame header.
func withRawSize(b []byte, size uint32) []byte {
	off := frameFixedSize + int(b[6])
	binary.LittleEndian.PutUint32(b[off:], size)
	return b
}

func TestFrameSizeCheckedBeforeAllocation(t *testing.T) {
	ctx := context.Background()
	data, err := Encode(ctx, []vecunits.Record{vecunits.ToRecord(newMixed(1, 2, 3))})
	require.NoError(t, err)

	data[5] = byte(CompressionLZ4)
	data = withRawSize(data, 0x7FFFFFFF)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err = Decode(ctx, data)
	runtime.ReadMemStats(&after)

	require.ErrorIs(t, err, ErrCorruptFrame)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
}

func TestWithMaxFrameSize(t *testing.T) {
	ctx := context.Background()
	data, err := EncodeVectors(ctx, sampleVectors(10))
	require.NoError(t, err)

	_, err = Decode(ctx, data, WithMaxFrameSize(16))
	assert.ErrorIs(t, err, ErrFrameTooLarge)

	records, err := Decode(ctx, data, WithMaxFrameSize(0))
	require.NoError(t, err)
	assert.Len(t, records, 10)
}

func TestReadWriteFrame(t *testing.T) {
	ctx := context.Background()
	metrics := &vecunits.BasicMetricsCollector{}
	records := []vecunits.Record{vecunits.ToRecord(newMixed(1, 2, 3))}

	var buf bytes.Buffer
	n, err := WriteFrame(ctx, &buf, records, WithCompression(CompressionLZ4), WithMetrics(metrics), WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, buf.Len(), n)

	got, err := ReadFrame(ctx, &buf, WithMetrics(metrics))
	require.NoError(t, err)
	assert.Equal(t, records, got)

	stats := metrics.Stats()
	assert.Equal(t, int64(1), stats.EncodeCount)
	assert.Equal(t, int64(1), stats.EncodeRecords)
	assert.Equal(t, int64(n), stats.EncodeBytes)
	assert.Equal(t, int64(1), stats.DecodeRecords)
	assert.Equal(t, int64(0), stats.DecodeErrors)
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "zstd", CompressionZSTD.String())
	assert.Equal(t, "Compression(7)", Compression(7).String())

	_, err := Encode(context.Background(), []vecunits.Record{{}}, WithCompression(Compression(7)))
	assert.Error(t, err)
}

package artifact

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressRoundTrip(t *testing.T) {
	// Repetitive enough that both algorithms actually shrink it.
	data := bytes.Repeat([]byte(`{"k":3,"wcss":1234.5}`), 100)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		payload, err := Compress(data, c)
		require.NoError(t, err, c)

		if c != CompressionNone {
			assert.Less(t, len(payload), len(data), c)
		}

		out, err := Decompress(payload)
		require.NoError(t, err, c)
		assert.Equal(t, data, out, c)
	}
}

func TestCompress_IncompressibleFallsBackToNone(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i*97 + 13)
	}

	payload, err := Compress(data, CompressionLZ4)
	require.NoError(t, err)
	assert.Equal(t, byte(CompressionNone), payload[0])
	assert.Len(t, payload, headerSize+len(data))

	out, err := Decompress(payload)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestCompress_UnknownType(t *testing.T) {
	_, err := Compress([]byte("x"), Compression(42))
	assert.Error(t, err)
}

func TestDecompress_Malformed(t *testing.T) {
	_, err := Decompress([]byte{1, 2})
	assert.Error(t, err)

	_, err = Decompress([]byte{42, 0, 0, 0, 0})
	assert.Error(t, err)
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "unknown(9)", Compression(9).String())
}

func TestCompressEmpty(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		payload, err := Compress(nil, c)
		require.NoError(t, err)

		out, err := Decompress(payload)
		require.NoError(t, err)
		assert.Empty(t, out)
	}
}

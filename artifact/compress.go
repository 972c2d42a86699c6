package artifact

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the compression algorithm applied to artifact payloads.
type Compression uint8

const (
	// CompressionNone stores the payload as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZstd uses zstd compression (better ratio).
	CompressionZstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// Payload header: [Compression uint8][UncompressedSize uint32 LE].
const headerSize = 5

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Compress wraps data in a self-describing compressed payload.
//
// If the compressed form is not smaller than the input, the payload is stored
// uncompressed regardless of the requested algorithm, so Compress never
// inflates a payload by more than the header.
func Compress(data []byte, c Compression) ([]byte, error) {
	var compressed []byte

	switch c {
	case CompressionNone:
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, fmt.Errorf("artifact: lz4 compress: %w", err)
		}
		if n > 0 && n < len(data) {
			compressed = buf[:n]
		}
	case CompressionZstd:
		enc := getZstdEncoder()
		out := enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
		if len(out) < len(data) {
			compressed = out
		}
	default:
		return nil, fmt.Errorf("artifact: unknown compression %d", c)
	}

	if compressed == nil {
		c = CompressionNone
		compressed = data
	}

	payload := make([]byte, headerSize+len(compressed))
	payload[0] = byte(c)
	binary.LittleEndian.PutUint32(payload[1:], uint32(len(data)))
	copy(payload[headerSize:], compressed)
	return payload, nil
}

// Decompress unwraps a payload produced by Compress.
func Decompress(payload []byte) ([]byte, error) {
	if len(payload) < headerSize {
		return nil, errors.New("artifact: payload too small for header")
	}

	c := Compression(payload[0])
	size := binary.LittleEndian.Uint32(payload[1:])
	body := payload[headerSize:]

	switch c {
	case CompressionNone:
		if uint32(len(body)) != size {
			return nil, errors.New("artifact: payload size mismatch")
		}
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil

	case CompressionLZ4:
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("artifact: lz4 decompress: %w", err)
		}
		if uint32(n) != size {
			return nil, errors.New("artifact: decompressed size mismatch")
		}
		return out, nil

	case CompressionZstd:
		dec := getZstdDecoder()
		out, err := dec.DecodeAll(body, make([]byte, 0, size))
		zstdDecoderPool.Put(dec)
		if err != nil {
			return nil, fmt.Errorf("artifact: zstd decompress: %w", err)
		}
		if uint32(len(out)) != size {
			return nil, errors.New("artifact: decompressed size mismatch")
		}
		return out, nil

	default:
		return nil, fmt.Errorf("artifact: unknown compression %d", c)
	}
}

package zenjson

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// zstd encoders and decoders are safe for concurrent EncodeAll/DecodeAll.
var (
	zstdEncoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil)
	})
	zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil)
	})
)

func compress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressNone:
		return data, nil
	case CompressZstd:
		enc, err := zstdEncoder()
		if err != nil {
			return nil, err
		}
		return enc.EncodeAll(data, nil), nil
	case CompressLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressSnappy:
		return snappy.Encode(nil, data), nil
	default:
		return nil, fmt.Errorf("unknown compression %q", string(c))
	}
}

func decompress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressNone:
		return data, nil
	case CompressZstd:
		dec, err := zstdDecoder()
		if err != nil {
			return nil, err
		}
		return dec.DecodeAll(data, nil)
	case CompressLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	case CompressSnappy:
		return snappy.Decode(nil, data)
	default:
		return nil, fmt.Errorf("unknown compression %q", string(c))
	}
}

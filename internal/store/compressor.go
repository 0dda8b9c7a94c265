package store

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"likability/internal/store/interfaces"
	"likability/internal/structures"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (z *ZstdCompression) Compress(val []byte) ([]byte, error) {
	return z.encoder.EncodeAll(val, make([]byte, 0, len(val)/2)), nil
}

// Decompress sniffs the frame magic so plain-JSON documents written before
// compression was enabled still load.
func (z *ZstdCompression) Decompress(val []byte) ([]byte, error) {
	if !bytes.HasPrefix(val, zstdMagic) {
		return val, nil
	}
	return z.decoder.DecodeAll(val, nil)
}

// NoopCompression writes documents untouched so the on-disk files stay plain
// JSON. Loads still sniff the frame magic: documents written while
// compression was enabled must load after it is turned off.
type NoopCompression struct {
	once    sync.Once
	decoder *zstd.Decoder
	initErr error
}

func (n *NoopCompression) Compress(val []byte) ([]byte, error) { return val, nil }

func (n *NoopCompression) Decompress(val []byte) ([]byte, error) {
	if !bytes.HasPrefix(val, zstdMagic) {
		return val, nil
	}
	n.once.Do(func() {
		n.decoder, n.initErr = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	})
	if n.initErr != nil {
		return nil, n.initErr
	}
	return n.decoder.DecodeAll(val, nil)
}

func NewCompressor(conf *structures.Config) (interfaces.CompressorInterface, error) {
	if !conf.Persistence.Compress {
		return &NoopCompression{}, nil
	}
	return NewZstdCompressor()
}

func NewZstdCompressor() (interfaces.CompressorInterface, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCompression{encoder: encoder, decoder: decoder}, nil
}

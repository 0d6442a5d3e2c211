package fse

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"testing"
)

// walkRecords parses the record headers of a well-formed frame and returns
// the per-record symbol counts.
func walkRecords(t *testing.T, frame []byte) []uint32 {
	t.Helper()
	var sizes []uint32
	pos := 0
	for pos < len(frame) {
		if len(frame)-pos < recordHeaderSize {
			t.Fatalf("truncated header at offset %d", pos)
		}
		blockSize := binary.LittleEndian.Uint32(frame[pos:])
		bitCount := binary.LittleEndian.Uint32(frame[pos+4:])
		pos += recordHeaderSize + int(bitCount+7)/8
		sizes = append(sizes, blockSize)
	}
	if pos != len(frame) {
		t.Fatalf("cursor overran frame: %d != %d", pos, len(frame))
	}
	return sizes
}

func TestFrameMultiBlock(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	src := make([]byte, 100000)
	for i := range src {
		src[i] = byte(rng.Intn(16))
	}
	frame := Compress(src, 4) // 32 KiB blocks

	sizes := walkRecords(t, frame)
	want := []uint32{32768, 32768, 32768, 1696}
	if len(sizes) != len(want) {
		t.Fatalf("record count: got %d want %d", len(sizes), len(want))
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("record %d: %d symbols, want %d", i, sizes[i], want[i])
		}
	}

	got, err := Decompress(frame, 4)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(got, src) {
		t.Fatalf("round trip mismatch")
	}
}

// Chunking must be invisible to the caller: single-block and 32 KiB framings
// of the same input both decode to it.
func TestFrameBlockSizeInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(71))
	src := make([]byte, 90000)
	for i := range src {
		src[i] = byte(rng.Intn(8))
	}

	single := Compress(src, 3) // whole input, one record
	framed := Compress(src, 4) // 32 KiB records
	if len(walkRecords(t, single)) != 1 {
		t.Fatalf("level 3 should emit one record")
	}
	if len(walkRecords(t, framed)) != 3 {
		t.Fatalf("level 4 should emit three records")
	}

	for _, frame := range [][]byte{single, framed} {
		got, err := Decompress(frame, 3) // both are lsb; decoder reads headers only
		if err != nil {
			t.Fatalf("decompress: %v", err)
		}
		if !bytes.Equal(got, src) {
			t.Fatalf("round trip mismatch")
		}
	}
}

func TestFrameCorruption(t *testing.T) {
	rng := rand.New(rand.NewSource(81))
	src := make([]byte, 4096)
	for i := range src {
		src[i] = byte(rng.Intn(6))
	}
	frame := Compress(src, 2)

	check := func(t *testing.T, mangled []byte) {
		t.Helper()
		if _, err := Decompress(mangled, 2); !errors.Is(err, ErrCorruptFrame) {
			t.Fatalf("expected corrupt frame, got %v", err)
		}
	}

	t.Run("truncated_header", func(t *testing.T) {
		check(t, frame[:recordHeaderSize-100])
	})

	t.Run("truncated_payload", func(t *testing.T) {
		check(t, frame[:len(frame)-1])
	})

	t.Run("trailing_garbage", func(t *testing.T) {
		check(t, append(bytes.Clone(frame), 0xAB, 0xCD))
	})

	t.Run("table_log_out_of_range", func(t *testing.T) {
		mangled := bytes.Clone(frame)
		binary.LittleEndian.PutUint32(mangled[8:], 20)
		check(t, mangled)
	})

	t.Run("oversized_bit_count", func(t *testing.T) {
		mangled := bytes.Clone(frame)
		binary.LittleEndian.PutUint32(mangled[4:], 1<<30)
		check(t, mangled)
	})

	t.Run("header_count_tampered", func(t *testing.T) {
		mangled := bytes.Clone(frame)
		n := binary.LittleEndian.Uint32(mangled)
		binary.LittleEndian.PutUint32(mangled, n+1)
		check(t, mangled)
	})

	t.Run("zeroed_histogram", func(t *testing.T) {
		mangled := bytes.Clone(frame)
		for i := 12; i < recordHeaderSize; i++ {
			mangled[i] = 0
		}
		if _, err := Decompress(mangled, 2); !errors.Is(err, ErrCorruptFrame) || !errors.Is(err, ErrEmptyHistogram) {
			t.Fatalf("expected corrupt frame wrapping empty histogram, got %v", err)
		}
	})
}

package fse

import (
	"encoding/binary"
	"fmt"
)

// appendRecordHeader appends one block record header: symbol count, payload
// bit count, table log, and the raw byte histogram, all little-endian uint32.
func appendRecordHeader(dst []byte, blockSize, bitCount, tableLog uint32, counts *[alphabetSize]uint32) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, blockSize)
	dst = binary.LittleEndian.AppendUint32(dst, bitCount)
	dst = binary.LittleEndian.AppendUint32(dst, tableLog)
	for _, c := range counts {
		dst = binary.LittleEndian.AppendUint32(dst, c)
	}
	return dst
}

// compressFrame encodes src as a sequence of independently decodable block
// records. Each chunk is counted and normalised on its own, so no state
// crosses block boundaries. An empty input still produces one header-only
// record so the frame is never zero bytes.
func compressFrame(cfg config, src []byte) []byte {
	var counts [alphabetSize]uint32
	if len(src) == 0 {
		return appendRecordHeader(nil, 0, 0, cfg.tableLog, &counts)
	}

	blockSize := cfg.blockSize
	if blockSize == 0 {
		blockSize = len(src)
	}

	frame := make([]byte, 0, recordHeaderSize+len(src)/2)
	var payload []byte // reused across blocks
	for pos := 0; pos < len(src); {
		chunk := min(blockSize, len(src)-pos)
		block := src[pos : pos+chunk]
		histogram(&counts, block)
		t, err := newTables(counts[:], cfg.tableLog)
		if err != nil {
			// Unreachable: the level table only yields valid table logs and
			// the chunk is non-empty.
			panic(err)
		}

		var bitCount int
		switch {
		case !cfg.lsb:
			w := &msbWriter{buf: payload[:0]}
			bitCount = encodeBlock(w, t, block)
			payload = w.buf
		case cfg.wide:
			w := &lsbWideWriter{buf: payload[:0]}
			bitCount = encodeBlock(w, t, block)
			payload = w.buf
		default:
			w := &lsbWriter{buf: payload[:0]}
			bitCount = encodeBlock(w, t, block)
			payload = w.buf
		}

		frame = appendRecordHeader(frame, uint32(chunk), uint32(bitCount), cfg.tableLog, &counts)
		frame = append(frame, payload...)
		pos += chunk
	}
	return frame
}

// decompressFrame walks the block records in src, rebuilding each block's
// tables from its header and decoding exactly the declared number of
// symbols. The cursor must land exactly on the end of the input.
func decompressFrame(cfg config, src []byte) ([]byte, error) {
	var out []byte
	pos := 0
	for pos < len(src) {
		if len(src)-pos < recordHeaderSize {
			return nil, fmt.Errorf("%w: truncated record header at offset %d", ErrCorruptFrame, pos)
		}
		blockSize := binary.LittleEndian.Uint32(src[pos:])
		bitCount := binary.LittleEndian.Uint32(src[pos+4:])
		tableLog := binary.LittleEndian.Uint32(src[pos+8:])
		var counts [alphabetSize]uint32
		for i := range counts {
			counts[i] = binary.LittleEndian.Uint32(src[pos+12+4*i:])
		}
		pos += recordHeaderSize

		payloadBytes := int(bitCount+7) / 8
		if payloadBytes > len(src)-pos {
			return nil, fmt.Errorf("%w: record payload runs past the input", ErrCorruptFrame)
		}
		payload := src[pos : pos+payloadBytes]
		pos += payloadBytes

		if blockSize == 0 && bitCount == 0 {
			// Header-only record, emitted for an empty source.
			continue
		}
		if tableLog < minTableLog || tableLog > maxTableLog {
			return nil, fmt.Errorf("%w: table log %d out of range", ErrCorruptFrame, tableLog)
		}
		t, err := newTables(counts[:], tableLog)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
		}

		var symbols []byte
		switch {
		case !cfg.lsb:
			symbols, _, err = decodeBlock(&msbReader{data: payload}, t, blockSize)
		case cfg.buffered:
			symbols, _, err = decodeBlock(&lsbBufReader{data: payload}, t, blockSize)
		default:
			symbols, _, err = decodeBlock(&lsbReader{data: payload}, t, blockSize)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, symbols...)
	}
	return out, nil
}

package fse

// Compress encodes src into a framed FSE stream using the wire parameters
// selected by level. The same level must be passed to Decompress; levels 1
// and below write msb-first and the others lsb-first, and the two bit
// orderings are distinct wire formats, not interchangeable encodings.
func Compress(src []byte, level int) []byte {
	return compressFrame(configFromLevel(level), src)
}

// CompressInto encodes src into dst and returns the number of bytes written.
// It returns 0 when dst is too small to hold the encoded frame; the caller
// may retry with a larger buffer.
func CompressInto(dst, src []byte, level int) int {
	frame := compressFrame(configFromLevel(level), src)
	if len(frame) > len(dst) {
		return 0
	}
	copy(dst, frame)
	return len(frame)
}

// Decompress reconstructs the bytes that Compress encoded into frame at the
// same level. It returns ErrCorruptFrame when the frame is truncated,
// inconsistent, or was produced under a different bit ordering.
func Decompress(frame []byte, level int) ([]byte, error) {
	return decompressFrame(configFromLevel(level), frame)
}

// DecompressInto decodes frame into dst and returns the number of bytes
// written. It returns 0 with a nil error when dst is too small for the
// decoded output.
func DecompressInto(dst, frame []byte, level int) (int, error) {
	out, err := decompressFrame(configFromLevel(level), frame)
	if err != nil {
		return 0, err
	}
	if len(out) > len(dst) {
		return 0, nil
	}
	copy(dst, out)
	return len(out), nil
}

// Package fse provides a byte-alphabet entropy codec based on Finite State
// Entropy, the table-driven form of asymmetric numeral systems (tANS).
//
// # Overview
//
// FSE compresses a byte stream toward its zero-order entropy: each block is
// counted, the histogram is normalised onto a power-of-two state space, and a
// single-integer state machine emits a variable number of bits per symbol.
// The decoder rebuilds the same tables from the block header and walks the
// bitstream forward, recovering the input bit-exactly.
//
// # When to Use FSE
//
// FSE excels at:
//   - Skewed byte distributions: literals, lengths, post-LZ residues
//   - Fixed-alphabet data where dictionary methods add no value
//   - Workloads that need deterministic, table-lookup decoding
//
// # When NOT to Use FSE
//
// FSE is not suitable for:
//   - Data with long repeated substrings (pair it with an LZ front end)
//   - Already-compressed or encrypted data (incompressible)
//   - Streams that need adaptive, per-symbol probability updates
//
// # Basic Usage
//
//	frame := fse.Compress(data, 4)
//	orig, err := fse.Decompress(frame, 4)
//	if err != nil {
//	    // frame was truncated or tampered with
//	}
//
//	// Or into a fixed buffer
//	dst := make([]byte, len(frame))
//	n := fse.CompressInto(dst, data, 4)
//	_ = dst[:n] // encoded frame; n == 0 means dst was too small
//
// The level argument selects the table log, block size, and bit ordering; the
// same level must be used on both sides of an exchange.
//
// # Performance Characteristics
//
// Table build: O(2^L) per block, L = 11 or 12 depending on level
// Encoding: O(n), one table lookup and one masked append per symbol
// Decoding: O(n), one table lookup and one bounded bit read per symbol
//
// Tables are at most 32 KiB and are derived deterministically from each
// block's histogram; there is no trained or persisted state.
package fse

package fse

import (
	"errors"
	"math/bits"
)

// Core constants for the FSE codec.
const (
	minTableLog = 1
	maxTableLog = 15 // new_state_base must fit uint16: (k << nb) - T < T <= 1<<15

	alphabetSize = 256 // fixed byte alphabet

	// Width of the in-payload symbol-count field. Fixed at 32; both sides of
	// an exchange must agree on it, so it is not configurable.
	dataBlockSizeBits = 32

	defaultTableLog = 12

	// Per-record frame header: block size, bit count, table log, then the
	// raw byte histogram, all little-endian uint32.
	recordHeaderSize = 12 + 4*alphabetSize
)

// ErrInvalidParameter indicates a table log outside [1, 15] or an empty alphabet.
var ErrInvalidParameter = errors.New("fse: invalid parameter")

// ErrEmptyHistogram indicates a histogram whose total count is zero.
var ErrEmptyHistogram = errors.New("fse: histogram total is zero")

// ErrCorruptFrame indicates a truncated, inconsistent, or tampered frame.
var ErrCorruptFrame = errors.New("fse: corrupt frame")

// floorLog2 returns floor(log2(x)). x must be > 0.
func floorLog2(x uint32) uint32 { return uint32(bits.Len32(x)) - 1 }

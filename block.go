package fse

import (
	"fmt"
)

// encodeBlock writes one block to w: the symbol count, then for non-empty
// blocks the final encoder state and the per-symbol bit chunks. The encoder
// walks src back to front, so the chunks are recorded in reverse and written
// out reversed again; that arranges the wire so forward decoding yields the
// original order. Returns the total bit count.
//
// The sink is a type parameter so each wire ordering gets its own
// instantiation and the hot loop carries no interface dispatch.
func encodeBlock[W bitSink](w W, t *tables, src []byte) int {
	w.appendBits(uint32(len(src)), dataBlockSizeBits)
	if len(src) == 0 {
		return w.finish()
	}

	state := t.size
	chunks := make([]uint64, 0, len(src)) // nbBits<<32 | bits
	for i := len(src) - 1; i >= 0; i-- {
		tr := &t.symTT[src[i]]
		nb := (state + tr.deltaNbBits) >> 16
		chunks = append(chunks, uint64(nb)<<32|uint64(state&maskTable[nb]))
		state = uint32(t.etable[int(state>>nb)+int(tr.deltaFindState)])
	}

	// state is back in [T, 2T); its offset is the decoder's entry point.
	w.appendBits(state-t.size, t.tableLog)
	for i := len(chunks) - 1; i >= 0; i-- {
		if nb := uint32(chunks[i] >> 32); nb > 0 {
			w.appendBits(uint32(chunks[i]), nb)
		}
	}
	return w.finish()
}

// decodeBlock reads one block from r. want is the record header's symbol
// count; the in-payload count must agree, which rejects mismatched wire
// orderings before any symbol work. On success the decoder state lands on
// zero after the last symbol; anything else means a corrupted payload or
// tables built from a different histogram.
func decodeBlock[R bitSource](r R, t *tables, want uint32) ([]byte, int, error) {
	start := r.position()
	n := r.readBits(dataBlockSizeBits)
	if n != want {
		return nil, 0, fmt.Errorf("%w: payload count %d disagrees with record header %d", ErrCorruptFrame, n, want)
	}
	if n == 0 {
		return nil, r.position() - start, nil
	}

	state := r.readBits(t.tableLog)
	out := make([]byte, n)
	for i := range out {
		e := &t.dtable[state]
		out[i] = e.symbol
		var bits uint32
		if e.nbBits > 0 {
			bits = r.readBits(uint32(e.nbBits))
		}
		state = uint32(e.newStateBase) + bits
	}
	if state != 0 {
		return nil, 0, fmt.Errorf("%w: decoder state %d after final symbol", ErrCorruptFrame, state)
	}
	return out, r.position() - start, nil
}

package fse

// decodeEntry drives one decoder transition: emit symbol, read nbBits bits,
// and add them to newStateBase to get the next state.
type decodeEntry struct {
	newStateBase uint16
	nbBits       uint8
	symbol       uint8
}

// symTransform is the per-symbol encode transform. For a state x the bit
// width is (x + deltaNbBits) >> 16 and the next-state table index is
// (x >> width) + deltaFindState.
type symTransform struct {
	deltaNbBits    uint32
	deltaFindState int32
}

// tables holds everything derived from a block's (counts, tableLog) pair:
// the decode table, the encode next-state table, and the per-symbol
// transforms. All three are rebuilt at the start of every block and may be
// shared read-only by concurrent encoders or decoders.
type tables struct {
	tableLog uint32
	size     uint32 // 1 << tableLog

	dtable []decodeEntry
	etable []uint16 // absolute next states T+u, indexed through symTT deltas
	symTT  []symTransform
}

// tableStep returns the slot increment used to spread symbols. For tables of
// 16 slots or more it is odd and less than the table size, so iterated
// addition modulo the size visits every slot exactly once per revolution; the
// same holds for 4 slots, where the step of 5 reduces to 1. For 2 and 8 slots
// the step is a multiple of the size and the walk does not move.
func tableStep(tableSize uint32) uint32 {
	return (tableSize >> 1) + (tableSize >> 3) + 3
}

// spreadSymbols places each symbol s into norm[s] state slots by walking the
// table with the co-prime step. sum(norm) must equal 1<<tableLog. When the
// step is co-prime to the size the walk lands on a free slot at every
// placement; when it revisits an occupied slot for a full revolution (table
// logs 1 and 3, see tableStep), a linear scan finds a free one and the walk
// resumes from there.
func spreadSymbols(norm []uint32, tableLog uint32) []int16 {
	tableSize := uint32(1) << tableLog
	tableMask := tableSize - 1
	step := tableStep(tableSize)

	spread := make([]int16, tableSize)
	for i := range spread {
		spread[i] = -1
	}

	pos := uint32(0)
	for s := range norm {
		for k := uint32(0); k < norm[s]; k++ {
			attempts := uint32(0)
			for spread[pos] >= 0 {
				pos = (pos + step) & tableMask
				attempts++
				if attempts >= tableSize {
					for u := uint32(0); u < tableSize; u++ {
						if spread[u] < 0 {
							pos = u
							break
						}
					}
					break
				}
			}
			spread[pos] = int16(s)
			pos = (pos + step) & tableMask
		}
	}
	return spread
}

// newTables normalises counts and builds the decode table, the encode
// next-state table, and the symbol transforms for one block.
func newTables(counts []uint32, tableLog uint32) (*tables, error) {
	norm, err := normalize(counts, tableLog)
	if err != nil {
		return nil, err
	}

	t := &tables{
		tableLog: tableLog,
		size:     1 << tableLog,
	}
	t.dtable = make([]decodeEntry, t.size)
	t.etable = make([]uint16, t.size)
	t.symTT = make([]symTransform, len(norm))

	spread := spreadSymbols(norm, tableLog)

	// Decode table: the k-th placement of s (counting from norm[s]) fixes the
	// entry's bit width and state base.
	next := make([]uint32, len(norm))
	copy(next, norm)
	for u := uint32(0); u < t.size; u++ {
		s := uint32(spread[u])
		k := next[s]
		next[s]++
		nb := tableLog - floorLog2(max(k, 1))
		t.dtable[u] = decodeEntry{
			newStateBase: uint16((k << nb) - t.size),
			nbBits:       uint8(nb),
			symbol:       uint8(s),
		}
	}

	cumul := make([]uint32, len(norm))
	{
		acc := uint32(0)
		for s, n := range norm {
			cumul[s] = acc
			acc += n
		}
	}

	// Encode table: cells at cumul[s]..cumul[s]+norm[s] hold the absolute
	// next states T+u in spread order.
	{
		fill := make([]uint32, len(cumul))
		copy(fill, cumul)
		for u := uint32(0); u < t.size; u++ {
			s := spread[u]
			t.etable[fill[s]] = uint16(t.size + u)
			fill[s]++
		}
	}

	for s, freq := range norm {
		if freq == 0 {
			// Well-defined but unreachable from valid input.
			t.symTT[s] = symTransform{
				deltaNbBits: ((tableLog + 1) << 16) - t.size,
			}
			continue
		}
		maxBitsOut := tableLog
		if freq > 1 {
			maxBitsOut = tableLog - floorLog2(freq-1)
		}
		t.symTT[s] = symTransform{
			deltaNbBits:    (maxBitsOut << 16) - (freq << maxBitsOut),
			deltaFindState: int32(cumul[s]) - int32(freq),
		}
	}
	return t, nil
}

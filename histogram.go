package fse

import (
	"math"
	"sort"
)

// histogram fills counts with the byte occurrence counts of src.
func histogram(counts *[alphabetSize]uint32, src []byte) {
	for i := range counts {
		counts[i] = 0
	}
	for _, b := range src {
		counts[b]++
	}
}

// orderByCountDesc returns the symbol indices sorted by count descending.
// The sort is stable so equal counts keep ascending symbol order, which makes
// every fix-up pass below deterministic across implementations.
func orderByCountDesc(counts []uint32) []int {
	order := make([]int, len(counts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})
	return order
}

// normalize converts raw counts into frequencies summing to 1<<tableLog, with
// every occurring symbol keeping a frequency of at least 1.
//
// The initial allocation is proportional with ties rounded to even. Rounding
// drift is then repaired in up to three passes: the first walks symbols by
// descending count, parking on a symbol while it can absorb the adjustment
// and advancing only when a decrement would zero it; the second round-robins
// single units across that order, allowing drops to 1 but never to 0; the
// last resort clears the table and assigns all weight to the most frequent
// symbol. The last resort fires when more symbols occur than there are state
// slots (sum of the minimum ones already exceeds the table), at which point
// the at-least-1 invariant is unsatisfiable.
func normalize(counts []uint32, tableLog uint32) ([]uint32, error) {
	if tableLog < minTableLog || tableLog > maxTableLog {
		return nil, ErrInvalidParameter
	}
	if len(counts) == 0 {
		return nil, ErrInvalidParameter
	}
	tableSize := uint32(1) << tableLog

	var total uint64
	for _, c := range counts {
		total += uint64(c)
	}
	if total == 0 {
		return nil, ErrEmptyHistogram
	}

	norm := make([]uint32, len(counts))
	var allocated uint64
	for i, c := range counts {
		if c == 0 {
			continue
		}
		x := float64(c) * float64(tableSize) / float64(total)
		n := uint32(math.RoundToEven(x))
		if n == 0 {
			n = 1
		}
		norm[i] = n
		allocated += uint64(n)
	}

	diff := int64(tableSize) - int64(allocated)
	if diff != 0 {
		order := orderByCountDesc(counts)
		step := int64(1)
		if diff < 0 {
			step = -1
		}
		idx := 0
		for diff != 0 && idx < len(order) {
			s := order[idx]
			candidate := int64(norm[s]) + step
			if candidate > 0 {
				norm[s] = uint32(candidate)
				diff -= step
			} else {
				idx++
			}
		}
	}

	var sum uint64
	for _, n := range norm {
		sum += uint64(n)
	}
	if sum == uint64(tableSize) {
		return norm, nil
	}

	// Gentler pass: spread single units across the descending-count order,
	// letting entries fall to 1 but not to 0.
	diff = int64(tableSize) - int64(sum)
	order := orderByCountDesc(counts)
	for diff != 0 {
		changed := false
		for _, s := range order {
			if diff > 0 {
				norm[s]++
				diff--
				changed = true
			} else if norm[s] > 1 {
				norm[s]--
				diff++
				changed = true
			}
			if diff == 0 {
				break
			}
		}
		if !changed {
			break
		}
	}

	sum = 0
	for _, n := range norm {
		sum += uint64(n)
	}
	if sum != uint64(tableSize) {
		// Last resort: all weight on the most frequent symbol.
		for i := range norm {
			norm[i] = 0
		}
		best := 0
		for i, c := range counts {
			if c > counts[best] {
				best = i
			}
		}
		norm[best] = tableSize
	}
	return norm, nil
}

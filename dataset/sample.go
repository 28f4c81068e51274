package dataset

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"
)

// defaultSeed replaces seed 0 so that "no seed" is still reproducible.
const defaultSeed int64 = 1

// Sample returns a new Set holding n sequences chosen uniformly without
// replacement. The same (n, seed) always selects the same sequences, and the
// selection keeps the original order. Values are shared with s, not copied.
//
// Policy: seed == 0 ⇒ defaultSeed.
func (s *Set) Sample(n int, seed int64) (*Set, error) {
	if n <= 0 || n > s.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadSampleSize, n, s.Len())
	}

	idx := rngFromSeed(seed).Perm(s.Len())[:n]
	slices.Sort(idx)

	out := &Set{Sequences: make([]Sequence, n)}
	for i, j := range idx {
		out.Sequences[i] = s.Sequences[j]
	}

	return out, nil
}

// rngFromSeed returns a deterministic ChaCha8-backed generator.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))

	return rand.New(rand.NewChaCha8(key))
}

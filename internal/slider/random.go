package slider

import "math/rand/v2"

// Picker chooses an ordinal in [0, n-1] other than exclude. ok is false when
// no such ordinal exists.
type Picker interface {
	Pick(n, exclude int) (int, bool)
}

// RandomPicker draws uniformly without retrying.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker uses rng when non-nil and the global source otherwise.
func NewRandomPicker(rng *rand.Rand) *RandomPicker {
	return &RandomPicker{rng: rng}
}

// NewSeededPicker returns a deterministic picker.
func NewSeededPicker(seed uint64) *RandomPicker {
	return NewRandomPicker(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Pick draws from the n-1 candidates and shifts past exclude.
func (p *RandomPicker) Pick(n, exclude int) (int, bool) {
	if n < 2 || exclude < 0 || exclude >= n {
		return exclude, false
	}
	var r int
	if p != nil && p.rng != nil {
		r = p.rng.IntN(n - 1)
	} else {
		r = rand.IntN(n - 1)
	}
	if r >= exclude {
		r++
	}
	return r, true
}

package quiz

import "math/rand"

// RoundSequence is the ordered run of sample file names for one quiz pass:
// exactly one sample per category, in shuffled presentation order. It is
// created fresh on every reset and never mutated in between.
type RoundSequence []string

// NewRoundSequence draws one sample uniformly at random from each category
// and permutes the result with an in-place Fisher-Yates shuffle.
func NewRoundSequence(catalog *Catalog, rng *rand.Rand) RoundSequence {
	seq := make(RoundSequence, 0, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		seq = append(seq, cat.Samples[rng.Intn(len(cat.Samples))])
	}

	for i := len(seq) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq
}

// Equal reports whether two sequences present the same samples in the same order.
func (s RoundSequence) Equal(other RoundSequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

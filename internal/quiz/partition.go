package quiz

import (
	"math/rand/v2"

	"quizdeck/internal/question"
)

// Partition shuffles a copy of the bank and distributes it round-robin
// into disjoint sets. The effective set count is clamped to [1, len(bank)]
// so no set is ever empty; set sizes differ by at most one. The caller
// owns the random source, which makes the split reproducible under a
// fixed seed.
func Partition(bank question.Bank, requested int, rng *rand.Rand) []question.Bank {
	if len(bank) == 0 {
		return nil
	}
	count := requested
	if count < 1 {
		count = 1
	}
	if count > len(bank) {
		count = len(bank)
	}

	shuffled := make(question.Bank, len(bank))
	copy(shuffled, bank)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	sets := make([]question.Bank, count)
	for i, q := range shuffled {
		sets[i%count] = append(sets[i%count], q)
	}
	return sets
}

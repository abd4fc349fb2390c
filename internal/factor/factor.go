package factor

import (
	"fmt"
	"sort"
	"strings"

	"alchemist-server/internal/shared/errors"
)

// Counts maps a prime to its multiplicity in a decomposed seed. Missing
// primes have multiplicity zero; use Count rather than indexing directly.
type Counts map[int64]int

// Decompose breaks a knowledge seed into its prime multiplicities by trial
// division. Dividing by a composite i is a no-op because every smaller prime
// has already been divided out, so i advances by 1 unconditionally. Whatever
// remains above 1 after the loop is itself prime.
//
// A seed of 1 yields empty Counts. Seeds below 1 are rejected.
func Decompose(seed int64) (Counts, error) {
	if seed < 1 {
		return nil, errors.Validationf("seed must be a positive integer, got %d", seed)
	}

	counts := make(Counts)
	n := seed
	for i := int64(2); i*i <= n; i++ {
		for n%i == 0 {
			counts[i]++
			n /= i
		}
	}
	if n > 1 {
		counts[n]++
	}

	return counts, nil
}

// Count returns the multiplicity of prime p, defaulting to 0 when p does not
// divide the seed.
func (c Counts) Count(p int64) int {
	return c[p]
}

// Product recomposes the original seed from the recorded multiplicities.
func (c Counts) Product() int64 {
	product := int64(1)
	for p, count := range c {
		for i := 0; i < count; i++ {
			product *= p
		}
	}
	return product
}

// Primes returns the recorded primes in ascending order.
func (c Counts) Primes() []int64 {
	primes := make([]int64, 0, len(c))
	for p := range c {
		primes = append(primes, p)
	}
	sort.Slice(primes, func(i, j int) bool { return primes[i] < primes[j] })
	return primes
}

// String renders the mapping deterministically, e.g. "{2: 6, 3: 6, 5: 4}".
func (c Counts) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range c.Primes() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %d", p, c[p])
	}
	sb.WriteByte('}')
	return sb.String()
}

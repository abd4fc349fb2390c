package element

import "alchemist-server/internal/factor"

// Element describes one of the five designated primes that act as the
// fundamental world layers.
type Element struct {
	Prime  int64  `json:"prime"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Effect string `json:"effect"`
}

const (
	PrimeFlux     int64 = 2
	PrimeForm     int64 = 3
	PrimeVitality int64 = 5
	PrimeAether   int64 = 7
	PrimeEntropy  int64 = 11
)

// Table lists the elemental primes in ascending prime order.
var Table = []Element{
	{PrimeFlux, "FLUX", "Water/Atmosphere", "Sea Level"},
	{PrimeForm, "FORM", "Earth/Structure", "Roughness/Height"},
	{PrimeVitality, "VITALITY", "Life/Flora", "Vegetation Density"},
	{PrimeAether, "AETHER", "Magic/Tech", "Rare Structures"},
	{PrimeEntropy, "ENTROPY", "Chaos/Weather", "Storm Frequency"},
}

// Reading holds the multiplicities of the five elemental primes in a seed.
// Primes absent from the factorization read as 0.
type Reading struct {
	Flux     int `json:"flux"`
	Form     int `json:"form"`
	Vitality int `json:"vitality"`
	Aether   int `json:"aether"`
	Entropy  int `json:"entropy"`
}

// ReadCounts extracts the elemental abundances from a factorization.
func ReadCounts(counts factor.Counts) Reading {
	return Reading{
		Flux:     counts.Count(PrimeFlux),
		Form:     counts.Count(PrimeForm),
		Vitality: counts.Count(PrimeVitality),
		Aether:   counts.Count(PrimeAether),
		Entropy:  counts.Count(PrimeEntropy),
	}
}

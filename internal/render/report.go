package render

import (
	"fmt"
	"strings"

	"alchemist-server/internal/element"
	"alchemist-server/internal/world"
)

// Report renders the textual alchemy report for a snapshot. The factor
// mapping is printed in ascending prime order so identical seeds always
// produce byte-identical reports.
func Report(snapshot world.Snapshot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "--- WORLD ALCHEMY REPORT ---\n")
	fmt.Fprintf(&sb, "Seed: %d\n", snapshot.Seed)
	fmt.Fprintf(&sb, "Elemental Composition: %s\n", snapshot.Factors)
	fmt.Fprintf(&sb, " -> Flux (%d): %d\n", element.PrimeFlux, snapshot.Reading.Flux)
	fmt.Fprintf(&sb, " -> Form (%d): %d\n", element.PrimeForm, snapshot.Reading.Form)
	fmt.Fprintf(&sb, " -> Vitality (%d): %d\n", element.PrimeVitality, snapshot.Reading.Vitality)
	fmt.Fprintf(&sb, "Stability Score: %.2f\n", snapshot.Params.Stability)
	fmt.Fprintf(&sb, "Diagnosis: %s\n", snapshot.Biome)

	return sb.String()
}

// Package terrain synthesizes the 1-D cross-section of a generated world
// from its physical parameters.
package terrain

import (
	"math"

	"alchemist-server/internal/world"
)

// Width is the number of evenly spaced samples across the slice.
const Width = 100

// DomainMax is the upper bound of the independent axis; samples run from
// 0 to DomainMax inclusive.
const DomainMax = 10.0

// Sample is one (position, elevation) pair of the height field.
type Sample struct {
	X         float64 `json:"x"`
	Elevation float64 `json:"elevation"`
}

// HeightField is a fixed-width slice of terrain. After synthesis the lowest
// elevation is exactly 0, WaterLevel is a fraction of the local relief, and
// Vegetation holds the marker points that survived the underwater cull.
type HeightField struct {
	Samples      []Sample
	MaxElevation float64
	WaterLevel   float64
	Vegetation   []Sample
}

// Synthesize builds the height field for the given world parameters. Higher
// roughness raises both the spatial frequency and the amplitude of the
// sinusoidal basis, so rough worlds read as jagged and smooth ones as
// rolling. The field is shifted so its minimum is exactly 0, and the water
// level is taken as SeaLevel times the shifted maximum. SeaLevel is
// unclamped, so a fully dry (negative cutoff) or fully submerged slice is a
// valid outcome.
func Synthesize(params world.Parameters) HeightField {
	freq := 1.0 + 0.5*params.Roughness
	amp := 1.0 + params.Roughness

	samples := make([]Sample, Width)
	minElevation := math.Inf(1)
	for i := range samples {
		x := DomainMax * float64(i) / float64(Width-1)
		elevation := math.Sin(x*freq)*amp + math.Cos(x*freq*0.5)
		samples[i] = Sample{X: x, Elevation: elevation}
		if elevation < minElevation {
			minElevation = elevation
		}
	}

	// Shift so 0 is the deepest point and the peaks stay positive.
	maxElevation := 0.0
	for i := range samples {
		samples[i].Elevation -= minElevation
		if samples[i].Elevation > maxElevation {
			maxElevation = samples[i].Elevation
		}
	}

	field := HeightField{
		Samples:      samples,
		MaxElevation: maxElevation,
		WaterLevel:   maxElevation * params.SeaLevel,
	}
	field.Vegetation = placeVegetation(field, params.Vegetation)

	return field
}

// placeVegetation selects marker points along the slice. Denser vegetation
// means a smaller stride and therefore more candidates; anything at or below
// the water line is culled because nothing grows underwater. Sparse worlds
// (vegetation <= 0.5) get no markers at all.
func placeVegetation(field HeightField, vegetation float64) []Sample {
	if vegetation <= 0.5 {
		return nil
	}

	stride := int(DomainMax / vegetation)
	if stride < 1 {
		stride = 1
	}

	var points []Sample
	for i := 0; i < len(field.Samples); i += stride {
		s := field.Samples[i]
		if s.Elevation >= field.WaterLevel {
			points = append(points, s)
		}
	}
	return points
}

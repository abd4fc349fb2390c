package terrain

import (
	"testing"

	"alchemist-server/internal/world"
)

func TestSynthesizeDomain(t *testing.T) {
	field := Synthesize(world.Parameters{SeaLevel: 0.5, Roughness: 0.3})

	if len(field.Samples) != Width {
		t.Fatalf("got %d samples, want %d", len(field.Samples), Width)
	}
	if x := field.Samples[0].X; x != 0 {
		t.Errorf("first sample at x=%v, want 0", x)
	}
	if x := field.Samples[Width-1].X; x != DomainMax {
		t.Errorf("last sample at x=%v, want %v", x, DomainMax)
	}
}

func TestSynthesizeMinimumIsZero(t *testing.T) {
	for _, roughness := range []float64{0, 0.1, 0.3, 0.6, 1.0, 2.5, 10} {
		field := Synthesize(world.Parameters{SeaLevel: 0.5, Roughness: roughness})

		minimum := field.Samples[0].Elevation
		maximum := minimum
		for _, s := range field.Samples {
			if s.Elevation < minimum {
				minimum = s.Elevation
			}
			if s.Elevation > maximum {
				maximum = s.Elevation
			}
		}

		if minimum != 0 {
			t.Errorf("roughness %v: minimum elevation %v, want exactly 0", roughness, minimum)
		}
		if maximum != field.MaxElevation {
			t.Errorf("roughness %v: MaxElevation %v, actual maximum %v", roughness, field.MaxElevation, maximum)
		}
	}
}

func TestWaterLevelIsFractionOfRelief(t *testing.T) {
	tests := []struct {
		name     string
		seaLevel float64
	}{
		{"nominal", 0.5},
		{"dry beyond bounds", -0.2},
		{"flooded beyond bounds", 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := Synthesize(world.Parameters{SeaLevel: tt.seaLevel, Roughness: 0.4})
			if want := field.MaxElevation * tt.seaLevel; field.WaterLevel != want {
				t.Errorf("WaterLevel = %v, want %v", field.WaterLevel, want)
			}
		})
	}
}

func TestVegetationStaysAboveWater(t *testing.T) {
	field := Synthesize(world.Parameters{SeaLevel: 0.5, Roughness: 0.6, Vegetation: 2.4})

	if len(field.Vegetation) == 0 {
		t.Fatal("expected vegetation points for vegetation=2.4")
	}
	for _, p := range field.Vegetation {
		if p.Elevation < field.WaterLevel {
			t.Errorf("vegetation at x=%v sits below the water level (%v < %v)", p.X, p.Elevation, field.WaterLevel)
		}
	}
}

func TestNoVegetationWhenSparse(t *testing.T) {
	for _, vegetation := range []float64{0, 0.3, 0.5} {
		field := Synthesize(world.Parameters{SeaLevel: 0.5, Roughness: 0.3, Vegetation: vegetation})
		if len(field.Vegetation) != 0 {
			t.Errorf("vegetation %v: got %d points, want none at or below the 0.5 threshold", vegetation, len(field.Vegetation))
		}
	}
}

func TestDenseVegetationStrideClamps(t *testing.T) {
	// vegetation > 10 would make the raw stride 0; it must clamp to 1
	// and visit every sample instead of dividing by zero.
	field := Synthesize(world.Parameters{SeaLevel: -1, Roughness: 0.3, Vegetation: 25})

	if len(field.Vegetation) != Width {
		t.Errorf("got %d points, want %d with a fully dry slice and stride 1", len(field.Vegetation), Width)
	}
}

func TestFullyFloodedSliceHasNoVegetation(t *testing.T) {
	// Sea level far above 1 puts the cutoff above every peak.
	field := Synthesize(world.Parameters{SeaLevel: 2.0, Roughness: 0.5, Vegetation: 3})
	if len(field.Vegetation) != 0 {
		t.Errorf("got %d vegetation points on a fully submerged slice", len(field.Vegetation))
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	params := world.Parameters{SeaLevel: 0.5, Roughness: 0.6, Vegetation: 2.4}
	first := Synthesize(params)
	second := Synthesize(params)

	if len(first.Samples) != len(second.Samples) {
		t.Fatal("sample counts differ between runs")
	}
	for i := range first.Samples {
		if first.Samples[i] != second.Samples[i] {
			t.Fatalf("sample %d differs between runs", i)
		}
	}
	if first.WaterLevel != second.WaterLevel || first.MaxElevation != second.MaxElevation {
		t.Fatal("derived levels differ between runs")
	}
}

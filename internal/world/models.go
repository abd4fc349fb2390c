package world

import (
	"alchemist-server/internal/element"
	"alchemist-server/internal/factor"
)

// Parameters are the physical knobs of a generated world. SeaLevel is
// nominally in [0,1] but deliberately unclamped: extreme seeds produce
// fully flooded or bone-dry worlds and that is meaningful output.
type Parameters struct {
	SeaLevel     float64 `json:"sea_level"`
	Roughness    float64 `json:"roughness"`
	Vegetation   float64 `json:"vegetation"`
	MagicDensity int     `json:"magic_density"`
	Stability    float64 `json:"stability_score"`
}

// Snapshot is the complete, immutable result of one generation run.
type Snapshot struct {
	Seed    int64           `json:"seed"`
	Factors factor.Counts   `json:"factors"`
	Reading element.Reading `json:"reading"`
	Params  Parameters      `json:"parameters"`
	Biome   Biome           `json:"biome"`
}

package world

// Biome is the qualitative diagnosis of a generated world.
type Biome string

const (
	BiomeUnstable  Biome = "UNSTABLE ISOTOPE (Chaotic Wasteland)"
	BiomeOceanic   Biome = "OCEANIC WORLD (Flooded)"
	BiomeArid      Biome = "ARID DESERT (Drought)"
	BiomeOvergrown Biome = "OVERGROWN JUNGLE (Unchecked Growth)"
	BiomeBarren    Biome = "BARREN ROCK (Habitable but Empty)"
	BiomeGarden    Biome = "GARDEN OF ECHO (Resonant State)"
)

// Classify diagnoses the biome from sea level, vegetation and stability.
// The guards overlap, so evaluation order is part of the contract:
// instability dominates every other diagnosis, flooding beats drought,
// and the resonant garden is only reached when nothing else fires.
func Classify(seaLevel, vegetation, stability float64) Biome {
	switch {
	case stability < 0.3:
		return BiomeUnstable
	case seaLevel > 0.8:
		return BiomeOceanic
	case seaLevel < 0.3:
		return BiomeArid
	case vegetation > 5.0:
		return BiomeOvergrown
	case vegetation < 0.5:
		return BiomeBarren
	default:
		return BiomeGarden
	}
}

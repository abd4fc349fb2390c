package generator

import (
	"log/slog"
	"sync"

	"alchemist-server/internal/element"
	"alchemist-server/internal/factor"
	"alchemist-server/internal/render"
	"alchemist-server/internal/shared/config"
	"alchemist-server/internal/terrain"
	"alchemist-server/internal/world"
)

// Service runs the full transform chain: seed -> factorization -> elemental
// reading -> world parameters -> biome -> height field -> artifacts.
type Service struct {
	artifactPath string
	imageWidth   int
	imageHeight  int
	logger       *slog.Logger

	// All runs write the same well-known artifact path, so writes are
	// serialized here rather than trusting callers to do it.
	mu sync.Mutex
}

func NewService(worldConfig config.WorldConfig, logger *slog.Logger) *Service {
	logger.Debug("Initializing generator service",
		"artifact_path", worldConfig.ArtifactPath,
		"image_width", worldConfig.ImageWidth,
		"image_height", worldConfig.ImageHeight,
	)

	return &Service{
		artifactPath: worldConfig.ArtifactPath,
		imageWidth:   worldConfig.ImageWidth,
		imageHeight:  worldConfig.ImageHeight,
		logger:       logger,
	}
}

// Result is everything one generation run produces.
type Result struct {
	Snapshot     world.Snapshot
	Field        terrain.HeightField
	ArtifactPath string
	Report       string
}

// Generate runs the chain for one seed. Everything up to the artifact write
// is pure; the only failure modes are a non-positive seed and a filesystem
// error writing the image. No partial artifact is produced for a bad seed.
func (s *Service) Generate(seed int64) (*Result, error) {
	logger := s.logger.With("component", "generator_service", "operation", "generate", "seed", seed)
	logger.Debug("Generating world")

	counts, err := factor.Decompose(seed)
	if err != nil {
		return nil, err
	}

	reading := element.ReadCounts(counts)
	params := world.Derive(reading.Flux, reading.Form, reading.Vitality, reading.Aether)
	biome := world.Classify(params.SeaLevel, params.Vegetation, params.Stability)

	snapshot := world.Snapshot{
		Seed:    seed,
		Factors: counts,
		Reading: reading,
		Params:  params,
		Biome:   biome,
	}

	field := terrain.Synthesize(params)
	img := render.Slice(snapshot, field, s.imageWidth, s.imageHeight)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := render.WriteArtifact(s.artifactPath, img); err != nil {
		logger.Error("Failed to write artifact", "error", err)
		return nil, err
	}

	logger.Info("World generated",
		"biome", biome,
		"stability", params.Stability,
		"sea_level", params.SeaLevel,
		"vegetation_points", len(field.Vegetation),
	)

	return &Result{
		Snapshot:     snapshot,
		Field:        field,
		ArtifactPath: s.artifactPath,
		Report:       render.Report(snapshot),
	}, nil
}

// ArtifactPath returns the well-known path the slice image is written to.
func (s *Service) ArtifactPath() string {
	return s.artifactPath
}

package generator

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alchemist-server/internal/shared/config"
	"alchemist-server/internal/shared/errors"
	"alchemist-server/internal/world"
)

func testService(t *testing.T) *Service {
	t.Helper()

	worldConfig := config.WorldConfig{
		DefaultSeed:  29160000,
		ArtifactPath: filepath.Join(t.TempDir(), "world_gen.png"),
		ImageWidth:   300,
		ImageHeight:  200,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(worldConfig, logger)
}

func TestGenerateKnownSeeds(t *testing.T) {
	tests := []struct {
		seed      int64
		wantBiome world.Biome
	}{
		{1080, world.BiomeBarren},
		{118098, world.BiomeUnstable},
		{29160000, world.BiomeGarden},
		{58, world.BiomeUnstable},
	}

	service := testService(t)

	for _, tt := range tests {
		result, err := service.Generate(tt.seed)
		if err != nil {
			t.Fatalf("Generate(%d): %v", tt.seed, err)
		}

		if result.Snapshot.Biome != tt.wantBiome {
			t.Errorf("Generate(%d): biome %q, want %q", tt.seed, result.Snapshot.Biome, tt.wantBiome)
		}
		if result.Snapshot.Seed != tt.seed {
			t.Errorf("Generate(%d): snapshot seed %d", tt.seed, result.Snapshot.Seed)
		}
		if got := result.Snapshot.Factors.Product(); got != tt.seed {
			t.Errorf("Generate(%d): factors recompose to %d", tt.seed, got)
		}
		if !strings.Contains(result.Report, "--- WORLD ALCHEMY REPORT ---") {
			t.Errorf("Generate(%d): report header missing", tt.seed)
		}
		if _, err := os.Stat(result.ArtifactPath); err != nil {
			t.Errorf("Generate(%d): artifact missing: %v", tt.seed, err)
		}
	}
}

func TestGenerateSeedOne(t *testing.T) {
	service := testService(t)

	result, err := service.Generate(1)
	if err != nil {
		t.Fatalf("Generate(1): %v", err)
	}
	if len(result.Snapshot.Factors) != 0 {
		t.Errorf("Generate(1): factors = %v, want empty", result.Snapshot.Factors)
	}
	// flux = form = 0: degenerate stability, unstable wasteland.
	if result.Snapshot.Biome != world.BiomeUnstable {
		t.Errorf("Generate(1): biome %q, want %q", result.Snapshot.Biome, world.BiomeUnstable)
	}
}

func TestGenerateRejectsInvalidSeed(t *testing.T) {
	service := testService(t)

	for _, seed := range []int64{0, -42} {
		_, err := service.Generate(seed)
		if err == nil {
			t.Fatalf("Generate(%d) succeeded, want error", seed)
		}
		if errors.GetType(err) != errors.ErrorTypeValidation {
			t.Errorf("Generate(%d): error type %s, want validation", seed, errors.GetType(err))
		}
		if _, statErr := os.Stat(service.ArtifactPath()); !os.IsNotExist(statErr) {
			t.Errorf("Generate(%d): partial artifact was written", seed)
		}
	}
}

func TestGenerateArtifactWriteFailure(t *testing.T) {
	worldConfig := config.WorldConfig{
		DefaultSeed:  29160000,
		ArtifactPath: filepath.Join(t.TempDir(), "missing", "world_gen.png"),
		ImageWidth:   300,
		ImageHeight:  200,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(worldConfig, logger)

	_, err := service.Generate(1080)
	if err == nil {
		t.Fatal("expected an I/O error for an unwritable artifact path")
	}
	if errors.GetType(err) != errors.ErrorTypeIO {
		t.Errorf("error type = %s, want io", errors.GetType(err))
	}
}

func TestExamples(t *testing.T) {
	examples := Examples()
	if len(examples) != 4 {
		t.Fatalf("got %d examples, want 4", len(examples))
	}
	if examples[0].Seed != 29160000 || examples[0].Label != "The Garden" {
		t.Errorf("first example = %+v", examples[0])
	}
}

package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alchemist-server/internal/element"
	"alchemist-server/internal/factor"
	"alchemist-server/internal/shared/errors"
	"alchemist-server/internal/terrain"
	"alchemist-server/internal/world"
)

func snapshotFor(t *testing.T, seed int64) (world.Snapshot, terrain.HeightField) {
	t.Helper()

	counts, err := factor.Decompose(seed)
	if err != nil {
		t.Fatalf("Decompose(%d): %v", seed, err)
	}
	reading := element.ReadCounts(counts)
	params := world.Derive(reading.Flux, reading.Form, reading.Vitality, reading.Aether)

	snapshot := world.Snapshot{
		Seed:    seed,
		Factors: counts,
		Reading: reading,
		Params:  params,
		Biome:   world.Classify(params.SeaLevel, params.Vegetation, params.Stability),
	}
	return snapshot, terrain.Synthesize(params)
}

func TestReportContents(t *testing.T) {
	snapshot, _ := snapshotFor(t, 1080)
	report := Report(snapshot)

	wantLines := []string{
		"--- WORLD ALCHEMY REPORT ---",
		"Seed: 1080",
		"Elemental Composition: {2: 3, 3: 3, 5: 1}",
		" -> Flux (2): 3",
		" -> Form (3): 3",
		" -> Vitality (5): 1",
		"Stability Score: 1.00",
		"Diagnosis: BARREN ROCK (Habitable but Empty)",
	}

	for _, line := range wantLines {
		if !strings.Contains(report, line) {
			t.Errorf("report missing line %q\nreport:\n%s", line, report)
		}
	}
}

func TestReportStabilityFormatting(t *testing.T) {
	snapshot, _ := snapshotFor(t, 118098)
	report := Report(snapshot)

	if !strings.Contains(report, "Stability Score: 0.10") {
		t.Errorf("report does not carry two-decimal stability:\n%s", report)
	}
	if !strings.Contains(report, "Diagnosis: UNSTABLE ISOTOPE (Chaotic Wasteland)") {
		t.Errorf("report does not carry the unstable diagnosis:\n%s", report)
	}
}

func TestSliceDimensionsAndDeterminism(t *testing.T) {
	snapshot, field := snapshotFor(t, 29160000)

	img := Slice(snapshot, field, 400, 240)
	bounds := img.Bounds()
	if bounds.Dx() != 400 || bounds.Dy() != 240 {
		t.Fatalf("image is %dx%d, want 400x240", bounds.Dx(), bounds.Dy())
	}

	again := Slice(snapshot, field, 400, 240)
	if !bytes.Equal(img.Pix, again.Pix) {
		t.Error("rendering the same snapshot twice produced different pixels")
	}
}

func TestSliceLayersPresent(t *testing.T) {
	snapshot, field := snapshotFor(t, 29160000)
	img := Slice(snapshot, field, 400, 240)

	// The bottom rows sit below the floor of any terrain, so land (and
	// possibly water over it) must have been painted there: not background.
	bottom := img.RGBAAt(200, 239)
	if bottom == colorBackground {
		t.Error("bottom of plot is untouched background, expected land fill")
	}

	// Rows just under the header are open sky at every seed's scale.
	sky := img.RGBAAt(200, headerHeight+1)
	if sky == colorBackground || sky == bottom {
		t.Error("top of plot does not look like a translucent sky layer")
	}
}

func TestWriteArtifact(t *testing.T) {
	snapshot, field := snapshotFor(t, 58)
	img := Slice(snapshot, field, 300, 200)

	path := filepath.Join(t.TempDir(), "world_gen.png")
	if err := WriteArtifact(path, img); err != nil {
		t.Fatalf("WriteArtifact: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening artifact: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("artifact is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 300 || decoded.Bounds().Dy() != 200 {
		t.Errorf("decoded artifact is %v, want 300x200", decoded.Bounds())
	}
}

func TestWriteArtifactIOFailure(t *testing.T) {
	snapshot, field := snapshotFor(t, 58)
	img := Slice(snapshot, field, 300, 200)

	path := filepath.Join(t.TempDir(), "missing", "world_gen.png")
	err := WriteArtifact(path, img)
	if err == nil {
		t.Fatal("expected an error writing into a missing directory")
	}
	if errors.GetType(err) != errors.ErrorTypeIO {
		t.Errorf("error type = %s, want io", errors.GetType(err))
	}
}

// Package render produces the two artifacts of a generation run: the text
// report and the layered terrain slice image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"alchemist-server/internal/shared/errors"
	"alchemist-server/internal/terrain"
	"alchemist-server/internal/world"
)

// Layer colors: translucent sky over white, earth-brown land, translucent
// water, solid green vegetation markers.
var (
	colorBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorSky        = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	colorLand       = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	colorWater      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colorVegetation = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	colorTitle      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

const (
	alphaSky   = 0.3
	alphaLand  = 0.8
	alphaWater = 0.5

	// Vertical band reserved for the three title lines.
	headerHeight = 60

	// The plot floor sits at elevation -1 and the ceiling 2 above the
	// highest peak, leaving headroom for open sky.
	floorElevation  = -1.0
	ceilingHeadroom = 2.0

	markerSize = 6
)

// Slice draws the layered cross-section of a world: sky, land, water and
// vegetation markers in fixed z-order, with a title annotation on top.
func Slice(snapshot world.Snapshot, field terrain.HeightField, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			img.SetRGBA(px, py, colorBackground)
		}
	}

	ceiling := field.MaxElevation + ceilingHeadroom
	plotTop := headerHeight
	plotHeight := height - headerHeight

	// toRow maps a world elevation onto a pixel row inside the plot band.
	toRow := func(elevation float64) int {
		frac := (ceiling - elevation) / (ceiling - floorElevation)
		row := plotTop + int(frac*float64(plotHeight-1))
		if row < plotTop {
			row = plotTop
		}
		if row >= height {
			row = height - 1
		}
		return row
	}

	for px := 0; px < width; px++ {
		x := terrain.DomainMax * float64(px) / float64(width-1)
		elevation := interpolate(field.Samples, x)

		terrainRow := toRow(elevation)

		// Sky above the terrain, land below, both down to the floor.
		for py := plotTop; py < height; py++ {
			if py < terrainRow {
				blend(img, px, py, colorSky, alphaSky)
			} else {
				blend(img, px, py, colorLand, alphaLand)
			}
		}

		// Water overlays everything from the cutoff down, but only where
		// the terrain is actually below the cutoff.
		if elevation < field.WaterLevel {
			for py := toRow(field.WaterLevel); py < height; py++ {
				blend(img, px, py, colorWater, alphaWater)
			}
		}
	}

	for _, point := range field.Vegetation {
		px := int(point.X / terrain.DomainMax * float64(width-1))
		drawMarker(img, px, toRow(point.Elevation))
	}

	drawTitle(img, snapshot, width)

	return img
}

// WriteArtifact encodes the slice as PNG at path, overwriting any previous
// run's artifact.
func WriteArtifact(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO(fmt.Sprintf("failed to create artifact %s", path), err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.WrapIO(fmt.Sprintf("failed to encode artifact %s", path), err)
	}

	return nil
}

// interpolate returns the terrain elevation at x by linear interpolation
// between the two nearest samples.
func interpolate(samples []terrain.Sample, x float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	pos := x / terrain.DomainMax * float64(len(samples)-1)
	i := int(pos)
	if i >= len(samples)-1 {
		return samples[len(samples)-1].Elevation
	}

	frac := pos - float64(i)
	return samples[i].Elevation*(1-frac) + samples[i+1].Elevation*frac
}

// blend composites src over the existing pixel with the given opacity.
func blend(img *image.RGBA, x, y int, src color.RGBA, alpha float64) {
	dst := img.RGBAAt(x, y)
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*alpha + float64(d)*(1-alpha))
	}
	img.SetRGBA(x, y, color.RGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: 255,
	})
}

// drawMarker paints an upward triangle centered on (cx, cy), the vegetation
// glyph.
func drawMarker(img *image.RGBA, cx, cy int) {
	bounds := img.Bounds()
	for dy := 0; dy <= markerSize; dy++ {
		halfWidth := dy * markerSize / (markerSize + 1)
		y := cy - markerSize/2 + dy
		for dx := -halfWidth; dx <= halfWidth; dx++ {
			x := cx + dx
			if image.Pt(x, y).In(bounds) {
				img.SetRGBA(x, y, colorVegetation)
			}
		}
	}
}

// drawTitle writes the three annotation lines into the header band.
func drawTitle(img *image.RGBA, snapshot world.Snapshot, width int) {
	face := basicfont.Face7x13
	lines := []string{
		fmt.Sprintf("World Seed: %d", snapshot.Seed),
		fmt.Sprintf("Biome: %s", snapshot.Biome),
		fmt.Sprintf("Stability: %.2f", snapshot.Params.Stability),
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorTitle),
		Face: face,
	}

	lineHeight := face.Metrics().Height.Ceil() + 2
	y := face.Metrics().Ascent.Ceil() + 4
	for _, line := range lines {
		lineWidth := drawer.MeasureString(line).Ceil()
		drawer.Dot = fixed.P((width-lineWidth)/2, y)
		drawer.DrawString(line)
		y += lineHeight
	}
}

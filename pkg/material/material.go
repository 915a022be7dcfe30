// Package material derives the material descriptions referenced by the
// generated mesh: flat colors or gradients, each named by its hex
// encoding and rendered as a VMT block over a shared placeholder
// texture.
package material

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadColor reports a color string that is not a 6-digit hex triplet.
var ErrBadColor = errors.New("color must be a 6-digit hex triplet")

// Color is an RGB color with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// ParseHex parses "RRGGBB" with an optional leading '#'.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		ch[i] = float64(v) / 255
	}
	return Color{ch[0], ch[1], ch[2]}, nil
}

// Hex returns the canonical 6-hex-digit encoding of c. The same
// quantization feeds both the material name and the emitted tint, so
// files referencing the same color can never drift apart.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", quantize(c.R), quantize(c.G), quantize(c.B))
}

// Lerp returns the linear blend of c and other at t.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R*(1-t) + other.R*t,
		G: c.G*(1-t) + other.G*t,
		B: c.B*(1-t) + other.B*t,
	}
}

// quantize converts a [0,1] channel to 8 bits, rounding half away from
// zero and clamping.
func quantize(f float64) uint8 {
	v := math.Floor(f*255 + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Material is one generated material: a color and the name mesh
// triangles reference it by.
type Material struct {
	Name  string
	Color Color
}

// Flat returns the single material for a solid-color model.
func Flat(c Color) Material {
	return Material{Name: c.Hex(), Color: c}
}

// Gradient returns count materials blended linearly from start to end.
// The first and last samples are exactly the endpoints. A count below 2
// collapses to the flat start color.
func Gradient(start, end Color, count int) []Material {
	if count < 2 {
		return []Material{Flat(start)}
	}
	mats := make([]Material, count)
	for i := 0; i < count; i++ {
		c := start.Lerp(end, float64(i)/float64(count-1))
		mats[i] = Material{Name: c.Hex(), Color: c}
	}
	return mats
}

// Names returns the triangle-facing name of each material, in order.
func Names(mats []Material) []string {
	names := make([]string, len(mats))
	for i, m := range mats {
		names[i] = m.Name
	}
	return names
}

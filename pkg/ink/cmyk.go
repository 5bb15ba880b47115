// Package ink models the four-channel subtractive colors the calendar is
// designed in.
//
// Colors are expressed as ink coverage (cyan, magenta, yellow, key), each in
// [0, 1]. Surfaces that cannot emit CMYK directly convert with [CMYK.RGB].
package ink

import (
	"fmt"
	"image/color"
	"math"
)

// CMYK is an ink-mix color. Zero value is white paper.
type CMYK struct {
	C, M, Y, K float64
}

// Common inks used by the calendar and the pebble art.
var (
	White   = CMYK{}
	Black   = CMYK{K: 1}
	Magenta = CMYK{M: 1}
)

// Grey returns a key-only ink with coverage k.
func Grey(k float64) CMYK { return CMYK{K: k} }

// RGB converts the ink mix to device RGB components in [0, 1] using the naive
// (1-c)(1-k) transform.
func (c CMYK) RGB() (r, g, b float64) {
	k := 1 - clamp(c.K)
	return (1 - clamp(c.C)) * k, (1 - clamp(c.M)) * k, (1 - clamp(c.Y)) * k
}

// RGBA implements color.Color.
func (c CMYK) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: to8(c.rgb(0)), G: to8(c.rgb(1)), B: to8(c.rgb(2)), A: 0xff}.RGBA()
}

// Hex returns the color as a CSS hex string, e.g. "#ff00ff".
func (c CMYK) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", to8(r), to8(g), to8(b))
}

func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%.3g, %.3g, %.3g, %.3g)", c.C, c.M, c.Y, c.K)
}

func (c CMYK) rgb(i int) float64 {
	r, g, b := c.RGB()
	return [3]float64{r, g, b}[i]
}

func clamp(v float64) float64 { return max(0, min(v, 1)) }

func to8(v float64) uint8 { return uint8(math.Round(clamp(v) * 255)) }

var _ color.Color = CMYK{}

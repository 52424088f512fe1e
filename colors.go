package termgrid

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorKind tags which variant of the Color sum type is populated.
type ColorKind uint8

const (
	// ColorDefault is the terminal's default foreground/background, resolved
	// by the consumer (renderer or test) based on whether the color is used
	// as foreground or background. It is the zero value, so an omitted
	// fg/bg/underline color needs no explicit construction.
	ColorDefault ColorKind = iota
	// ColorPalette indexes DefaultPalette (0-255).
	ColorPalette
	// ColorTrueColor carries an explicit 24-bit RGB value.
	ColorTrueColor
)

// Color is a tagged sum of {default, palette-index, truecolor-RGB}: a tagged
// variant rather than dynamic dispatch over an interface, per the governing
// design notes. The zero value is ColorDefault.
type Color struct {
	Kind  ColorKind
	Index uint8 // valid when Kind == ColorPalette
	R     uint8 // valid when Kind == ColorTrueColor
	G     uint8
	B     uint8
}

// Default returns the default-color variant.
func Default() Color { return Color{Kind: ColorDefault} }

// Palette returns a palette-index color variant.
func Palette(index uint8) Color { return Color{Kind: ColorPalette, Index: index} }

// MakeTrueColor returns a 24-bit RGB truecolor variant.
func MakeTrueColor(r, g, b uint8) Color { return Color{Kind: ColorTrueColor, R: r, G: g, B: b} }

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15),
// 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 216 colors (16-231) and grayscale (232-255) filled in by init below.
}

func init() {
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{R: gray, G: gray, B: gray, A: 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{R: 229, G: 229, B: 229, A: 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Resolve converts a Color to a concrete RGBA, given whether it is being
// used as a foreground (true) or background (false) color.
func (c Color) Resolve(fg bool) color.RGBA {
	switch c.Kind {
	case ColorPalette:
		return DefaultPalette[c.Index]
	case ColorTrueColor:
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	default:
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	}
}

// Dim returns a perceptually-darkened variant of c, used when rendering the
// faint (SGR 2) attribute for colors that have no dedicated dim palette
// entry. Blending happens in Lab space via go-colorful rather than the flat
// RGB scalar multiply a hand-rolled version would use, since Lab blending
// keeps hue stable as luminance drops.
func (c Color) Dim() Color {
	bright, _ := colorful.MakeColor(c.Resolve(true))
	black := colorful.Lab(0, 0, 0)
	dimmed := bright.BlendLab(black, 0.34)
	r, g, b := dimmed.RGB255()
	return MakeTrueColor(r, g, b)
}

// DefaultUnderlineColor derives the color an underline renders in when no
// explicit underline color was set: the same color as the foreground.
func DefaultUnderlineColor(fg Color) Color {
	return fg
}

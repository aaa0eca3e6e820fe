// Package theme provides role-based color palettes for dashboard rendering.
//
// Widgets describe colors either as literal RGB values or as named roles
// ("primary text", "accent 2") that are resolved against the active Theme at
// render time. This keeps widget definitions palette-independent: switching
// the theme restyles every widget without touching its component tree.
//
// # Color values
//
// [Color] is a two-case value: Literal carries explicit channels, Role defers
// resolution to the theme. Construct with [Literal] or [ForRole]:
//
//	c := theme.Literal(255, 140, 0)
//	c := theme.ForRole(theme.RolePrimary)
//	rgb := c.Resolve(theme.Default())
package theme

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color. It implements color.Color so values can be passed
// directly to canvas drawing calls.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Std returns the color as a standard color.RGBA with full opacity.
func (c RGB) Std() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Role names a themed color slot.
type Role string

// Theme color roles. Accent roles are addressed by index via AccentRole.
const (
	RolePrimary    Role = "primary"    // primary text and foreground strokes
	RoleSecondary  Role = "secondary"  // captions, units, de-emphasized text
	RoleBackground Role = "background" // canvas fill
	RoleAccent0    Role = "accent0"
	RoleAccent1    Role = "accent1"
	RoleAccent2    Role = "accent2"
	RoleAccent3    Role = "accent3"
	RoleAccent4    Role = "accent4"
	RoleAccent5    Role = "accent5"
)

// AccentRole returns the role for the i-th accent color. Indices wrap around
// the fixed accent count so any non-negative index is valid.
func AccentRole(i int) Role {
	roles := [...]Role{RoleAccent0, RoleAccent1, RoleAccent2, RoleAccent3, RoleAccent4, RoleAccent5}
	if i < 0 {
		i = 0
	}
	return roles[i%len(roles)]
}

// Color is either a literal RGB value or a theme role resolved at render time.
// The zero value is literal black.
type Color struct {
	lit    RGB
	role   Role
	isRole bool
}

// Literal returns a Color carrying explicit channel values.
func Literal(r, g, b uint8) Color {
	return Color{lit: RGB{R: r, G: g, B: b}}
}

// FromRGB returns a literal Color for an existing RGB value.
func FromRGB(c RGB) Color {
	return Color{lit: c}
}

// ForRole returns a Color that resolves to the theme's value for role.
func ForRole(role Role) Color {
	return Color{role: role, isRole: true}
}

// IsRole reports whether the color defers to a theme role.
func (c Color) IsRole() bool { return c.isRole }

// Resolve returns the concrete RGB value under t. Literal colors resolve to
// themselves; unknown roles resolve to the theme's primary color.
func (c Color) Resolve(t Theme) RGB {
	if !c.isRole {
		return c.lit
	}
	return t.Lookup(c.role)
}

// Theme is a named palette of role colors.
type Theme struct {
	Background    RGB
	TextPrimary   RGB
	TextSecondary RGB
	Accents       [6]RGB
}

// Default returns the dark panel theme: near-black background, white primary
// text, and a six-color accent cycle tuned for small LCD panels.
func Default() Theme {
	return Theme{
		Background:    RGB{R: 10, G: 10, B: 14},
		TextPrimary:   RGB{R: 240, G: 240, B: 245},
		TextSecondary: RGB{R: 150, G: 152, B: 162},
		Accents: [6]RGB{
			{R: 64, G: 160, B: 255},  // blue
			{R: 255, G: 170, B: 40},  // amber
			{R: 80, G: 210, B: 120},  // green
			{R: 240, G: 90, B: 100},  // red
			{R: 180, G: 120, B: 250}, // violet
			{R: 60, G: 200, B: 210},  // teal
		},
	}
}

// Lookup resolves a role against the theme. Unknown roles fall back to the
// primary text color so a stale role name never drops a draw call.
func (t Theme) Lookup(role Role) RGB {
	switch role {
	case RolePrimary:
		return t.TextPrimary
	case RoleSecondary:
		return t.TextSecondary
	case RoleBackground:
		return t.Background
	case RoleAccent0, RoleAccent1, RoleAccent2, RoleAccent3, RoleAccent4, RoleAccent5:
		for i, r := range [...]Role{RoleAccent0, RoleAccent1, RoleAccent2, RoleAccent3, RoleAccent4, RoleAccent5} {
			if r == role {
				return t.Accents[i]
			}
		}
	}
	return t.TextPrimary
}

// Accent returns the i-th accent color, wrapping around the accent count.
func (t Theme) Accent(i int) RGB {
	if i < 0 {
		i = 0
	}
	return t.Accents[i%len(t.Accents)]
}

// Dim returns c with its HSV value channel scaled by factor, clamped to [0,1].
// Used for fills that sit under brighter strokes, e.g. sparkline area fills.
func Dim(c RGB, factor float64) RGB {
	if factor < 0 {
		factor = 0
	}
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, v := col.Hsv()
	v *= factor
	if v > 1 {
		v = 1
	}
	return fromColorful(colorful.Hsv(h, s, v))
}

// Blend linearly interpolates between a and b in RGB space. t=0 yields a,
// t=1 yields b.
func Blend(a, b RGB, t float64) RGB {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return fromColorful(ca.BlendRgb(cb, clamp01(t)))
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

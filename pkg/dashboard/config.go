// Package dashboard assembles a configured layout and widget set and runs
// the per-cycle frame pipeline: render slots, downscale, export JPEG under
// the byte budget plus a lossless PNG.
package dashboard

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/panelkit/panelkit/pkg/errors"
	"github.com/panelkit/panelkit/pkg/layout"
	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/theme"
	"github.com/panelkit/panelkit/pkg/widget"
)

// Config is the TOML dashboard description. Loading and validation run
// outside the per-frame hot path and may hard-fail; nothing on the render
// path does.
type Config struct {
	Size   int          `toml:"size"`
	Layout LayoutConfig `toml:"layout"`
	Encode EncodeConfig `toml:"encoder"`
	Theme  ThemeConfig  `toml:"theme"`
	Slots  []SlotConfig `toml:"slot"`
}

// LayoutConfig selects the slot arrangement and its geometry parameters.
type LayoutConfig struct {
	Kind        string  `toml:"kind"`
	Padding     int     `toml:"padding"`
	Gap         int     `toml:"gap"`
	Ratio       float64 `toml:"ratio"`
	Count       int     `toml:"count"`
	FooterSlots int     `toml:"footer_slots"`
}

// EncodeConfig tunes the JPEG byte-budget loop.
type EncodeConfig struct {
	Quality  int `toml:"quality"`
	Step     int `toml:"step"`
	Floor    int `toml:"floor"`
	MaxBytes int `toml:"max_bytes"`
}

// ThemeConfig overrides palette entries; RGB triples as 3-element arrays.
// Absent entries keep the default theme's values.
type ThemeConfig struct {
	Background    []int   `toml:"background"`
	TextPrimary   []int   `toml:"text_primary"`
	TextSecondary []int   `toml:"text_secondary"`
	Accents       [][]int `toml:"accents"`
}

// SlotConfig assigns one widget to one slot index. The widget type decides
// which of the remaining fields apply.
type SlotConfig struct {
	Index  int    `toml:"index"`
	Widget string `toml:"widget"`

	Entity    string  `toml:"entity"`
	Key       string  `toml:"key"`
	Label     string  `toml:"label"`
	Icon      string  `toml:"icon"`
	Unit      string  `toml:"unit"`
	Color     []int   `toml:"color"`
	Precision int     `toml:"precision"`
	Style     string  `toml:"style"`
	Min       float64 `toml:"min"`
	Max       float64 `toml:"max"`
	Smooth    bool    `toml:"smooth"`
	NoFill    bool    `toml:"no_fill"`
	Entries   int     `toml:"entries"`
	TimeFmt   string  `toml:"time_format"`
	DateFmt   string  `toml:"date_format"`

	Rows []StatusRowConfig `toml:"rows"`
}

// StatusRowConfig is one row of a status_grid widget.
type StatusRowConfig struct {
	Entity string `toml:"entity"`
	Label  string `toml:"label"`
}

// Load reads and validates a TOML dashboard config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read dashboard config")
	}
	return Parse(data)
}

// Parse decodes and validates a TOML dashboard config.
func Parse(data []byte) (Config, error) {
	cfg := Config{
		Size:   render.DefaultSize,
		Encode: EncodeConfig(render.DefaultEncodeParams()),
		Layout: LayoutConfig{Kind: layout.Fullscreen.String()},
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse dashboard config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks everything that can be rejected before the first frame:
// layout kind and geometry, slot index range, widget types, entity ID
// shapes, theme overrides, and encoder bounds. Assigning a widget past the
// validated arrangement can then only happen through the layout API
// directly, where it stays a soft per-frame skip.
func (c Config) Validate() error {
	if c.Size < 16 {
		return errors.New(errors.ErrCodeInvalidConfig, "frame size %d too small", c.Size)
	}
	kind, err := layout.ParseKind(c.Layout.Kind)
	if err != nil {
		return err
	}
	if c.Layout.Ratio != 0 {
		if err := errors.ValidateRatio(c.Layout.Ratio); err != nil {
			return err
		}
	}
	if err := validateTheme(c.Theme); err != nil {
		return err
	}
	if c.Encode.Quality < 1 || c.Encode.Quality > 100 {
		return errors.New(errors.ErrCodeInvalidConfig, "encoder quality %d outside 1..100", c.Encode.Quality)
	}
	if c.Encode.Floor > c.Encode.Quality {
		return errors.New(errors.ErrCodeInvalidConfig,
			"encoder floor %d above starting quality %d", c.Encode.Floor, c.Encode.Quality)
	}

	slots := layout.New(kind, c.Size, c.Layout.options()...).SlotCount()
	for _, s := range c.Slots {
		if err := errors.ValidateSlotCount(s.Index, slots); err != nil {
			return err
		}
		if _, err := buildWidget(s); err != nil {
			return err
		}
	}
	return nil
}

// options maps the set geometry fields to layout options; zero values keep
// the layout defaults.
func (lc LayoutConfig) options() []layout.Option {
	var opts []layout.Option
	if lc.Padding > 0 {
		opts = append(opts, layout.WithPadding(lc.Padding))
	}
	if lc.Gap > 0 {
		opts = append(opts, layout.WithGap(lc.Gap))
	}
	if lc.Ratio > 0 {
		opts = append(opts, layout.WithRatio(lc.Ratio))
	}
	if lc.Count > 0 {
		opts = append(opts, layout.WithCount(lc.Count))
	}
	if lc.FooterSlots > 0 {
		opts = append(opts, layout.WithFooterSlots(lc.FooterSlots))
	}
	return opts
}

// validateTheme rejects malformed palette overrides. Absent entries keep
// the defaults; present ones must be RGB triples with 0..255 components.
func validateTheme(tc ThemeConfig) error {
	if err := validateTriple("background", tc.Background); err != nil {
		return err
	}
	if err := validateTriple("text_primary", tc.TextPrimary); err != nil {
		return err
	}
	if err := validateTriple("text_secondary", tc.TextSecondary); err != nil {
		return err
	}
	for i, a := range tc.Accents {
		if err := validateTriple(fmt.Sprintf("accents[%d]", i), a); err != nil {
			return err
		}
	}
	return nil
}

func validateTriple(name string, triple []int) error {
	if len(triple) == 0 {
		return nil
	}
	if len(triple) != 3 {
		return errors.New(errors.ErrCodeInvalidTheme,
			"theme %s must be an RGB triple, got %d values", name, len(triple))
	}
	for _, v := range triple {
		if v < 0 || v > 255 {
			return errors.New(errors.ErrCodeInvalidTheme,
				"theme %s component %d outside 0..255", name, v)
		}
	}
	return nil
}

// buildWidget constructs the widget a slot config describes.
func buildWidget(s SlotConfig) (widget.Widget, error) {
	color := parseColor(s.Color)

	switch s.Widget {
	case "entity":
		if err := errors.ValidateEntityID(s.Entity); err != nil {
			return nil, err
		}
		return &widget.Entity{
			EntityID:  s.Entity,
			Label:     s.Label,
			Icon:      s.Icon,
			Color:     color,
			Precision: s.Precision,
		}, nil
	case "gauge":
		if err := errors.ValidateEntityID(s.Entity); err != nil {
			return nil, err
		}
		style := widget.GaugeRing
		if s.Style == "arc" {
			style = widget.GaugeArc
		}
		return &widget.Gauge{
			EntityID:  s.Entity,
			Label:     s.Label,
			Style:     style,
			Min:       s.Min,
			Max:       s.Max,
			Color:     color,
			Precision: s.Precision,
		}, nil
	case "history":
		if err := errors.ValidateEntityID(s.Entity); err != nil {
			return nil, err
		}
		return &widget.History{
			EntityID:  s.Entity,
			Label:     s.Label,
			Color:     color,
			Precision: s.Precision,
			Smooth:    s.Smooth,
			NoFill:    s.NoFill,
		}, nil
	case "forecast":
		return &widget.Forecast{
			Key:        s.Key,
			Unit:       s.Unit,
			Color:      color,
			Precision:  s.Precision,
			MaxEntries: s.Entries,
		}, nil
	case "image":
		return &widget.Image{Key: s.Key}, nil
	case "clock":
		return &widget.Clock{TimeFormat: s.TimeFmt, DateFormat: s.DateFmt, Color: color}, nil
	case "status_grid":
		rows := make([]widget.StatusRow, 0, len(s.Rows))
		for _, r := range s.Rows {
			if err := errors.ValidateEntityID(r.Entity); err != nil {
				return nil, err
			}
			rows = append(rows, widget.StatusRow{EntityID: r.Entity, Label: r.Label})
		}
		return &widget.StatusGrid{Rows: rows, On: color}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidWidget, "unknown widget type %q", s.Widget)
	}
}

// parseColor maps an optional config triple to a theme color; absent or
// malformed triples stay as the zero color and each widget picks its accent.
func parseColor(triple []int) theme.Color {
	if len(triple) != 3 {
		return theme.Color{}
	}
	return theme.FromRGB(theme.ParseColor(triple, theme.RGB{}))
}

// buildTheme applies config overrides onto the default palette.
func buildTheme(tc ThemeConfig) theme.Theme {
	t := theme.Default()
	t.Background = theme.ParseColor(tc.Background, t.Background)
	t.TextPrimary = theme.ParseColor(tc.TextPrimary, t.TextPrimary)
	t.TextSecondary = theme.ParseColor(tc.TextSecondary, t.TextSecondary)
	for i, a := range tc.Accents {
		if i >= len(t.Accents) {
			break
		}
		t.Accents[i] = theme.ParseColor(a, t.Accents[i])
	}
	return t
}

package render

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/flopp/go-findfont"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/panelkit/panelkit/pkg/errors"
	"github.com/panelkit/panelkit/pkg/observability"
)

// FontClass is a semantic text size class. Widgets request classes, never
// point sizes; the resolved size scales with the container height so the same
// widget definition stays legible from a hero slot down to a 3×3 grid cell.
type FontClass int

// Font classes, smallest to largest.
const (
	FontCaption FontClass = iota
	FontSmall
	FontBody
	FontTitle
	FontDisplay
)

// String returns the class name.
func (c FontClass) String() string {
	switch c {
	case FontCaption:
		return "caption"
	case FontSmall:
		return "small"
	case FontBody:
		return "body"
	case FontTitle:
		return "title"
	case FontDisplay:
		return "display"
	}
	return "body"
}

// ParseFontClass resolves a class name to a FontClass. Both the current names
// and the legacy short aliases ("xs", "sm", "md", "lg", "xl") are accepted so
// older dashboard configurations keep rendering at comparable sizes. Unknown
// names resolve to FontBody.
func ParseFontClass(name string) FontClass {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "caption", "xs":
		return FontCaption
	case "small", "sm":
		return FontSmall
	case "body", "md":
		return FontBody
	case "title", "lg":
		return FontTitle
	case "display", "xl":
		return FontDisplay
	}
	return FontBody
}

// referenceHeight is the container height at which classes resolve to their
// base sizes. 240 is the panel's logical edge length.
const referenceHeight = 240.0

// classMetrics holds the base point size at the reference height and the
// legibility floor below which a class never drops.
var classMetrics = map[FontClass]struct{ base, floor float64 }{
	FontCaption: {base: 11, floor: 7},
	FontSmall:   {base: 13, floor: 8},
	FontBody:    {base: 16, floor: 10},
	FontTitle:   {base: 22, floor: 12},
	FontDisplay: {base: 32, floor: 14},
}

// ScaledFontSize maps a class to a point size proportional to the container
// height relative to the 240px reference, clamped to the class floor. The
// result grows monotonically with container height and never falls below the
// legibility floor.
func ScaledFontSize(class FontClass, containerHeight float64) float64 {
	m, ok := classMetrics[class]
	if !ok {
		m = classMetrics[FontBody]
	}
	size := m.base * containerHeight / referenceHeight
	if size < m.floor {
		return m.floor
	}
	return size
}

// FontProvider supplies font data for one step of the fallback chain.
// Providers are tried in order; the chain is data, not control flow.
type FontProvider interface {
	// Name identifies the provider for fallback diagnostics.
	Name() string
	// Load returns the parsed font source, or an error to advance the chain.
	Load() (*text.FontSource, error)
}

// FileProvider loads a font from an explicit path.
type FileProvider struct {
	Path string
}

func (p FileProvider) Name() string { return "file:" + p.Path }

func (p FileProvider) Load() (*text.FontSource, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, err
	}
	return text.NewFontSource(data)
}

// SystemProvider locates an installed font by filename via system font
// directory discovery.
type SystemProvider struct {
	Filename string
}

func (p SystemProvider) Name() string { return "system:" + p.Filename }

func (p SystemProvider) Load() (*text.FontSource, error) {
	path, err := findfont.Find(p.Filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return text.NewFontSource(data)
}

// BuiltinProvider parses an embedded font. It terminates every chain: the
// renderer must always end up with a usable face.
type BuiltinProvider struct {
	Label string
	TTF   []byte
}

func (p BuiltinProvider) Name() string { return "builtin:" + p.Label }

func (p BuiltinProvider) Load() (*text.FontSource, error) {
	return text.NewFontSource(p.TTF)
}

// DefaultRegularChain returns the fallback chain for regular text: preferred
// system sans faces first, the embedded Go Regular face last.
func DefaultRegularChain() []FontProvider {
	return []FontProvider{
		SystemProvider{Filename: "Roboto-Regular.ttf"},
		SystemProvider{Filename: "DejaVuSans.ttf"},
		SystemProvider{Filename: "Arial.ttf"},
		BuiltinProvider{Label: "go-regular", TTF: goregular.TTF},
	}
}

// DefaultBoldChain returns the fallback chain for bold text.
func DefaultBoldChain() []FontProvider {
	return []FontProvider{
		SystemProvider{Filename: "Roboto-Bold.ttf"},
		SystemProvider{Filename: "DejaVuSans-Bold.ttf"},
		SystemProvider{Filename: "Arial Bold.ttf"},
		BuiltinProvider{Label: "go-bold", TTF: gobold.TTF},
	}
}

// FontLibrary resolves font faces for the renderer. Sources load lazily on
// first use and are cached for the life of the library; face construction per
// size is cheap and uncached.
type FontLibrary struct {
	regular []FontProvider
	bold    []FontProvider
	logger  *log.Logger

	mu      sync.Mutex
	sources map[bool]*text.FontSource // keyed by bold
}

// NewFontLibrary builds a library over the given provider chains. Nil chains
// use the defaults.
func NewFontLibrary(regular, bold []FontProvider, logger *log.Logger) *FontLibrary {
	if regular == nil {
		regular = DefaultRegularChain()
	}
	if bold == nil {
		bold = DefaultBoldChain()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &FontLibrary{
		regular: regular,
		bold:    bold,
		logger:  logger,
		sources: make(map[bool]*text.FontSource),
	}
}

// Face returns a font face at the given point size. The provider chains end
// in an embedded face, so Face always succeeds.
func (l *FontLibrary) Face(size float64, bold bool) text.Face {
	return l.source(bold).Face(size)
}

// ScaledFace resolves a class against a container height and returns the
// face at the resulting size. See ScaledFontSize for the scaling contract.
func (l *FontLibrary) ScaledFace(class FontClass, containerHeight float64, bold bool) text.Face {
	return l.Face(ScaledFontSize(class, containerHeight), bold)
}

// Measure returns the pixel dimensions of s at the given point size.
func (l *FontLibrary) Measure(s string, size float64, bold bool) (w, h float64) {
	return text.Measure(s, l.Face(size, bold))
}

func (l *FontLibrary) source(bold bool) *text.FontSource {
	l.mu.Lock()
	defer l.mu.Unlock()

	if src, ok := l.sources[bold]; ok {
		return src
	}

	chain := l.regular
	if bold {
		chain = l.bold
	}
	for i, p := range chain {
		src, err := p.Load()
		if err != nil {
			l.logger.Debug("font provider unavailable", "provider", p.Name(), "err", err)
			continue
		}
		if i > 0 {
			l.logger.Info("font fallback", "err", errors.New(errors.ErrCodeAssetFallback,
				"font %s unavailable, using %s", chain[0].Name(), p.Name()))
			observability.Diagnostic().OnAssetFallback(context.Background(), chain[0].Name(), p.Name())
		}
		l.sources[bold] = src
		return src
	}

	// Unreachable with a builtin-terminated chain, but a misconfigured custom
	// chain must still yield a face.
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		panic("render: embedded fallback font failed to parse: " + err.Error())
	}
	l.logger.Warn("all font providers failed, using embedded fallback")
	l.sources[bold] = src
	return src
}

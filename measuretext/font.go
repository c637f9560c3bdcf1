// Package measuretext supplies flex.MeasureFunc implementations for text
// leaves: a node with no children whose intrinsic size is "however much
// space this string needs at this font, wrapped to this width".
package measuretext

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const defaultDPI = 72

// Font wraps a TrueType font at a fixed point size and DPI, caching the
// rasterized font.Face it takes to measure glyph advances.
type Font struct {
	tt     *truetype.Font
	sizePt float64
	dpi    float64

	mu    sync.Mutex
	faces map[string]font.Face
}

// LoadFont reads a .ttf file from disk and returns a Font at sizePt points.
func LoadFont(path string, sizePt float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("measuretext: read %s: %w", path, err)
	}
	return LoadFontFromBytes(data, sizePt)
}

// LoadFontFromBytes parses a TrueType font already resident in memory —
// the path taken by a host that embeds its fonts with go:embed.
func LoadFontFromBytes(data []byte, sizePt float64) (*Font, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("measuretext: parse font: %w", err)
	}
	if sizePt <= 0 {
		sizePt = 12
	}
	return &Font{tt: tt, sizePt: sizePt, dpi: defaultDPI, faces: make(map[string]font.Face)}, nil
}

// MustLoadFontFromBytes is LoadFontFromBytes that panics on error, for
// package-level font initialization.
func MustLoadFontFromBytes(data []byte, sizePt float64) *Font {
	f, err := LoadFontFromBytes(data, sizePt)
	if err != nil {
		panic(err)
	}
	return f
}

// SetDPI overrides the font's rendering DPI; 0 or negative resets to 72.
func (f *Font) SetDPI(dpi float64) *Font {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	f.dpi = dpi
	return f
}

func (f *Font) face() font.Face {
	key := fmt.Sprintf("%.3f@%.1f", f.sizePt, f.dpi)
	f.mu.Lock()
	defer f.mu.Unlock()
	if fc, ok := f.faces[key]; ok {
		return fc
	}
	fc := truetype.NewFace(f.tt, &truetype.Options{Size: f.sizePt, DPI: f.dpi, Hinting: font.HintingNone})
	f.faces[key] = fc
	return fc
}

// LineHeight returns this font's line height in pixels at its configured
// size and DPI.
func (f *Font) LineHeight() float64 {
	m := f.face().Metrics()
	return float64(m.Height >> 6)
}

// MeasureString returns the pixel advance width of a single line of text
// with no wrapping applied.
func (f *Font) MeasureString(s string) float64 {
	if s == "" {
		return 0
	}
	return float64(font.MeasureString(f.face(), s) >> 6)
}

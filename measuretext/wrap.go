package measuretext

import (
	"strings"

	"github.com/rivo/uniseg"

	flex "github.com/flexkit/flex"
	"github.com/flexkit/flex/internal/core/geom"
)

// NewMeasureFunc returns a flex.MeasureFunc that reports the size text
// needs when set in font, word-wrapping at grapheme-cluster boundaries
// whenever the incoming width constraint is AtMost or Exactly. A maxLines
// of 0 or less allows an unbounded number of wrapped lines.
func NewMeasureFunc(font *Font, text string, maxLines int) flex.MeasureFunc {
	return func(node *flex.Node, width geom.Value, widthMode flex.MeasureMode, height geom.Value, heightMode flex.MeasureMode) *geom.Size {
		_ = node
		_ = height
		_ = heightMode

		if text == "" {
			return geom.NewSize(0, 0)
		}

		var lines []string
		if widthMode == flex.MeasureModeUndefined || geom.IsUndefined(width) {
			lines = strings.Split(normalizeNewlines(text), "\n")
		} else {
			lines = wrapToWidth(font, text, width)
		}
		if maxLines > 0 && len(lines) > maxLines {
			lines = lines[:maxLines]
		}

		maxW := 0.0
		for _, l := range lines {
			if w := font.MeasureString(l); w > maxW {
				maxW = w
			}
		}
		if widthMode == flex.MeasureModeExactly && geom.IsDefined(width) {
			maxW = width
		}

		return geom.NewSize(maxW, float64(len(lines))*font.LineHeight())
	}
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// wrapToWidth greedily packs words onto lines, falling back to a
// grapheme-cluster split (via uniseg, so combining marks and multi-rune
// emoji never get sliced in half) for any single word wider than width
// on its own.
func wrapToWidth(font *Font, text string, width geom.Value) []string {
	var out []string
	for _, para := range strings.Split(normalizeNewlines(text), "\n") {
		if para == "" {
			out = append(out, "")
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		var cur strings.Builder
		curWidth := 0.0
		spaceWidth := font.MeasureString(" ")

		flush := func() {
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
				curWidth = 0
			}
		}

		for _, word := range words {
			wWidth := font.MeasureString(word)
			if wWidth > width {
				flush()
				out = append(out, splitGraphemes(font, word, width)...)
				continue
			}
			addWidth := wWidth
			if cur.Len() > 0 {
				addWidth += spaceWidth
			}
			if cur.Len() > 0 && curWidth+addWidth > width {
				flush()
				cur.WriteString(word)
				curWidth = wWidth
				continue
			}
			if cur.Len() > 0 {
				cur.WriteByte(' ')
			}
			cur.WriteString(word)
			curWidth += addWidth
		}
		flush()
	}
	return out
}

// splitGraphemes breaks a single overlong word into as many grapheme
// clusters as fit within width per chunk.
func splitGraphemes(font *Font, word string, width geom.Value) []string {
	var chunks []string
	var cur strings.Builder
	curWidth := 0.0

	gr := uniseg.NewGraphemes(word)
	for gr.Next() {
		cluster := gr.Str()
		cw := font.MeasureString(cluster)
		if cur.Len() > 0 && curWidth+cw > width {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curWidth = 0
		}
		cur.WriteString(cluster)
		curWidth += cw
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

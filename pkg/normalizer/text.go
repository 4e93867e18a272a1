package normalizer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// Fallback text style, used field by field when the raw node carries no
// style object or leaves fields unset.
const (
	fallbackFontSize   = 16.0
	fallbackFontFamily = "Inter"
	fallbackFontStyle  = "Regular"
	fallbackFontWeight = 400.0
	fallbackTextCase   = "ORIGINAL"
	fallbackDecoration = "NONE"
)

// segmentNamespace scopes the UUIDv5 segment ids so they are stable across
// runs for the same node and character range.
var segmentNamespace = uuid.MustParse("8f1c9d52-4f5a-4e6b-9c37-2a81d30f6f41")

// synthesizeSegments builds the styled run for a text node: exactly one
// segment spanning the whole string, styled from the raw style object with
// fixed fallbacks. This is an acknowledged approximation of the design
// tool's native per-character text shaping; the raw override tables are
// passed through on the node for consumers that need more.
func (c *conversion) synthesizeSegments(raw *figma.Node, fills []figma.Paint) []TextSegment {
	end := len([]rune(raw.Characters))

	segment := TextSegment{
		Characters:     raw.Characters,
		UniqueID:       segmentID(raw.ID, 0, end),
		Start:          0,
		End:            end,
		FontSize:       fallbackFontSize,
		FontName:       FontName{Family: fallbackFontFamily, Style: fallbackFontStyle},
		Fills:          fills,
		FontWeight:     fallbackFontWeight,
		LineHeight:     figma.LineHeight{Unit: "AUTO"},
		TextCase:       fallbackTextCase,
		TextDecoration: fallbackDecoration,
	}

	if style := raw.Style; style != nil {
		if style.FontSize > 0 {
			segment.FontSize = style.FontSize
		}
		if style.FontFamily != "" {
			segment.FontName.Family = style.FontFamily
		}
		if style.FontStyle != "" {
			segment.FontName.Style = style.FontStyle
		}
		if style.FontWeight > 0 {
			segment.FontWeight = style.FontWeight
		}
		segment.LetterSpacing = style.LetterSpacing
		switch {
		case style.LineHeight != nil:
			segment.LineHeight = *style.LineHeight
		case style.LineHeightPx > 0:
			segment.LineHeight = figma.LineHeight{Unit: "PIXELS", Value: style.LineHeightPx}
		}
		if style.TextCase != "" {
			segment.TextCase = style.TextCase
		}
		if style.TextDecoration != "" {
			segment.TextDecoration = style.TextDecoration
		}
		if len(style.Fills) > 0 {
			segment.Fills = style.Fills
		}
	}

	return []TextSegment{segment}
}

// segmentID derives a deterministic id from the node id and run range, so
// re-normalizing the same input yields identical segment ids.
func segmentID(nodeID string, start, end int) string {
	return uuid.NewSHA1(segmentNamespace, []byte(fmt.Sprintf("%s:%d-%d", nodeID, start, end))).String()
}

package normalizer

import (
	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// Node is the normalized output unit: one per surviving raw node, with
// derived geometry, a document-unique name, a complete set of layout
// fields, and synthesized vector markup where applicable. GROUP nodes are
// retyped to FRAME and never appear themselves; their children are spliced
// into the parent's sequence.
type Node struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	UniqueName string `json:"uniqueName"`

	// Position is parent-relative; roots sit at the origin. HasGeometry is
	// false when the raw node carried no bounding box, in which case the
	// four geometry fields are meaningless.
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	HasGeometry bool    `json:"hasGeometry"`

	// Rotation is the node's own rotation in degrees; CumulativeRotation
	// adds every ancestor's rotation on top.
	Rotation           float64 `json:"rotation"`
	CumulativeRotation float64 `json:"cumulativeRotation"`

	LayoutMode             string  `json:"layoutMode"`
	LayoutSizingHorizontal string  `json:"layoutSizingHorizontal"`
	LayoutSizingVertical   string  `json:"layoutSizingVertical"`
	LayoutGrow             float64 `json:"layoutGrow"`
	LayoutPositioning      string  `json:"layoutPositioning,omitempty"`
	PrimaryAxisAlignItems  string  `json:"primaryAxisAlignItems"`
	CounterAxisAlignItems  string  `json:"counterAxisAlignItems"`
	PrimaryAxisSizingMode  string  `json:"primaryAxisSizingMode"`
	CounterAxisSizingMode  string  `json:"counterAxisSizingMode"`
	PaddingLeft            float64 `json:"paddingLeft"`
	PaddingRight           float64 `json:"paddingRight"`
	PaddingTop             float64 `json:"paddingTop"`
	PaddingBottom          float64 `json:"paddingBottom"`
	ItemSpacing            float64 `json:"itemSpacing"`

	Fills   []figma.Paint  `json:"fills"`
	Strokes []figma.Paint  `json:"strokes"`
	Effects []figma.Effect `json:"effects"`

	StrokeWeight float64 `json:"strokeWeight,omitempty"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`

	// Text runs, present only for TEXT nodes with non-empty characters.
	// The raw per-character override tables are passed through verbatim for
	// consumers that want finer-grained rendering than the single run.
	Characters              string                      `json:"characters,omitempty"`
	StyledTextSegments      []TextSegment               `json:"styledTextSegments,omitempty"`
	CharacterStyleOverrides []int                       `json:"characterStyleOverrides,omitempty"`
	StyleOverrideTable      map[string]*figma.TypeStyle `json:"styleOverrideTable,omitempty"`

	// CanBeFlattened marks icon-like nodes; SVG holds the synthesized
	// inline markup when vector embedding produced any.
	CanBeFlattened bool   `json:"canBeFlattened"`
	SVG            string `json:"svg,omitempty"`

	Children []*Node `json:"children,omitempty"`

	// IsRelative is true when this node positions its children absolutely
	// (layoutMode NONE) or any surviving child opted out of auto-layout.
	IsRelative bool `json:"isRelative"`

	// Parent is a back-reference valid during and after the pass; it never
	// owns the node and is excluded from serialization.
	Parent *Node `json:"-"`
}

// FontName identifies a font family and style variant.
type FontName struct {
	Family string `json:"family"`
	Style  string `json:"style"`
}

// TextSegment is a styled run of text. The pipeline emits exactly one
// segment spanning the whole string per text node; per-character overrides
// travel alongside on Node for consumers that need finer runs.
type TextSegment struct {
	Characters     string           `json:"characters"`
	UniqueID       string           `json:"uniqueId"`
	Start          int              `json:"start"`
	End            int              `json:"end"`
	FontSize       float64          `json:"fontSize"`
	FontName       FontName         `json:"fontName"`
	Fills          []figma.Paint    `json:"fills"`
	FontWeight     float64          `json:"fontWeight"`
	LetterSpacing  float64          `json:"letterSpacing"`
	LineHeight     figma.LineHeight `json:"lineHeight"`
	TextCase       string           `json:"textCase"`
	TextDecoration string           `json:"textDecoration"`
}

package figma

// Node type discriminators used by the normalization pipeline. The wire
// format carries more types than these; unknown types pass through the
// pipeline with default handling.
const (
	NodeTypeDocument  = "DOCUMENT"
	NodeTypeCanvas    = "CANVAS"
	NodeTypeFrame     = "FRAME"
	NodeTypeGroup     = "GROUP"
	NodeTypeSection   = "SECTION"
	NodeTypeRectangle = "RECTANGLE"
	NodeTypeEllipse   = "ELLIPSE"
	NodeTypeText      = "TEXT"
	NodeTypeVector    = "VECTOR"
	NodeTypeLine      = "LINE"
	NodeTypeComponent = "COMPONENT"
	NodeTypeInstance  = "INSTANCE"
)

// Paint type discriminators.
const (
	PaintTypeSolid = "SOLID"
	PaintTypeImage = "IMAGE"
)

// Layout field values relevant to normalization.
const (
	LayoutModeNone         = "NONE"
	LayoutSizingFixed      = "FIXED"
	LayoutSizingHug        = "HUG"
	LayoutSizingFill       = "FILL"
	LayoutPositioningAbs   = "ABSOLUTE"
	AxisAlignMin           = "MIN"
	AxisSizingAuto         = "AUTO"
	WindingRuleEvenOdd     = "EVENODD"
	WindingRuleNonZero     = "NONZERO"
)

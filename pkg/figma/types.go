package figma

// Version is the figma-codegen release version, printed by the CLI.
const Version = "0.3.0"

// FileResponse represents the complete response from the Figma file API endpoint.
// It contains the file metadata, document structure, published styles, and schema version information.
type FileResponse struct {
	Name          string           `json:"name"`
	LastModified  string           `json:"lastModified"`
	ThumbnailURL  string           `json:"thumbnailUrl"`
	Version       string           `json:"version"`
	Document      Node             `json:"document"`
	Styles        map[string]Style `json:"styles"`
	SchemaVersion int              `json:"schemaVersion"`
}

// NodesResponse represents the response from the Figma nodes API endpoint when fetching specific nodes.
// It contains file metadata and a map of node IDs to their corresponding NodeData.
type NodesResponse struct {
	Name         string              `json:"name"`
	LastModified string              `json:"lastModified"`
	Version      string              `json:"version"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps a node with its document structure as returned for each
// requested node in a NodesResponse.
type NodeData struct {
	Document Node `json:"document"`
}

// Style represents a published Figma style with its basic properties.
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"style_type"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be frames, groups, text, vectors, or other Figma elements, each
// with their own properties such as fills, strokes, effects, path geometry,
// layout settings, and children nodes. All shape- and type-specific fields
// are optional in the wire format; absence is meaningful and never an error.
type Node struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Visible *bool  `json:"visible,omitempty"` // nil means visible

	Children []Node `json:"children,omitempty"`

	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
	Rotation            float64    `json:"rotation,omitempty"` // radians, counter-clockwise

	Fills        []Paint  `json:"fills,omitempty"`
	Strokes      []Paint  `json:"strokes,omitempty"`
	StrokeWeight float64  `json:"strokeWeight,omitempty"`
	CornerRadius float64  `json:"cornerRadius,omitempty"`
	Effects      []Effect `json:"effects,omitempty"`

	// Path geometry, present on VECTOR and boolean-operation nodes.
	FillGeometry   []Geometry `json:"fillGeometry,omitempty"`
	StrokeGeometry []Geometry `json:"strokeGeometry,omitempty"`

	// Text content and styling (TEXT nodes only).
	Characters              string                `json:"characters,omitempty"`
	Style                   *TypeStyle            `json:"style,omitempty"`
	CharacterStyleOverrides []int                 `json:"characterStyleOverrides,omitempty"`
	StyleOverrideTable      map[string]*TypeStyle `json:"styleOverrideTable,omitempty"`

	// Auto-layout properties.
	LayoutMode             string  `json:"layoutMode,omitempty"`
	LayoutSizingHorizontal string  `json:"layoutSizingHorizontal,omitempty"`
	LayoutSizingVertical   string  `json:"layoutSizingVertical,omitempty"`
	LayoutGrow             float64 `json:"layoutGrow,omitempty"`
	LayoutPositioning      string  `json:"layoutPositioning,omitempty"` // "ABSOLUTE" opts out of auto-layout flow
	PrimaryAxisAlignItems  string  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems  string  `json:"counterAxisAlignItems,omitempty"`
	PrimaryAxisSizingMode  string  `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode  string  `json:"counterAxisSizingMode,omitempty"`
	PaddingLeft            float64 `json:"paddingLeft,omitempty"`
	PaddingRight           float64 `json:"paddingRight,omitempty"`
	PaddingTop             float64 `json:"paddingTop,omitempty"`
	PaddingBottom          float64 `json:"paddingBottom,omitempty"`
	ItemSpacing            float64 `json:"itemSpacing,omitempty"`
}

// IsVisible reports whether the node should be processed at all.
// The wire format omits the field for visible nodes and emits false for
// hidden ones.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// Geometry is a single path geometry entry: an SVG-encoded path string plus
// its winding rule ("NONZERO" or "EVENODD").
type Geometry struct {
	Path        string `json:"path"`
	WindingRule string `json:"windingRule"`
}

// Color represents an RGBA color with float values ranging from 0 to 1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint represents a fill or stroke applied to a Figma node.
// It includes the paint type (SOLID, IMAGE, GRADIENT_LINEAR, ...),
// visibility, opacity, and color or image source information.
type Paint struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"` // nil means visible
	Opacity float64 `json:"opacity,omitempty"`
	Color   *Color  `json:"color,omitempty"`

	// IMAGE paints. ImageRef identifies the image inside the design file;
	// ImageData and ImageURL are pre-resolved slots filled by an upstream
	// collaborator (embedded bytes as a data URI, or a download URL).
	ImageRef  string `json:"imageRef,omitempty"`
	ScaleMode string `json:"scaleMode,omitempty"`
	ImageData string `json:"imageData,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`

	// BoundVariables carries design-variable references attached to this
	// paint, resolved during normalization when color variables are enabled.
	BoundVariables *PaintVariables `json:"boundVariables,omitempty"`
}

// IsVisible reports whether the paint is rendered.
func (p *Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// PaintVariables lists the variable aliases bound to a paint's fields.
type PaintVariables struct {
	Color *VariableAlias `json:"color,omitempty"`
}

// VariableAlias is a reference to a design variable by id.
type VariableAlias struct {
	Type string `json:"type"` // always "VARIABLE_ALIAS"
	ID   string `json:"id"`
}

// Effect represents a visual effect applied to a Figma node such as drop
// shadows, inner shadows, or blur effects.
type Effect struct {
	Type      string  `json:"type"`
	Visible   *bool   `json:"visible,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
	Color     *Color  `json:"color,omitempty"`
	Offset    *Vector `json:"offset,omitempty"`
	Spread    float64 `json:"spread,omitempty"`
	BlendMode string  `json:"blendMode,omitempty"`
}

// Vector represents a 2D coordinate or offset with X and Y values.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LineHeight describes a text line height. Unit is "AUTO", "PIXELS", or
// "PERCENT"; Value is meaningless for AUTO.
type LineHeight struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value,omitempty"`
}

// TypeStyle represents text styling properties from Figma, both for a whole
// TEXT node and for per-character override table entries.
type TypeStyle struct {
	FontFamily          string      `json:"fontFamily,omitempty"`
	FontPostScriptName  string      `json:"fontPostScriptName,omitempty"`
	FontStyle           string      `json:"fontStyle,omitempty"`
	FontWeight          float64     `json:"fontWeight,omitempty"`
	FontSize            float64     `json:"fontSize,omitempty"`
	LineHeight          *LineHeight `json:"lineHeight,omitempty"`
	LineHeightPx        float64     `json:"lineHeightPx,omitempty"`
	LetterSpacing       float64     `json:"letterSpacing,omitempty"`
	TextCase            string      `json:"textCase,omitempty"`
	TextDecoration      string      `json:"textDecoration,omitempty"`
	TextAlignHorizontal string      `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical   string      `json:"textAlignVertical,omitempty"`
	Fills               []Paint     `json:"fills,omitempty"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions
// (Width, Height) in the absolute canvas coordinate space.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Variable is a local design variable as returned by the variables API.
// Only COLOR variables are consumed by this pipeline.
type Variable struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	ResolvedType  string           `json:"resolvedType"`
	ValuesByMode  map[string]Color `json:"valuesByMode,omitempty"`
	ResolvedValue *Color           `json:"resolvedValue,omitempty"`
}

// VariablesResponse is the response envelope of the local variables endpoint.
type VariablesResponse struct {
	Meta struct {
		Variables map[string]Variable `json:"variables"`
	} `json:"meta"`
}

package normalizer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// flattenEligible decides whether a node may be flattened into inline
// vector markup. Two independent paths feed the decision: a VECTOR node
// carrying path geometry is always eligible regardless of its ancestry,
// while any other node qualifies heuristically when it is small and
// near-square, or contains a VECTOR descendant, but never inside a subtree
// that was already flattened (flattening does not nest).
func (c *conversion) flattenEligible(raw *figma.Node, parentFlattened bool) bool {
	if raw.Type == figma.NodeTypeVector && len(raw.FillGeometry) > 0 {
		return true
	}
	if parentFlattened {
		return false
	}
	box := raw.AbsoluteBoundingBox
	if box == nil || box.Width <= 0 || box.Height <= 0 {
		return false
	}
	larger := math.Max(box.Width, box.Height)
	if larger <= *c.settings.Icon.MaxSize &&
		math.Abs(box.Width-box.Height) <= *c.settings.Icon.SquareTolerance*larger {
		return true
	}
	return hasVectorDescendant(raw)
}

func hasVectorDescendant(raw *figma.Node) bool {
	for i := range raw.Children {
		child := &raw.Children[i]
		if !child.IsVisible() {
			continue
		}
		if child.Type == figma.NodeTypeVector || hasVectorDescendant(child) {
			return true
		}
	}
	return false
}

// resolveVector synthesizes the node's SVG when it is flattenable. A node
// with its own path geometry becomes a standalone SVG; otherwise its
// immediate VECTOR children carrying geometry are layered into one combined
// SVG and marked consumed so the child assembly excludes them. Path colors
// come from the normalized fills so that resolved color variables show up
// in the markup. Returns the consumed flags aligned with pairs.
func (c *conversion) resolveVector(node *Node, raw *figma.Node, flattenable bool, pairs []childPair) []bool {
	consumed := make([]bool, len(pairs))
	if !flattenable {
		return consumed
	}
	node.CanBeFlattened = true

	if len(raw.FillGeometry) > 0 {
		node.SVG = renderSVG(node.Width, node.Height, []svgLayer{
			{geometry: raw.FillGeometry, fill: firstSolidHex(node.Fills)},
		})
		return consumed
	}

	var layers []svgLayer
	for i, pair := range pairs {
		if pair.raw.Type != figma.NodeTypeVector || len(pair.raw.FillGeometry) == 0 {
			continue
		}
		layers = append(layers, svgLayer{
			geometry: pair.raw.FillGeometry,
			fill:     firstSolidHex(pair.node.Fills),
		})
		consumed[i] = true
	}
	if len(layers) > 0 {
		node.SVG = renderSVG(node.Width, node.Height, layers)
	}
	return consumed
}

// svgLayer is one path group with the fill it renders in.
type svgLayer struct {
	geometry []figma.Geometry
	fill     string
}

// renderSVG emits deterministic inline markup: one path element per
// geometry entry, sized to the node with a matching view box. The fill-rule
// attribute appears only for even-odd winding; the default rule is omitted.
func renderSVG(width, height float64, layers []svgLayer) string {
	w := formatNumber(width)
	h := formatNumber(height)

	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="`)
	sb.WriteString(w)
	sb.WriteString(`" height="`)
	sb.WriteString(h)
	sb.WriteString(`" viewBox="0 0 `)
	sb.WriteString(w)
	sb.WriteString(` `)
	sb.WriteString(h)
	sb.WriteString(`">`)

	for _, layer := range layers {
		for _, geom := range layer.geometry {
			if geom.Path == "" {
				continue
			}
			sb.WriteString(`<path d="`)
			sb.WriteString(geom.Path)
			sb.WriteString(`" fill="`)
			sb.WriteString(layer.fill)
			sb.WriteString(`"`)
			if geom.WindingRule == figma.WindingRuleEvenOdd {
				sb.WriteString(` fill-rule="evenodd"`)
			}
			sb.WriteString(`/>`)
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// firstSolidHex returns the hex color of the first visible solid fill,
// default black when none exists.
func firstSolidHex(fills []figma.Paint) string {
	for i := range fills {
		fill := &fills[i]
		if fill.Type == figma.PaintTypeSolid && fill.IsVisible() && fill.Color != nil {
			return colorToHex(fill.Color)
		}
	}
	return "#000000"
}

// colorToHex converts an RGBA color with 0-1 float channels to #RRGGBB.
func colorToHex(color *figma.Color) string {
	if color == nil {
		return "#000000"
	}
	r := int(math.Round(color.R * 255))
	g := int(math.Round(color.G * 255))
	b := int(math.Round(color.B * 255))
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// formatNumber renders a dimension without a trailing fractional zero.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

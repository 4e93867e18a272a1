package normalizer

import (
	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// applyLayoutDefaults fills the layout fields downstream generators index
// into unconditionally. Upstream values win; everything absent gets a fixed
// default so no field is ever left undefined.
func applyLayoutDefaults(node *Node, raw *figma.Node) {
	node.LayoutMode = defaultString(raw.LayoutMode, figma.LayoutModeNone)
	node.LayoutSizingHorizontal = defaultString(raw.LayoutSizingHorizontal, figma.LayoutSizingFixed)
	node.LayoutSizingVertical = defaultString(raw.LayoutSizingVertical, figma.LayoutSizingFixed)
	node.LayoutGrow = raw.LayoutGrow
	node.LayoutPositioning = raw.LayoutPositioning
	node.PrimaryAxisAlignItems = defaultString(raw.PrimaryAxisAlignItems, figma.AxisAlignMin)
	node.CounterAxisAlignItems = defaultString(raw.CounterAxisAlignItems, figma.AxisAlignMin)
	node.PrimaryAxisSizingMode = defaultString(raw.PrimaryAxisSizingMode, figma.AxisSizingAuto)
	node.CounterAxisSizingMode = defaultString(raw.CounterAxisSizingMode, figma.AxisSizingAuto)
	node.PaddingLeft = raw.PaddingLeft
	node.PaddingRight = raw.PaddingRight
	node.PaddingTop = raw.PaddingTop
	node.PaddingBottom = raw.PaddingBottom
	node.ItemSpacing = raw.ItemSpacing
}

// finishLayout applies the corrections that depend on the surviving child
// list: HUG sizing cannot be honored with nothing to hug, and the relative
// positioning flag depends on children that opted out of auto-layout flow.
func finishLayout(node *Node) {
	if len(node.Children) == 0 {
		if node.LayoutSizingHorizontal == figma.LayoutSizingHug {
			node.LayoutSizingHorizontal = figma.LayoutSizingFixed
		}
		if node.LayoutSizingVertical == figma.LayoutSizingHug {
			node.LayoutSizingVertical = figma.LayoutSizingFixed
		}
	}

	node.IsRelative = node.LayoutMode == figma.LayoutModeNone
	for _, child := range node.Children {
		if child.LayoutPositioning == figma.LayoutPositioningAbs {
			node.IsRelative = true
			break
		}
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

package normalizer

import (
	"math"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// applyGeometry converts the raw node's absolute bounding box into
// parent-relative coordinates and composes rotation. Roots render at the
// origin regardless of their absolute offset; a missing bounding box leaves
// the geometry unset with no synthetic fallback. The cumulative total is
// computed even for unrotated nodes because descendants need the running
// sum.
func applyGeometry(node *Node, raw *figma.Node, parentBox *figma.Rectangle, parentCumulative float64) {
	node.Rotation = radiansToDegrees(raw.Rotation)
	node.CumulativeRotation = parentCumulative + node.Rotation

	box := raw.AbsoluteBoundingBox
	if box == nil {
		return
	}
	node.HasGeometry = true
	node.Width = box.Width
	node.Height = box.Height
	if parentBox != nil {
		node.X = box.X - parentBox.X
		node.Y = box.Y - parentBox.Y
	}
}

// radiansToDegrees converts the source rotation convention (radians,
// positive counter-clockwise) to the target one (degrees, sign inverted).
func radiansToDegrees(radians float64) float64 {
	return -radians * 180 / math.Pi
}

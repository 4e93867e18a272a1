// Package imager resolves IMAGE fills to a usable source. Actual network
// fetches and file exports belong to external collaborators; this package
// only decides, per fill, which already-available source to use and
// synthesizes a placeholder when nothing was resolved upstream.
package imager

import (
	"fmt"
	"math"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// placeholderBase is the service used for fills with no resolved source.
const placeholderBase = "https://placehold.co"

// ImageFillNode identifies a node carrying at least one IMAGE fill.
type ImageFillNode struct {
	NodeID   string
	NodeName string
	ImageRef string
}

// CollectImageFillNodes walks the node tree and returns every node that has
// a visible IMAGE fill, in document order. Invisible nodes are skipped
// entirely, matching the normalizer's pruning.
func CollectImageFillNodes(root *figma.Node) []ImageFillNode {
	var out []ImageFillNode
	collectImageFills(root, &out)
	return out
}

func collectImageFills(node *figma.Node, out *[]ImageFillNode) {
	if !node.IsVisible() {
		return
	}
	for i := range node.Fills {
		fill := &node.Fills[i]
		if fill.Type == "IMAGE" && fill.IsVisible() {
			*out = append(*out, ImageFillNode{
				NodeID:   node.ID,
				NodeName: node.Name,
				ImageRef: fill.ImageRef,
			})
			break
		}
	}
	for i := range node.Children {
		collectImageFills(&node.Children[i], out)
	}
}

// ResolveSource picks the usable source for an IMAGE fill in priority
// order: pre-resolved embedded data, then a pre-resolved remote URL, then a
// synthetic placeholder sized to the node's rounded dimensions.
func ResolveSource(fill figma.Paint, width, height float64) string {
	if fill.ImageData != "" {
		return fill.ImageData
	}
	if fill.ImageURL != "" {
		return fill.ImageURL
	}
	return PlaceholderURL(width, height)
}

// PlaceholderURL builds a placeholder image URL for the given dimensions.
// Zero or negative dimensions fall back to 100x100.
func PlaceholderURL(width, height float64) string {
	w := int(math.Round(width))
	h := int(math.Round(height))
	if w <= 0 {
		w = 100
	}
	if h <= 0 {
		h = 100
	}
	return fmt.Sprintf("%s/%dx%d", placeholderBase, w, h)
}

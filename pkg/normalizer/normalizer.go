// Package normalizer converts a raw design-tool scene tree into the
// normalized intermediate tree consumed by per-framework code generators.
// One recursive pass per document computes parent-relative geometry,
// document-unique names, complete layout defaults, styled text runs, and
// inline SVG for icon-like subtrees, while pruning invisible nodes and
// inlining groups.
package normalizer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/variables"
)

// Option configures a conversion.
type Option func(*conversion)

// WithLogger sets the logger used for per-node failure reporting.
func WithLogger(logger *log.Logger) Option {
	return func(c *conversion) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithVariableResolver supplies the resolver used for color-variable
// references when Settings.UseColorVariables is set.
func WithVariableResolver(r variables.Resolver) Option {
	return func(c *conversion) {
		c.vars = r
	}
}

// conversion holds all per-request state: the naming counter, settings,
// logger, and variable resolver. A fresh conversion is created inside every
// Normalize call, so concurrent conversions never share mutable state.
type conversion struct {
	settings Settings
	names    map[string]int
	logger   *log.Logger
	vars     variables.Resolver
}

// Normalize runs the pipeline over the extracted root nodes and returns the
// normalized siblings in order. Per-node failures drop only the failing
// node (logged with its id); an empty input or a fully failed one yields an
// empty result, never an error.
func Normalize(ctx context.Context, nodes []figma.Node, settings Settings, opts ...Option) []*Node {
	conv := &conversion{
		settings: settings.withDefaults(),
		names:    make(map[string]int),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(conv)
	}

	roots := make([]*Node, 0, len(nodes))
	for i := range nodes {
		raw := &nodes[i]
		if !raw.IsVisible() {
			continue
		}
		node, err := conv.processNode(ctx, raw, nil, nil, 0, false)
		if err != nil {
			conv.logger.Error("dropping node", "id", raw.ID, "err", err)
			continue
		}
		// Top-level groups are inlined the same way nested ones are: the
		// group disappears and its children join the root sequence.
		if raw.Type == figma.NodeTypeGroup {
			for _, child := range node.Children {
				child.Parent = nil
				roots = append(roots, child)
			}
			continue
		}
		roots = append(roots, node)
	}
	return roots
}

// childPair keeps a processed child next to its raw source until the
// bottom-up phase has decided which children survive.
type childPair struct {
	raw  *figma.Node
	node *Node
}

// processNode normalizes one node. The top-down phase (identity, geometry,
// layout defaults, paints, text) runs before recursion; the bottom-up phase
// (vector aggregation, group splicing, HUG correction) runs after every
// child has been processed. A panic anywhere inside is converted to an
// error so one malformed node never takes down the document.
func (c *conversion) processNode(ctx context.Context, raw *figma.Node, parent *Node, parentBox *figma.Rectangle, parentCumulative float64, parentFlattened bool) (node *Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			node = nil
			err = fmt.Errorf("panic processing node %s: %v", raw.ID, r)
		}
	}()

	if raw.ID == "" {
		return nil, fmt.Errorf("node has empty id")
	}

	node = &Node{
		ID:           raw.ID,
		Type:         raw.Type,
		Name:         raw.Name,
		UniqueName:   c.uniqueName(raw.Name),
		Parent:       parent,
		StrokeWeight: raw.StrokeWeight,
		CornerRadius: raw.CornerRadius,
	}

	applyGeometry(node, raw, parentBox, parentCumulative)
	applyLayoutDefaults(node, raw)

	node.Fills, err = c.resolvePaints(ctx, raw.Fills, node.Width, node.Height)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", raw.ID, err)
	}
	node.Strokes, err = c.resolvePaints(ctx, raw.Strokes, node.Width, node.Height)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", raw.ID, err)
	}
	node.Effects = make([]figma.Effect, len(raw.Effects))
	copy(node.Effects, raw.Effects)

	if raw.Type == figma.NodeTypeText && raw.Characters != "" {
		node.Characters = raw.Characters
		node.StyledTextSegments = c.synthesizeSegments(raw, node.Fills)
		node.CharacterStyleOverrides = raw.CharacterStyleOverrides
		node.StyleOverrideTable = raw.StyleOverrideTable
	}

	// Flattening eligibility is decided from the raw subtree before
	// recursing so that children of a flattened node know not to flatten
	// again themselves.
	flattenable := false
	if c.settings.EmbedVectors {
		flattenable = c.flattenEligible(raw, parentFlattened)
	}

	pairs := make([]childPair, 0, len(raw.Children))
	for i := range raw.Children {
		rawChild := &raw.Children[i]
		if !rawChild.IsVisible() {
			continue
		}
		child, childErr := c.processNode(ctx, rawChild, node, raw.AbsoluteBoundingBox, node.CumulativeRotation, flattenable)
		if childErr != nil {
			c.logger.Error("dropping node", "id", rawChild.ID, "err", childErr)
			continue
		}
		pairs = append(pairs, childPair{raw: rawChild, node: child})
	}

	consumed := c.resolveVector(node, raw, flattenable, pairs)

	// Assemble the final child list: consumed vector children are now
	// represented inside the parent's SVG, and groups are replaced by
	// their own children (splice, not nest), coordinates untouched.
	children := make([]*Node, 0, len(pairs))
	for i, pair := range pairs {
		if consumed[i] {
			continue
		}
		if pair.raw.Type == figma.NodeTypeGroup {
			for _, grandchild := range pair.node.Children {
				grandchild.Parent = node
				children = append(children, grandchild)
			}
			continue
		}
		children = append(children, pair.node)
	}
	if len(children) > 0 {
		node.Children = children
	}

	finishLayout(node)

	// Groups are a pass-through construct: retype to FRAME and zero the
	// rotation that already flowed into each child's cumulative total. The
	// parent drops this node from its child list in favor of the children.
	if raw.Type == figma.NodeTypeGroup {
		node.Type = figma.NodeTypeFrame
		node.Rotation = 0
	}

	return node, nil
}

// uniqueName assigns a document-unique name: the first occurrence of a base
// name keeps it bare, later ones get a two-digit suffix. The counter is
// shared across the whole conversion, never per-parent.
func (c *conversion) uniqueName(name string) string {
	base := strings.TrimSpace(name)
	if base == "" {
		base = "unnamed"
	}
	n := c.names[base]
	c.names[base]++
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s_%02d", base, n)
}

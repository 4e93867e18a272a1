// Package formatter renders a normalized node tree as a markdown report for
// the CLI: a summary of what the pipeline produced plus an indented tree of
// every surviving node with its derived geometry and layout.
package formatter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/normalizer"
)

// ToMarkdown transforms normalized nodes into a markdown document with a
// conversion summary and the full node hierarchy.
func ToMarkdown(roots []*normalizer.Node, fileName string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Normalized Design Tree - %s\n\n", fileName))
	sb.WriteString("This document describes the normalized intermediate tree produced from the design file.\n\n")

	stats := collectStats(roots)
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- Nodes: %d\n", stats.nodes))
	sb.WriteString(fmt.Sprintf("- Text nodes: %d\n", stats.textNodes))
	sb.WriteString(fmt.Sprintf("- Flattenable icons: %d\n", stats.flattenable))
	sb.WriteString(fmt.Sprintf("- Inline SVGs: %d\n", stats.svgs))
	sb.WriteString("\n")

	sb.WriteString("## Node Tree\n\n")
	sb.WriteString("```\n")
	for _, root := range roots {
		writeNode(&sb, root, 0)
	}
	sb.WriteString("```\n")

	return sb.String()
}

type treeStats struct {
	nodes       int
	textNodes   int
	flattenable int
	svgs        int
}

func collectStats(roots []*normalizer.Node) treeStats {
	var stats treeStats
	var walk func(n *normalizer.Node)
	walk = func(n *normalizer.Node) {
		stats.nodes++
		if len(n.StyledTextSegments) > 0 {
			stats.textNodes++
		}
		if n.CanBeFlattened {
			stats.flattenable++
		}
		if n.SVG != "" {
			stats.svgs++
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return stats
}

func writeNode(sb *strings.Builder, n *normalizer.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(fmt.Sprintf("%s [%s]", n.UniqueName, n.Type))
	if n.HasGeometry {
		sb.WriteString(fmt.Sprintf(" %gx%g @ (%g, %g)", n.Width, n.Height, n.X, n.Y))
	}
	if n.Rotation != 0 || n.CumulativeRotation != 0 {
		sb.WriteString(fmt.Sprintf(" rot=%g° cum=%g°", n.Rotation, n.CumulativeRotation))
	}
	if n.LayoutMode != "NONE" {
		sb.WriteString(fmt.Sprintf(" layout=%s", n.LayoutMode))
	}
	if n.CanBeFlattened {
		sb.WriteString(" icon")
	}
	if n.SVG != "" {
		sb.WriteString(" svg")
	}
	if len(n.StyledTextSegments) > 0 {
		sb.WriteString(fmt.Sprintf(" %q", truncate(n.Characters, 32)))
	}
	sb.WriteString("\n")

	for _, child := range n.Children {
		writeNode(sb, child, depth+1)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

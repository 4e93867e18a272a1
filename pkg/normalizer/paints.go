package normalizer

import (
	"context"
	"fmt"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/imager"
)

// resolvePaints copies the raw paint list (output sequences are always
// present, possibly empty), filling the resolved source slot of IMAGE
// paints and, when color variables are enabled, replacing variable-bound
// colors with their concrete values. A variable resolution failure is a
// per-node failure: the caller drops the node and moves on to its siblings.
func (c *conversion) resolvePaints(ctx context.Context, paints []figma.Paint, width, height float64) ([]figma.Paint, error) {
	out := make([]figma.Paint, 0, len(paints))
	for _, paint := range paints {
		if paint.Type == figma.PaintTypeImage {
			paint.ImageURL = imager.ResolveSource(paint, width, height)
		}
		if c.settings.UseColorVariables && c.vars != nil &&
			paint.BoundVariables != nil && paint.BoundVariables.Color != nil {
			id := paint.BoundVariables.Color.ID
			color, err := c.vars.ResolveColor(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("resolve color variable %s: %w", id, err)
			}
			paint.Color = &color
		}
		out = append(out, paint)
	}
	return out, nil
}

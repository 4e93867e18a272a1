package normalizer

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/variables"
)

func testSettings() Settings {
	return Settings{Framework: "html"}
}

func boolPtr(b bool) *bool { return &b }

func box(x, y, w, h float64) *figma.Rectangle {
	return &figma.Rectangle{X: x, Y: y, Width: w, Height: h}
}

func TestNormalizeNaming(t *testing.T) {
	t.Run("Should keep bare name for first occurrence and suffix later ones", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "RECTANGLE", Name: "Rectangle"},
			{ID: "1:2", Type: "RECTANGLE", Name: "Rectangle"},
			{ID: "1:3", Type: "RECTANGLE", Name: "Rectangle"},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		require.Len(t, out, 3)
		assert.Equal(t, "Rectangle", out[0].UniqueName)
		assert.Equal(t, "Rectangle_01", out[1].UniqueName)
		assert.Equal(t, "Rectangle_02", out[2].UniqueName)
	})

	t.Run("Should share one counter across the whole document", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "row", AbsoluteBoundingBox: box(0, 0, 100, 100), Children: []figma.Node{
				{ID: "1:2", Type: "TEXT", Name: "label"},
			}},
			{ID: "1:3", Type: "TEXT", Name: "label"},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		require.Len(t, out, 2)
		require.Len(t, out[0].Children, 1)
		assert.Equal(t, "label", out[0].Children[0].UniqueName)
		assert.Equal(t, "label_01", out[1].UniqueName)
	})

	t.Run("Should fall back to unnamed for blank names", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "   "},
			{ID: "1:2", Type: "FRAME", Name: ""},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		require.Len(t, out, 2)
		assert.Equal(t, "unnamed", out[0].UniqueName)
		assert.Equal(t, "unnamed_01", out[1].UniqueName)
	})

	t.Run("Should produce pairwise distinct names across a tree", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "a", AbsoluteBoundingBox: box(0, 0, 10, 10), Children: []figma.Node{
				{ID: "1:2", Type: "FRAME", Name: "a"},
				{ID: "1:3", Type: "FRAME", Name: "a"},
			}},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		seen := map[string]bool{}
		var walk func(n *Node)
		walk = func(n *Node) {
			assert.False(t, seen[n.UniqueName], "duplicate name %s", n.UniqueName)
			seen[n.UniqueName] = true
			for _, c := range n.Children {
				walk(c)
			}
		}
		for _, n := range out {
			walk(n)
		}
	})
}

func TestNormalizeGeometry(t *testing.T) {
	t.Run("Should pin roots at the origin regardless of absolute offset", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "root", AbsoluteBoundingBox: box(50, 50, 200, 100)},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		require.Len(t, out, 1)
		assert.Equal(t, 0.0, out[0].X)
		assert.Equal(t, 0.0, out[0].Y)
		assert.Equal(t, 200.0, out[0].Width)
		assert.Equal(t, 100.0, out[0].Height)
		assert.True(t, out[0].HasGeometry)
	})

	t.Run("Should compute parent-relative positions", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "root", AbsoluteBoundingBox: box(50, 50, 200, 100), Children: []figma.Node{
				{ID: "1:2", Type: "RECTANGLE", Name: "child", AbsoluteBoundingBox: box(60, 70, 20, 20)},
			}},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		require.Len(t, out, 1)
		require.Len(t, out[0].Children, 1)
		child := out[0].Children[0]
		assert.Equal(t, 10.0, child.X)
		assert.Equal(t, 20.0, child.Y)
	})

	t.Run("Should leave geometry unset when the bounding box is missing", func(t *testing.T) {
		nodes := []figma.Node{{ID: "1:1", Type: "FRAME", Name: "root"}}
		out := Normalize(context.Background(), nodes, testSettings())
		require.Len(t, out, 1)
		assert.False(t, out[0].HasGeometry)
		assert.Zero(t, out[0].Width)
	})
}

func TestNormalizeRotation(t *testing.T) {
	t.Run("Should convert radians to degrees with inverted sign", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "root", Rotation: math.Pi / 2, AbsoluteBoundingBox: box(0, 0, 10, 10)},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		require.Len(t, out, 1)
		assert.InDelta(t, -90, out[0].Rotation, 1e-9)
		assert.InDelta(t, -90, out[0].CumulativeRotation, 1e-9)
	})

	t.Run("Should compose ancestor rotation into unrotated descendants", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "root", Rotation: math.Pi / 2, AbsoluteBoundingBox: box(0, 0, 100, 100), Children: []figma.Node{
				{ID: "1:2", Type: "RECTANGLE", Name: "child", AbsoluteBoundingBox: box(0, 0, 10, 10)},
			}},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		child := out[0].Children[0]
		assert.Zero(t, child.Rotation)
		assert.InDelta(t, -90, child.CumulativeRotation, 1e-9)
	})

	t.Run("Should add own rotation on top of the ancestor total", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "root", Rotation: math.Pi / 2, AbsoluteBoundingBox: box(0, 0, 100, 100), Children: []figma.Node{
				{ID: "1:2", Type: "RECTANGLE", Name: "child", Rotation: math.Pi / 2, AbsoluteBoundingBox: box(0, 0, 10, 10)},
			}},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		child := out[0].Children[0]
		assert.InDelta(t, -90, child.Rotation, 1e-9)
		assert.InDelta(t, -180, child.CumulativeRotation, 1e-9)
	})
}

func TestNormalizeGroupInlining(t *testing.T) {
	t.Run("Should splice group children into the parent sequence", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "root", AbsoluteBoundingBox: box(0, 0, 100, 100), Children: []figma.Node{
				{ID: "2:1", Type: "GROUP", Name: "group", Rotation: math.Pi, AbsoluteBoundingBox: box(10, 10, 50, 50), Children: []figma.Node{
					{ID: "2:2", Type: "RECTANGLE", Name: "a", AbsoluteBoundingBox: box(10, 10, 10, 10)},
					{ID: "2:3", Type: "RECTANGLE", Name: "b", AbsoluteBoundingBox: box(30, 30, 10, 10)},
				}},
			}},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		require.Len(t, out, 1)
		root := out[0]
		require.Len(t, root.Children, 2)
		assert.Equal(t, "2:2", root.Children[0].ID)
		assert.Equal(t, "2:3", root.Children[1].ID)
		for _, child := range root.Children {
			assert.InDelta(t, -180, child.CumulativeRotation, 1e-9)
			assert.Same(t, root, child.Parent)
		}
		// Coordinates stay as computed before the splice (group-relative).
		assert.Equal(t, 0.0, root.Children[0].X)
		assert.Equal(t, 20.0, root.Children[1].X)
	})

	t.Run("Should inline a top-level group into the root sequence", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "2:1", Type: "GROUP", Name: "group", AbsoluteBoundingBox: box(0, 0, 50, 50), Children: []figma.Node{
				{ID: "2:2", Type: "RECTANGLE", Name: "a", AbsoluteBoundingBox: box(5, 5, 10, 10)},
			}},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		require.Len(t, out, 1)
		assert.Equal(t, "2:2", out[0].ID)
		assert.Nil(t, out[0].Parent)
	})

	t.Run("Should never emit a GROUP-typed node", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "root", AbsoluteBoundingBox: box(0, 0, 100, 100), Children: []figma.Node{
				{ID: "2:1", Type: "GROUP", Name: "outer", AbsoluteBoundingBox: box(0, 0, 50, 50), Children: []figma.Node{
					{ID: "3:1", Type: "GROUP", Name: "inner", AbsoluteBoundingBox: box(0, 0, 20, 20), Children: []figma.Node{
						{ID: "3:2", Type: "RECTANGLE", Name: "leaf", AbsoluteBoundingBox: box(0, 0, 10, 10)},
					}},
				}},
			}},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		var walk func(n *Node)
		walk = func(n *Node) {
			assert.NotEqual(t, "GROUP", n.Type)
			for _, c := range n.Children {
				walk(c)
			}
		}
		for _, n := range out {
			walk(n)
		}
		require.Len(t, out[0].Children, 1)
		assert.Equal(t, "3:2", out[0].Children[0].ID)
	})
}

func TestNormalizeInvisiblePruning(t *testing.T) {
	t.Run("Should drop invisible nodes and their whole subtree", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "root", AbsoluteBoundingBox: box(0, 0, 100, 100), Children: []figma.Node{
				{ID: "1:2", Type: "FRAME", Name: "hidden", Visible: boolPtr(false), Children: []figma.Node{
					{ID: "1:3", Type: "RECTANGLE", Name: "visible-inside-hidden"},
				}},
				{ID: "1:4", Type: "RECTANGLE", Name: "shown"},
			}},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		require.Len(t, out, 1)
		require.Len(t, out[0].Children, 1)
		assert.Equal(t, "1:4", out[0].Children[0].ID)
	})

	t.Run("Should drop an invisible root", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "hidden", Visible: boolPtr(false)},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		assert.Empty(t, out)
	})
}

func TestNormalizeFailureIsolation(t *testing.T) {
	t.Run("Should drop only the failing child and keep sibling order", func(t *testing.T) {
		settings := testSettings()
		settings.UseColorVariables = true
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "root", AbsoluteBoundingBox: box(0, 0, 100, 100), Children: []figma.Node{
				{ID: "1:2", Type: "RECTANGLE", Name: "first"},
				{ID: "1:3", Type: "RECTANGLE", Name: "broken", Fills: []figma.Paint{{
					Type:           "SOLID",
					BoundVariables: &figma.PaintVariables{Color: &figma.VariableAlias{Type: "VARIABLE_ALIAS", ID: "VariableID:404"}},
				}}},
				{ID: "1:4", Type: "RECTANGLE", Name: "last"},
			}},
		}
		out := Normalize(context.Background(), nodes, settings,
			WithVariableResolver(variables.MapResolver{}))
		require.Len(t, out, 1)
		require.Len(t, out[0].Children, 2)
		assert.Equal(t, "1:2", out[0].Children[0].ID)
		assert.Equal(t, "1:4", out[0].Children[1].ID)
	})

	t.Run("Should drop nodes with an empty id", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "FRAME", Name: "root", AbsoluteBoundingBox: box(0, 0, 100, 100), Children: []figma.Node{
				{ID: "", Type: "RECTANGLE", Name: "anon"},
				{ID: "1:2", Type: "RECTANGLE", Name: "ok"},
			}},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		require.Len(t, out, 1)
		require.Len(t, out[0].Children, 1)
		assert.Equal(t, "1:2", out[0].Children[0].ID)
	})
}

func TestNormalizeResolvesVariables(t *testing.T) {
	t.Run("Should replace variable-bound colors with concrete values", func(t *testing.T) {
		settings := testSettings()
		settings.UseColorVariables = true
		red := figma.Color{R: 1, A: 1}
		resolver := variables.MapResolver{
			"VariableID:1": {ID: "VariableID:1", ResolvedType: "COLOR", ResolvedValue: &red},
		}
		nodes := []figma.Node{
			{ID: "1:1", Type: "RECTANGLE", Name: "r", Fills: []figma.Paint{{
				Type:           "SOLID",
				BoundVariables: &figma.PaintVariables{Color: &figma.VariableAlias{Type: "VARIABLE_ALIAS", ID: "VariableID:1"}},
			}}},
		}
		out := Normalize(context.Background(), nodes, settings, WithVariableResolver(resolver))
		require.Len(t, out, 1)
		require.Len(t, out[0].Fills, 1)
		require.NotNil(t, out[0].Fills[0].Color)
		assert.Equal(t, red, *out[0].Fills[0].Color)
	})

	t.Run("Should leave bound colors alone when variables are disabled", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "RECTANGLE", Name: "r", Fills: []figma.Paint{{
				Type:           "SOLID",
				BoundVariables: &figma.PaintVariables{Color: &figma.VariableAlias{Type: "VARIABLE_ALIAS", ID: "VariableID:1"}},
			}}},
		}
		out := Normalize(context.Background(), nodes, testSettings(),
			WithVariableResolver(variables.MapResolver{}))
		require.Len(t, out, 1)
		assert.Nil(t, out[0].Fills[0].Color)
	})
}

func TestNormalizeSequencesAlwaysPresent(t *testing.T) {
	nodes := []figma.Node{{ID: "1:1", Type: "FRAME", Name: "bare"}}
	out := Normalize(context.Background(), nodes, testSettings())
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].Fills)
	assert.NotNil(t, out[0].Strokes)
	assert.NotNil(t, out[0].Effects)
}

func TestNormalizeImageFills(t *testing.T) {
	t.Run("Should synthesize a placeholder for unresolved image fills", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "RECTANGLE", Name: "photo", AbsoluteBoundingBox: box(0, 0, 99.6, 50.2),
				Fills: []figma.Paint{{Type: "IMAGE", ImageRef: "ref1"}}},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		require.Len(t, out, 1)
		assert.Equal(t, "https://placehold.co/100x50", out[0].Fills[0].ImageURL)
	})

	t.Run("Should keep a pre-resolved source", func(t *testing.T) {
		nodes := []figma.Node{
			{ID: "1:1", Type: "RECTANGLE", Name: "photo",
				Fills: []figma.Paint{{Type: "IMAGE", ImageURL: "https://cdn.example.com/a.png"}}},
		}
		out := Normalize(context.Background(), nodes, testSettings())
		assert.Equal(t, "https://cdn.example.com/a.png", out[0].Fills[0].ImageURL)
	})
}

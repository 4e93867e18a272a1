// Package variables resolves design-variable color references encountered
// during normalization. Resolution is pluggable: a Resolver may be backed by
// a pre-fetched variable table or by the variables API, and any Resolver can
// be wrapped in an LRU cache so that repeated references across a document
// hit the network at most once.
package variables

import (
	"context"
	"fmt"
	"maps"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// Resolver resolves a variable id to its concrete color value.
type Resolver interface {
	ResolveColor(ctx context.Context, variableID string) (figma.Color, error)
}

// MapResolver resolves from an in-memory variable table, typically the
// result of figma.Client.GetLocalVariables.
type MapResolver map[string]figma.Variable

// ResolveColor implements Resolver.
func (m MapResolver) ResolveColor(_ context.Context, variableID string) (figma.Color, error) {
	v, ok := m[variableID]
	if !ok {
		return figma.Color{}, fmt.Errorf("variable %s not found", variableID)
	}
	if v.ResolvedType != "" && v.ResolvedType != "COLOR" {
		return figma.Color{}, fmt.Errorf("variable %s is %s, not COLOR", variableID, v.ResolvedType)
	}
	if v.ResolvedValue != nil {
		return *v.ResolvedValue, nil
	}
	// No mode was pre-resolved upstream; take the first mode in key order
	// so repeated resolutions agree.
	if modes := slices.Sorted(maps.Keys(v.ValuesByMode)); len(modes) > 0 {
		return v.ValuesByMode[modes[0]], nil
	}
	return figma.Color{}, fmt.Errorf("variable %s has no color value", variableID)
}

// Cached wraps a Resolver with an LRU cache keyed by variable id.
type Cached struct {
	inner Resolver
	cache *lru.Cache[string, figma.Color]
}

// NewCached creates a caching resolver holding up to size entries.
func NewCached(inner Resolver, size int) (*Cached, error) {
	cache, err := lru.New[string, figma.Color](size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: inner, cache: cache}, nil
}

// ResolveColor implements Resolver. Errors are not cached so a transient
// failure can succeed on a later node.
func (c *Cached) ResolveColor(ctx context.Context, variableID string) (figma.Color, error) {
	if color, ok := c.cache.Get(variableID); ok {
		return color, nil
	}
	color, err := c.inner.ResolveColor(ctx, variableID)
	if err != nil {
		return figma.Color{}, err
	}
	c.cache.Add(variableID, color)
	return color, nil
}

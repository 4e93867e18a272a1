package figma

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// fileKeyPattern matches URLs like:
//
//	https://www.figma.com/file/ABC123/Design-Name
//	https://www.figma.com/design/ABC123/Design-Name
//
// Anchored to ensure the entire URL matches the expected pattern.
var fileKeyPattern = regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$)`)

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns. Returns an error if the
// URL doesn't match the expected figma.com pattern.
func ExtractFileKey(figmaURL string) (string, error) {
	matches := fileKeyPattern.FindStringSubmatch(figmaURL)
	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}
	return matches[1], nil
}

// ExtractNodeIDs extracts node ids from a Figma URL. It understands the
// node-id query parameter (both 123:456 and the URL-encoded 123-456 form),
// hash fragments, and /nodes/ path segments. Duplicates are removed while
// preserving order; a URL without node ids yields an empty slice.
func ExtractNodeIDs(figmaURL string) ([]string, error) {
	u, err := url.Parse(figmaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	var raw string
	switch {
	case u.Query().Get("node-id") != "":
		raw = u.Query().Get("node-id")
	case u.Fragment != "":
		raw = u.Fragment
	default:
		if idx := strings.Index(u.Path, "/nodes/"); idx >= 0 {
			raw = u.Path[idx+len("/nodes/"):]
		}
	}

	if raw == "" {
		return []string{}, nil
	}

	ids := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		// The URL-encoded form replaces the colon separator with a dash.
		ids = append(ids, strings.Replace(id, "-", ":", 1))
	}

	return deduplicateNodeIDs(ids), nil
}

// deduplicateNodeIDs removes duplicate ids while preserving first-seen order.
func deduplicateNodeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

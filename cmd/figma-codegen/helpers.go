package main

import (
	"encoding/json"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/normalizer"
)

// splitNodeIDs parses a comma-separated node id list from the CLI.
func splitNodeIDs(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// marshalTree serializes the normalized roots as indented JSON.
func marshalTree(roots []*normalizer.Node) ([]byte, error) {
	return json.MarshalIndent(roots, "", "  ")
}

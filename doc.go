// Package figmacodegen converts Figma design exports into a normalized
// intermediate tree ready for per-framework code generation. The pipeline
// extracts the root node list from any of the known export envelope shapes,
// then runs a single recursive pass that computes parent-relative geometry,
// assigns document-unique names, fills framework-required layout defaults,
// synthesizes inline SVG for icon-like subtrees, and rewrites the structure
// (group inlining, invisible-node pruning, color-variable resolution).
//
// The CLI lives in cmd/figma-codegen; this root package exposes the same
// pipeline as a Go API so that callers can embed conversion in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmacodegen:
//
//	import "github.com/hellenic-development/figma-codegen" // package figmacodegen
//
// # Quick start
//
//	result, err := figmacodegen.Run(ctx, figmacodegen.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/My-Design",
//	    Settings: normalizer.Settings{
//	        Framework:    "html",
//	        EmbedVectors: true,
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("tree.md", []byte(result.Markdown), 0644)
//
// # Offline payloads
//
// Set [Options.Payload] to a raw export payload to skip fetching entirely.
// [figma.ExtractNodes] understands the nested data.document envelope, the
// direct document mapping, a bare root-node list, and a single node object,
// failing softly to an empty list for anything else.
//
// # Code generation
//
// Per-framework generators are external collaborators. Supply one as
// [Options.Generate]; it receives the normalized tree and the settings and
// returns source text. A nil Generator skips the step.
//
// # Logging
//
// Pass a charmbracelet log.Logger in [Options.Logger] to receive progress
// and per-node failure messages. A nil Logger silences all output.
package figmacodegen

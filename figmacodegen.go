package figmacodegen

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/formatter"
	"github.com/hellenic-development/figma-codegen/pkg/normalizer"
	"github.com/hellenic-development/figma-codegen/pkg/variables"
)

// variableCacheSize bounds the per-run variable resolution cache.
const variableCacheSize = 1024

// Generator produces framework source text from a normalized tree. The
// per-framework generators live outside this module; the pipeline treats
// them as an opaque function.
type Generator func(nodes []*normalizer.Node, settings normalizer.Settings) (string, error)

// Options configures the conversion.
type Options struct {
	AccessToken string
	FileURL     string   // Figma file URL
	NodeIDs     []string // empty = node ids from the URL, or the entire file

	// Payload short-circuits fetching: a raw export payload in any of the
	// supported envelope shapes. When set, AccessToken and FileURL are
	// ignored.
	Payload []byte

	Settings normalizer.Settings

	// VariableResolver overrides the default variables lookup. Required for
	// Payload input when Settings.UseColorVariables is set, since there is
	// no file to fetch variables from.
	VariableResolver variables.Resolver

	// Generate is the downstream code generator. Nil skips generation.
	Generate Generator

	Logger *log.Logger // nil = no logging
}

// Result contains the conversion output.
type Result struct {
	Nodes    []*normalizer.Node
	FileName string // design file name, empty for Payload input
	Markdown string // formatted tree report
	Source   string // generator output, empty when no Generator was given
}

// Run executes the conversion pipeline: fetch or accept a raw payload,
// extract the root node list, normalize it, and optionally invoke the
// downstream generator.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	var (
		rawNodes []figma.Node
		fileName string
		resolver = opts.VariableResolver
	)

	if len(opts.Payload) > 0 {
		logger.Info("extracting nodes from payload", "bytes", len(opts.Payload))
		rawNodes = figma.ExtractNodes(opts.Payload)
	} else {
		fetched, name, fetchedResolver, err := fetch(opts, logger)
		if err != nil {
			return nil, err
		}
		rawNodes = fetched
		fileName = name
		if resolver == nil {
			resolver = fetchedResolver
		}
	}

	if len(rawNodes) == 0 {
		return nil, fmt.Errorf("no nodes found in input")
	}
	logger.Info("extracted nodes", "count", len(rawNodes))

	normOpts := []normalizer.Option{normalizer.WithLogger(logger)}
	if resolver != nil {
		normOpts = append(normOpts, normalizer.WithVariableResolver(resolver))
	}

	nodes := normalizer.Normalize(ctx, rawNodes, opts.Settings, normOpts...)
	if len(nodes) == 0 {
		return nil, fmt.Errorf("no nodes survived normalization")
	}
	logger.Info("normalized tree", "roots", len(nodes))

	result := &Result{
		Nodes:    nodes,
		FileName: fileName,
		Markdown: formatter.ToMarkdown(nodes, fileName),
	}

	if opts.Generate != nil {
		logger.Info("generating source", "framework", opts.Settings.Framework)
		source, err := opts.Generate(nodes, opts.Settings)
		if err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
		result.Source = source
	}

	return result, nil
}

// fetch retrieves the raw nodes (and, when color variables are enabled, a
// cached variable resolver) from the Figma API.
func fetch(opts Options, logger *log.Logger) ([]figma.Node, string, variables.Resolver, error) {
	fileKey, err := figma.ExtractFileKey(opts.FileURL)
	if err != nil {
		return nil, "", nil, fmt.Errorf("extract file key: %w", err)
	}
	logger.Info("resolved file key", "key", fileKey)

	targetIDs := opts.NodeIDs
	if len(targetIDs) == 0 {
		targetIDs, err = figma.ExtractNodeIDs(opts.FileURL)
		if err != nil {
			return nil, "", nil, fmt.Errorf("extract node IDs from URL: %w", err)
		}
	}

	client := figma.NewClient(opts.AccessToken)

	var (
		rawNodes []figma.Node
		fileName string
	)
	if len(targetIDs) > 0 {
		logger.Info("fetching nodes", "count", len(targetIDs))
		payload, err := client.GetFileNodesRaw(fileKey, targetIDs)
		if err != nil {
			return nil, "", nil, fmt.Errorf("fetch nodes: %w", err)
		}
		rawNodes = figma.ExtractNodes(payload)
	} else {
		logger.Info("fetching entire file")
		fileResp, err := client.GetFile(fileKey)
		if err != nil {
			return nil, "", nil, fmt.Errorf("fetch file: %w", err)
		}
		fileName = fileResp.Name
		rawNodes = []figma.Node{fileResp.Document}
	}

	var resolver variables.Resolver
	if opts.Settings.UseColorVariables {
		logger.Info("fetching local variables")
		vars, err := client.GetLocalVariables(fileKey)
		if err != nil {
			return nil, "", nil, fmt.Errorf("fetch variables: %w", err)
		}
		resolver, err = variables.NewCached(variables.MapResolver(vars), variableCacheSize)
		if err != nil {
			return nil, "", nil, fmt.Errorf("variable cache: %w", err)
		}
	}

	return rawNodes, fileName, resolver, nil
}

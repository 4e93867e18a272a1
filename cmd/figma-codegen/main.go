package main

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	figmacodegen "github.com/hellenic-development/figma-codegen"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/normalizer"
)

var (
	figmaURL       string
	accessToken    string
	inputFile      string
	outputFile     string
	jsonFile       string
	nodeIDs        string
	framework      string
	embedVectors   bool
	colorVariables bool
	verbose        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-codegen",
		Short: "Normalize Figma design trees for code generation",
		Long:  "A tool that converts a Figma file (or an exported payload) into the normalized intermediate tree consumed by per-framework code generators",
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&figmaURL, "url", "u", "", "Figma file URL")
	rootCmd.Flags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token (or FIGMA_TOKEN env var)")
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read an exported JSON payload instead of fetching")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "NORMALIZED_TREE.md", "Output markdown report file")
	rootCmd.Flags().StringVar(&jsonFile, "json", "", "Also write the normalized tree as JSON to this file")
	rootCmd.Flags().StringVarP(&nodeIDs, "node-ids", "n", "", "Comma-separated node IDs to convert (optional)")
	rootCmd.Flags().StringVarP(&framework, "framework", "f", "html", "Target framework: html, tailwind, flutter, swiftui, compose")
	rootCmd.Flags().BoolVar(&embedVectors, "embed-vectors", false, "Synthesize inline SVG for icon-like nodes")
	rootCmd.Flags().BoolVar(&colorVariables, "color-variables", false, "Resolve color-variable references")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline progress")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-codegen version %s\n", figma.Version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🧩 Figma Code Generator")
	cyan.Println("=======================")
	cyan.Println()

	// .env makes FIGMA_TOKEN available without flags; absence is fine.
	_ = godotenv.Load()
	if accessToken == "" {
		accessToken = os.Getenv("FIGMA_TOKEN")
	}

	if inputFile == "" && figmaURL == "" {
		red.Println("Error: either --url or --input is required")
		return fmt.Errorf("missing input")
	}
	if inputFile == "" && accessToken == "" {
		red.Println("Error: --token or FIGMA_TOKEN is required when fetching by URL")
		return fmt.Errorf("missing token")
	}

	opts := figmacodegen.Options{
		AccessToken: accessToken,
		FileURL:     figmaURL,
		Settings: normalizer.Settings{
			Framework:         framework,
			EmbedVectors:      embedVectors,
			UseColorVariables: colorVariables,
		},
	}

	if nodeIDs != "" {
		opts.NodeIDs = splitNodeIDs(nodeIDs)
	}
	if inputFile != "" {
		payload, err := os.ReadFile(inputFile)
		if err != nil {
			red.Printf("Error: %v\n", err)
			return err
		}
		opts.Payload = payload
	}
	if verbose {
		opts.Logger = charmlog.New(os.Stderr)
	}

	result, err := figmacodegen.Run(context.Background(), opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		return err
	}

	// Display conversion stats.
	cyan.Println("📊 Conversion Summary:")
	fmt.Printf("  • Root nodes: %d\n", len(result.Nodes))
	total, icons := countNodes(result.Nodes)
	fmt.Printf("  • Total nodes: %d\n", total)
	fmt.Printf("  • Flattenable icons: %d\n", icons)
	if result.FileName != "" {
		fmt.Printf("  • File: %s\n", result.FileName)
	}

	if err := os.WriteFile(outputFile, []byte(result.Markdown), 0644); err != nil {
		red.Printf("Error writing %s: %v\n", outputFile, err)
		return err
	}
	green.Printf("\n✅ Report written to %s\n", outputFile)

	if jsonFile != "" {
		data, err := marshalTree(result.Nodes)
		if err != nil {
			red.Printf("Error: %v\n", err)
			return err
		}
		if err := os.WriteFile(jsonFile, data, 0644); err != nil {
			red.Printf("Error writing %s: %v\n", jsonFile, err)
			return err
		}
		green.Printf("✅ Tree written to %s\n", jsonFile)
	}

	return nil
}

func countNodes(roots []*normalizer.Node) (total, icons int) {
	var walk func(n *normalizer.Node)
	walk = func(n *normalizer.Node) {
		total++
		if n.CanBeFlattened {
			icons++
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return total, icons
}

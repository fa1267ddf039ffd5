// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about a field extractor
type CheckInfo struct {
	Name                string             // Name of the extractor (e.g., "IDENTITY_NUMBER")
	ShortDescription    string             // Short description for the extractors list
	DetailedDescription string             // Detailed description of what the extractor does
	Patterns            []string           // Patterns the extractor looks for
	SupportedFormats    []string           // Accepted value formats and ranges
	ConfidenceFactors   []ConfidenceFactor // Factors affecting confidence
	ConfigurationInfo   string             // Information about how to configure the extractor
	Examples            []string           // Usage examples
}

// ConfidenceFactor represents a factor that affects confidence scoring
type ConfidenceFactor struct {
	Name        string  // Name of the factor
	Description string  // Description of the factor
	Weight      float64 // Confidence assigned when this factor applies
}

// Provider defines the interface for help content providers
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	noColor   bool
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		noColor:   noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"positive": color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"warning":  color.New(color.FgYellow),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("CNIC Scan - Identity Card Field Extraction Tool")
	fmt.Println("===============================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  cnic-scan --file <path-to-ocr-text> [options]")
	fmt.Println("  cnic-scan --server [--port <port>]  # Web server mode")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tPath to the OCR text input, one line per text region (use - for stdin)")
	fmt.Fprintln(w, "\t\t\tPDF input is supported: embedded text is extracted per line")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, csv, yaml (default: text)")
	fmt.Fprintln(w, "  --raw\t\tShow normalized and classified lines instead of the extracted record")
	fmt.Fprintln(w, "  --verbose\t\tDisplay per-field confidence and source details")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging of normalization, matching, and assembly")
	fmt.Fprintln(w, "  --output\t<path>\tPath to output file (if not specified, output to stdout)")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --server\t\tStart web server mode instead of CLI extraction")
	fmt.Fprintln(w, "  --port\t<port>\tPort for web server (default: 8080, only used with --server)")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	fmt.Fprintln(w, "  --help extractors\t\tList all field extractors")
	fmt.Fprintln(w, "  --help <extractor>\t\tShow detailed help for a specific extractor")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic Usage:")
	h.colors["example"].Println("    cnic-scan --file card-ocr.txt")
	h.colors["example"].Println("    cnic-scan --file card-ocr.txt --format json")
	h.colors["example"].Println("    cat card-ocr.txt | cnic-scan --file -")
	fmt.Println("  Diagnostics:")
	h.colors["example"].Println("    cnic-scan --file card-ocr.txt --raw --debug")

	fmt.Println()
	h.colors["header"].Println("Web Server Examples:")
	h.colors["example"].Println("  cnic-scan --server  # Start web server on default port")
	h.colors["example"].Println("  cnic-scan --server --port 9000  # Start web server on custom port")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Project config: cnic-scan.yaml or .cnic-scan.yaml (in current directory)")
	fmt.Println("  User config: same names in the home directory")
}

// ShowChecksHelp displays information about all field extractors
func (h *System) ShowChecksHelp() {
	h.colors["title"].Println("Field Extractors in CNIC Scan")
	fmt.Println("=============================")
	fmt.Println()
	fmt.Println("The following extractors resolve the card fields:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  EXTRACTOR\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  ---------\t-----------")

	var names []string
	for _, provider := range h.providers {
		names = append(names, provider.GetCheckInfo().Name)
	}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if names[i] > names[j] {
				names[i], names[j] = names[j], names[i]
			}
		}
	}

	for _, name := range names {
		info := h.providers[strings.ToLower(name)].GetCheckInfo()
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\n", info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a specific extractor, use:")
	h.colors["example"].Println("  cnic-scan --help <extractor>")
}

// ShowCheckHelp displays detailed help for a specific extractor
func (h *System) ShowCheckHelp(checkName string) bool {
	provider, exists := h.providers[strings.ToLower(checkName)]
	if !exists {
		h.colors["negative"].Printf("Error: Extractor '%s' not found.\n", checkName)
		fmt.Println("Use 'cnic-scan --help extractors' to see a list of available extractors.")
		return false
	}

	info := provider.GetCheckInfo()

	h.colors["title"].Printf("%s Extractor\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)+10))
	fmt.Println()
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	if len(info.Patterns) > 0 {
		h.colors["header"].Println("PATTERNS DETECTED:")
		for _, pattern := range info.Patterns {
			fmt.Print("  - ")
			h.colors["item"].Println(pattern)
		}
		fmt.Println()
	}

	if len(info.SupportedFormats) > 0 {
		h.colors["header"].Println("ACCEPTED VALUES:")
		for _, format := range info.SupportedFormats {
			fmt.Print("  - ")
			h.colors["item"].Println(format)
		}
		fmt.Println()
	}

	if len(info.ConfidenceFactors) > 0 {
		h.colors["header"].Println("CONFIDENCE SCORING:")
		for _, factor := range info.ConfidenceFactors {
			fmt.Print("  - ")
			h.colors["item"].Printf("%s ", factor.Name)
			fmt.Printf("(%.0f%%): %s\n", factor.Weight, factor.Description)
		}
		fmt.Println()
	}

	if info.ConfigurationInfo != "" {
		h.colors["header"].Println("CONFIGURATION:")
		fmt.Println(info.ConfigurationInfo)
		fmt.Println()
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Print("  ")
			h.colors["example"].Println(example)
		}
	}

	return true
}

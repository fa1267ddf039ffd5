// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"cnic-scan/internal/config"
	"cnic-scan/internal/core"
	"cnic-scan/internal/extractors/country"
	"cnic-scan/internal/extractors/date"
	"cnic-scan/internal/extractors/gender"
	"cnic-scan/internal/extractors/identity"
	"cnic-scan/internal/extractors/name"
	"cnic-scan/internal/formatters"
	"cnic-scan/internal/help"
	"cnic-scan/internal/observability"
	"cnic-scan/internal/preprocessors"
	"cnic-scan/internal/version"
	"cnic-scan/internal/web"

	// Import formatters to register them
	_ "cnic-scan/internal/formatters/csv"
	_ "cnic-scan/internal/formatters/json"
	_ "cnic-scan/internal/formatters/text"
	_ "cnic-scan/internal/formatters/yaml"
)

// configFlags holds command line flag values
type configFlags struct {
	outputFormat string
	raw          bool
	verbose      bool
	debug        bool
	noColor      bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format  string
	raw     bool
	verbose bool
	debug   bool
	noColor bool
}

// resolveConfiguration resolves final values from config file defaults and
// command line flags, flags winning.
func resolveConfiguration(cfg *config.Config, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	final.format = "text"
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	if cfg != nil {
		final.raw = cfg.Defaults.Raw
	}
	if isFlagSet("raw") {
		final.raw = flags.raw
	}

	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	return final
}

// isFlagSet reports whether a flag was given on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// buildHelpSystem registers every extractor's help provider
func buildHelpSystem(noColor bool) *help.System {
	helpSystem := help.NewSystem(noColor)
	helpSystem.RegisterProvider(name.NewExtractor())
	helpSystem.RegisterProvider(gender.NewExtractor())
	helpSystem.RegisterProvider(country.NewExtractor(nil))
	helpSystem.RegisterProvider(identity.NewExtractor())
	helpSystem.RegisterProvider(date.NewExtractor())
	return helpSystem
}

// readInputLines resolves the --file argument to engine input lines.
// "-" reads stdin; everything else goes through the preprocessor chain.
func readInputLines(inputFile string, observer *observability.StandardObserver) ([]string, error) {
	if inputFile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return preprocessors.SplitLines(string(data)), nil
	}

	manager := preprocessors.NewDefaultManager()
	if observer != nil {
		manager.SetObserver(observer)
	}
	processed, err := manager.ProcessFile(inputFile)
	if err != nil {
		return nil, err
	}
	return processed.Lines, nil
}

// writeOutput writes rendered output to the output file or stdout
func writeOutput(content, outputFile string) error {
	if outputFile == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(outputFile, []byte(content), 0600); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	return nil
}

func main() {
	inputFile := flag.String("file", "", "Path to the OCR text input, one line per region (use - for stdin)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	outputFormat := flag.String("format", "", "Output format: text, json, csv, yaml (default: text)")
	raw := flag.Bool("raw", false, "Show normalized and classified lines instead of the extracted record")
	verbose := flag.Bool("verbose", false, "Display per-line classification detail in raw output")
	debug := flag.Bool("debug", false, "Enable debug logging of normalization, matching, and assembly")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")
	serverMode := flag.Bool("server", false, "Start web server mode instead of CLI extraction")
	serverPort := flag.String("port", "", "Port for web server (default: 8080)")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg := config.LoadConfigOrDefault(*configFile)
	finalConfig := resolveConfiguration(cfg, &configFlags{
		outputFormat: *outputFormat,
		raw:          *raw,
		verbose:      *verbose,
		debug:        *debug,
		noColor:      *noColor,
	})

	// Auto-detect non-interactive environment
	if !isTerminal(os.Stdout) || os.Getenv("CI") != "" {
		finalConfig.noColor = true
	}

	if *showHelp {
		helpSystem := buildHelpSystem(finalConfig.noColor)
		args := flag.Args()
		switch {
		case len(args) == 0:
			helpSystem.ShowGeneralHelp()
		case strings.EqualFold(args[0], "extractors"):
			helpSystem.ShowChecksHelp()
		default:
			if !helpSystem.ShowCheckHelp(args[0]) {
				os.Exit(1)
			}
		}
		return
	}

	// Debug observer drives both step logs and operation JSON
	var observer *observability.StandardObserver
	if finalConfig.debug {
		debugObserver := observability.NewDebugObserver(os.Stderr)
		observer = debugObserver.StandardObserver
		observer.DebugObserver = debugObserver
		debugObserver.LogDetail("main", fmt.Sprintf("Command line arguments: %v", os.Args))
	}

	if *serverMode {
		port := *serverPort
		if port == "" {
			port = cfg.Server.Port
		}
		server := web.NewWebServer(port, cfg)
		if observer != nil {
			server.SetObserver(observer)
		}
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: --file is required (use --help for usage)\n")
		os.Exit(1)
	}

	lines, err := readInputLines(*inputFile, observer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine := core.NewEngine(cfg)
	if observer != nil {
		engine.SetObserver(observer)
	}

	options := formatters.FormatterOptions{
		Verbose: finalConfig.verbose,
		NoColor: finalConfig.noColor,
	}

	var content string
	success := true
	if finalConfig.raw {
		content, err = formatters.Export(finalConfig.format, nil, engine.ExtractRaw(lines), options)
	} else {
		result := engine.Extract(lines)
		success = result.Success
		content, err = formatters.Export(finalConfig.format, result, nil, options)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutput(content, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Incomplete extraction is reported in the output and the exit code
	if !success {
		os.Exit(2)
	}
}

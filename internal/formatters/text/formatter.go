// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"cnic-scan/internal/detector"
	"cnic-scan/internal/formatters"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"faint":  color.New(color.Faint),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result *detector.ExtractionResult, raw []detector.ClassifiedLine, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	if result != nil {
		return f.formatResult(result), nil
	}
	return f.formatRaw(raw, options), nil
}

func (f *Formatter) formatResult(result *detector.ExtractionResult) string {
	var builder strings.Builder

	builder.WriteString(f.colors["white"].Sprint("CNIC Extraction Result"))
	builder.WriteString("\n======================\n\n")

	if !result.Success {
		builder.WriteString("Status: ")
		builder.WriteString(f.colors["red"].Sprint("FAILED"))
		builder.WriteString("\n\n")
		builder.WriteString(f.colors["yellow"].Sprint(result.Message))
		builder.WriteString("\n\nMissing or invalid fields:\n")
		for _, field := range result.MissingOrInvalid {
			builder.WriteString("  - ")
			builder.WriteString(f.colors["red"].Sprint(field))
			builder.WriteString("\n")
		}
		return builder.String()
	}

	builder.WriteString("Status: ")
	builder.WriteString(f.colors["green"].Sprint("SUCCESS"))
	builder.WriteString("\n\n")

	for _, label := range detector.AllLabels {
		builder.WriteString("  ")
		builder.WriteString(f.colors["cyan"].Sprintf("%-16s", label.DisplayName()))
		builder.WriteString(result.Data.Field(label))
		builder.WriteString("\n")
	}
	return builder.String()
}

// formatRaw renders the classification dump, one line of output per input
// line, in input order.
func (f *Formatter) formatRaw(raw []detector.ClassifiedLine, options formatters.FormatterOptions) string {
	var builder strings.Builder

	builder.WriteString(f.colors["white"].Sprint("Classified Lines"))
	builder.WriteString("\n================\n\n")

	for _, cl := range raw {
		builder.WriteString(fmt.Sprintf("  [%3d] ", cl.Line.Raw.Index))
		if cl.Line.Noise {
			builder.WriteString(f.colors["faint"].Sprintf("%-16s %s", cl.Shape.String(), cl.Line.Display))
			builder.WriteString("\n")
			continue
		}
		builder.WriteString(f.colors["cyan"].Sprintf("%-16s", cl.Shape.String()))
		builder.WriteString(cl.Line.Display)
		builder.WriteString("\n")

		if options.Verbose && len(cl.Labels) > 0 {
			for _, m := range cl.Labels {
				builder.WriteString("        ")
				builder.WriteString(f.colors["yellow"].Sprintf("label=%s span=%d:%d distance=%d",
					m.Label.FieldName(), m.Start, m.End, m.Distance))
				builder.WriteString("\n")
			}
		}
	}
	return builder.String()
}

func init() {
	formatters.Register(NewFormatter())
}

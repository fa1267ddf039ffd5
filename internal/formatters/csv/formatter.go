// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"strings"

	"cnic-scan/internal/detector"
	"cnic-scan/internal/formatters"
	"cnic-scan/internal/formatters/shared"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(result *detector.ExtractionResult, raw []detector.ClassifiedLine, options formatters.FormatterOptions) (string, error) {
	if result != nil {
		return f.formatResult(result), nil
	}
	return f.formatRaw(raw), nil
}

// formatResult emits one row per card field so both complete and failed
// extractions share a shape spreadsheets can diff.
func (f *Formatter) formatResult(result *detector.ExtractionResult) string {
	missing := make(map[string]bool, len(result.MissingOrInvalid))
	for _, field := range result.MissingOrInvalid {
		missing[field] = true
	}

	csvRows := []string{"Field,Value,Status"}
	for _, label := range detector.AllLabels {
		value := ""
		status := "ok"
		if result.Data != nil {
			value = result.Data.Field(label)
		}
		if missing[label.FieldName()] {
			status = "missing"
		}
		csvRows = append(csvRows, strings.Join([]string{
			f.escapeCSVField(label.FieldName()),
			f.escapeCSVField(value),
			status,
		}, ","))
	}
	return strings.Join(csvRows, "\n")
}

func (f *Formatter) formatRaw(raw []detector.ClassifiedLine) string {
	csvRows := []string{"Index,Shape,Labels,Noise,Text"}
	for _, view := range shared.ConvertRawLines(raw) {
		csvRows = append(csvRows, strings.Join([]string{
			fmt.Sprintf("%d", view.Index),
			view.Shape,
			f.escapeCSVField(strings.Join(view.Labels, ";")),
			fmt.Sprintf("%t", view.Noise),
			f.escapeCSVField(view.Display),
		}, ","))
	}
	return strings.Join(csvRows, "\n")
}

// escapeCSVField quotes a field when it contains separators or quotes
func (f *Formatter) escapeCSVField(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
	}
	return field
}

func init() {
	formatters.Register(NewFormatter())
}

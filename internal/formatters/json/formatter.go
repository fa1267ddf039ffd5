// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"cnic-scan/internal/detector"
	"cnic-scan/internal/formatters"
	"cnic-scan/internal/formatters/shared"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) Format(result *detector.ExtractionResult, raw []detector.ClassifiedLine, options formatters.FormatterOptions) (string, error) {
	var payload interface{}
	if result != nil {
		payload = result
	} else {
		payload = shared.ConvertRawLines(raw)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error generating JSON output: %w", err)
	}
	return string(data), nil
}

func init() {
	formatters.Register(NewFormatter())
}

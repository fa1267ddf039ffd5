// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"cnic-scan/internal/detector"
	"cnic-scan/internal/formatters"
	"cnic-scan/internal/formatters/shared"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML output for configuration pipelines and human review"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) Format(result *detector.ExtractionResult, raw []detector.ClassifiedLine, options formatters.FormatterOptions) (string, error) {
	var payload interface{}
	if result != nil {
		payload = result
	} else {
		payload = shared.ConvertRawLines(raw)
	}

	data, err := yaml.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error generating YAML output: %w", err)
	}
	return string(data), nil
}

func init() {
	formatters.Register(NewFormatter())
}

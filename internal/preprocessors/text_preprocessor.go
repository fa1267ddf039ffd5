// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cnic-scan/internal/observability"
)

// TextPreprocessor handles plain text OCR dumps, one text region per line.
// It is the catch-all preprocessor and must be registered last.
type TextPreprocessor struct {
	observer *observability.StandardObserver
}

// NewTextPreprocessor creates a new plain text preprocessor
func NewTextPreprocessor() *TextPreprocessor {
	return &TextPreprocessor{}
}

// GetName returns the name of this preprocessor
func (p *TextPreprocessor) GetName() string {
	return "text"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (p *TextPreprocessor) GetSupportedExtensions() []string {
	return []string{".txt", ".text", ".ocr", ".log"}
}

// SetObserver sets the observability component
func (p *TextPreprocessor) SetObserver(observer *observability.StandardObserver) {
	p.observer = observer
}

// CanProcess accepts any path; binary content is rejected at Process time.
func (p *TextPreprocessor) CanProcess(filePath string) bool {
	return true
}

// Process reads the file and splits it into lines. Carriage returns are
// stripped so Windows-produced OCR dumps parse the same as Unix ones.
func (p *TextPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	var finishTiming func(bool, map[string]interface{})
	if p.observer != nil {
		finishTiming = p.observer.StartTiming("text_preprocessor", "process")
	}

	content := &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Format:        "text",
		ProcessorType: p.GetName(),
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		content.Error = fmt.Errorf("error reading file: %w", err)
		if finishTiming != nil {
			finishTiming(false, map[string]interface{}{"error": err.Error()})
		}
		return content, content.Error
	}

	if bytes.ContainsRune(data, 0) {
		content.Error = fmt.Errorf("%s is not a text file", content.Filename)
		if finishTiming != nil {
			finishTiming(false, map[string]interface{}{"error": "binary content"})
		}
		return content, content.Error
	}

	content.Lines = SplitLines(string(data))
	content.CharCount = len(data)
	content.WordCount = len(strings.Fields(string(data)))
	content.Success = true

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{"lines": len(content.Lines)})
	}
	return content, nil
}

// SplitLines splits text on newlines, strips carriage returns, and drops
// trailing empty lines while keeping interior ones for index stability.
func SplitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	end := len(raw)
	for end > 0 && strings.TrimSpace(raw[end-1]) == "" {
		end--
	}
	return raw[:end]
}

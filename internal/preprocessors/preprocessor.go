// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"path/filepath"

	"cnic-scan/internal/observability"
)

// ProcessedContent represents input that has been turned into OCR-style
// text lines for the extraction engine.
type ProcessedContent struct {
	// Original file information
	OriginalPath string
	Filename     string

	// Lines are the extracted text regions in reading order, one entry
	// per line. This is the engine's input unit.
	Lines []string

	// Content metadata
	Format    string
	PageCount int
	WordCount int
	CharCount int

	// Processing information
	ProcessorType string
	Success       bool
	Error         error

	// Additional metadata (EXIF tags for images, form data notes for PDFs)
	Metadata map[string]string
}

// Preprocessor interface defines methods for preprocessing input files
type Preprocessor interface {
	// CanProcess checks if this preprocessor can handle the given file
	CanProcess(filePath string) bool

	// Process extracts line-oriented content from the file
	Process(filePath string) (*ProcessedContent, error)

	// GetName returns the name of this preprocessor
	GetName() string

	// GetSupportedExtensions returns the file extensions this preprocessor supports
	GetSupportedExtensions() []string

	// SetObserver sets the observability component
	SetObserver(observer *observability.StandardObserver)
}

// PreprocessorManager manages all available preprocessors
type PreprocessorManager struct {
	preprocessors []Preprocessor
}

// NewPreprocessorManager creates a new preprocessor manager
func NewPreprocessorManager() *PreprocessorManager {
	return &PreprocessorManager{
		preprocessors: make([]Preprocessor, 0),
	}
}

// NewDefaultManager creates a manager with every built-in preprocessor
// registered. Registration order is match order, so the text preprocessor
// goes last as the catch-all.
func NewDefaultManager() *PreprocessorManager {
	pm := NewPreprocessorManager()
	pm.RegisterPreprocessor(NewPDFTextPreprocessor())
	pm.RegisterPreprocessor(NewImageMetadataPreprocessor())
	pm.RegisterPreprocessor(NewTextPreprocessor())
	return pm
}

// RegisterPreprocessor adds a preprocessor to the manager
func (pm *PreprocessorManager) RegisterPreprocessor(p Preprocessor) {
	pm.preprocessors = append(pm.preprocessors, p)
}

// SetObserver sets the observability component on every registered
// preprocessor.
func (pm *PreprocessorManager) SetObserver(observer *observability.StandardObserver) {
	for _, p := range pm.preprocessors {
		p.SetObserver(observer)
	}
}

// GetPreprocessor returns the appropriate preprocessor for a file, or nil if none found
func (pm *PreprocessorManager) GetPreprocessor(filePath string) Preprocessor {
	for _, p := range pm.preprocessors {
		if p.CanProcess(filePath) {
			return p
		}
	}
	return nil
}

// ProcessFile processes a file with the first preprocessor that accepts it
func (pm *PreprocessorManager) ProcessFile(filePath string) (*ProcessedContent, error) {
	p := pm.GetPreprocessor(filePath)
	if p == nil {
		return &ProcessedContent{
			OriginalPath:  filePath,
			Filename:      filepath.Base(filePath),
			ProcessorType: "none",
			Success:       false,
		}, fmt.Errorf("no preprocessor for %s", filepath.Base(filePath))
	}
	return p.Process(filePath)
}

// GetAvailablePreprocessors returns all registered preprocessors
func (pm *PreprocessorManager) GetAvailablePreprocessors() []Preprocessor {
	return pm.preprocessors
}

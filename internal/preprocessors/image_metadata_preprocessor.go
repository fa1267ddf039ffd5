// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"cnic-scan/internal/observability"
)

// ImageMetadataPreprocessor handles raw card photographs. Images carry no
// text layer, so the result reports capture metadata and no lines; the
// caller surfaces that OCR must run upstream.
type ImageMetadataPreprocessor struct {
	observer *observability.StandardObserver
}

// NewImageMetadataPreprocessor creates a new image metadata preprocessor
func NewImageMetadataPreprocessor() *ImageMetadataPreprocessor {
	return &ImageMetadataPreprocessor{}
}

// GetName returns the name of this preprocessor
func (p *ImageMetadataPreprocessor) GetName() string {
	return "image_metadata"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (p *ImageMetadataPreprocessor) GetSupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".tif", ".tiff", ".heic"}
}

// SetObserver sets the observability component
func (p *ImageMetadataPreprocessor) SetObserver(observer *observability.StandardObserver) {
	p.observer = observer
}

// CanProcess checks if this preprocessor can handle the given file
func (p *ImageMetadataPreprocessor) CanProcess(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, supported := range p.GetSupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// exifWalker collects every EXIF tag into a flat map
type exifWalker struct {
	tags map[string]string
}

func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag != nil {
		w.tags[string(name)] = tag.String()
	}
	return nil
}

// Process extracts EXIF metadata. Success stays false because an image
// yields no text lines for the engine.
func (p *ImageMetadataPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	var finishTiming func(bool, map[string]interface{})
	if p.observer != nil {
		finishTiming = p.observer.StartTiming("image_preprocessor", "process")
	}

	content := &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Format:        "image",
		ProcessorType: p.GetName(),
		Metadata:      make(map[string]string),
	}

	if f, err := os.Open(filePath); err == nil {
		if x, err := exif.Decode(f); err == nil {
			walker := &exifWalker{tags: content.Metadata}
			x.Walk(walker)
		}
		f.Close()
	}

	content.Error = fmt.Errorf(
		"%s is an image: run OCR upstream and provide its text output, one line per region",
		content.Filename)

	if finishTiming != nil {
		finishTiming(false, map[string]interface{}{
			"exif_tags": len(content.Metadata),
		})
	}
	return content, content.Error
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"cnic-scan/internal/observability"
)

// Scanned cards shared as PDFs carry the OCR text layer as positioned
// runs. Row-based extraction preserves the reading order the engine's
// positional rules depend on.
type PDFTextPreprocessor struct {
	observer *observability.StandardObserver
	maxPages int
}

// NewPDFTextPreprocessor creates a new PDF text preprocessor
func NewPDFTextPreprocessor() *PDFTextPreprocessor {
	return &PDFTextPreprocessor{maxPages: 10}
}

// GetName returns the name of this preprocessor
func (p *PDFTextPreprocessor) GetName() string {
	return "pdf_text"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (p *PDFTextPreprocessor) GetSupportedExtensions() []string {
	return []string{".pdf"}
}

// SetObserver sets the observability component
func (p *PDFTextPreprocessor) SetObserver(observer *observability.StandardObserver) {
	p.observer = observer
}

// CanProcess checks if this preprocessor can handle the given file
func (p *PDFTextPreprocessor) CanProcess(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".pdf"
}

// Process validates the PDF structure and extracts its text rows in
// top-to-bottom order, one engine line per row.
func (p *PDFTextPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	var finishTiming func(bool, map[string]interface{})
	if p.observer != nil {
		finishTiming = p.observer.StartTiming("pdf_preprocessor", "process")
	}

	content := &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Format:        "pdf",
		ProcessorType: p.GetName(),
	}

	fail := func(err error) (*ProcessedContent, error) {
		content.Error = err
		if finishTiming != nil {
			finishTiming(false, map[string]interface{}{"error": err.Error()})
		}
		return content, err
	}

	// Structural validation first: a truncated upload should produce a
	// clear error, not a partial text layer.
	if err := api.ValidateFile(filePath, nil); err != nil {
		return fail(fmt.Errorf("invalid PDF %s: %w", content.Filename, err))
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return fail(fmt.Errorf("error opening PDF: %w", err))
	}
	defer f.Close()

	content.PageCount = r.NumPage()
	pages := content.PageCount
	if pages > p.maxPages {
		pages = p.maxPages
	}

	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content.Lines = append(content.Lines, extractPageRows(page)...)
	}

	for _, line := range content.Lines {
		content.WordCount += len(strings.Fields(line))
		content.CharCount += len(line)
	}
	content.Success = true

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"pages": content.PageCount,
			"lines": len(content.Lines),
		})
	}
	return content, nil
}

// extractPageRows returns one string per positioned text row, in reading
// order: rows top to bottom, elements within a row left to right.
func extractPageRows(page pdf.Page) []string {
	rows, err := page.GetTextByRow()
	if err != nil {
		// Fallback loses row structure but keeps the text reachable.
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil
		}
		return SplitLines(text)
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}
	sort.Slice(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) < averageY(sortedRows[j].Content)
	})

	var lines []string
	for _, row := range sortedRows {
		elements := make([]pdf.Text, len(row.Content))
		copy(elements, row.Content)
		sort.Slice(elements, func(i, j int) bool {
			return elements[i].X < elements[j].X
		})

		var words []string
		for _, element := range elements {
			if w := strings.TrimSpace(element.S); w != "" {
				words = append(words, w)
			}
		}
		if len(words) > 0 {
			lines = append(lines, strings.Join(words, " "))
		}
	}
	return lines
}

// averageY is the mean Y coordinate of a row's text elements.
func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, element := range elements {
		total += element.Y
	}
	return total / float64(len(elements))
}

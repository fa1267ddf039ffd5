// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	stdcsv "encoding/csv"
	"strings"
	"testing"

	"cnic-scan/internal/detector"
	"cnic-scan/internal/formatters"
)

func TestFormatRaw_EscapesSeparatorsAndQuotes(t *testing.T) {
	text := `Khan, Muhammad "Ali"`
	raw := []detector.ClassifiedLine{
		{
			Line: detector.NormalizedLine{
				Raw:     detector.RawLine{Text: text, Index: 0},
				Display: text,
				Compare: strings.ToLower(text),
			},
			Shape: detector.ShapeStandaloneValue,
		},
	}

	content, err := NewFormatter().Format(nil, raw, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	// Output must survive a strict CSV parse with the text intact.
	records, err := stdcsv.NewReader(strings.NewReader(content)).ReadAll()
	if err != nil {
		t.Fatalf("output is not parseable CSV: %v\n%s", err, content)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus 1 row, got %d records", len(records))
	}
	if got := records[1][4]; got != text {
		t.Errorf("text column = %q, want %q", got, text)
	}
}

func TestFormatResult_EscapesValueField(t *testing.T) {
	result := &detector.ExtractionResult{
		Success: true,
		Data: &detector.CnicRecord{
			Name:           `Khan, Muhammad`,
			FatherName:     "Ghulam Hussain",
			Gender:         "Male",
			CountryOfStay:  "Pakistan",
			IdentityNumber: "38403-9346396-1",
			DateOfBirth:    "10/11/1987",
			DateOfIssue:    "01/01/2015",
			DateOfExpiry:   "01/01/2025",
		},
	}

	content, err := NewFormatter().Format(result, nil, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	records, err := stdcsv.NewReader(strings.NewReader(content)).ReadAll()
	if err != nil {
		t.Fatalf("output is not parseable CSV: %v\n%s", err, content)
	}
	if len(records) != 1+len(detector.AllLabels) {
		t.Fatalf("expected header plus %d rows, got %d", len(detector.AllLabels), len(records))
	}
	if got := records[1][1]; got != `Khan, Muhammad` {
		t.Errorf("name value = %q, want %q", got, `Khan, Muhammad`)
	}
}

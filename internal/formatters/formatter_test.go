// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters_test

import (
	"encoding/json"
	"strings"
	"testing"

	"cnic-scan/internal/detector"
	"cnic-scan/internal/formatters"

	_ "cnic-scan/internal/formatters/csv"
	_ "cnic-scan/internal/formatters/json"
	_ "cnic-scan/internal/formatters/text"
	_ "cnic-scan/internal/formatters/yaml"
)

func sampleResult() *detector.ExtractionResult {
	return &detector.ExtractionResult{
		Success: true,
		Data: &detector.CnicRecord{
			Name:           "Muhammad Ali",
			FatherName:     "Ghulam Hussain",
			Gender:         "Male",
			CountryOfStay:  "Pakistan",
			IdentityNumber: "38403-9346396-1",
			DateOfBirth:    "10/11/1987",
			DateOfIssue:    "01/01/2015",
			DateOfExpiry:   "01/01/2025",
		},
	}
}

func TestRegistryHasAllFormats(t *testing.T) {
	for _, want := range []string{"json", "text", "csv", "yaml"} {
		if _, ok := formatters.Get(want); !ok {
			t.Errorf("formatter %q not registered", want)
		}
	}
}

func TestExport_JSON(t *testing.T) {
	content, err := formatters.Export("json", sampleResult(), nil, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	var decoded detector.ExtractionResult
	if err := json.Unmarshal([]byte(content), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !decoded.Success || decoded.Data.IdentityNumber != "38403-9346396-1" {
		t.Errorf("round trip lost data: %+v", decoded)
	}
}

func TestExport_CSVRecordRows(t *testing.T) {
	content, err := formatters.Export("csv", sampleResult(), nil, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	rows := strings.Split(content, "\n")
	if len(rows) != 1+len(detector.AllLabels) {
		t.Fatalf("expected header plus %d field rows, got %d", len(detector.AllLabels), len(rows))
	}
	if rows[0] != "Field,Value,Status" {
		t.Errorf("header = %q", rows[0])
	}
	if rows[1] != "name,Muhammad Ali,ok" {
		t.Errorf("first row = %q", rows[1])
	}
}

func TestExport_FailureMessageInText(t *testing.T) {
	result := &detector.ExtractionResult{
		Success:          false,
		MissingOrInvalid: []string{"identity_number"},
		Message:          "Image quality is poor. Could not detect: Identity Number. Please provide a clearer image.",
	}
	content, err := formatters.Export("text", result, nil, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(content, "Image quality is poor") {
		t.Errorf("failure message missing from text output:\n%s", content)
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	if _, err := formatters.Export("parquet", sampleResult(), nil, formatters.FormatterOptions{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestExportForWeb(t *testing.T) {
	_, mimeType, filename, err := formatters.ExportForWeb("json", sampleResult(), nil, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("ExportForWeb: %v", err)
	}
	if mimeType != "application/json" {
		t.Errorf("mimeType = %q", mimeType)
	}
	if filename != "cnic-scan-result.json" {
		t.Errorf("filename = %q", filename)
	}
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package country

import (
	"testing"

	"cnic-scan/internal/classifier"
	"cnic-scan/internal/detector"
	"cnic-scan/internal/labels"
	"cnic-scan/internal/normalizer"
)

func classifyLine(t *testing.T, line string) detector.ClassifiedLine {
	t.Helper()
	norm := normalizer.New(nil).Normalize([]string{line})
	return classifier.New(labels.NewMatcher(nil)).Classify(norm)[0]
}

func TestExtractLabeled(t *testing.T) {
	cases := []string{
		"Country of Stay Pakistan",
		"Country of Stay: Pakistan",
		"CountryofStay Pakistan",
	}
	e := NewExtractor(nil)
	for _, line := range cases {
		got := e.ExtractLabeled(classifyLine(t, line))
		if len(got) != 1 {
			t.Errorf("ExtractLabeled(%q): expected 1 candidate, got %v", line, got)
			continue
		}
		if got[0].Value != "Pakistan" {
			t.Errorf("ExtractLabeled(%q) = %q, want Pakistan", line, got[0].Value)
		}
	}
}

func TestExtractLabeled_MultiWordCountry(t *testing.T) {
	e := NewExtractor(nil)
	got := e.ExtractLabeled(classifyLine(t, "Country of Stay Saudi Arabia"))
	if len(got) != 1 || got[0].Value != "Saudi Arabia" {
		t.Fatalf("expected Saudi Arabia, got %v", got)
	}
}

func TestExtractLabeled_UnrecognizedLeftUnresolved(t *testing.T) {
	e := NewExtractor(nil)
	if got := e.ExtractLabeled(classifyLine(t, "Country of Stay Gende")); len(got) != 0 {
		t.Errorf("unrecognized token must stay unresolved, got %v", got)
	}
}

func TestExtractLabeled_ConfiguredAddition(t *testing.T) {
	e := NewExtractor([]string{"Qatar"})
	got := e.ExtractLabeled(classifyLine(t, "Country of Stay Qatar"))
	if len(got) != 1 || got[0].Value != "Qatar" {
		t.Fatalf("expected configured country to resolve, got %v", got)
	}
}

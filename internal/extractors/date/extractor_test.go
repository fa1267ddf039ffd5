// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package date

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

func TestNormalize_SeparatorVariants(t *testing.T) {
	for _, raw := range []string{"10.11.1987", "10-11-1987", "10 11 1987", "10/11/1987"} {
		got, ok := Normalize(raw)
		if !ok {
			t.Errorf("Normalize(%q): unexpected rejection", raw)
			continue
		}
		if got != "10/11/1987" {
			t.Errorf("Normalize(%q) = %q, want 10/11/1987", raw, got)
		}
	}
}

func TestNormalize_RejectsImplausibleDates(t *testing.T) {
	for _, raw := range []string{"32.13.1987", "00.01.1987", "10.00.1987", "10.11.1899", "10.11.2101"} {
		if got, ok := Normalize(raw); ok {
			t.Errorf("Normalize(%q) = %q, expected rejection", raw, got)
		}
	}
}

func TestNormalize_PadsSingleDigits(t *testing.T) {
	got, ok := Normalize("1.2.1987")
	if !ok || got != "01/02/1987" {
		t.Errorf("Normalize(1.2.1987) = %q ok=%v, want 01/02/1987", got, ok)
	}
}

func TestExtractLabeled_SingleField(t *testing.T) {
	e := NewExtractor()
	got := e.ExtractLabeled(classifyLine(t, "Date of Birth 10.11.1987"))
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Label != detector.LabelDateOfBirth || got[0].Value != "10/11/1987" {
		t.Errorf("got %+v", got[0])
	}
	if got[0].Source != detector.SourceLabeledLine {
		t.Errorf("expected labeled-line source, got %s", got[0].Source)
	}
}

func TestExtractLabeled_TypoCaption(t *testing.T) {
	e := NewExtractor()
	got := e.ExtractLabeled(classifyLine(t, "Date of lssue 22.01.2014"))
	if len(got) != 1 || got[0].Label != detector.LabelDateOfIssue {
		t.Fatalf("expected date_of_issue candidate, got %v", got)
	}
	if got[0].Value != "22/01/2014" {
		t.Errorf("got value %q", got[0].Value)
	}
}

func TestExtractLabeled_VariantCaption(t *testing.T) {
	// Caption resolved through the variant table; no keyword substring
	// survives the misspelling, so the label match is the only signal.
	e := NewExtractor()
	got := e.ExtractLabeled(classifyLine(t, "Date of Expiiy 01.01.2025"))
	if len(got) != 1 || got[0].Label != detector.LabelDateOfExpiry {
		t.Fatalf("expected date_of_expiry candidate, got %v", got)
	}
	if got[0].Value != "01/01/2025" {
		t.Errorf("got value %q", got[0].Value)
	}
}

func TestExtractLabeled_FuzzyCaption(t *testing.T) {
	// Caption resolved by edit distance only.
	e := NewExtractor()
	got := e.ExtractLabeled(classifyLine(t, "Date of Bizth 10.11.1987"))
	if len(got) != 1 || got[0].Label != detector.LabelDateOfBirth {
		t.Fatalf("expected date_of_birth candidate, got %v", got)
	}
	if got[0].Value != "10/11/1987" {
		t.Errorf("got value %q", got[0].Value)
	}
}

func TestExtractLabeled_MultiFieldPositionalPairing(t *testing.T) {
	e := NewExtractor()
	// Caption order differs from chronological order; positional pairing
	// must hold: expiry caption comes first, so it takes the first date.
	got := e.ExtractLabeled(classifyLine(t, "Date of Expiry Date of Issue 22.01.2021 22.01.2014"))
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d (%v)", len(got), got)
	}
	byLabel := make(map[detector.FieldLabel]detector.CandidateValue)
	for _, c := range got {
		byLabel[c.Label] = c
	}
	if byLabel[detector.LabelDateOfExpiry].Value != "22/01/2021" {
		t.Errorf("expiry = %q, want 22/01/2021", byLabel[detector.LabelDateOfExpiry].Value)
	}
	if byLabel[detector.LabelDateOfIssue].Value != "22/01/2014" {
		t.Errorf("issue = %q, want 22/01/2014", byLabel[detector.LabelDateOfIssue].Value)
	}
	for _, c := range got {
		if c.Source != detector.SourceMultiFieldLine {
			t.Errorf("expected multi-field source, got %s", c.Source)
		}
	}
}

func TestExtractLabeled_InvalidDateDiscarded(t *testing.T) {
	e := NewExtractor()
	if got := e.ExtractLabeled(classifyLine(t, "Date of Birth 32.13.1987")); len(got) != 0 {
		t.Errorf("expected no candidates for invalid date, got %v", got)
	}
}

func TestExtractLabeled_NoDateToken(t *testing.T) {
	e := NewExtractor()
	if got := e.ExtractLabeled(classifyLine(t, "Date of Birth")); len(got) != 0 {
		t.Errorf("expected no candidates for label-only line, got %v", got)
	}
}

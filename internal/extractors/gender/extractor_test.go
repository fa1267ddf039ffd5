// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gender

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
	cases := []struct {
		line string
		want string
	}{
		{"Gender M", "Male"},
		{"Gender F", "Female"},
		{"Gender Male", "Male"},
		{"Gende : Male", "Male"},
		{"Gendet Maie", "Male"},
		{"Gender Female", "Female"},
	}
	e := NewExtractor()
	for _, tc := range cases {
		got := e.ExtractLabeled(classifyLine(t, tc.line))
		if len(got) != 1 {
			t.Errorf("ExtractLabeled(%q): expected 1 candidate, got %v", tc.line, got)
			continue
		}
		if got[0].Value != tc.want {
			t.Errorf("ExtractLabeled(%q) = %q, want %q", tc.line, got[0].Value, tc.want)
		}
		if got[0].Label != detector.LabelGender {
			t.Errorf("label = %s", got[0].Label)
		}
	}
}

func TestExtractLabeled_RejectsUnknownToken(t *testing.T) {
	e := NewExtractor()
	if got := e.ExtractLabeled(classifyLine(t, "Gender Unknown")); len(got) != 0 {
		t.Errorf("expected rejection, got %v", got)
	}
}

func TestExtractLabeled_CaptionRequired(t *testing.T) {
	e := NewExtractor()
	if got := e.ExtractLabeled(classifyLine(t, "Male")); len(got) != 0 {
		t.Errorf("bare value without caption must not resolve, got %v", got)
	}
}

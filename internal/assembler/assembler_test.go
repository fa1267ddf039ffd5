// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package assembler

import (
	"strings"
	"testing"

	"cnic-scan/internal/detector"
)

func fullCandidateSet() []detector.CandidateValue {
	values := map[detector.FieldLabel]string{
		detector.LabelName:           "Muhammad Ali",
		detector.LabelFatherName:     "Ghulam Hussain",
		detector.LabelGender:         "Male",
		detector.LabelCountryOfStay:  "Pakistan",
		detector.LabelIdentityNumber: "38403-9346396-1",
		detector.LabelDateOfBirth:    "10/11/1987",
		detector.LabelDateOfIssue:    "22/01/2014",
		detector.LabelDateOfExpiry:   "22/01/2021",
	}
	var out []detector.CandidateValue
	i := 0
	for label, v := range values {
		out = append(out, detector.CandidateValue{
			Label: label, Value: v, Source: detector.SourceLabeledLine, LineIndex: i,
		})
		i++
	}
	return out
}

func TestAssemble_CompleteRecord(t *testing.T) {
	result := New().Assemble(fullCandidateSet())
	if !result.Success {
		t.Fatalf("expected success, got failure: %s", result.Message)
	}
	if result.Data == nil {
		t.Fatal("success result must carry a record")
	}
	if result.Data.Name != "Muhammad Ali" || result.Data.IdentityNumber != "38403-9346396-1" {
		t.Errorf("record = %+v", result.Data)
	}
	if len(result.MissingOrInvalid) != 0 {
		t.Errorf("unexpected missing fields: %v", result.MissingOrInvalid)
	}
}

func TestAssemble_MissingFieldFails(t *testing.T) {
	candidates := fullCandidateSet()
	// Drop gender.
	kept := candidates[:0]
	for _, c := range candidates {
		if c.Label != detector.LabelGender {
			kept = append(kept, c)
		}
	}

	result := New().Assemble(kept)
	if result.Success {
		t.Fatal("partial input must never assemble successfully")
	}
	if result.Data != nil {
		t.Error("failure result must not carry a record")
	}
	found := false
	for _, f := range result.MissingOrInvalid {
		if f == "gender" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing_or_invalid = %v, want gender listed", result.MissingOrInvalid)
	}
	if !strings.Contains(result.Message, "Gender") {
		t.Errorf("message %q should name the missing field", result.Message)
	}
	if !strings.Contains(result.Message, "clearer image") {
		t.Errorf("message %q should ask for a clearer image", result.Message)
	}
}

func TestAssemble_EmptyInput(t *testing.T) {
	result := New().Assemble(nil)
	if result.Success {
		t.Fatal("expected failure for empty candidate set")
	}
	if len(result.MissingOrInvalid) != len(detector.AllLabels) {
		t.Errorf("expected all %d fields missing, got %d", len(detector.AllLabels), len(result.MissingOrInvalid))
	}
}

func TestAssemble_SourcePriority(t *testing.T) {
	candidates := fullCandidateSet()
	// A standalone candidate for name arrives before the labeled one in
	// input order; the labeled one must still win.
	candidates = append([]detector.CandidateValue{{
		Label:     detector.LabelName,
		Value:     "Wrong Fallback",
		Source:    detector.SourceStandaloneFallback,
		LineIndex: 0,
	}}, candidates...)

	result := New().Assemble(candidates)
	if !result.Success {
		t.Fatalf("unexpected failure: %s", result.Message)
	}
	if result.Data.Name != "Muhammad Ali" {
		t.Errorf("labeled candidate must beat standalone fallback, got %q", result.Data.Name)
	}
}

func TestAssemble_TieBreaksOnFirstOccurrence(t *testing.T) {
	candidates := fullCandidateSet()
	candidates = append(candidates, detector.CandidateValue{
		Label:     detector.LabelName,
		Value:     "Later Duplicate",
		Source:    detector.SourceLabeledLine,
		LineIndex: 99,
	})

	result := New().Assemble(candidates)
	if !result.Success {
		t.Fatalf("unexpected failure: %s", result.Message)
	}
	if result.Data.Name != "Muhammad Ali" {
		t.Errorf("earlier candidate must win the tie, got %q", result.Data.Name)
	}
}

func TestAssemble_Idempotent(t *testing.T) {
	a := New()
	candidates := fullCandidateSet()
	first := a.Assemble(candidates)
	second := a.Assemble(candidates)
	if *first.Data != *second.Data {
		t.Errorf("repeated assembly differs: %+v vs %+v", first.Data, second.Data)
	}
}

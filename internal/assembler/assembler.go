// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package assembler

import (
	"fmt"
	"strings"

	"cnic-scan/internal/detector"
	"cnic-scan/internal/observability"
)

// Assembler reduces candidate values to at most one per field and applies
// the required-field policy. Every CNIC field is required; a record is
// only ever constructed complete.
type Assembler struct {
	required []detector.FieldLabel
	observer *observability.StandardObserver
}

// New creates an Assembler requiring the full CNIC field set.
func New() *Assembler {
	return &Assembler{required: detector.AllLabels}
}

// SetObserver sets the observability component.
func (a *Assembler) SetObserver(observer *observability.StandardObserver) {
	a.observer = observer
}

// Assemble merges extracted candidates into one result. When a field has
// several candidates the higher-priority source wins (same-line label >
// multi-field line > standalone fallback); ties break on first occurrence
// in input order. The reduction is a sort key, not an artifact of
// evaluation order, so results are reproducible.
func (a *Assembler) Assemble(candidates []detector.CandidateValue) *detector.ExtractionResult {
	resolved := make(map[detector.FieldLabel]detector.CandidateValue)
	for _, c := range candidates {
		current, ok := resolved[c.Label]
		if !ok {
			resolved[c.Label] = c
			continue
		}
		if c.Source < current.Source ||
			(c.Source == current.Source && c.LineIndex < current.LineIndex) {
			a.logAmbiguity(c.Label, c, current)
			resolved[c.Label] = c
		} else {
			a.logAmbiguity(c.Label, current, c)
		}
	}

	var missing []string
	var missingDisplay []string
	for _, label := range a.required {
		if _, ok := resolved[label]; !ok {
			missing = append(missing, label.FieldName())
			missingDisplay = append(missingDisplay, label.DisplayName())
		}
	}

	if len(missing) > 0 {
		return &detector.ExtractionResult{
			Success:          false,
			MissingOrInvalid: missing,
			Message: fmt.Sprintf(
				"Image quality is poor. Could not detect: %s. Please provide a clearer image.",
				strings.Join(missingDisplay, ", ")),
		}
	}

	record := &detector.CnicRecord{}
	for label, c := range resolved {
		record.SetField(label, c.Value)
	}
	return &detector.ExtractionResult{Success: true, Data: record}
}

// logAmbiguity records a losing candidate at debug level. Disagreeing
// candidates are resolved deterministically, never surfaced as errors.
func (a *Assembler) logAmbiguity(label detector.FieldLabel, winner, loser detector.CandidateValue) {
	if a.observer == nil || winner.Value == loser.Value {
		return
	}
	a.observer.LogOperation(observability.StandardObservabilityData{
		Component: "assembler",
		Operation: "resolve_ambiguity",
		Success:   true,
		Metadata: map[string]interface{}{
			"field":         label.FieldName(),
			"winner_source": winner.Source.String(),
			"loser_source":  loser.Source.String(),
			"winner_line":   winner.LineIndex,
			"loser_line":    loser.LineIndex,
		},
	})
}

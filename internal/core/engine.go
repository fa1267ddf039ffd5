// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"strings"

	"cnic-scan/internal/assembler"
	"cnic-scan/internal/classifier"
	"cnic-scan/internal/config"
	"cnic-scan/internal/detector"
	"cnic-scan/internal/extractors/country"
	"cnic-scan/internal/extractors/date"
	"cnic-scan/internal/extractors/gender"
	"cnic-scan/internal/extractors/identity"
	"cnic-scan/internal/extractors/name"
	"cnic-scan/internal/labels"
	"cnic-scan/internal/normalizer"
	"cnic-scan/internal/observability"
)

// Engine is the extraction pipeline: normalizer, classifier, per-field
// extractors, assembler. It holds no per-call state, so one Engine can
// serve concurrent calls as long as each call brings its own input.
type Engine struct {
	normalizer *normalizer.Normalizer
	classifier *classifier.Classifier
	identity   *identity.Extractor
	labeled    []detector.Extractor
	assembler  *assembler.Assembler
	observer   *observability.StandardObserver
}

// NewEngine builds an Engine from configuration. A nil config uses the
// built-in vocabularies only.
func NewEngine(cfg *config.Config) *Engine {
	var noise []string
	var variants map[string][]string
	var countries []string
	if cfg != nil {
		noise = cfg.Engine.NoisePhrases
		variants = cfg.Engine.LabelVariants
		countries = cfg.Engine.Countries
	}

	identityExtractor := identity.NewExtractor()
	return &Engine{
		normalizer: normalizer.New(noise),
		classifier: classifier.New(labels.NewMatcher(variants)),
		identity:   identityExtractor,
		labeled: []detector.Extractor{
			name.NewExtractor(),
			gender.NewExtractor(),
			country.NewExtractor(countries),
			date.NewExtractor(),
			identityExtractor,
		},
		assembler: assembler.New(),
	}
}

// SetObserver sets the observability component on the pipeline.
func (e *Engine) SetObserver(observer *observability.StandardObserver) {
	e.observer = observer
	e.assembler.SetObserver(observer)
}

// Extract runs the full pipeline over an ordered list of OCR line texts
// and returns either a complete record or an aggregated failure. It never
// aborts: malformed lines are classified as noise and skipped.
func (e *Engine) Extract(lines []string) *detector.ExtractionResult {
	var finishTiming func(bool, map[string]interface{})
	if e.observer != nil {
		finishTiming = e.observer.StartTiming("engine", "extract")
	}

	classified := e.classify(lines)
	candidates := e.collectCandidates(classified)
	result := e.assembler.Assemble(candidates)

	if finishTiming != nil {
		finishTiming(result.Success, map[string]interface{}{
			"line_count":      len(lines),
			"candidate_count": len(candidates),
			"missing_fields":  len(result.MissingOrInvalid),
		})
	}
	return result
}

// ExtractRaw runs normalization and classification only, without the
// required-field gate. Used for diagnostic display of what the engine saw.
func (e *Engine) ExtractRaw(lines []string) []detector.ClassifiedLine {
	return e.classify(lines)
}

func (e *Engine) classify(lines []string) []detector.ClassifiedLine {
	return e.classifier.Classify(e.normalizer.Normalize(lines))
}

// collectCandidates runs the extractors over the classified lines,
// including the split-row recovery and the standalone passes.
func (e *Engine) collectCandidates(classified []detector.ClassifiedLine) []detector.CandidateValue {
	var candidates []detector.CandidateValue

	for i, cl := range classified {
		switch cl.Shape {
		case detector.ShapeLabelValue, detector.ShapeMultiField:
			line := cl
			if cl.Shape == detector.ShapeMultiField && classifier.ValueTokenCount(cl.Line.Compare) == 0 {
				// Pure two-caption header: OCR split the value row off.
				// Re-join it with the next line so positional pairing works.
				if merged, ok := e.mergeWithNext(classified, i, 2); ok {
					line = merged
				}
			}
			candidates = append(candidates, e.runLabeled(line)...)

		case detector.ShapeLabelOnly:
			// Single caption with its value on the following line.
			if merged, ok := e.mergeWithNext(classified, i, 0); ok {
				candidates = append(candidates, e.runLabeled(merged)...)
			}

		case detector.ShapeStandaloneValue:
			candidates = append(candidates, e.identity.ExtractStandalone(cl)...)
		}
	}

	candidates = append(candidates, e.nameFallback(classified, candidates)...)
	return candidates
}

// runLabeled feeds a label-bearing line to every extractor. Extractors
// that find none of their captions on the line contribute nothing.
func (e *Engine) runLabeled(line detector.ClassifiedLine) []detector.CandidateValue {
	var out []detector.CandidateValue
	for _, ex := range e.labeled {
		out = append(out, ex.ExtractLabeled(line)...)
	}
	if e.observer != nil && e.observer.DebugObserver != nil {
		for _, c := range out {
			e.observer.DebugObserver.LogDetail("engine",
				c.Label.FieldName()+" <- "+c.Source.String())
		}
	}
	return out
}

// mergeWithNext joins a header line with the next non-noise line when that
// line reads as a value row. minValueTokens distinguishes the two-caption
// case (which needs two value tokens in caption order) from the single
// label-only case (where a name row carries no date/number token at all).
func (e *Engine) mergeWithNext(classified []detector.ClassifiedLine, i, minValueTokens int) (detector.ClassifiedLine, bool) {
	for j := i + 1; j < len(classified); j++ {
		next := classified[j]
		if next.Line.Noise {
			continue
		}
		if next.Shape != detector.ShapeStandaloneValue {
			return detector.ClassifiedLine{}, false
		}
		if classifier.ValueTokenCount(next.Line.Compare) < minValueTokens {
			return detector.ClassifiedLine{}, false
		}

		mergedText := strings.TrimSpace(classified[i].Line.Display + " " + next.Line.Display)
		norm := e.normalizer.Normalize([]string{mergedText})
		merged := e.classifier.Classify(norm)[0]
		// Keep the value row's position so tie-breaks stay input-ordered.
		merged.Line.Raw.Index = next.Line.Raw.Index
		return merged, true
	}
	return detector.ClassifiedLine{}, false
}

// nameFallback activates the standalone name recovery for each name field
// that has no labeled candidate anywhere in the input.
func (e *Engine) nameFallback(classified []detector.ClassifiedLine, candidates []detector.CandidateValue) []detector.CandidateValue {
	haveName := false
	haveFather := false
	for _, c := range candidates {
		if c.Source == detector.SourceStandaloneFallback {
			continue
		}
		switch c.Label {
		case detector.LabelName:
			haveName = true
		case detector.LabelFatherName:
			haveFather = true
		}
	}
	if haveName && haveFather {
		return nil
	}

	var out []detector.CandidateValue
	for _, c := range name.FallbackCandidates(classified) {
		if c.Label == detector.LabelName && haveName {
			continue
		}
		if c.Label == detector.LabelFatherName && haveFather {
			continue
		}
		out = append(out, c)
	}
	return out
}

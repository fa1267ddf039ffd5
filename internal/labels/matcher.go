// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package labels

import (
	"sort"
	"strings"

	"cnic-scan/internal/detector"
)

// maxLabelsPerLine caps label hits per line. Two labels only occur on
// combined multi-field headers ("Identity Number Date of Birth").
const maxLabelsPerLine = 2

// Matcher performs fuzzy containment matching of the known field captions
// against normalized line text. Matching is case-insensitive (it operates
// on the compare form) and tolerant of bounded OCR damage.
type Matcher struct {
	specs []labelSpec
}

// NewMatcher builds a Matcher from the static label table plus extra
// variant spellings from configuration, keyed by serialized field name.
func NewMatcher(extraVariants map[string][]string) *Matcher {
	specs := make([]labelSpec, len(labelTable))
	copy(specs, labelTable)

	for i := range specs {
		extra, ok := extraVariants[specs[i].Label.FieldName()]
		if !ok {
			continue
		}
		variants := make([]string, 0, len(specs[i].Variants)+len(extra))
		variants = append(variants, specs[i].Variants...)
		for _, v := range extra {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "" {
				variants = append(variants, v)
			}
		}
		specs[i].Variants = variants
	}

	return &Matcher{specs: specs}
}

// Match returns the labels appearing in a compare-form line: zero, one, or
// two hits, leftmost first. Matches are greedy left-to-right; an accepted
// match consumes its span, and overlapping hits are discarded.
func (m *Matcher) Match(compare string) []detector.LabelMatch {
	candidates := m.collectCandidates(compare)
	if len(candidates) == 0 {
		return nil
	}

	// Leftmost wins; at equal start prefer the smaller edit distance, then
	// the longer caption ("father name" over the "name" inside it), then
	// table order.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return (a.End - a.Start) > (b.End - b.Start)
	})

	var accepted []detector.LabelMatch
	seen := make(map[detector.FieldLabel]bool)
	for _, c := range candidates {
		if len(accepted) == maxLabelsPerLine {
			break
		}
		if seen[c.Label] {
			continue
		}
		if overlapsAny(accepted, c) {
			continue
		}
		accepted = append(accepted, c)
		seen[c.Label] = true
	}
	return accepted
}

// collectCandidates gathers every plausible caption hit in the line.
func (m *Matcher) collectCandidates(compare string) []detector.LabelMatch {
	var out []detector.LabelMatch
	for _, spec := range m.specs {
		best, ok := m.findPhraseSet(compare, spec.Canonical, 0)
		if !ok {
			best, ok = m.findPhraseSet(compare, spec.Variants, 0)
		}
		if !ok {
			// Bounded edit-distance fallback against the canonical forms.
			best, ok = m.findFuzzy(compare, spec.Canonical)
		}
		if ok {
			best.Label = spec.Label
			out = append(out, best)
		}
	}
	return out
}

// findPhraseSet looks for an exact, word-bounded occurrence of any phrase.
func (m *Matcher) findPhraseSet(compare string, phrases []string, distance int) (detector.LabelMatch, bool) {
	best := detector.LabelMatch{Start: -1}
	for _, phrase := range phrases {
		from := 0
		for {
			idx := strings.Index(compare[from:], phrase)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(phrase)
			if wordBounded(compare, start, end) {
				if best.Start < 0 || start < best.Start || (start == best.Start && end > best.End) {
					best = detector.LabelMatch{Start: start, End: end, Distance: distance}
				}
				break
			}
			from = start + 1
		}
	}
	return best, best.Start >= 0
}

// findFuzzy slides edit-distance windows over the line for each canonical
// phrase. The bound is 2 for captions of five or more characters and 1 for
// shorter ones.
func (m *Matcher) findFuzzy(compare string, phrases []string) (detector.LabelMatch, bool) {
	best := detector.LabelMatch{Start: -1}
	for _, phrase := range phrases {
		bound := 1
		if len(phrase) >= 5 {
			bound = 2
		}
		for start := 0; start < len(compare); start++ {
			if !wordStart(compare, start) {
				continue
			}
			for _, width := range []int{len(phrase) - 1, len(phrase), len(phrase) + 1} {
				end := start + width
				if width < 2 || end > len(compare) {
					continue
				}
				if !wordBounded(compare, start, end) {
					continue
				}
				d := editDistance(compare[start:end], phrase)
				if d > bound {
					continue
				}
				better := best.Start < 0 ||
					d < best.Distance ||
					(d == best.Distance && start < best.Start)
				if better {
					best = detector.LabelMatch{Start: start, End: end, Distance: d}
				}
			}
		}
	}
	return best, best.Start >= 0
}

func overlapsAny(accepted []detector.LabelMatch, c detector.LabelMatch) bool {
	for _, a := range accepted {
		if c.Start < a.End && a.Start < c.End {
			return true
		}
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func wordStart(s string, i int) bool {
	return i == 0 || !isLetter(s[i-1])
}

func wordBounded(s string, start, end int) bool {
	if !wordStart(s, start) {
		return false
	}
	return end == len(s) || !isLetter(s[end])
}

// editDistance is a standard Levenshtein over bytes. Captions and OCR
// output here are ASCII, so byte-wise comparison is sufficient.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

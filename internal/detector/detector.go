// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "strings"

// FieldLabel identifies one of the printed field captions on a CNIC.
type FieldLabel string

const (
	LabelName           FieldLabel = "NAME"
	LabelFatherName     FieldLabel = "FATHER_NAME"
	LabelGender         FieldLabel = "GENDER"
	LabelCountryOfStay  FieldLabel = "COUNTRY_OF_STAY"
	LabelIdentityNumber FieldLabel = "IDENTITY_NUMBER"
	LabelDateOfBirth    FieldLabel = "DATE_OF_BIRTH"
	LabelDateOfIssue    FieldLabel = "DATE_OF_ISSUE"
	LabelDateOfExpiry   FieldLabel = "DATE_OF_EXPIRY"
)

// AllLabels lists every field label in document order (top-left to
// bottom-right on the card face).
var AllLabels = []FieldLabel{
	LabelName,
	LabelFatherName,
	LabelGender,
	LabelCountryOfStay,
	LabelIdentityNumber,
	LabelDateOfBirth,
	LabelDateOfIssue,
	LabelDateOfExpiry,
}

// FieldName returns the serialized JSON field name for a label.
func (l FieldLabel) FieldName() string {
	return strings.ToLower(string(l))
}

// DisplayName returns the human-readable field name used in failure
// messages ("Father Name", "Date Of Birth", ...).
func (l FieldLabel) DisplayName() string {
	words := strings.Split(strings.ToLower(string(l)), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// CandidateSource identifies where a candidate value was found. Lower
// values outrank higher ones when reducing candidates to a record.
type CandidateSource int

const (
	// SourceLabeledLine is a value found on the same line as its label.
	SourceLabeledLine CandidateSource = iota
	// SourceMultiFieldLine is a value recovered from a combined line that
	// carries two labels, or from a value row paired with a header row.
	SourceMultiFieldLine
	// SourceStandaloneFallback is a value recovered from an unlabeled line
	// whose content matches a field pattern.
	SourceStandaloneFallback
)

// String returns the source name used in metadata and debug output.
func (s CandidateSource) String() string {
	switch s {
	case SourceLabeledLine:
		return "labeled-same-line"
	case SourceMultiFieldLine:
		return "labeled-multi-field-line"
	case SourceStandaloneFallback:
		return "standalone-fallback"
	}
	return "unknown"
}

// LineShape is the structural classification of a normalized line.
type LineShape int

const (
	ShapeNoise LineShape = iota
	ShapeLabelOnly
	ShapeLabelValue
	ShapeMultiField
	ShapeStandaloneValue
)

// String returns the shape name used in raw-mode output.
func (s LineShape) String() string {
	switch s {
	case ShapeLabelOnly:
		return "label-only"
	case ShapeLabelValue:
		return "label-value"
	case ShapeMultiField:
		return "multi-field"
	case ShapeStandaloneValue:
		return "standalone-value"
	}
	return "noise"
}

// RawLine is one OCR-produced text region, with its position in the
// upstream reading order.
type RawLine struct {
	Text  string
	Index int
}

// NormalizedLine is a RawLine after cleanup. Display keeps the original
// casing for value extraction; Compare is the lowercased form used for
// label matching. Noise lines are flagged rather than dropped so indexes
// stay correlated with the source.
type NormalizedLine struct {
	Raw     RawLine
	Display string
	Compare string
	Noise   bool
}

// LabelMatch records a fuzzy label hit inside a line.
type LabelMatch struct {
	Label FieldLabel
	// Start and End bound the matched span in the Compare form.
	Start int
	End   int
	// Distance is the edit distance of the matched window from the
	// canonical spelling (0 for exact or variant-table hits).
	Distance int
}

// ClassifiedLine pairs a normalized line with its shape and label hits.
type ClassifiedLine struct {
	Line   NormalizedLine
	Shape  LineShape
	Labels []LabelMatch
}

// CandidateValue is a validated value proposed for a field. Candidates are
// only created by extractors after passing the per-field format check;
// malformed matches are discarded, never coerced.
type CandidateValue struct {
	Label      FieldLabel
	Value      string
	Source     CandidateSource
	Confidence float64
	// LineIndex is the source line position, used as the tie-breaker when
	// two candidates share a source priority.
	LineIndex int
}

// CnicRecord is the assembled output: one canonical value per required
// field. Dates are DD/MM/YYYY, gender is Male/Female, the identity number
// is XXXXX-XXXXXXX-X.
type CnicRecord struct {
	Name           string `json:"name" yaml:"name"`
	FatherName     string `json:"father_name" yaml:"father_name"`
	Gender         string `json:"gender" yaml:"gender"`
	CountryOfStay  string `json:"country_of_stay" yaml:"country_of_stay"`
	IdentityNumber string `json:"identity_number" yaml:"identity_number"`
	DateOfBirth    string `json:"date_of_birth" yaml:"date_of_birth"`
	DateOfIssue    string `json:"date_of_issue" yaml:"date_of_issue"`
	DateOfExpiry   string `json:"date_of_expiry" yaml:"date_of_expiry"`
}

// Field returns the record value for a label.
func (r *CnicRecord) Field(label FieldLabel) string {
	switch label {
	case LabelName:
		return r.Name
	case LabelFatherName:
		return r.FatherName
	case LabelGender:
		return r.Gender
	case LabelCountryOfStay:
		return r.CountryOfStay
	case LabelIdentityNumber:
		return r.IdentityNumber
	case LabelDateOfBirth:
		return r.DateOfBirth
	case LabelDateOfIssue:
		return r.DateOfIssue
	case LabelDateOfExpiry:
		return r.DateOfExpiry
	}
	return ""
}

// SetField stores a value on the record for a label.
func (r *CnicRecord) SetField(label FieldLabel, value string) {
	switch label {
	case LabelName:
		r.Name = value
	case LabelFatherName:
		r.FatherName = value
	case LabelGender:
		r.Gender = value
	case LabelCountryOfStay:
		r.CountryOfStay = value
	case LabelIdentityNumber:
		r.IdentityNumber = value
	case LabelDateOfBirth:
		r.DateOfBirth = value
	case LabelDateOfIssue:
		r.DateOfIssue = value
	case LabelDateOfExpiry:
		r.DateOfExpiry = value
	}
}

// ExtractionResult is the engine's only output. Success carries a complete
// record; failure lists every field that was missing or failed its
// validator. Partial records are never returned as success.
type ExtractionResult struct {
	Success          bool        `json:"success" yaml:"success"`
	Data             *CnicRecord `json:"data,omitempty" yaml:"data,omitempty"`
	MissingOrInvalid []string    `json:"missing_or_invalid,omitempty" yaml:"missing_or_invalid,omitempty"`
	Message          string      `json:"message,omitempty" yaml:"message,omitempty"`
}

// Extractor is implemented by each per-field extractor package. Extractors
// return zero candidates for lines that do not carry a valid value of
// their field family.
type Extractor interface {
	// ExtractLabeled pulls candidates out of a classified line that
	// matched one of the extractor's labels.
	ExtractLabeled(line ClassifiedLine) []CandidateValue

	// Labels returns the field labels this extractor handles.
	Labels() []FieldLabel
}

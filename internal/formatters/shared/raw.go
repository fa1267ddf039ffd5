// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package shared holds conversion logic common to several formatters.
package shared

import "cnic-scan/internal/detector"

// RawLineView is the serializable form of one classified line.
type RawLineView struct {
	Index   int      `json:"index" yaml:"index"`
	Text    string   `json:"text" yaml:"text"`
	Display string   `json:"display" yaml:"display"`
	Shape   string   `json:"shape" yaml:"shape"`
	Labels  []string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Noise   bool     `json:"noise" yaml:"noise"`
}

// ConvertRawLines maps classified lines to their serializable view,
// preserving input order.
func ConvertRawLines(raw []detector.ClassifiedLine) []RawLineView {
	views := make([]RawLineView, 0, len(raw))
	for _, cl := range raw {
		view := RawLineView{
			Index:   cl.Line.Raw.Index,
			Text:    cl.Line.Raw.Text,
			Display: cl.Line.Display,
			Shape:   cl.Shape.String(),
			Noise:   cl.Line.Noise,
		}
		for _, m := range cl.Labels {
			view.Labels = append(view.Labels, m.Label.FieldName())
		}
		views = append(views, view)
	}
	return views
}

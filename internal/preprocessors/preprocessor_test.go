// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "unix newlines",
			input: "Name Ali\nGender Male\n",
			want:  []string{"Name Ali", "Gender Male"},
		},
		{
			name:  "windows newlines",
			input: "Name Ali\r\nGender Male\r\n",
			want:  []string{"Name Ali", "Gender Male"},
		},
		{
			name:  "interior blank kept, trailing dropped",
			input: "Name Ali\n\nGender Male\n\n\n",
			want:  []string{"Name Ali", "", "Gender Male"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTextPreprocessor_Process(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.txt")
	if err := os.WriteFile(path, []byte("Name Ali Khan\nGender Male\n"), 0600); err != nil {
		t.Fatal(err)
	}

	p := NewTextPreprocessor()
	content, err := p.Process(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !content.Success {
		t.Fatal("expected success")
	}
	if len(content.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", content.Lines)
	}
	if content.WordCount != 5 {
		t.Errorf("word count = %d, want 5", content.WordCount)
	}
}

func TestTextPreprocessor_RejectsBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.bin")
	if err := os.WriteFile(path, []byte{0x25, 0x00, 0x01, 0x41}, 0600); err != nil {
		t.Fatal(err)
	}

	p := NewTextPreprocessor()
	content, err := p.Process(path)
	if err == nil {
		t.Fatal("expected error for binary content")
	}
	if content.Success {
		t.Error("expected Success=false")
	}
}

func TestManagerRouting(t *testing.T) {
	pm := NewDefaultManager()

	tests := []struct {
		path string
		want string
	}{
		{"card.pdf", "pdf_text"},
		{"card.PDF", "pdf_text"},
		{"card.jpg", "image_metadata"},
		{"card.jpeg", "image_metadata"},
		{"card.txt", "text"},
		{"card", "text"},
	}
	for _, tt := range tests {
		p := pm.GetPreprocessor(tt.path)
		if p == nil {
			t.Fatalf("no preprocessor for %s", tt.path)
		}
		if p.GetName() != tt.want {
			t.Errorf("%s routed to %s, want %s", tt.path, p.GetName(), tt.want)
		}
	}
}

func TestImagePreprocessor_ReturnsGuidance(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.jpg")
	// Not a real JPEG: EXIF decode fails but the guidance error must still
	// come back.
	if err := os.WriteFile(path, []byte("not an image"), 0600); err != nil {
		t.Fatal(err)
	}

	p := NewImageMetadataPreprocessor()
	content, err := p.Process(path)
	if err == nil {
		t.Fatal("expected guidance error for image input")
	}
	if content.Success {
		t.Error("expected Success=false")
	}
	if len(content.Lines) != 0 {
		t.Errorf("expected no lines, got %v", content.Lines)
	}
}

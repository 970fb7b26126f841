// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"reflect"
	"testing"
)

func TestRewriteMultiCitations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "two keys",
			input: "Prior work [Smith2020; Jones2021] agrees.",
			want:  `Prior work \cite{smith2020,jones2021} agrees.`,
		},
		{
			name:  "three keys with disambiguation letter",
			input: "[Smith2020a; Jones2021; Lee2022]",
			want:  `\cite{smith2020a,jones2021,lee2022}`,
		},
		{
			name:  "single key left for the single pass",
			input: "[Smith2020]",
			want:  "[Smith2020]",
		},
		{
			name:  "semicolon prose is not a citation",
			input: "[see the appendix; details follow]",
			want:  "[see the appendix; details follow]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewriteMultiCitations(tt.input); got != tt.want {
				t.Errorf("rewriteMultiCitations(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRewriteSingleCitations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple key",
			input: "as shown [Lee2022] recently",
			want:  `as shown \cite{lee2022} recently`,
		},
		{
			name:  "disambiguation letter",
			input: "[Brown2019b]",
			want:  `\cite{brown2019b}`,
		},
		{
			name:  "mixed case author normalized",
			input: "[McDonald2021]",
			want:  `\cite{mcdonald2021}`,
		},
		{
			name:  "numeric-only brackets untouched",
			input: "[42]",
			want:  "[42]",
		},
		{
			name:  "markdown link text untouched",
			input: "[see appendix]",
			want:  "[see appendix]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewriteSingleCitations(tt.input); got != tt.want {
				t.Errorf("rewriteSingleCitations(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestMultiCitationPrecedence pins the ordering contract: the multi-key pass
// must consume a multi-key tag whole. Running the single pass first would
// split it into fragments.
func TestMultiCitationPrecedence(t *testing.T) {
	input := "[Smith2020; Jones2021]"

	got := rewriteSingleCitations(rewriteMultiCitations(input))
	want := `\cite{smith2020,jones2021}`
	if got != want {
		t.Errorf("multi-then-single = %q, want one command %q", got, want)
	}
}

func TestExtractCitationKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "dedupes and sorts",
			input: `\cite{smith2020} and \cite{lee2022} and \cite{smith2020}`,
			want:  []string{"lee2022", "smith2020"},
		},
		{
			name:  "splits comma-joined groups",
			input: `\cite{smith2020,jones2021} plus \cite{jones2021}`,
			want:  []string{"jones2021", "smith2020"},
		},
		{
			name:  "no citations",
			input: "plain body text",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCitationKeys(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractCitationKeys(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractCitationKeysIdempotent(t *testing.T) {
	text := `\cite{smith2020,jones2021} \cite{lee2022}`
	first := ExtractCitationKeys(text)
	second := ExtractCitationKeys(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %v vs %v", first, second)
	}
}

func TestSplitCitationKey(t *testing.T) {
	tests := []struct {
		key        string
		wantAuthor string
		wantYear   string
		wantOK     bool
	}{
		{"smith2020", "smith", "2020", true},
		{"smith2020a", "smith", "2020a", true},
		{"mcdonald1999", "mcdonald", "1999", true},
		{"2020", "", "", false},
		{"smith", "", "", false},
		{"smith20", "", "", false},
		{"Smith2020", "", "", false}, // keys are normalized lowercase
		{"", "", "", false},
	}

	for _, tt := range tests {
		author, year, ok := SplitCitationKey(tt.key)
		if author != tt.wantAuthor || year != tt.wantYear || ok != tt.wantOK {
			t.Errorf("SplitCitationKey(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.key, author, year, ok, tt.wantAuthor, tt.wantYear, tt.wantOK)
		}
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"
)

func TestTranspileHeaders(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"top level unnumbered", "# Title", `\section*{Title}`},
		{"section", "## Results", `\section{Results}`},
		{"subsection", "### Details", `\subsection{Details}`},
		{"subsubsection", "#### Minutiae", `\subsubsection{Minutiae}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transpile(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Transpile(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTranspileEmphasis(t *testing.T) {
	got, err := Transpile("**bold** and *italic* words")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `\textbf{bold}`) {
		t.Errorf("bold not converted: %q", got)
	}
	if !strings.Contains(got, `\textit{italic}`) {
		t.Errorf("italic not converted: %q", got)
	}
	if strings.Contains(got, `\textit{\textit{`) {
		t.Errorf("double-asterisk run misparsed as nested italics: %q", got)
	}
}

func TestTranspileListBalance(t *testing.T) {
	// Input ends mid-list with no trailing newline; the environment must
	// still close.
	got, err := Transpile("- a\n- b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := strings.Count(got, `\begin{itemize}`); n != 1 {
		t.Errorf("\\begin{itemize} count = %d, want 1:\n%s", n, got)
	}
	if n := strings.Count(got, `\end{itemize}`); n != 1 {
		t.Errorf("\\end{itemize} count = %d, want 1:\n%s", n, got)
	}
	if n := strings.Count(got, `\item`); n != 2 {
		t.Errorf("\\item count = %d, want 2:\n%s", n, got)
	}
}

func TestTranspileNumberedList(t *testing.T) {
	got, err := Transpile("1. first\n2. second\n10. tenth\n\nprose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, `\begin{enumerate}`) || !strings.Contains(got, `\end{enumerate}`) {
		t.Fatalf("enumerate environment missing:\n%s", got)
	}
	if n := strings.Count(got, `\item`); n != 3 {
		t.Errorf("\\item count = %d, want 3:\n%s", n, got)
	}
	if !strings.Contains(got, `\item tenth`) {
		t.Errorf("multi-digit marker not stripped:\n%s", got)
	}
}

func TestTranspileListItemsEscapedOnce(t *testing.T) {
	// Citation commands emitted by the earlier pass must survive list-item
	// escaping untouched, while plain specials in other items are escaped.
	got, err := Transpile("- see [Smith2020]\n- 50% done")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, `\item see \cite{smith2020}`) {
		t.Errorf("cite command corrupted by item escaping:\n%s", got)
	}
	if !strings.Contains(got, `\item 50\% done`) {
		t.Errorf("plain item text not escaped:\n%s", got)
	}
}

func TestTranspileWhitespaceNormalization(t *testing.T) {
	got, err := Transpile("para one\n\n\n\n\npara two")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "para one\n\npara two" {
		t.Errorf("blank runs not collapsed: %q", got)
	}
}

func TestTranspileRejectsInvalidUTF8(t *testing.T) {
	if _, err := Transpile("ok so far \xff\xfe broken"); err == nil {
		t.Error("expected error for invalid UTF-8 input")
	}
}

func TestTranspileLeavesUnrecognizedConstructs(t *testing.T) {
	input := "> block quote stays literal\n`code stays literal`"
	got, err := Transpile(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "> block quote stays literal") {
		t.Errorf("unrecognized construct rewritten: %q", got)
	}
}

func TestTranspileEndToEnd(t *testing.T) {
	input := "## Results\n\nOur findings [Lee2022] show **strong** support.\n- point one\n- point two"

	got, err := Transpile(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`\section{Results}`,
		`\cite{lee2022}`,
		`\textbf{strong}`,
		`\begin{itemize}`,
		`\item point one`,
		`\item point two`,
		`\end{itemize}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if strings.Count(got, `\begin{itemize}`) != strings.Count(got, `\end{itemize}`) {
		t.Errorf("unbalanced itemize environment:\n%s", got)
	}

	keys := ExtractCitationKeys(got)
	if len(keys) != 1 || keys[0] != "lee2022" {
		t.Errorf("ExtractCitationKeys = %v, want [lee2022]", keys)
	}
}

func TestTranspileFullDocument(t *testing.T) {
	input := strings.Join([]string{
		"# A Study of Things",
		"",
		"## Introduction",
		"",
		"Earlier work [Smith2020; Jones2021] found *mixed* results.",
		"",
		"[FIGURE overview]",
		"Caption: System Overview",
		"Description: all the parts",
		"",
		"## Data",
		"",
		"| Metric | Value |",
		"|--------|-------|",
		"| Recall | 0.9   |",
		"",
		"1. collect",
		"2. measure",
		"",
		"",
		"",
		"Closing remark [Lee2022].",
	}, "\n")

	got, err := Transpile(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`\section*{A Study of Things}`,
		`\section{Introduction}`,
		`\cite{smith2020,jones2021}`,
		`\textit{mixed}`,
		`\caption{System Overview}`,
		`Recall & 0.9 \\`,
		`\begin{enumerate}`,
		`\end{enumerate}`,
		`\cite{lee2022}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if strings.Contains(got, "Caption:") {
		t.Errorf("metadata line double-rendered:\n%s", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank-line runs not normalized:\n%s", got)
	}

	keys := ExtractCitationKeys(got)
	want := []string{"jones2021", "lee2022", "smith2020"}
	if len(keys) != len(want) {
		t.Fatalf("ExtractCitationKeys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

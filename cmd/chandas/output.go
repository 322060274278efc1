package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/chandas"
	"github.com/cours-de-latin/chandas/internal/translit"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
	formatYAML   = "yaml"
)

var (
	perfectColor = color.New(color.FgGreen, color.Bold)
	partialColor = color.New(color.FgYellow)
	failedColor  = color.New(color.FgRed)
	heavyColor   = color.New(color.Bold)
	fileColor    = color.New(color.FgCyan)
)

// setupColor applies --color. In auto mode colour is used only when out
// is a terminal.
func setupColor(out io.Writer, mode string) error {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(out)
	default:
		return fmt.Errorf("unknown color mode %q (want auto, on or off)", mode)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// verseOutput is the machine-readable form of a verse.
type verseOutput struct {
	File         string   `json:"file,omitempty" yaml:"file,omitempty"`
	Text         string   `json:"text_iast,omitempty" yaml:"text_iast,omitempty"`
	Syllabified  string   `json:"text_syllabified,omitempty" yaml:"text_syllabified,omitempty"`
	Weights      []string `json:"syllable_weights,omitempty" yaml:"syllable_weights,omitempty"`
	Morae        []int    `json:"morae_per_line,omitempty" yaml:"morae_per_line,omitempty"`
	Ganas        []string `json:"gana_abbreviations,omitempty" yaml:"gana_abbreviations,omitempty"`
	Meter        string   `json:"meter_label,omitempty" yaml:"meter_label,omitempty"`
	Alternatives []string `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
	Score        int      `json:"identification_score" yaml:"identification_score"`
	Error        string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func toOutput(v *chandas.Verse) verseOutput {
	out := verseOutput{
		Text:        translit.ToIAST(v.TextSyllabified),
		Syllabified: v.TextSyllabified,
		Weights:     splitLines(v.SyllableWeights),
		Morae:       v.MoraePerLine,
		Ganas:       splitLines(v.GanaAbbreviations),
		Meter:       v.MeterLabel,
		Score:       v.IdentificationScore,
	}
	if alts := v.Alternatives(); len(alts) > 1 {
		out.Alternatives = alts
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}

// writeVerse renders one verse in the chosen format. Pretty output is
// Verse.Summarize with heavy syllables and the label coloured.
func writeVerse(w io.Writer, format string, v *chandas.Verse, labelled bool) error {
	if format != formatPretty {
		return encode(w, format, toOutput(v))
	}
	lines := strings.Split(strings.TrimSuffix(v.Summarize(), "\n"), "\n")
	last := len(lines) - 1
	for i, line := range lines[:last] {
		weights := ""
		if ws := splitLines(v.SyllableWeights); i < len(ws) {
			weights = ws[i]
		}
		fmt.Fprintln(w, colorWeights(line, weights))
	}
	if labelled {
		fmt.Fprintln(w, scoreColor(v.IdentificationScore).Sprint(lines[last]))
	}
	return nil
}

// colorWeights emboldens the heavy marks of the weight column of line.
func colorWeights(line, weights string) string {
	if color.NoColor || weights == "" {
		return line
	}
	i := strings.Index(line, "  "+weights)
	if i < 0 {
		return line
	}
	var b strings.Builder
	for _, c := range weights {
		if c == chandas.Heavy {
			b.WriteString(heavyColor.Sprint(string(c)))
		} else {
			b.WriteRune(c)
		}
	}
	start := i + 2
	return line[:start] + b.String() + line[start+len(weights):]
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= chandas.MaxScore:
		return perfectColor
	case score >= 7:
		return partialColor
	}
	return failedColor
}

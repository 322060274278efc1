package chandas

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cours-de-latin/chandas/internal/translit"
)

const (
	// MaxScore marks a certain, perfect identification.
	MaxScore = 9

	// Unidentified is the label of a verse no test could classify.
	Unidentified = "ajñātam"

	// alternativeSeparator joins equally scored labels.
	alternativeSeparator = " athavā "
)

// Verse is one verse under identification.
type Verse struct {
	// TextSyllabified holds SLP1 syllables joined by SyllableSeparator,
	// one quarter (pāda) per line.
	TextSyllabified string
	// SyllableWeights holds one l/g string per line of TextSyllabified.
	SyllableWeights string
	// MoraePerLine holds the morae of every line.
	MoraePerLine []int
	// GanaAbbreviations holds the gaṇa encoding of every line.
	GanaAbbreviations string

	// MeterLabel is empty until a test has classified the verse.
	MeterLabel string
	// IdentificationScore runs from 0 (no attempt) to MaxScore.
	IdentificationScore int
}

// Result is one candidate classification produced by a test.
type Result struct {
	Label string
	Score int
}

// newVerse derives weights, morae and gaṇas for syllabified text.
func newVerse(syllabified string, sc Scanner) Verse {
	var v Verse
	v.resegment(syllabified, sc)
	return v
}

// resegment replaces the segmentation of v and everything derived from
// it. The previous classification belonged to the old segmentation and
// is dropped.
func (v *Verse) resegment(syllabified string, sc Scanner) {
	v.TextSyllabified = syllabified
	v.SyllableWeights = sc.ScanWeights(syllabified)
	v.MoraePerLine = CountMorae(v.SyllableWeights)
	v.GanaAbbreviations = GanaAbbreviate(v.SyllableWeights)
	v.MeterLabel = ""
	v.IdentificationScore = 0
}

// Clone returns a copy of v that shares no memory with it.
func (v Verse) Clone() Verse {
	v.MoraePerLine = slices.Clone(v.MoraePerLine)
	return v
}

// Quarters returns the weights of the first four pādas. It reports false
// when the verse has fewer than four non-empty pādas.
func (v Verse) Quarters() ([]string, bool) {
	lines := strings.Split(v.SyllableWeights, "\n")
	if len(lines) < 4 {
		return nil, false
	}
	lines = lines[:4]
	for _, l := range lines {
		if l == "" {
			return nil, false
		}
	}
	return lines, true
}

// Syllables returns all syllables of the verse, ignoring pāda breaks.
func (v Verse) Syllables() []string {
	var out []string
	for _, line := range strings.Split(v.TextSyllabified, "\n") {
		for _, syl := range strings.Split(line, SyllableSeparator) {
			if syl != "" {
				out = append(out, syl)
			}
		}
	}
	return out
}

// lineBreaks returns the syllable offsets of the first three pāda breaks.
func (v Verse) lineBreaks() ([3]int, bool) {
	var breaks [3]int
	lines := strings.Split(v.TextSyllabified, "\n")
	if len(lines) < 4 {
		return breaks, false
	}
	total := 0
	for i := 0; i < 3; i++ {
		for _, syl := range strings.Split(lines[i], SyllableSeparator) {
			if syl != "" {
				total++
			}
		}
		breaks[i] = total
	}
	return breaks, true
}

// Alternatives returns the equally scored labels held by v.
func (v Verse) Alternatives() []string {
	if v.MeterLabel == "" {
		return nil
	}
	return strings.Split(v.MeterLabel, alternativeSeparator)
}

// Combine merges a candidate into v: a higher score replaces the current
// label, an equal score adds the label as an alternative unless it is
// already there, a lower score is ignored. It reports whether v changed.
// The score of v never decreases.
func (v *Verse) Combine(r Result) bool {
	if r.Label == "" || r.Score <= 0 {
		return false
	}
	switch {
	case r.Score > v.IdentificationScore:
		v.MeterLabel = r.Label
		v.IdentificationScore = r.Score
		return true
	case r.Score == v.IdentificationScore:
		if slices.Contains(v.Alternatives(), r.Label) {
			return false
		}
		if v.MeterLabel == "" || v.MeterLabel == Unidentified {
			v.MeterLabel = r.Label
		} else {
			v.MeterLabel += alternativeSeparator + r.Label
		}
		return true
	}
	return false
}

// Summarize renders the verse line by line in IAST with weights, gaṇas
// and morae, followed by the label and score.
func (v Verse) Summarize() string {
	text := strings.Split(v.TextSyllabified, "\n")
	weights := strings.Split(v.SyllableWeights, "\n")
	ganas := strings.Split(v.GanaAbbreviations, "\n")

	width := 0
	for i, line := range text {
		text[i] = translit.ToIAST(line)
		width = max(width, runewidth.StringWidth(text[i]))
	}

	var b strings.Builder
	for i, line := range text {
		fmt.Fprintf(&b, "%s  %s", runewidth.FillRight(line, width), at(weights, i))
		if g := at(ganas, i); g != "" {
			fmt.Fprintf(&b, "  [%s]", g)
		}
		if i < len(v.MoraePerLine) {
			fmt.Fprintf(&b, "  (%d)", v.MoraePerLine[i])
		}
		b.WriteByte('\n')
	}
	label := v.MeterLabel
	if label == "" {
		label = Unidentified
	}
	fmt.Fprintf(&b, "%s [%d]\n", label, v.IdentificationScore)
	return b.String()
}

func at(ss []string, i int) string {
	if i < len(ss) {
		return ss[i]
	}
	return ""
}

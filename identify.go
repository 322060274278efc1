package chandas

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cours-de-latin/chandas/internal/scansion"
)

// Mode selects how the pāda breaks of the input are treated.
type Mode string

const (
	// ModeNone trusts the line breaks of the input.
	ModeNone Mode = "none"
	// ModeAggressive ignores the line breaks and searches around breaks
	// derived from the verse length.
	ModeAggressive Mode = "aggressive-resplit"
	// ModeLight searches close to the line breaks of the input.
	ModeLight Mode = "light-resplit"
	// ModeSingleQuarter treats the whole input as a single pāda.
	ModeSingleQuarter Mode = "single-quarter"
)

// ErrUnknownMode is returned for a mode name ParseMode does not know.
var ErrUnknownMode = errors.New("chandas: unknown resplit mode")

var modeAliases = map[string]Mode{
	"resplit_hard": ModeAggressive,
	"resplit_soft": ModeLight,
	"single_pAda":  ModeSingleQuarter,
	"single_pada":  ModeSingleQuarter,
}

// Modes lists the modes in documentation order.
func Modes() []Mode {
	return []Mode{ModeNone, ModeAggressive, ModeLight, ModeSingleQuarter}
}

// ParseMode parses a mode name. Legacy option names are accepted.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	for _, m := range Modes() {
		if s == string(m) {
			return m, nil
		}
	}
	if m, ok := modeAliases[s]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Scan syllabifies text and derives weights, morae and gaṇas without
// classifying it. An empty scheme asks for detection.
func (id *Identifier) Scan(text, scheme string) (*Verse, error) {
	syl, err := id.scanner.Syllabify(text, scheme)
	if err != nil {
		return nil, fmt.Errorf("chandas: scan: %w", err)
	}
	v := newVerse(syl, id.scanner)
	return &v, nil
}

// Identify scans text and classifies it under mode. An empty mode uses
// the default mode of id. The returned verse always carries a label:
// Unidentified with score 0, or 1 when a search found nothing. Errors are
// returned only for an unknown mode or scheme, or a done context.
func (id *Identifier) Identify(ctx context.Context, text string, mode Mode, scheme string) (*Verse, error) {
	if mode == "" {
		mode = id.mode
	}
	mode, err := ParseMode(string(mode))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err := id.Scan(text, scheme)
	if errors.Is(err, scansion.ErrEmptyText) {
		return &Verse{MeterLabel: Unidentified}, nil
	}
	if err != nil {
		return nil, err
	}

	searched := false
	switch mode {
	case ModeNone:
		id.classifier.Classify(v)
	case ModeSingleQuarter:
		id.classifySingleQuarter(v)
	case ModeAggressive, ModeLight:
		searched = true
		if err := id.resplit(ctx, v, mode); err != nil {
			return nil, err
		}
	}

	if v.MeterLabel == "" || v.IdentificationScore <= 0 {
		v.MeterLabel = Unidentified
		v.IdentificationScore = 0
		if searched {
			v.IdentificationScore = 1
		}
	}
	id.logger.Debug("verse identified",
		slog.String("mode", string(mode)),
		slog.String("label", v.MeterLabel),
		slog.Int("score", v.IdentificationScore),
	)
	return v, nil
}

// resplit replaces v with the best segmentation found around its
// length-derived breaks (aggressive) or its own line breaks (light).
func (id *Identifier) resplit(ctx context.Context, v *Verse, mode Mode) error {
	syllables := v.Syllables()
	n := len(syllables)
	if n < 4 {
		return nil
	}
	quarter := n / 4

	breaks := [3]int{n / 4, n / 2, 3 * n / 4}
	opts := SearchOptions{Radius: quarter / 2, Workers: id.workers}
	if mode == ModeLight {
		opts.Radius = quarter / 4
		opts.PinMiddle = id.pinMiddle
		if lb, ok := v.lineBreaks(); ok {
			breaks = lb
		}
	}

	s := &Searcher{Classifier: id.classifier, Scanner: id.scanner, Logger: id.logger}
	results, err := s.Search(ctx, *v, syllables, breaks, opts)
	if err != nil {
		return err
	}
	if best, ok := Best(results); ok {
		*v = best
	}
	return nil
}

// classifySingleQuarter flattens v into one pāda and matches it against
// the sama tables and the śloka pāda patterns.
func (id *Identifier) classifySingleQuarter(v *Verse) {
	v.resegment(strings.Join(v.Syllables(), SyllableSeparator), id.scanner)
	w := v.SyllableWeights
	if w == "" {
		return
	}
	const suffix = " (ekapāda)"
	if s, ok := id.catalog.LookupSama(len(w), v.GanaAbbreviations); ok {
		v.Combine(Result{Label: fmt.Sprintf("%s (%s)", s.Name, s.Canonical) + suffix, Score: 7})
		return
	}
	if t, ok := id.catalog.LookupAnustubhPada(w); ok {
		v.Combine(Result{Label: fmt.Sprintf("anuṣṭubh (%s)", t) + suffix, Score: 7})
	}
}

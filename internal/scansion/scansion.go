// Package scansion syllabifies romanised Sanskrit and scans syllable
// weights. It works on SLP1 internally; other schemes are converted first.
package scansion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cours-de-latin/chandas/internal/translit"
)

// SyllableSeparator separates syllables within a line of syllabified text.
const SyllableSeparator = " "

// ErrEmptyText is returned when the input contains no vowel at all.
var ErrEmptyText = errors.New("scansion: no syllables in text")

const (
	shortVowels = "aiufx"
	longVowels  = "AIUFXeEoO"
	// anusvāra, visarga and candrabindu close the syllable they follow
	modifiers  = "MH~"
	consonants = "kKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzshL"
)

// pādaMarks end a line like a newline does.
var pādaMarks = strings.NewReplacer(
	"/", "\n",
	"|", "\n",
	"\u0964", "\n", // । → newline
	"\u0965", "\n", // ॥ → newline
)

// Scanner implements syllabification and weight scanning. The zero value
// is ready to use.
type Scanner struct{}

// New returns a Scanner.
func New() *Scanner {
	return &Scanner{}
}

// Syllabify converts raw text into syllabified SLP1: one output line per
// non-empty input line or daṇḍa-delimited half, syllables joined by SyllableSeparator. Word
// boundaries inside a line are ignored, as in recitation; anything that
// is not an SLP1 letter is dropped.
func (s *Scanner) Syllabify(raw, scheme string) (string, error) {
	sch, err := translit.ParseScheme(scheme)
	if err != nil {
		return "", err
	}
	slp, err := translit.ToSLP(pādaMarks.Replace(raw), sch)
	if err != nil {
		return "", fmt.Errorf("scansion: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(slp, "\r\n", "\n"), "\n") {
		syls := Syllables(line)
		if len(syls) == 0 {
			continue
		}
		lines = append(lines, strings.Join(syls, SyllableSeparator))
	}
	if len(lines) == 0 {
		return "", ErrEmptyText
	}
	return strings.Join(lines, "\n"), nil
}

// Syllables splits one line of SLP1 into syllables. Between two vowels
// the last consonant opens the next syllable and the others close the
// previous one; leading consonants open the first syllable and trailing
// ones close the last.
func Syllables(line string) []string {
	var (
		syls    []string
		pending []byte
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case isVowel(c):
			if len(syls) > 0 && len(pending) > 1 {
				syls[len(syls)-1] += string(pending[:len(pending)-1])
				pending = pending[len(pending)-1:]
			}
			syls = append(syls, string(pending)+string(c))
			pending = pending[:0]
		case strings.IndexByte(modifiers, c) >= 0:
			if len(syls) > 0 && len(pending) == 0 {
				syls[len(syls)-1] += string(c)
			}
		case strings.IndexByte(consonants, c) >= 0:
			pending = append(pending, c)
		}
	}
	if len(syls) > 0 && len(pending) > 0 {
		syls[len(syls)-1] += string(pending)
	}
	return syls
}

// Weight returns 'g' for a heavy syllable (long vowel, or anything after
// the vowel) and 'l' for a light one.
func Weight(syllable string) byte {
	for i := 0; i < len(syllable); i++ {
		c := syllable[i]
		if strings.IndexByte(longVowels, c) >= 0 {
			return 'g'
		}
		if strings.IndexByte(shortVowels, c) >= 0 {
			if i < len(syllable)-1 {
				return 'g'
			}
			return 'l'
		}
	}
	return 'l'
}

// ScanWeights returns the weights of syllabified text, line by line.
func (s *Scanner) ScanWeights(syllabified string) string {
	lines := strings.Split(syllabified, "\n")
	for i, line := range lines {
		var b strings.Builder
		for _, syl := range strings.Split(line, SyllableSeparator) {
			if syl == "" {
				continue
			}
			b.WriteByte(Weight(syl))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func isVowel(c byte) bool {
	return strings.IndexByte(shortVowels, c) >= 0 || strings.IndexByte(longVowels, c) >= 0
}

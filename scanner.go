package chandas

import (
	"github.com/cours-de-latin/chandas/internal/scansion"
)

// SyllableSeparator separates syllables within a quarter of
// Verse.TextSyllabified.
const SyllableSeparator = scansion.SyllableSeparator

// Scanner is the scansion collaborator: it turns raw text into syllabified
// lines and reports the weight of every syllable. Implementations must be
// safe for concurrent use; the search calls ScanWeights from many trials.
type Scanner interface {
	// Syllabify returns the syllables of raw, SyllableSeparator-joined,
	// one line per input line. An empty scheme asks for detection.
	Syllabify(raw, scheme string) (string, error)
	// ScanWeights returns one l/g string per line of syllabified text.
	ScanWeights(syllabified string) string
}

var _ Scanner = (*scansion.Scanner)(nil)

// Package translit converts romanised Sanskrit between IAST, Harvard-Kyoto
// and SLP1. SLP1 is the internal scheme: one ASCII letter per phoneme,
// which keeps syllabification a byte-level affair.
package translit

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Scheme names a romanisation.
type Scheme string

const (
	IAST Scheme = "IAST"
	HK   Scheme = "HK"
	SLP  Scheme = "SLP"
)

// ErrUnknownScheme is returned for scheme names ParseScheme does not know.
var ErrUnknownScheme = errors.New("unknown transliteration scheme")

// ParseScheme resolves a user-supplied scheme name. The empty string
// yields the empty Scheme, which asks for detection.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "IAST":
		return IAST, nil
	case "HK", "HARVARD-KYOTO", "KH":
		return HK, nil
	case "SLP", "SLP1":
		return SLP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScheme, s)
}

// iastToSLP maps IAST (NFC, lowercase) to SLP1. Digraphs precede their
// first letter so that the single pass prefers them.
var iastToSLP = strings.NewReplacer(
	"ai", "E",
	"au", "O",
	"kh", "K",
	"gh", "G",
	"ch", "C",
	"jh", "J",
	"\u1e6dh", "W", // ṭh → W
	"\u1e0dh", "Q", // ḍh → Q
	"th", "T",
	"dh", "D",
	"ph", "P",
	"bh", "B",
	"\u0101", "A", // ā → A
	"\u012b", "I", // ī → I
	"\u016b", "U", // ū → U
	"\u1e5b", "f", // ṛ → f
	"\u1e5d", "F", // ṝ → F
	"\u1e37", "x", // ḷ → x
	"\u1e39", "X", // ḹ → X
	"\u1e43", "M", // ṃ → M
	"\u1e41", "M", // ṁ → M
	"\u1e25", "H", // ḥ → H
	"\u1e45", "N", // ṅ → N
	"\u00f1", "Y", // ñ → Y
	"\u1e6d", "w", // ṭ → w
	"\u1e0d", "q", // ḍ → q
	"\u1e47", "R", // ṇ → R
	"\u015b", "S", // ś → S
	"\u1e63", "z", // ṣ → z
)

// hkToSLP maps Harvard-Kyoto to SLP1.
var hkToSLP = strings.NewReplacer(
	"lRR", "X",
	"lR", "x",
	"RR", "F",
	"R", "f",
	"ai", "E",
	"au", "O",
	"kh", "K",
	"gh", "G",
	"G", "N",
	"ch", "C",
	"jh", "J",
	"J", "Y",
	"Th", "W",
	"T", "w",
	"Dh", "Q",
	"D", "q",
	"N", "R",
	"th", "T",
	"dh", "D",
	"ph", "P",
	"bh", "B",
	"z", "S",
	"S", "z",
)

// slpToIAST maps SLP1 back to IAST for display.
var slpToIAST = strings.NewReplacer(
	"A", "\u0101", // A → ā
	"I", "\u012b", // I → ī
	"U", "\u016b", // U → ū
	"f", "\u1e5b", // f → ṛ
	"F", "\u1e5d", // F → ṝ
	"x", "\u1e37", // x → ḷ
	"X", "\u1e39", // X → ḹ
	"E", "ai",
	"O", "au",
	"M", "\u1e43", // M → ṃ
	"H", "\u1e25", // H → ḥ
	"K", "kh",
	"G", "gh",
	"N", "\u1e45", // N → ṅ
	"C", "ch",
	"J", "jh",
	"Y", "\u00f1", // Y → ñ
	"w", "\u1e6d", // w → ṭ
	"W", "\u1e6dh", // W → ṭh
	"q", "\u1e0d", // q → ḍ
	"Q", "\u1e0dh", // Q → ḍh
	"R", "\u1e47", // R → ṇ
	"T", "th",
	"D", "dh",
	"P", "ph",
	"B", "bh",
	"S", "\u015b", // S → ś
	"z", "\u1e63", // z → ṣ
)

// iastMarks are letters only IAST uses.
const iastMarks = "āīūṛṝḷḹṃṁḥṅñṭḍṇśṣ"

// reAspirate matches a stop written with a following h, which SLP1 never does.
var reAspirate = regexp.MustCompile(`[kgcjtdpbTD]h`)

// slpOnly are letters SLP1 uses and Harvard-Kyoto does not.
const slpOnly = "fFxXwWqQKCPBY"

// reVocalicR matches Harvard-Kyoto ṛ, ṝ or ḷ: R after a consonant and not
// before a vowel. In SLP1 R is ṇ, which is followed by a vowel there.
var reVocalicR = regexp.MustCompile(`[kgcjTDNtdnpbmyrlvzSshGJ]R(?:[^aAiIuUeo]|$)`)

// Detect guesses the scheme of text: IAST if it carries IAST diacritics,
// Harvard-Kyoto if it writes aspirates as digraphs, SLP1 if it uses a
// letter only SLP1 has, Harvard-Kyoto if it writes vocalic R, and SLP1
// otherwise.
func Detect(text string) Scheme {
	text = norm.NFC.String(text)
	switch {
	case strings.ContainsAny(strings.ToLower(text), iastMarks):
		return IAST
	case reAspirate.MatchString(text):
		return HK
	case strings.ContainsAny(text, slpOnly):
		return SLP
	case reVocalicR.MatchString(text):
		return HK
	}
	return SLP
}

// ToSLP transliterates text from scheme into SLP1. An empty scheme is
// detected first. Characters outside the scheme pass through unchanged.
func ToSLP(text string, from Scheme) (string, error) {
	if from == "" {
		from = Detect(text)
	}
	switch from {
	case IAST:
		return iastToSLP.Replace(strings.ToLower(norm.NFC.String(text))), nil
	case HK:
		return hkToSLP.Replace(text), nil
	case SLP:
		return text, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScheme, from)
}

// ToIAST renders SLP1 text in IAST.
func ToIAST(slp string) string {
	return slpToIAST.Replace(slp)
}

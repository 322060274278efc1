package chandas

import (
	"strings"
)

// Syllable weights are written with one byte per syllable.
const (
	Light = 'l'
	Heavy = 'g'
)

// ganaByTriplet maps a light/heavy triplet to its traditional gaṇa letter
// (SLP1 initial of ya, ma, ta, ra, ja, bha, na, sa).
var ganaByTriplet = map[string]byte{
	"lll": 'n',
	"llg": 's',
	"lgl": 'j',
	"lgg": 'y',
	"gll": 'B',
	"glg": 'r',
	"ggl": 't',
	"ggg": 'm',
}

// CountMorae returns the morae of every newline-separated line of weights:
// one for a light syllable, two for a heavy one.
func CountMorae(weights string) []int {
	lines := strings.Split(weights, "\n")
	out := make([]int, len(lines))
	for i, line := range lines {
		out[i] = moraeOf(line)
	}
	return out
}

func moraeOf(line string) int {
	n := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case Light:
			n++
		case Heavy:
			n += 2
		}
	}
	return n
}

// GanaAbbreviate encodes every newline-separated line of weights as gaṇa
// letters, one per complete triplet, with the one or two leftover
// syllables written as l/g.
func GanaAbbreviate(weights string) string {
	lines := strings.Split(weights, "\n")
	for i, line := range lines {
		lines[i] = ganaOf(line)
	}
	return strings.Join(lines, "\n")
}

func ganaOf(line string) string {
	var b strings.Builder
	i := 0
	for ; i+3 <= len(line); i += 3 {
		g, ok := ganaByTriplet[line[i:i+3]]
		if !ok {
			// not a weights string; keep it visible rather than guessing
			b.WriteString(line[i : i+3])
			continue
		}
		b.WriteByte(g)
	}
	b.WriteString(line[i:])
	return b.String()
}

// ganaSyllables returns the number of syllables a gaṇa string stands for.
func ganaSyllables(gana string) int {
	n := 0
	for i := 0; i < len(gana); i++ {
		switch gana[i] {
		case Light, Heavy:
			n++
		default:
			n += 3
		}
	}
	return n
}

package chandas

import (
	"fmt"
	"slices"
	"strings"
)

// samavrttaTest recognises syllable-counted meters: sama, ardhasama and
// upajāti verses, and sama verses with some faulty pādas.
type samavrttaTest struct {
	catalog *Catalog
}

func (samavrttaTest) Name() string { return "samavṛtta" }

func (t samavrttaTest) Attempt(v Verse) []Result {
	q, ok := v.Quarters()
	if !ok {
		return nil
	}
	ganas := strings.Split(v.GanaAbbreviations, "\n")
	if len(ganas) < 4 {
		return nil
	}
	ganas = ganas[:4]

	var out []Result
	add := func(r Result, ok bool) {
		if ok {
			out = append(out, r)
		}
	}

	conc, rep := concordance(q)
	if conc == 4 {
		out = append(out, t.sama(q[rep], ganas[rep], MaxScore))
	}
	if conc == 2 && trunc(q[0]) != "" && trunc(q[1]) != "" &&
		trunc(q[0]) == trunc(q[2]) && trunc(q[1]) == trunc(q[3]) {
		out = append(out, t.ardhasama(ganas[0], ganas[1]))
	}

	lengths := distinctLengths(q)
	mixed := slices.Equal(lengths, []int{11, 12})
	if len(lengths) == 1 || mixed {
		add(t.upajati(q, ganas, []int{0, 1, 2, 3}))
	}

	if conc == 2 || conc == 3 {
		r := t.sama(q[rep], ganas[rep], 4+conc)
		r.Label += fmt.Sprintf(" (%d eva pādāḥ samyak)", conc)
		out = append(out, r)
	}

	if (len(lengths) == 2 || len(lengths) == 3) && !mixed {
		if idx := majority(q); len(idx) >= 2 {
			add(t.upajati(q, ganas, idx))
		}
	}
	return out
}

func (t samavrttaTest) sama(weights, gana string, score int) Result {
	if s, ok := t.catalog.LookupSama(len(weights), gana); ok {
		return Result{Label: fmt.Sprintf("%s (%s)", s.Name, s.Canonical), Score: score}
	}
	return Result{Label: fmt.Sprintf("ajñātasamavṛtta? (%d: %s)", len(weights), gana), Score: score}
}

func (t samavrttaTest) ardhasama(odd, even string) Result {
	if a, ok := t.catalog.LookupArdhasama(odd, even); ok {
		return Result{Label: a.Name + " (ardhasamavṛtta)", Score: 8}
	}
	return Result{Label: fmt.Sprintf("ajñātārdhasamavṛtta? (odd: %s, even: %s)", odd, even), Score: 8}
}

// upajati classifies the pādas at idx one by one. It needs at least two
// classified pādas carrying at least two different meters.
func (t samavrttaTest) upajati(q, ganas []string, idx []int) (Result, bool) {
	var (
		names      []string
		classified int
		has11      bool
		canonical  bool
	)
	for _, i := range idx {
		n := len(q[i])
		if n == 11 {
			has11 = true
		}
		s, ok := t.catalog.LookupSama(n, ganas[i])
		if !ok {
			continue
		}
		classified++
		names = append(names, s.Name)
		if n == 11 && s.Upajati {
			canonical = true
		}
	}
	names = unique(names)
	if classified < 2 || len(names) < 2 {
		return Result{}, false
	}

	score := 8
	if !has11 || !canonical {
		score--
	}
	if classified < 4 {
		score -= 2
	}
	// a majority subset reports the pādas it kept, the full verse those
	// it could classify
	kept := classified
	if len(idx) < 4 {
		kept = len(idx)
	}
	label := fmt.Sprintf("upajāti (%s)", strings.Join(names, ", "))
	if kept < 4 {
		label += fmt.Sprintf(" (%d eva pādāḥ samyak)", kept)
	}
	return Result{Label: label, Score: score}, true
}

// concordance returns the size of the largest group of pādas that agree
// up to their final syllable, and the first pāda of that group. Pādas of
// a single syllable agree with nothing. A group of one is no concordance
// and counts as 0.
func concordance(q []string) (count, rep int) {
	for i := range q {
		seed := trunc(q[i])
		if seed == "" {
			continue
		}
		n := 0
		for j := range q {
			if trunc(q[j]) == seed {
				n++
			}
		}
		if n > count {
			count, rep = n, i
		}
	}
	if count < 2 {
		return 0, 0
	}
	return count, rep
}

// trunc drops the final anceps syllable.
func trunc(w string) string {
	if w == "" {
		return w
	}
	return w[:len(w)-1]
}

// distinctLengths returns the sorted pāda lengths.
func distinctLengths(q []string) []int {
	var out []int
	for _, w := range q {
		if !slices.Contains(out, len(w)) {
			out = append(out, len(w))
		}
	}
	slices.Sort(out)
	return out
}

// majority returns the indices of the pādas having the most frequent
// length; on a tie the length met first wins.
func majority(q []string) []int {
	best, bestCount := 0, 0
	for _, w := range q {
		n := 0
		for _, x := range q {
			if len(x) == len(w) {
				n++
			}
		}
		if n > bestCount {
			best, bestCount = len(w), n
		}
	}
	var idx []int
	for i, w := range q {
		if len(w) == best {
			idx = append(idx, i)
		}
	}
	return idx
}

func unique(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

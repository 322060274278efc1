package chandas

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// AnustubhSpec names one admissible odd-pāda pattern of the śloka.
type AnustubhSpec struct {
	Name    string
	Pattern string
}

// SamaSpec describes a meter whose four pādas share one fixed pattern.
type SamaSpec struct {
	// Family is the pāda length in syllables.
	Family int    `toml:"family"`
	Name   string `toml:"name"`
	// Pattern is a regular expression over gaṇa letters.
	Pattern string `toml:"pattern"`
	// Canonical is the textbook gaṇa sequence shown in labels.
	Canonical string `toml:"canonical"`
	// Upajati marks patterns that combine in upajāti verses.
	Upajati bool `toml:"upajati"`
}

// ArdhasamaSpec describes a meter whose odd and even pādas follow
// two different fixed patterns.
type ArdhasamaSpec struct {
	Name          string `toml:"name"`
	Odd           string `toml:"odd"`
	Even          string `toml:"even"`
	OddCanonical  string `toml:"odd_canonical"`
	EvenCanonical string `toml:"even_canonical"`
}

// JatiSpec describes a mora-counted meter.
type JatiSpec struct {
	Name     string `toml:"name"`
	Flexible string `toml:"flexible"`
	Standard [4]int `toml:"standard"`
}

// CatalogSpec is the uncompiled form of a Catalog, as written in the
// built-in tables or in a TOML extension file.
type CatalogSpec struct {
	Sama      []SamaSpec      `toml:"sama"`
	Ardhasama []ArdhasamaSpec `toml:"ardhasama"`
	Jati      []JatiSpec      `toml:"jati"`
}

// BuiltinCatalogSpec returns a copy of the built-in pattern tables.
func BuiltinCatalogSpec() CatalogSpec {
	return CatalogSpec{
		Sama:      slices.Clone(builtinSama),
		Ardhasama: slices.Clone(builtinArdhasama),
		Jati:      slices.Clone(builtinJati),
	}
}

// SamaEntry is a compiled SamaSpec.
type SamaEntry struct {
	SamaSpec
	re *regexp.Regexp
}

// ArdhasamaEntry is a compiled ArdhasamaSpec.
type ArdhasamaEntry struct {
	ArdhasamaSpec
	odd, even *regexp.Regexp
}

// JatiEntry is a compiled JatiSpec.
type JatiEntry struct {
	JatiSpec
	flexible *regexp.Regexp
}

type anustubhEntry struct {
	name string
	re   *regexp.Regexp
}

// Catalog holds the compiled pattern tables. It is immutable once built
// and safe for concurrent use.
type Catalog struct {
	anustubhEven *regexp.Regexp
	anustubhOdd  []anustubhEntry
	sama         []SamaEntry
	ardhasama    []ArdhasamaEntry
	jati         []JatiEntry
}

// DefaultCatalog returns the catalog built from the built-in tables.
var DefaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog(BuiltinCatalogSpec())
	if err != nil {
		panic("chandas: built-in catalog: " + err.Error())
	}
	return c
})

// NewCatalog compiles spec, preserving the order of every table.
// Each entry is checked against its own canonical form.
func NewCatalog(spec CatalogSpec) (*Catalog, error) {
	c := &Catalog{
		anustubhEven: anchored(anustubhEven),
		sama:         make([]SamaEntry, 0, len(spec.Sama)),
		ardhasama:    make([]ArdhasamaEntry, 0, len(spec.Ardhasama)),
		jati:         make([]JatiEntry, 0, len(spec.Jati)),
	}
	for _, a := range anustubhOdd {
		c.anustubhOdd = append(c.anustubhOdd, anustubhEntry{name: a.Name, re: anchored(a.Pattern)})
	}

	for _, s := range spec.Sama {
		if s.Name == "" {
			return nil, fmt.Errorf("sama entry for family %d: missing name", s.Family)
		}
		re, err := compileAnchored(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("sama %q: %w", s.Name, err)
		}
		if n := ganaSyllables(s.Canonical); n != s.Family {
			return nil, fmt.Errorf("sama %q: canonical %q has %d syllables, family is %d", s.Name, s.Canonical, n, s.Family)
		}
		if !re.MatchString(s.Canonical) {
			return nil, fmt.Errorf("sama %q: pattern %q does not match canonical %q", s.Name, s.Pattern, s.Canonical)
		}
		c.sama = append(c.sama, SamaEntry{SamaSpec: s, re: re})
	}

	for _, a := range spec.Ardhasama {
		if a.Name == "" {
			return nil, fmt.Errorf("ardhasama entry %q/%q: missing name", a.Odd, a.Even)
		}
		odd, err := compileAnchored(a.Odd)
		if err != nil {
			return nil, fmt.Errorf("ardhasama %q odd: %w", a.Name, err)
		}
		even, err := compileAnchored(a.Even)
		if err != nil {
			return nil, fmt.Errorf("ardhasama %q even: %w", a.Name, err)
		}
		if !odd.MatchString(a.OddCanonical) || !even.MatchString(a.EvenCanonical) {
			return nil, fmt.Errorf("ardhasama %q: patterns do not match canonical forms", a.Name)
		}
		c.ardhasama = append(c.ardhasama, ArdhasamaEntry{ArdhasamaSpec: a, odd: odd, even: even})
	}

	for _, j := range spec.Jati {
		if j.Name == "" {
			return nil, fmt.Errorf("jāti entry %q: missing name", j.Flexible)
		}
		re, err := compileAnchored(j.Flexible)
		if err != nil {
			return nil, fmt.Errorf("jāti %q: %w", j.Name, err)
		}
		if !re.MatchString(renderMorae(j.Standard[:])) {
			return nil, fmt.Errorf("jāti %q: flexible pattern does not match standard %v", j.Name, j.Standard)
		}
		c.jati = append(c.jati, JatiEntry{JatiSpec: j, flexible: re})
	}
	return c, nil
}

func anchored(p string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + p + `)$`)
}

func compileAnchored(p string) (*regexp.Regexp, error) {
	if p == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	return regexp.Compile(`^(?:` + p + `)$`)
}

// LookupAnustubh tests an odd/even pair of pāda weights against the śloka
// patterns and returns the name of the odd pāda's type.
func (c *Catalog) LookupAnustubh(odd, even string) (string, bool) {
	if !c.anustubhEven.MatchString(even) {
		return "", false
	}
	return c.anustubhOddType(odd)
}

func (c *Catalog) anustubhOddType(odd string) (string, bool) {
	for _, a := range c.anustubhOdd {
		if a.re.MatchString(odd) {
			return a.name, true
		}
	}
	return "", false
}

// LookupAnustubhPada classifies a single pāda of weights as either an odd
// pāda (returning its type) or an even pāda (returning "yugma").
func (c *Catalog) LookupAnustubhPada(weights string) (string, bool) {
	if c.anustubhEven.MatchString(weights) {
		return "yugma", true
	}
	name, ok := c.anustubhOddType(weights)
	if !ok {
		return "", false
	}
	return "ayugma: " + name, true
}

// LookupSama returns the first fixed-pattern meter of the given family
// whose pattern matches gana.
func (c *Catalog) LookupSama(family int, gana string) (SamaEntry, bool) {
	for _, s := range c.sama {
		if s.Family == family && s.re.MatchString(gana) {
			return s, true
		}
	}
	return SamaEntry{}, false
}

// LookupArdhasama returns the first half-repeating meter matching an
// odd and an even pāda.
func (c *Catalog) LookupArdhasama(oddGana, evenGana string) (ArdhasamaEntry, bool) {
	for _, a := range c.ardhasama {
		if a.odd.MatchString(oddGana) && a.even.MatchString(evenGana) {
			return a, true
		}
	}
	return ArdhasamaEntry{}, false
}

// LookupJati returns the first mora-counted meter confirmed by the morae
// and weights of four pādas. A pāda may fall one mora short of the
// standard only when its final syllable is light and can be counted heavy.
func (c *Catalog) LookupJati(morae []int, weights []string) (JatiEntry, bool) {
	if len(morae) < 4 || len(weights) < 4 {
		return JatiEntry{}, false
	}
	key := renderMorae(morae[:4])
	for _, j := range c.jati {
		if !j.flexible.MatchString(key) {
			continue
		}
		if j.confirms(morae, weights) {
			return j, true
		}
	}
	return JatiEntry{}, false
}

func (j JatiEntry) confirms(morae []int, weights []string) bool {
	for i := 0; i < 4; i++ {
		switch {
		case morae[i] == j.Standard[i]:
		case morae[i] == j.Standard[i]-1 && strings.HasSuffix(weights[i], string(Light)):
		default:
			return false
		}
	}
	return true
}

// Families returns the pāda lengths that have fixed-pattern meters,
// in ascending order.
func (c *Catalog) Families() []int {
	var out []int
	for _, s := range c.sama {
		if !slices.Contains(out, s.Family) {
			out = append(out, s.Family)
		}
	}
	slices.Sort(out)
	return out
}

// SamaByFamily returns the fixed-pattern meters of one family in lookup order.
func (c *Catalog) SamaByFamily(family int) []SamaEntry {
	var out []SamaEntry
	for _, s := range c.sama {
		if s.Family == family {
			out = append(out, s)
		}
	}
	return out
}

// Ardhasama returns the half-repeating meters in lookup order.
func (c *Catalog) Ardhasama() []ArdhasamaEntry {
	return slices.Clone(c.ardhasama)
}

// Jati returns the mora-counted meters in lookup order.
func (c *Catalog) Jati() []JatiEntry {
	return slices.Clone(c.jati)
}

// AnustubhTypes returns the names of the odd-pāda types in lookup order.
func (c *Catalog) AnustubhTypes() []string {
	out := make([]string, len(c.anustubhOdd))
	for i, a := range c.anustubhOdd {
		out[i] = a.name
	}
	return out
}

func renderMorae(morae []int) string {
	parts := make([]string, len(morae))
	for i, m := range morae {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, ",")
}

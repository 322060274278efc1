package chandas

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/cours-de-latin/chandas/internal/scansion"
)

func TestWiggleOffsets(t *testing.T) {
	tests := []struct {
		start, radius int
		want          []int
	}{
		{8, 0, []int{8}},
		{8, 1, []int{8, 9, 7}},
		{8, 3, []int{8, 9, 7, 10, 6, 11, 5}},
	}
	for _, tt := range tests {
		if got := WiggleOffsets(tt.start, tt.radius); !slices.Equal(got, tt.want) {
			t.Errorf("WiggleOffsets(%d, %d) = %v, want %v", tt.start, tt.radius, got, tt.want)
		}
	}
}

func TestResplit(t *testing.T) {
	syls := strings.Fields("a b c d e f g")
	if got, want := Resplit(syls, 1, 3, 6), "a\nb c\nd e f\ng"; got != want {
		t.Errorf("Resplit = %q, want %q", got, want)
	}
}

func TestSplitsStayInRange(t *testing.T) {
	got := splits(6, [3]int{1, 3, 5}, SearchOptions{Radius: 2})
	if len(got) == 0 {
		t.Fatal("no valid split")
	}
	if got[0] != (split{1, 3, 5}) {
		t.Errorf("first split = %v, want the starting breaks", got[0])
	}
	for _, s := range got {
		if !(0 < s.ab && s.ab < s.bc && s.bc < s.cd && s.cd < 6) {
			t.Errorf("invalid split %v", s)
		}
	}

	pinned := splits(32, [3]int{8, 14, 24}, SearchOptions{Radius: 2, PinMiddle: true})
	for _, s := range pinned {
		if s.bc != 14 {
			t.Fatalf("pinned middle break moved: %v", s)
		}
	}
	if len(pinned) != 25 {
		t.Errorf("pinned search has %d splits, want 25", len(pinned))
	}
}

// gita47Shifted is BG 4.7 with its second line break two syllables early.
const gita47Shifted = "yadA yadA hi Darmasya\nglAnirBavati BA\nrata aByutTAnamaDarmasya\ntadAtmAnaM sfjAmyaham"

func shiftedVerse(t *testing.T) Verse {
	t.Helper()
	sc := scansion.New()
	syl, err := sc.Syllabify(gita47Shifted, "SLP")
	if err != nil {
		t.Fatalf("Syllabify: %v", err)
	}
	return newVerse(syl, sc)
}

func TestSearchRecoversShiftedBreak(t *testing.T) {
	base := shiftedVerse(t)
	breaks, ok := base.lineBreaks()
	if !ok || breaks != [3]int{8, 14, 24} {
		t.Fatalf("lineBreaks() = %v, %v", breaks, ok)
	}

	for _, workers := range []int{1, 4} {
		s := &Searcher{Classifier: NewClassifier(DefaultCatalog()), Scanner: scansion.New()}
		results, err := s.Search(context.Background(), base, base.Syllables(), breaks, SearchOptions{Radius: 2, Workers: workers})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		best, ok := Best(results)
		if !ok {
			t.Fatalf("workers=%d: no result", workers)
		}
		if best.IdentificationScore != 9 || best.MeterLabel != "anuṣṭubh (ab: pathyā, cd: pathyā)" {
			t.Errorf("workers=%d: best = %q [%d]", workers, best.MeterLabel, best.IdentificationScore)
		}
		if b, _ := best.lineBreaks(); b != [3]int{8, 16, 24} {
			t.Errorf("workers=%d: best breaks = %v, want [8 16 24]", workers, b)
		}
	}
	if base.MeterLabel != "" || base.IdentificationScore != 0 {
		t.Error("Search modified the base verse")
	}
}

func TestSearchSequentialStopsAtFirstPerfect(t *testing.T) {
	base := shiftedVerse(t)
	s := &Searcher{Classifier: NewClassifier(DefaultCatalog()), Scanner: scansion.New()}
	results, err := s.Search(context.Background(), base, base.Syllables(), [3]int{8, 16, 24}, SearchOptions{Radius: 2, Workers: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].IdentificationScore != 9 {
		t.Errorf("sequential search returned %d results, want the single perfect one", len(results))
	}
}

func TestSearchExhaustsWithoutPerfect(t *testing.T) {
	sc := scansion.New()
	syl, err := sc.Syllabify(kolahale, "SLP")
	if err != nil {
		t.Fatalf("Syllabify: %v", err)
	}
	base := newVerse(syl, sc)
	s := &Searcher{Classifier: NewClassifier(DefaultCatalog()), Scanner: sc}
	results, err := s.Search(context.Background(), base, base.Syllables(), [3]int{11, 22, 33}, SearchOptions{Radius: 5, Workers: 3})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	best, ok := Best(results)
	if !ok || best.IdentificationScore != 8 || !strings.HasPrefix(best.MeterLabel, "upajāti") {
		t.Errorf("best = %q [%d], %v", best.MeterLabel, best.IdentificationScore, ok)
	}
	for _, r := range results {
		if r.IdentificationScore >= MaxScore {
			t.Errorf("unexpected perfect trial %q", r.MeterLabel)
		}
	}
}

func TestSearchCancelled(t *testing.T) {
	base := shiftedVerse(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &Searcher{Classifier: NewClassifier(DefaultCatalog()), Scanner: scansion.New()}
	for _, workers := range []int{1, 2} {
		_, err := s.Search(ctx, base, base.Syllables(), [3]int{8, 14, 24}, SearchOptions{Radius: 2, Workers: workers})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: err = %v, want context.Canceled", workers, err)
		}
	}
}

func TestBest(t *testing.T) {
	if _, ok := Best(nil); ok {
		t.Error("Best(nil) reported a result")
	}
	results := []Verse{
		{MeterLabel: "a", IdentificationScore: 6},
		{MeterLabel: "b", IdentificationScore: 8},
		{MeterLabel: "c", IdentificationScore: 8},
	}
	if got, _ := Best(results); got.MeterLabel != "b" {
		t.Errorf("Best = %q, want the first of the highest", got.MeterLabel)
	}
}

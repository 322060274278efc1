package chandas

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cours-de-latin/chandas/internal/translit"
)

const (
	gita47 = `yadA yadA hi Darmasya
glAnirBavati BArata
aByutTAnamaDarmasya
tadAtmAnaM sfjAmyaham`

	kolahale = `kolAhale kAkakulasya jAte
virAjate kokilakUjitaM kim
parasparaM saMvadatAM KalAnAM
mOnaM viDeyaM satataM suDIBiH`

	sampurna = `sampūrṇakumbho na karoti śabdam
ardho ghaṭo ghoṣamupaiti nūnam
vidvānkulīno na karoti garvaṃ
jalpanti mūḍhāstu guṇairvihīnāḥ`

	gita11 = `dharmakṣetre kurukṣetre samavetā yuyutsavaḥ /
māmakāḥ pāṇḍavāś caiva kim akurvata sañjaya //`
)

func TestNew(t *testing.T) {
	id := New()
	if id.Catalog() != DefaultCatalog() {
		t.Error("New does not use the built-in catalogue")
	}
	if id.DefaultMode() != ModeNone {
		t.Errorf("DefaultMode() = %q, want %q", id.DefaultMode(), ModeNone)
	}
	if id.Classifier() == nil {
		t.Fatal("nil classifier")
	}
}

func TestIdentifyFixtures(t *testing.T) {
	id := New()
	tests := []struct {
		name      string
		text      string
		mode      Mode
		scheme    string
		wantLabel string
		wantScore int
	}{
		{"gītā 4.7", gita47, ModeNone, "SLP", "anuṣṭubh (ab: pathyā, cd: pathyā)", 9},
		{"gītā 4.7 resplit", gita47, ModeAggressive, "SLP", "anuṣṭubh (ab: pathyā, cd: pathyā)", 9},
		{"kolāhale", kolahale, ModeNone, "SLP", "upajāti (indravajrā, upendravajrā)", 8},
		{"kolāhale resplit", kolahale, ModeAggressive, "SLP", "upajāti (indravajrā, upendravajrā)", 8},
		{"sampūrṇakumbho", sampurna, ModeNone, "IAST", "indravajrā (ttjgg)", 9},
		{"sampūrṇakumbho detected", sampurna, ModeNone, "", "indravajrā (ttjgg)", 9},
		{"sampūrṇakumbha", strings.Replace(sampurna, "kumbho", "kumbha", 1), ModeNone, "IAST", "indravajrā (ttjgg) (3 eva pādāḥ samyak)", 7},
		{"sampūrṇakumbho with a syllable deleted", strings.Replace(sampurna, "kumbho na karoti", "kumbho karoti", 1), ModeNone, "IAST", "indravajrā (ttjgg) (3 eva pādāḥ samyak)", 7},
		{"stray syllables", "kA\nka\nkA\nkA", ModeNone, "SLP", Unidentified, 0},
		{"stray syllables resplit", "kA ka kA kA", ModeAggressive, "SLP", Unidentified, 1},
		{"gītā 1.1 in halves", gita11, ModeNone, "IAST", Unidentified, 0},
		{"gītā 1.1 resplit", gita11, ModeAggressive, "IAST", "anuṣṭubh (ab: pathyā, cd: pathyā)", 9},
		{"gītā 1.1 light resplit falls back", gita11, ModeLight, "IAST", "anuṣṭubh (ab: pathyā, cd: pathyā)", 9},
		{"single pāda", "yadA yadA hi Darmasya", ModeSingleQuarter, "SLP", "anuṣṭubh (ayugma: pathyā) (ekapāda)", 7},
		{"single even pāda", "glAnirBavati BArata", ModeSingleQuarter, "SLP", "anuṣṭubh (yugma) (ekapāda)", 7},
		{"single indravajrā pāda", "sampūrṇakumbho na karoti śabdam", ModeSingleQuarter, "IAST", "indravajrā (ttjgg) (ekapāda)", 7},
		{"empty", "  \n ", ModeNone, "", Unidentified, 0},
		{"empty resplit", "", ModeAggressive, "", Unidentified, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := id.Identify(context.Background(), tt.text, tt.mode, tt.scheme)
			if err != nil {
				t.Fatalf("Identify: %v", err)
			}
			if v.MeterLabel != tt.wantLabel || v.IdentificationScore != tt.wantScore {
				t.Errorf("Identify = %q [%d], want %q [%d]\n%s",
					v.MeterLabel, v.IdentificationScore, tt.wantLabel, tt.wantScore, v.Summarize())
			}
		})
	}
}

func TestIdentifyLightResplit(t *testing.T) {
	const shifted = gita47Shifted

	v, err := New().Identify(context.Background(), shifted, ModeLight, "SLP")
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if v.IdentificationScore != 9 {
		t.Errorf("light resplit = %q [%d], want score 9", v.MeterLabel, v.IdentificationScore)
	}

	pinned, err := New(WithPinMiddle(true)).Identify(context.Background(), shifted, ModeLight, "SLP")
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if pinned.IdentificationScore >= 9 {
		t.Errorf("pinned light resplit reached %d", pinned.IdentificationScore)
	}

	none, err := New().Identify(context.Background(), shifted, ModeNone, "SLP")
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if none.IdentificationScore >= 9 {
		t.Errorf("unsplit shifted verse reached %d", none.IdentificationScore)
	}
}

func TestIdentifyFailedSearchScoresOne(t *testing.T) {
	v, err := New().Identify(context.Background(), "ka ka ka", ModeAggressive, "SLP")
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if v.MeterLabel != Unidentified || v.IdentificationScore != 1 {
		t.Errorf("Identify = %q [%d], want %q [1]", v.MeterLabel, v.IdentificationScore, Unidentified)
	}
}

func TestIdentifyWorkersAgree(t *testing.T) {
	seq := New(WithWorkers(1))
	par := New(WithWorkers(8))
	for _, text := range []string{gita47Shifted, kolahale} {
		a, err := seq.Identify(context.Background(), text, ModeAggressive, "SLP")
		if err != nil {
			t.Fatal(err)
		}
		b, err := par.Identify(context.Background(), text, ModeAggressive, "SLP")
		if err != nil {
			t.Fatal(err)
		}
		if a.MeterLabel != b.MeterLabel || a.IdentificationScore != b.IdentificationScore || a.TextSyllabified != b.TextSyllabified {
			t.Errorf("sequential %q [%d] and parallel %q [%d] disagree", a.MeterLabel, a.IdentificationScore, b.MeterLabel, b.IdentificationScore)
		}
	}
}

func TestIdentifyDefaultMode(t *testing.T) {
	id := New(WithDefaultMode(ModeAggressive))
	v, err := id.Identify(context.Background(), gita11, "", "IAST")
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if v.IdentificationScore != 9 {
		t.Errorf("default aggressive mode scored %d", v.IdentificationScore)
	}
}

func TestIdentifyErrors(t *testing.T) {
	id := New()
	if _, err := id.Identify(context.Background(), gita47, "sideways", ""); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("unknown mode: err = %v", err)
	}
	if _, err := id.Identify(context.Background(), gita47, ModeNone, "ITRANS"); !errors.Is(err, translit.ErrUnknownScheme) {
		t.Errorf("unknown scheme: err = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := id.Identify(ctx, gita47, ModeAggressive, "SLP"); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: err = %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"none":               ModeNone,
		"aggressive-resplit": ModeAggressive,
		"light-resplit":      ModeLight,
		"single-quarter":     ModeSingleQuarter,
		"resplit_hard":       ModeAggressive,
		"resplit_soft":       ModeLight,
		"single_pAda":        ModeSingleQuarter,
		" none ":             ModeNone,
	}
	for in, want := range tests {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	for _, in := range []string{"", "hard", "NONE"} {
		if _, err := ParseMode(in); !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) err = %v, want ErrUnknownMode", in, err)
		}
	}
}

func TestScan(t *testing.T) {
	v, err := New().Scan(gita47, "SLP")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if v.MeterLabel != "" || v.IdentificationScore != 0 {
		t.Errorf("Scan classified the verse: %q [%d]", v.MeterLabel, v.IdentificationScore)
	}
	if v.SyllableWeights != "lglglggl\ngglllgll\ngggllggl\nlggglglg" {
		t.Errorf("SyllableWeights = %q", v.SyllableWeights)
	}
	if _, err := New().Scan("...", ""); err == nil {
		t.Error("Scan of text without syllables succeeded")
	}
}

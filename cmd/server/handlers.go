package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/cours-de-latin/chandas"
	"github.com/cours-de-latin/chandas/internal/translit"
)

// ---- response types -----------------------------------------------------

type verseJSON struct {
	TextSyllabified     string   `json:"text_syllabified"`
	TextIAST            string   `json:"text_iast"`
	SyllableWeights     string   `json:"syllable_weights"`
	MoraePerLine        []int    `json:"morae_per_line"`
	GanaAbbreviations   string   `json:"gana_abbreviations"`
	MeterLabel          string   `json:"meter_label,omitempty"`
	Alternatives        []string `json:"alternatives,omitempty"`
	IdentificationScore int      `json:"identification_score"`
	Summary             string   `json:"summary,omitempty"`
}

type samaJSON struct {
	Family    int    `json:"family"`
	Name      string `json:"name"`
	Pattern   string `json:"pattern"`
	Canonical string `json:"canonical"`
	Upajati   bool   `json:"upajati,omitempty"`
}

type ardhasamaJSON struct {
	Name          string `json:"name"`
	Odd           string `json:"odd"`
	Even          string `json:"even"`
	OddCanonical  string `json:"odd_canonical"`
	EvenCanonical string `json:"even_canonical"`
}

type jatiJSON struct {
	Name     string `json:"name"`
	Flexible string `json:"flexible"`
	Standard [4]int `json:"standard"`
}

type metersResponse struct {
	Anustubh  []string        `json:"anustubh,omitempty"`
	Sama      []samaJSON      `json:"sama"`
	Ardhasama []ardhasamaJSON `json:"ardhasama,omitempty"`
	Jati      []jatiJSON      `json:"jati,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type verseRequest struct {
	Text    string `json:"text"`
	Resplit string `json:"resplit"`
	Scheme  string `json:"scheme"`
}

// ---- helpers ------------------------------------------------------------

func toVerseJSON(v *chandas.Verse, summary bool) verseJSON {
	out := verseJSON{
		TextSyllabified:     v.TextSyllabified,
		TextIAST:            translit.ToIAST(v.TextSyllabified),
		SyllableWeights:     v.SyllableWeights,
		MoraePerLine:        v.MoraePerLine,
		GanaAbbreviations:   v.GanaAbbreviations,
		MeterLabel:          v.MeterLabel,
		IdentificationScore: v.IdentificationScore,
	}
	if alts := v.Alternatives(); len(alts) > 1 {
		out.Alternatives = alts
	}
	if summary {
		out.Summary = v.Summarize()
	}
	return out
}

func wantsMsgpack(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/msgpack")
}

// writeResponse encodes v as MessagePack or JSON depending on Accept.
// Encoding failures are logged to logger.
func writeResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, v any) {
	if wantsMsgpack(r) {
		w.Header().Set("Content-Type", "application/msgpack")
		w.WriteHeader(status)
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(v); err != nil {
			logger.ErrorContext(r.Context(), "encode error", slog.Any("error", err))
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.ErrorContext(r.Context(), "encode error", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, msg string) {
	writeResponse(w, r, logger, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

type api struct {
	id      *chandas.Identifier
	scheme  string
	maxBody int64
	logger  *slog.Logger
}

func (a *api) decode(w http.ResponseWriter, r *http.Request) (verseRequest, bool) {
	var body verseRequest
	if r.Method != http.MethodPost {
		writeError(w, r, a.logger, http.StatusMethodNotAllowed, "POST required")
		return body, false
	}
	r.Body = http.MaxBytesReader(w, r.Body, a.maxBody)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		writeError(w, r, a.logger, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return body, false
	}
	if body.Scheme == "" {
		body.Scheme = a.scheme
	}
	return body, true
}

func (a *api) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, chandas.ErrUnknownMode), errors.Is(err, translit.ErrUnknownScheme):
		writeError(w, r, a.logger, http.StatusBadRequest, err.Error())
	case r.Context().Err() != nil:
		writeError(w, r, a.logger, http.StatusServiceUnavailable, "request cancelled")
	default:
		a.logger.ErrorContext(r.Context(), "identify failed", slog.Any("error", err))
		writeError(w, r, a.logger, http.StatusInternalServerError, "internal server error")
	}
}

func (a *api) handleIdentify(w http.ResponseWriter, r *http.Request) {
	body, ok := a.decode(w, r)
	if !ok {
		return
	}
	v, err := a.id.Identify(r.Context(), body.Text, chandas.Mode(body.Resplit), body.Scheme)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeResponse(w, r, a.logger, http.StatusOK, toVerseJSON(v, true))
}

func (a *api) handleScan(w http.ResponseWriter, r *http.Request) {
	body, ok := a.decode(w, r)
	if !ok {
		return
	}
	v, err := a.id.Scan(body.Text, body.Scheme)
	if err != nil {
		if errors.Is(err, translit.ErrUnknownScheme) {
			a.fail(w, r, err)
			return
		}
		writeError(w, r, a.logger, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeResponse(w, r, a.logger, http.StatusOK, toVerseJSON(v, false))
}

func (a *api) handleMeters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, a.logger, http.StatusMethodNotAllowed, "GET required")
		return
	}
	c := a.id.Catalog()
	families := c.Families()
	all := true
	if raw := r.URL.Query().Get("family"); raw != "" {
		f, err := strconv.Atoi(raw)
		if err != nil || f <= 0 {
			writeError(w, r, a.logger, http.StatusBadRequest, "'family' must be a positive integer")
			return
		}
		families = []int{f}
		all = false
	}

	resp := metersResponse{Sama: []samaJSON{}}
	for _, f := range families {
		for _, s := range c.SamaByFamily(f) {
			resp.Sama = append(resp.Sama, samaJSON{
				Family: s.Family, Name: s.Name, Pattern: s.Pattern,
				Canonical: s.Canonical, Upajati: s.Upajati,
			})
		}
	}
	if all {
		resp.Anustubh = c.AnustubhTypes()
		for _, m := range c.Ardhasama() {
			resp.Ardhasama = append(resp.Ardhasama, ardhasamaJSON{
				Name: m.Name, Odd: m.Odd, Even: m.Even,
				OddCanonical: m.OddCanonical, EvenCanonical: m.EvenCanonical,
			})
		}
		for _, j := range c.Jati() {
			resp.Jati = append(resp.Jati, jatiJSON{Name: j.Name, Flexible: j.Flexible, Standard: j.Standard})
		}
	}
	writeResponse(w, r, a.logger, http.StatusOK, resp)
}

func (a *api) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, a.logger, http.StatusOK, map[string]string{"status": "ok"})
}

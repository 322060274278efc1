package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/cours-de-latin/chandas"
	"github.com/cours-de-latin/chandas/internal/config"
)

const gita47 = "yadA yadA hi Darmasya\nglAnirBavati BArata\naByutTAnamaDarmasya\ntadAtmAnaM sfjAmyaham"

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 16},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Accept,Content-Type",
			MaxAge:         60,
		},
		Identify: config.IdentifyConfig{DefaultResplit: "none", Workers: 1},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	id := chandas.New(chandas.WithLogger(logger))
	srv := httptest.NewServer(newHandler(id, cfg, logger))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any, accept string) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestIdentify_JSON(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/identify", verseRequest{Text: gita47, Scheme: "SLP"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var got verseJSON
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 9, got.IdentificationScore)
	assert.Equal(t, "anuṣṭubh (ab: pathyā, cd: pathyā)", got.MeterLabel)
	assert.Equal(t, "lglglggl\ngglllgll\ngggllggl\nlggglglg", got.SyllableWeights)
	assert.Contains(t, got.TextIAST, "dharmasya")
	assert.NotEmpty(t, got.Summary)
}

func TestIdentify_Msgpack(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/identify", verseRequest{Text: gita47, Scheme: "SLP"}, "application/msgpack")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/msgpack", resp.Header.Get("Content-Type"))

	dec := msgpack.NewDecoder(resp.Body)
	dec.SetCustomStructTag("json")
	var got verseJSON
	require.NoError(t, dec.Decode(&got))
	assert.Equal(t, 9, got.IdentificationScore)
}

func TestIdentify_RequestIDPropagated(t *testing.T) {
	srv := testServer(t)

	b, _ := json.Marshal(verseRequest{Text: gita47})
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/identify", bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-Id"))
}

func TestIdentify_BadRequests(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name string
		body verseRequest
	}{
		{"empty text", verseRequest{Text: "  "}},
		{"unknown mode", verseRequest{Text: gita47, Resplit: "sideways"}},
		{"unknown scheme", verseRequest{Text: gita47, Scheme: "ITRANS"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/identify", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var e errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestIdentify_MethodNotAllowed(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/identify")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestScan(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/scan", verseRequest{Text: gita47, Scheme: "SLP"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got verseJSON
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Empty(t, got.MeterLabel)
	assert.Equal(t, 0, got.IdentificationScore)
	assert.Len(t, got.MoraePerLine, 4)
	assert.Equal(t, 4, strings.Count(got.GanaAbbreviations, "\n")+1)
}

func TestScan_NoSyllables(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/scan", verseRequest{Text: "123 ..."}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMeters(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/meters?family=11")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got metersResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.NotEmpty(t, got.Sama)
	assert.Equal(t, "indravajrā", got.Sama[0].Name)
	for _, s := range got.Sama {
		assert.Equal(t, 11, s.Family)
	}
	assert.Empty(t, got.Jati)

	resp2, err := http.Get(srv.URL + "/api/meters")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var all metersResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&all))
	assert.Contains(t, all.Anustubh, "pathyā")
	assert.NotEmpty(t, all.Ardhasama)
	assert.NotEmpty(t, all.Jati)
	assert.Greater(t, len(all.Sama), len(got.Sama))
}

func TestMeters_BadFamily(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/meters?family=eleven")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	srv := testServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/identify", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Less(t, resp.StatusCode, 300)
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteResponse_LogsEncodeErrorsToLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	writeResponse(rec, req, logger, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), "encode error")
}

package server_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/opencnc/intake/internal/server"
	"github.com/opencnc/intake/internal/testutil"
)

func newTestServer(t *testing.T, cfg server.Config) *server.Server {
	t.Helper()
	s, err := server.NewServer(cfg, &testutil.DummyLogger{})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func doGet(t *testing.T, s http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func uploadFile(t *testing.T, s http.Handler, filename, material string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if material != "" {
		if err := w.WriteField("material", material); err != nil {
			t.Fatalf("writing material field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode JSON response: %v (body: %s)", err, rec.Body.String())
	}
}

// ─── CORS ──────────────────────────────────────────────────────────────

func TestServer_CORS_HeaderPresent(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, server.DefaultConfig())

	rec := doGet(t, s, "/formats")
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected CORS origin *, got %q", origin)
	}
}

// ─── Analyze ───────────────────────────────────────────────────────────

func TestServer_Analyze_STL(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, server.DefaultConfig())

	rec := uploadFile(t, s, "bracket.stl", "aluminum-6061", testutil.BinarySTLCube([3]float32{0, 0, 0}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var report map[string]any
	decodeJSON(t, rec, &report)
	if report["known"] != true {
		t.Errorf("expected known=true, got %v", report["known"])
	}
	if report["extension"] != ".stl" {
		t.Errorf("expected extension .stl, got %v", report["extension"])
	}
	if _, ok := report["score"]; !ok {
		t.Error("expected a score in the response")
	}
}

func TestServer_Analyze_MissingFile(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, server.DefaultConfig())

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(nil))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestServer_Analyze_OversizedUpload(t *testing.T) {
	t.Parallel()

	cfg := server.DefaultConfig()
	cfg.MaxUploadBytes = 16
	s := newTestServer(t, cfg)

	rec := uploadFile(t, s, "big.stl", "", testutil.BinarySTLCube([3]float32{0, 0, 0}))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", rec.Code)
	}
}

func TestServer_Analyze_NoExtension(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, server.DefaultConfig())

	rec := uploadFile(t, s, "README", "", []byte("hello"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

// ─── Format knowledge base ─────────────────────────────────────────────

func TestServer_ListFormats(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, server.DefaultConfig())

	rec := doGet(t, s, "/formats")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rows []server.FormatRow
	decodeJSON(t, rec, &rows)
	if len(rows) != 10 {
		t.Fatalf("got %d rows, want 10", len(rows))
	}
	for _, row := range rows {
		if row.RiskLabel == "" || row.ConfidenceLabel == "" || row.Suitability == "" {
			t.Errorf("row %s is missing derived labels: %+v", row.Extension, row)
		}
	}
}

func TestServer_ListFormats_SortedByBaselineRisk(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, server.DefaultConfig())

	rec := doGet(t, s, "/formats")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rows []server.FormatRow
	decodeJSON(t, rec, &rows)
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if cur.BaselineRisk < prev.BaselineRisk {
			t.Errorf("row %d (%s, risk %d) sorted before row %d (%s, risk %d)",
				i-1, prev.Extension, prev.BaselineRisk, i, cur.Extension, cur.BaselineRisk)
		}
		if cur.BaselineRisk == prev.BaselineRisk && cur.Extension < prev.Extension {
			t.Errorf("rows %s and %s with equal risk are not alphabetical", prev.Extension, cur.Extension)
		}
	}
	if len(rows) == 0 {
		t.Fatal("no rows returned")
	}
	if rows[0].Extension != ".step" {
		t.Errorf("first row = %s, want .step (lowest baseline risk)", rows[0].Extension)
	}
	last := rows[len(rows)-1]
	if last.Extension != ".stl" {
		t.Errorf("last row = %s, want .stl (highest baseline risk)", last.Extension)
	}
}

func TestServer_GetFormat_Alias(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, server.DefaultConfig())

	rec := doGet(t, s, "/formats/stp")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var detail server.FormatDetail
	decodeJSON(t, rec, &detail)
	if detail.Format.CanonicalExtension != ".step" {
		t.Errorf("canonical = %q, want .step", detail.Format.CanonicalExtension)
	}
	if detail.WhatThisIs == "" || detail.Workflow == "" || detail.QuotingReality == "" {
		t.Errorf("detail narratives missing: %+v", detail)
	}
	if len(detail.BulletNotes.Survives) == 0 || len(detail.BulletNotes.Lost) == 0 {
		t.Errorf("detail bullet notes missing: %+v", detail.BulletNotes)
	}
	if got := detail.BulletNotes.Survives["Exact B-rep"]; got != "precise surfaces and topology" {
		t.Errorf("survives note for Exact B-rep = %q", got)
	}
}

func TestServer_GetFormat_Unknown(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, server.DefaultConfig())

	rec := doGet(t, s, "/formats/xyz")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ─── Material knowledge base ───────────────────────────────────────────

func TestServer_ListMaterials(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, server.DefaultConfig())

	rec := doGet(t, s, "/materials")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var mats []map[string]any
	decodeJSON(t, rec, &mats)
	if len(mats) != 8 {
		t.Errorf("got %d materials, want 8", len(mats))
	}
}

func TestServer_GetMaterial(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, server.DefaultConfig())

	rec := doGet(t, s, "/materials/inconel-718")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var mat map[string]any
	decodeJSON(t, rec, &mat)
	if mat["slug"] != "inconel-718" {
		t.Errorf("slug = %v, want inconel-718", mat["slug"])
	}
}

func TestServer_GetMaterial_Unknown(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, server.DefaultConfig())

	rec := doGet(t, s, "/materials/unobtainium")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ─── Intake feed ───────────────────────────────────────────────────────

func TestServer_IntakeFeed_BroadcastsAnalyses(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, server.DefaultConfig())

	ts := httptest.NewServer(s)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/intake"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dialing intake feed: %v", err)
	}
	defer conn.Close()

	// The handshake completes before the handler registers the client;
	// give the registration a moment so the broadcast cannot race it.
	time.Sleep(100 * time.Millisecond)

	rec := uploadFile(t, s, "bracket.stl", "aluminum-6061", testutil.BinarySTLCube([3]float32{0, 0, 0}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var report map[string]any
	if err := conn.ReadJSON(&report); err != nil {
		t.Fatalf("reading feed message: %v", err)
	}
	if report["filename"] != "bracket.stl" {
		t.Errorf("feed filename = %v, want bracket.stl", report["filename"])
	}
}

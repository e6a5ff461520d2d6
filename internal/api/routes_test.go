package api

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/nixprime/jhome/internal/cache"
	"github.com/nixprime/jhome/internal/render"
	"github.com/nixprime/jhome/internal/service"
)

// newTestRouter initializes all components and returns the router.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cacheManager, err := cache.NewManager(cache.Config{
		LookupCacheSize:   64,
		SwatchCacheSizeMB: 1,
		SwatchTTL:         5 * time.Minute,
	})
	if err != nil {
		t.Fatalf("Failed to initialize cache: %v", err)
	}
	t.Cleanup(func() { cacheManager.Close() })

	svc := service.NewColorService(service.ColorServiceConfig{
		Cache:    cacheManager,
		Renderer: render.NewSwatchRenderer(render.Config{SwatchWidth: 8, SwatchHeight: 8}),
	})

	return NewRouter(RouterConfig{
		Service:      svc,
		CORSOrigins:  []string{"http://localhost:3000"},
		DefaultCount: 8,
		MaxCount:     32,
	})
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode JSON: %v (body %q)", err, rec.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	rec := get(t, newTestRouter(t), "/health")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("health = %d %q", rec.Code, rec.Body.String())
	}
}

func TestClosestEndpoint(t *testing.T) {
	router := newTestRouter(t)

	t.Run("ok", func(t *testing.T) {
		rec := get(t, router, "/api/closest?hex=%23123456")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
		}
		var m service.Match
		decode(t, rec, &m)
		want := service.Match{Hex: "#123456", Code: 24, Matched: "#005f87"}
		if diff := cmp.Diff(want, m); diff != "" {
			t.Fatalf("match mismatch (-want +got):\n%s", diff)
		}
	})

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"missingHex", "/api/closest", http.StatusBadRequest},
		{"badHex", "/api/closest?hex=%23zzzzzz", http.StatusBadRequest},
		{"shortHex", "/api/closest?hex=%23fff", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := get(t, router, tt.target); rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestClosestAllEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader("color: #000000;\nbackground: #ffffff;\n")
	req := httptest.NewRequest(http.MethodPost, "/api/closest", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got []service.Match
	decode(t, rec, &got)
	want := []service.Match{
		{Hex: "#000000", Code: 16, Matched: "#000000"},
		{Hex: "#ffffff", Code: 231, Matched: "#ffffff"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("matches mismatch (-want +got):\n%s", diff)
	}
}

func TestColorsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	t.Run("series", func(t *testing.T) {
		rec := get(t, router, "/api/colors/series?n=2")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
		}
		var payload struct {
			Family string   `json:"family"`
			Colors []string `json:"colors"`
		}
		decode(t, rec, &payload)
		if payload.Family != "series" {
			t.Errorf("family = %q", payload.Family)
		}
		if diff := cmp.Diff([]string{"#0034a2", "#e3710e"}, payload.Colors); diff != "" {
			t.Errorf("colors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("defaultCount", func(t *testing.T) {
		rec := get(t, router, "/api/colors/fill")
		var payload struct {
			Colors []string `json:"colors"`
		}
		decode(t, rec, &payload)
		if len(payload.Colors) != 8 {
			t.Fatalf("expected 8 colors, got %d", len(payload.Colors))
		}
	})

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"unknownFamily", "/api/colors/viridis?n=2", http.StatusNotFound},
		{"zero", "/api/colors/line?n=0", http.StatusBadRequest},
		{"negative", "/api/colors/line?n=-1", http.StatusBadRequest},
		{"tooMany", "/api/colors/line?n=33", http.StatusBadRequest},
		{"notNumber", "/api/colors/line?n=abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := get(t, router, tt.target); rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestColorAtEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/colors/series?t=0.5&n=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var payload struct {
		Family string  `json:"family"`
		T      float64 `json:"t"`
		Color  string  `json:"color"`
	}
	decode(t, rec, &payload)
	if payload.Family != "series" || payload.T != 0.5 || payload.Color != "#d10000" {
		t.Errorf("unexpected payload %+v", payload)
	}

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"unknownFamily", "/api/colors/viridis?t=0.5", http.StatusNotFound},
		{"aboveOne", "/api/colors/fill?t=1.5", http.StatusBadRequest},
		{"negative", "/api/colors/fill?t=-0.1", http.StatusBadRequest},
		{"nan", "/api/colors/fill?t=NaN", http.StatusBadRequest},
		{"notNumber", "/api/colors/fill?t=half", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := get(t, router, tt.target); rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSwatchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/swatches/fill.png?n=4")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 8 {
		t.Fatalf("unexpected bounds %v", b)
	}

	if rec := get(t, router, "/api/swatches/nope.png"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPaletteEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/palette")
	var all []service.PaletteEntry
	decode(t, rec, &all)
	if len(all) != 256 {
		t.Fatalf("expected 256 entries, got %d", len(all))
	}

	rec = get(t, router, "/api/palette/196")
	var e service.PaletteEntry
	decode(t, rec, &e)
	if e.Code != 196 || e.Hex != "#ff0000" || e.LAB == nil {
		t.Fatalf("unexpected entry %+v", e)
	}

	if rec := get(t, router, "/api/palette/abc"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec := get(t, router, "/api/palette/300"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestFamiliesAndStats(t *testing.T) {
	router := newTestRouter(t)

	var families struct {
		Title    string   `json:"title"`
		Families []string `json:"families"`
		MaxCount int      `json:"max_count"`
	}
	decode(t, get(t, router, "/api/families"), &families)
	if families.Title != "jcolor" || families.MaxCount != 32 {
		t.Errorf("unexpected families payload %+v", families)
	}
	if diff := cmp.Diff([]string{"fill", "line", "series"}, families.Families); diff != "" {
		t.Errorf("families mismatch (-want +got):\n%s", diff)
	}

	get(t, router, "/api/closest?hex=%23abcdef")
	var stats map[string]float64
	decode(t, get(t, router, "/api/stats"), &stats)
	if stats["lookup_cache_len"] != 1 {
		t.Errorf("lookup_cache_len = %v", stats["lookup_cache_len"])
	}
}

func TestPaletteIsCompressed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/palette", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if enc := rec.Header().Get("Content-Encoding"); enc != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", enc)
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var all []service.PaletteEntry
	if err := json.Unmarshal(raw, &all); err != nil || len(all) != 256 {
		t.Fatalf("decoded %d entries, err %v", len(all), err)
	}
}

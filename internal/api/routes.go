// Package api provides HTTP handlers for the jcolor server.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/klauspost/compress/gzhttp"

	"github.com/nixprime/jhome/internal/service"
	"github.com/nixprime/jhome/pkg/colormap"
	"github.com/nixprime/jhome/pkg/colorspace"
)

// maxBodyBytes bounds POST /api/closest request bodies.
const maxBodyBytes = 1 << 20

// RouterConfig contains router configuration.
type RouterConfig struct {
	Service      *service.ColorService
	CORSOrigins  []string
	Title        string
	DefaultCount int
	MaxCount     int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) *chi.Mux {
	if cfg.DefaultCount <= 0 {
		cfg.DefaultCount = 8
	}
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = 1024
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return gzhttp.GzipHandler(next)
	})

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/families", familiesHandler(cfg))
		r.Get("/closest", closestHandler(cfg.Service))
		r.Post("/closest", closestAllHandler(cfg.Service))
		r.Get("/colors/{family}", colorsHandler(cfg))
		r.Get("/swatches/{family}.png", swatchHandler(cfg))
		r.Get("/palette", paletteHandler(cfg.Service))
		r.Get("/palette/{code}", paletteEntryHandler(cfg.Service))
		r.Get("/stats", statsHandler(cfg.Service))
	})

	return r
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnknownFamily):
		return http.StatusNotFound
	case errors.Is(err, colorspace.ErrInvalidFormat), errors.Is(err, colorspace.ErrOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseCount reads the n query parameter, falling back to def when absent.
func parseCount(query url.Values, def, limit int) (int, error) {
	raw := strings.TrimSpace(query.Get("n"))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid n: " + raw)
	}
	if n < 1 || n > limit {
		return 0, errors.New("n must be between 1 and " + strconv.Itoa(limit))
	}
	return n, nil
}

// familiesHandler lists the available color families.
func familiesHandler(cfg RouterConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := cfg.Title
		if title == "" {
			title = "jcolor"
		}
		writeJSON(w, map[string]interface{}{
			"title":         title,
			"families":      colormap.Names(),
			"default_count": cfg.DefaultCount,
			"max_count":     cfg.MaxCount,
		})
	}
}

func closestHandler(svc *service.ColorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hex := strings.TrimSpace(r.URL.Query().Get("hex"))
		if hex == "" {
			http.Error(w, "missing required query param: hex", http.StatusBadRequest)
			return
		}

		m, err := svc.Closest(hex)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, m)
	}
}

// closestAllHandler matches every #rrggbb token in a plain text body.
func closestAllHandler(svc *service.ColorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
		if err != nil {
			http.Error(w, "failed to read body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if len(body) > maxBodyBytes {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		writeJSON(w, svc.ClosestAll(string(body)))
	}
}

func colorsHandler(cfg RouterConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		family := chi.URLParam(r, "family")
		if raw := strings.TrimSpace(r.URL.Query().Get("t")); raw != "" {
			colorAt(w, cfg.Service, family, raw)
			return
		}

		n, err := parseCount(r.URL.Query(), cfg.DefaultCount, cfg.MaxCount)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		colors, err := cfg.Service.Colors(family, n)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		writeJSON(w, map[string]interface{}{
			"family": family,
			"colors": colors,
		})
	}
}

// colorAt answers /api/colors/{family}?t=..., the color at a normalized
// position instead of a prefix of the sequence.
func colorAt(w http.ResponseWriter, svc *service.ColorService, family, raw string) {
	t, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		http.Error(w, "invalid t: "+raw, http.StatusBadRequest)
		return
	}
	hex, err := svc.ColorAt(family, t)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, map[string]interface{}{
		"family": family,
		"t":      t,
		"color":  hex,
	})
}

func swatchHandler(cfg RouterConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		family := chi.URLParam(r, "family")
		n, err := parseCount(r.URL.Query(), cfg.DefaultCount, cfg.MaxCount)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		data, err := cfg.Service.Swatch(family, n)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Write(data)
	}
}

func paletteHandler(svc *service.ColorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Palette())
	}
}

func paletteEntryHandler(svc *service.ColorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "code")
		code, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid palette code: "+raw, http.StatusBadRequest)
			return
		}

		entry, err := svc.PaletteEntry(code)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, entry)
	}
}

func statsHandler(svc *service.ColorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Stats())
	}
}

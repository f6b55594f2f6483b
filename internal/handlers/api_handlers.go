package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	config "github.com/inference-gateway/deskcast/config"
	geometry "github.com/inference-gateway/deskcast/internal/geometry"
	logger "github.com/inference-gateway/deskcast/internal/logger"
	pointer "github.com/inference-gateway/deskcast/internal/pointer"
)

// APIHandler serves the plain HTTP endpoints next to the pointer channel
type APIHandler struct {
	cfg     *config.Config
	backend string
	frames  FrameSource
	started time.Time
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(cfg *config.Config, backend string, frames FrameSource) *APIHandler {
	return &APIHandler{
		cfg:     cfg,
		backend: backend,
		frames:  frames,
		started: time.Now(),
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

// HandleHealth handles health check requests
func (h *APIHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleStatus reports the active backend and mapping settings
func (h *APIHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"backend":        h.backend,
		"fit_mode":       string(h.cfg.FitMode()),
		"clamp":          h.cfg.Pointer.Clamp,
		"uptime_seconds": int(time.Since(h.started).Seconds()),
	})
}

// HandleFrame returns one PNG screen capture. The optional width and height query
// parameters letterbox the capture into a viewer element of that size.
func (h *APIHandler) HandleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	origin := r.Header.Get("Origin")
	if !h.cfg.Server.CORS.AllowsOrigin(origin) {
		http.Error(w, "Origin not allowed", http.StatusForbidden)
		return
	}

	element, err := parseElementQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	frame, err := h.frames.Capture(r.Context(), element)
	if err != nil {
		if errors.Is(err, pointer.ErrInvalidSize) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error("Failed to capture frame", "error", err)
		http.Error(w, "Failed to capture screen", http.StatusServiceUnavailable)
		return
	}

	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Expose-Headers", "X-Source-Width, X-Source-Height")
		w.Header().Add("Vary", "Origin")
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Source-Width", strconv.Itoa(frame.SourceWidth))
	w.Header().Set("X-Source-Height", strconv.Itoa(frame.SourceHeight))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(frame.PNG); err != nil {
		logger.Warn("Failed to write frame", "error", err)
	}
}

func parseElementQuery(r *http.Request) (geometry.Size, error) {
	q := r.URL.Query()
	if q.Get("width") == "" && q.Get("height") == "" {
		return geometry.Size{}, nil
	}

	width, err := strconv.Atoi(q.Get("width"))
	if err != nil {
		return geometry.Size{}, errors.New("width must be an integer")
	}
	height, err := strconv.Atoi(q.Get("height"))
	if err != nil {
		return geometry.Size{}, errors.New("height must be an integer")
	}
	return geometry.Size{Width: float64(width), Height: float64(height)}, nil
}

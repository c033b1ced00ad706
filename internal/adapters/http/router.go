// Package httpadapter exposes the triage pipeline over HTTP. The handlers
// are thin: validation at the boundary, core logic behind the ports.
package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/estateops/triage/internal/core/domain"
	"github.com/estateops/triage/internal/core/ports"
	"github.com/estateops/triage/internal/observability/metrics"
)

const serviceName = "api"

type Router struct {
	triager ports.DocumentTriager
	ingest  ports.DocumentIngestor
	reader  ports.DocumentReader
	stats   func() map[string]metrics.StageSnapshot
	metrics *metrics.HTTPServerMetrics

	rateLimitRPS   float64
	rateLimitBurst int
	maxConcurrent  int
	queueWait      time.Duration
}

type RouterOptions struct {
	RateLimitRPS   float64
	RateLimitBurst int
	MaxConcurrent  int
	QueueWait      time.Duration
}

func NewRouter(
	triager ports.DocumentTriager,
	ingest ports.DocumentIngestor,
	reader ports.DocumentReader,
	stats func() map[string]metrics.StageSnapshot,
	serverMetrics *metrics.HTTPServerMetrics,
	options RouterOptions,
) *Router {
	return &Router{
		triager:        triager,
		ingest:         ingest,
		reader:         reader,
		stats:          stats,
		metrics:        serverMetrics,
		rateLimitRPS:   options.RateLimitRPS,
		rateLimitBurst: options.RateLimitBurst,
		maxConcurrent:  options.MaxConcurrent,
		queueWait:      options.QueueWait,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/triage", rt.triageDocument)
	mux.HandleFunc("/v1/documents", rt.uploadDocument)
	mux.HandleFunc("/v1/documents/", rt.getDocumentByID)
	mux.HandleFunc("/v1/taxonomy", rt.taxonomy)
	mux.HandleFunc("/v1/stats", rt.stageStats)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	if rt.maxConcurrent > 0 {
		handler = backpressureMiddleware(handler, rt.maxConcurrent, rt.queueWait)
	}
	if rt.rateLimitRPS > 0 {
		handler = rateLimitMiddleware(handler, rt.rateLimitRPS, rt.rateLimitBurst)
	}
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	return requestIDMiddleware(accessLogMiddleware(handler))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "estate-triage"})
}

func (rt *Router) triageDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		DocumentID string            `json:"document_id"`
		Content    string            `json:"content"`
		Metadata   map[string]string `json:"metadata"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	doc := domain.Document{
		ID:       strings.TrimSpace(req.DocumentID),
		Content:  domain.SanitizeContent(req.Content),
		Metadata: req.Metadata,
	}
	if err := domain.ValidateDocument(doc); err != nil {
		writeError(w, mapErrorToHTTPStatus(err), err.Error())
		return
	}

	result := rt.triager.Process(r.Context(), doc)
	if rt.metrics != nil {
		rt.metrics.RecordTriage(serviceName, result)
	}
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	metadata := map[string]string{}
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			metadata[key] = values[0]
		}
	}

	rec, err := rt.ingest.Upload(
		r.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		metadata,
	)
	if err != nil {
		writeError(w, mapErrorToHTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, rec)
}

func (rt *Router) getDocumentByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "document id is required")
		return
	}

	rec, err := rt.reader.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, mapErrorToHTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (rt *Router) taxonomy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	type entry struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	entries := make([]entry, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		entries = append(entries, entry{Name: c.Label(), Code: c.Code()})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (rt *Router) stageStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, rt.stats())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

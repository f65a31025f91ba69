package api

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tidwall/gjson"

	"github.com/MikeSquared-Agency/vidocq/internal/processor"
)

//go:embed static/index.html
var static embed.FS

const uploadField = "json_file"

// Analyzer processes one uploaded document. Satisfied by *processor.Processor.
type Analyzer interface {
	Process(ctx context.Context, raw []byte) (*processor.Result, error)
	RemoteEnabled() bool
}

type Server struct {
	router    *chi.Mux
	srv       *http.Server
	analyzer  Analyzer
	maxUpload int64
	logger    *slog.Logger
}

func NewServer(port int, apiToken string, maxUploadMB int, a Analyzer, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:    router,
		analyzer:  a,
		maxUpload: int64(maxUploadMB) << 20,
		logger:    logger,
	}

	router.Get("/", s.index)
	router.Get("/health", s.health)
	router.With(BearerAuthMiddleware(apiToken)).Get("/api/v1/vidocq/status", s.status)
	router.Post("/process-json", s.processJSON)

	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start serves until Shutdown is called, which makes it return nil.
func (s *Server) Start() error {
	s.logger.Info("API server starting", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests,
// so their staged files are removed, until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"agent":          "vidocq",
		"status":         "ok",
		"remote_enabled": s.analyzer.RemoteEnabled(),
	})
}

// processJSON handles POST /process-json.
func (s *Server) processJSON(w http.ResponseWriter, r *http.Request) {
	if s.maxUpload > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Fichier trop volumineux")
			return
		}
		writeError(w, http.StatusBadRequest, "Aucun fichier uploadé")
		return
	}
	defer file.Close()

	if !isJSONUpload(header.Filename, header.Header.Get("Content-Type")) {
		writeError(w, http.StatusBadRequest, "Seuls les fichiers JSON sont acceptés")
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Lecture du fichier impossible")
		return
	}
	if !gjson.ValidBytes(raw) {
		writeError(w, http.StatusBadRequest, "Format JSON invalide")
		return
	}

	s.logger.Info("JSON file received", "filename", header.Filename, "size", len(raw), "request_id", middleware.GetReqID(r.Context()))

	res, err := s.analyzer.Process(r.Context(), raw)
	if err != nil {
		s.logger.Error("processing failed", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Erreur lors de l'analyse: %v", err))
		return
	}

	message := "Compte rendu généré avec succès"
	if res.Source == processor.SourceRemote {
		message = "Analyse effectuée avec succès via le service distant"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    message,
		"analysis":   res.Analysis,
		"source":     res.Source,
		"level":      res.Level,
		"request_id": res.RequestID,
	})
}

func isJSONUpload(filename, contentType string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		return true
	}
	return strings.HasPrefix(strings.ToLower(contentType), "application/json")
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"success": false, "error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

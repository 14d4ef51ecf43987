package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/kapu/pokedex-web-go/internal/command"
	"github.com/kapu/pokedex-web-go/internal/domain"
	"github.com/kapu/pokedex-web-go/internal/util"
	"go.uber.org/zap"
)

//go:embed templates/index.html.tmpl
var indexFS embed.FS

var indexTemplate = template.Must(template.ParseFS(indexFS, "templates/index.html.tmpl"))

type indexData struct {
	BatchType      string
	BatchTypeLabel string
	BatchClass     string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		BatchType:      s.deps.BatchType,
		BatchTypeLabel: util.Capitalize(s.deps.BatchType),
		BatchClass:     util.TypeClass(s.deps.BatchType),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error("Failed to render index page", zap.Error(err))
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	s.sessions.Add(1)
	defer s.sessions.Done()

	session := NewSession(conn, s.deps.Renderer, s.logger)
	command.Bind(session, session, s.deps.Registry, s.logger)
	session.Run(s.baseCtx)
}

func (s *Server) handleSearchFragment(w http.ResponseWriter, r *http.Request) {
	recorder := command.NewRecorder()
	params := map[string]any{"query": r.URL.Query().Get("q")}
	if err := s.deps.Registry.Execute(r.Context(), recorder, domain.CommandSearch.String(), params); err != nil {
		s.logger.Error("Search fragment failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "search unavailable")
		return
	}

	html, err := s.deps.Renderer.RenderDetail(recorder.Detail())
	if err != nil {
		s.logger.Error("Failed to render detail fragment", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "render failed")
		return
	}

	respondJSON(w, http.StatusOK, FragmentResponse{Status: recorder.Status(), HTML: html})
}

func (s *Server) handleBatchFragment(w http.ResponseWriter, r *http.Request) {
	recorder := command.NewRecorder()
	if err := s.deps.Registry.Execute(r.Context(), recorder, domain.CommandBatch.String(), nil); err != nil {
		s.logger.Error("Batch fragment failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "batch unavailable")
		return
	}

	html, err := s.deps.Renderer.RenderGrid(recorder.Grid())
	if err != nil {
		s.logger.Error("Failed to render grid fragment", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "render failed")
		return
	}

	respondJSON(w, http.StatusOK, FragmentResponse{Status: recorder.Status(), HTML: html})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

package web

import (
	"encoding/json"
	"net/http"

	vembed "github.com/vidrock-cli/vidrock/embed"
	"github.com/vidrock-cli/vidrock/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("web: encode response: %v", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(readState(r.URL.Query(), s.defaults))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		log.Errorf("web: render landing page: %v", err)
	}
}

func (s *Server) handleURL(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sel, err := readSelection(q, s.defaults)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	opts, err := readOptions(q)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, vembed.NewLink(s.embedBase, sel, opts))
}

func (s *Server) handleParameters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, vembed.Parameters())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

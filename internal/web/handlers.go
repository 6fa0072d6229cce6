package web

import (
	"io"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/citystats/internal/report"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

// handleTable serves the rendered fixed-width table as plain text.
//
// The optional "relative" query parameter overrides the configured
// relative-density column toggle for this request.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	text, err := report.Generate(s.snapshot.Text, opts)
	if err != nil {
		s.respondError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Dataset-Snapshot", s.snapshot.ID.String())
	io.WriteString(w, text)
}

// handleRegions serves the sorted collection as JSON.
func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	col, err := report.Collection(s.snapshot.Text, s.opts)
	if err != nil {
		s.respondError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("X-Dataset-Snapshot", s.snapshot.ID.String())
	respondJSON(w, http.StatusOK, map[string]any{
		"source":  s.snapshot.Source,
		"count":   col.Len(),
		"regions": col.Regions(),
	})
}

// requestOptions resolves per-request pipeline options on top of the
// configured defaults.
func (s *Server) requestOptions(r *http.Request) (report.Options, error) {
	opts := s.opts
	if v := r.URL.Query().Get("relative"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, &badParamError{param: "relative", value: v}
		}
		opts.Render.RelativeDensity = b
	}
	return opts, nil
}

package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jladdjr/typey-type/internal/domain/lesson"
	"github.com/jladdjr/typey-type/internal/domain/material"
	"github.com/jladdjr/typey-type/internal/domain/progress"
	"github.com/jladdjr/typey-type/internal/ports"
)

// maxBodyBytes bounds request bodies; word lists are small.
const maxBodyBytes = 1 << 20

// HealthResult is the /api/health response.
type HealthResult struct {
	Status     string           `json:"status"`
	Dictionary DictionaryHealth `json:"dictionary"`
	Uptime     string           `json:"uptime"`
}

// DictionaryHealth describes the current dictionary snapshot.
type DictionaryHealth struct {
	Ready   bool   `json:"ready"`
	Words   int    `json:"words"`
	Version uint64 `json:"version"`
	Error   string `json:"error,omitempty"`
}

// LessonRequest is the body of POST /api/lesson.
type LessonRequest struct {
	Words string `json:"words"`
}

// MatchRequest is the body of POST /api/match.
type MatchRequest struct {
	Expected     string `json:"expected"`
	Typed        string `json:"typed"`
	IgnoredChars string `json:"ignored_chars,omitempty"`
}

// MatchResponse carries the padded display plus a completion flag.
type MatchResponse struct {
	material.Display
	Complete bool `json:"complete"`
}

// ValidateRequest is the body of POST /api/validate.
type ValidateRequest struct {
	Material string `json:"material"`
}

// MetWordsResponse is the GET /api/met-words response.
type MetWordsResponse struct {
	Words   []ports.MetWord  `json:"words"`
	Summary progress.Summary `json:"summary"`
}

// RecordRequest is the body of POST /api/met-words.
type RecordRequest struct {
	Typed []string `json:"typed"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	result := HealthResult{
		Status: "ok",
		Uptime: time.Since(s.started).Round(time.Second).String(),
	}
	if s.dicts != nil {
		result.Dictionary = s.dictionaryHealth()
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) dictionaryHealth() DictionaryHealth {
	d := s.dicts.Current()
	h := DictionaryHealth{
		Ready:   d.Ready(),
		Words:   d.Size(),
		Version: d.Version(),
	}
	if err := s.dicts.LastError(); err != nil {
		h.Error = err.Error()
	}
	return h
}

// handleReload refetches every dictionary. A failed source answers 502
// with the error; the previous snapshot stays in use.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if s.dicts == nil {
		writeError(w, http.StatusServiceUnavailable, "no dictionaries")
		return
	}
	status := http.StatusOK
	if err := s.dicts.Reload(r.Context()); err != nil {
		s.logger.Warn("dictionary reload failed", "err", err)
		status = http.StatusBadGateway
	}
	writeJSON(w, status, s.dictionaryHealth())
}

func (s *Server) handleLesson(w http.ResponseWriter, r *http.Request) {
	var req LessonRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Compile(r.Context(), req.Words))
}

func (s *Server) handleRevise(w http.ResponseWriter, r *http.Request) {
	cats, ok := categories(w, r)
	if !ok {
		return
	}
	l, err := s.svc.Revise(r.Context(), cats...)
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	d, err := s.svc.Match(req.Expected, req.Typed, material.Settings{IgnoredChars: req.IgnoredChars})
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MatchResponse{Display: d, Complete: d.Complete()})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	v := s.svc.Validate(req.Material)
	status := http.StatusOK
	if v.State == lesson.ValidationFail {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, v)
}

func (s *Server) handleMetWords(w http.ResponseWriter, r *http.Request) {
	cats, ok := categories(w, r)
	if !ok {
		return
	}
	words, err := s.svc.MetWords(cats...)
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MetWordsResponse{Words: words, Summary: progress.Summarize(words)})
}

func (s *Server) handleRecordTyped(w http.ResponseWriter, r *http.Request) {
	var req RecordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.svc.RecordTyped(req.Typed...); err != nil {
		s.internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.svc.Settings()
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req ports.UserSettings
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.svc.SaveSettings(req); err != nil {
		if errors.Is(err, ports.ErrInvalidSettings) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "err", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// categories parses repeated ?category= parameters.
func categories(w http.ResponseWriter, r *http.Request) ([]ports.Category, bool) {
	var out []ports.Category
	for _, raw := range r.URL.Query()["category"] {
		c, err := ports.ParseCategory(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		out = append(out, c)
	}
	return out, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/brogergvhs/comicrev/internal/roundup"
)

type urlRequest struct {
	URL string `json:"url"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type publishersResponse struct {
	Publishers []roundup.Publisher `json:"publishers"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Hello world!")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePublishers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, publishersResponse{Publishers: s.engine.Publishers()})
}

func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := required("url", req.URL); err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := s.upstream(r.Context())
	defer cancel()

	info, err := s.engine.Details(ctx, req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleIssues(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := required("url", req.URL); err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := s.upstream(r.Context())
	defer cancel()

	issues, err := s.engine.Issues(ctx, req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

func (s *Server) handleComics(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := required("name", req.Name); err != nil {
		writeError(w, r, err)
		return
	}

	ctx, cancel := s.upstream(r.Context())
	defer cancel()

	comics, err := s.engine.Comics(ctx, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comics)
}

func (s *Server) upstream(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func malformed(op string, err error) error {
	return &roundup.Error{Kind: roundup.KindMalformedRequest, Op: op, Err: err}
}

// decode reads a single JSON object no larger than maxBodyBytes.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return malformed("decode body", errors.New("request body is empty"))
		case errors.As(err, &tooLarge):
			return malformed("decode body", fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit))
		default:
			return malformed("decode body", err)
		}
	}
	if dec.More() {
		return malformed("decode body", errors.New("request body must hold a single JSON object"))
	}
	return nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return malformed("validate body", fmt.Errorf("field %q is required", field))
	}
	return nil
}

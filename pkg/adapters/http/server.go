package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/internal/logging"
	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/aretw0/decisiontree/pkg/ports"
	"github.com/aretw0/decisiontree/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes caps request bodies; answers are a handful of identifiers.
const maxBodyBytes = 64 << 10

// Server exposes registered trees and persisted sessions over REST.
type Server struct {
	Trees    ports.TreeSource
	Sessions *session.Manager
	Streams  *StreamManager

	logger  *slog.Logger
	metrics http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics mounts a metrics handler (typically promhttp.Handler()) at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler for trees and sessions.
func NewHandler(trees ports.TreeSource, sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		Trees:    trees,
		Sessions: sessions,
		Streams:  NewStreamManager(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams.logger = s.logger

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Route("/trees", func(r chi.Router) {
		r.Get("/", s.ListTrees)
		r.Get("/{tree}", s.GetTree)
		r.Get("/{tree}/nodes/{node}", s.GetNode)
		r.Post("/{tree}/sessions", s.StartSession)
	})

	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", s.GetSession)
		r.Delete("/", s.EndSession)
		r.Post("/answers", s.Answer)
		r.Post("/jump", s.Jump)
		r.Post("/reset", s.Reset)
		r.Get("/events", s.SubscribeEvents)
	})
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "decisiontree-http",
		"version": strings.TrimSpace(decisiontree.Version),
	})
}

// ListTrees handles GET /trees.
func (s *Server) ListTrees(w http.ResponseWriter, r *http.Request) {
	out := []TreeSummary{}
	for _, name := range s.Trees.Names() {
		t, err := s.Trees.Lookup(name)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		out = append(out, summarize(t))
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GetTree handles GET /trees/{tree}; the tree may be named by slug.
func (s *Server) GetTree(w http.ResponseWriter, r *http.Request) {
	t, err := s.Trees.Lookup(chi.URLParam(r, "tree"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, treeView(t))
}

// GetNode handles GET /trees/{tree}/nodes/{node}.
func (s *Server) GetNode(w http.ResponseWriter, r *http.Request) {
	t, err := s.Trees.Lookup(chi.URLParam(r, "tree"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	n, err := t.Lookup(chi.URLParam(r, "node"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nodeView(t, n))
}

// StartSession handles POST /trees/{tree}/sessions.
func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Sessions.Start(r.Context(), chi.URLParam(r, "tree"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/sessions/"+sess.ID)
	s.writeJSON(w, http.StatusCreated, sessionView(sess.ID, sess.Tree))
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Sessions.Current(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionView(sess.ID, sess.Tree))
}

// EndSession handles DELETE /sessions/{id}.
func (s *Server) EndSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.Sessions.End(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.Streams.Close(id)
	w.WriteHeader(http.StatusNoContent)
}

// AnswerRequest is the body of POST /sessions/{id}/answers.
// Answer is shorthand for a single entry in Answers.
type AnswerRequest struct {
	Answer  *string  `json:"answer,omitempty"`
	Answers []string `json:"answers,omitempty"`
}

// Answer handles POST /sessions/{id}/answers.
func (s *Server) Answer(w http.ResponseWriter, r *http.Request) {
	var body AnswerRequest
	if !s.decode(w, r, &body) {
		return
	}
	answers := body.Answers
	if body.Answer != nil {
		answers = append([]string{*body.Answer}, answers...)
	}
	if answers == nil {
		answers = []string{}
	}

	sess, err := s.Sessions.Answer(r.Context(), chi.URLParam(r, "id"), answers...)
	s.respondSession(w, r, sess, err)
}

// JumpRequest is the body of POST /sessions/{id}/jump.
type JumpRequest struct {
	Node string `json:"node"`
}

// Jump handles POST /sessions/{id}/jump.
func (s *Server) Jump(w http.ResponseWriter, r *http.Request) {
	var body JumpRequest
	if !s.decode(w, r, &body) {
		return
	}
	sess, err := s.Sessions.Jump(r.Context(), chi.URLParam(r, "id"), body.Node)
	s.respondSession(w, r, sess, err)
}

// Reset handles POST /sessions/{id}/reset.
func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Sessions.Reset(r.Context(), chi.URLParam(r, "id"))
	s.respondSession(w, r, sess, err)
}

// SubscribeEvents handles GET /sessions/{id}/events (SSE). Every change to
// the session is pushed as its new SessionView; an "ended" event closes the
// stream when the session is deleted.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}
	id := chi.URLParam(r, "id")
	if _, err := s.Sessions.Current(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	ch, cancel := s.Streams.Subscribe(id)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE client disconnected", "session_id", id)
			return
		case msg, ok := <-ch:
			if !ok {
				fmt.Fprintf(w, "event: ended\ndata: %s\n\n", id)
				flusher.Flush()
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func (s *Server) respondSession(w http.ResponseWriter, r *http.Request, sess *session.Session, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	view := sessionView(sess.ID, sess.Tree)
	if data, err := json.Marshal(view); err == nil {
		s.Streams.Broadcast(sess.ID, string(data))
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.logger.Warn("Invalid request body", "path", r.URL.Path, "err", err)
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

type errorBody struct {
	Error string `json:"error"`
}

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAnswer):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "err", err)
	}
	s.writeJSON(w, status, errorBody{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "err", err)
	}
}

// Package api exposes the game engine over HTTP: a session-start endpoint,
// a turn-submission endpoint, and a liveness probe. The handlers are thin;
// all game rules live in the engine.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/talgya/crisis-sim/internal/game"
)

// Server routes HTTP requests to the game engine.
type Server struct {
	Engine  *game.GameEngine
	Origins []string // extra allowed CORS origins; localhost dev servers are always allowed
	Logger  *slog.Logger
}

// Handler builds the router. Exposed separately from serving so tests can
// drive it through httptest.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: append([]string{
			"http://localhost:5173",
			"http://localhost:4173",
			"http://localhost:3000",
		}, s.Origins...),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/game/start", s.handleStart)
	r.Post("/api/game/turn", s.handleTurn)
	return r
}

type startRequest struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	Age        int    `json:"age"`
	Difficulty int    `json:"difficulty"`
}

type startResponse struct {
	SessionID string   `json:"sessionId"`
	Turn      int      `json:"turn"`
	Narrative string   `json:"narrative"`
	Options   []string `json:"options"`
}

type turnRequest struct {
	SessionID string `json:"sessionId"`
	Choice    string `json:"choice"`
}

type finalResult struct {
	Tier         int    `json:"tier"`
	TierName     string `json:"tierName"`
	Percentage   int    `json:"percentage"`
	Outcome      string `json:"outcome"`
	Career       string `json:"career"`
	Strengths    string `json:"strengths"`
	Improvements string `json:"improvements"`
	Leadership   string `json:"leadership"`
	Theory       string `json:"crisisTheory"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

type turnResponse struct {
	SessionID string       `json:"sessionId"`
	Turn      int          `json:"turn"`
	Narrative string       `json:"narrative"`
	Options   []string     `json:"options,omitempty"`
	Finished  bool         `json:"finished"`
	Result    *finalResult `json:"result,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.Engine.Start(r.Context(), game.PlayerProfile{
		Name:       req.Name,
		Gender:     req.Gender,
		Age:        req.Age,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, startResponse{
		SessionID: res.SessionID,
		Turn:      res.Turn,
		Narrative: res.Narrative,
		Options:   res.Options,
	})
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.Engine.Turn(r.Context(), req.SessionID, req.Choice)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	resp := turnResponse{
		SessionID: res.SessionID,
		Turn:      res.Turn,
		Narrative: res.Narrative,
		Options:   res.Options,
		Finished:  res.Finished,
	}
	if res.Final != nil {
		resp.Result = &finalResult{
			Tier:         res.Final.Tier,
			TierName:     res.Final.TierName,
			Percentage:   res.Final.Percentage,
			Outcome:      res.Final.Outcome,
			Career:       res.Final.Career,
			Strengths:    res.Final.Strengths,
			Improvements: res.Final.Improvements,
			Leadership:   res.Final.Leadership,
			Theory:       res.Final.Theory,
			ImageURL:     res.Final.ImageURL,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeEngineError maps the engine's error taxonomy onto HTTP statuses.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidProfile), errors.Is(err, game.ErrInvalidChoice):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, game.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrSessionFinished):
		writeError(w, http.StatusConflict, err.Error())
	default:
		s.logger().Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

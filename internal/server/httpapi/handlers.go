package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/reddsec/scoreboard/internal/common"
	"github.com/reddsec/scoreboard/internal/server/models"
	"github.com/reddsec/scoreboard/internal/server/services"
)

// accountService and scoreService narrow the services API to what the
// handlers need, so tests can stub them.
type accountService interface {
	Signup(ctx context.Context, email, username, password string) error
	Verify(ctx context.Context, email, code string) (string, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Me(ctx context.Context, token string) (string, error)
	Rename(ctx context.Context, email, oldUsername, newUsername string) error
}

type scoreService interface {
	Submit(ctx context.Context, name string, score int64) error
	Top(ctx context.Context) ([]models.ScoreEntry, error)
	Search(ctx context.Context, name string) (*models.ScoreEntry, error)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.ping != nil {
		if err := s.ping(r.Context()); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: "server error"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.accounts.Signup(r.Context(), req.Email, req.Username, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	username, err := s.accounts.Verify(r.Context(), req.Email, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "username": username})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	session, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"username": session.Username,
		"token":    session.Token,
	})
}

// handleMe resolves the bearer token to the account's current username.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		writeError(w, common.ErrorUnauthorized)
		return
	}
	username, err := s.accounts.Me(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"username": username})
}

func (s *Server) handleRename(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		OldUsername string `json:"oldName"`
		NewUsername string `json:"newName"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.accounts.Rename(r.Context(), req.Email, req.OldUsername, req.NewUsername); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// handleScores serves the leaderboard: ?search=name returns the player's
// best row, otherwise the top ten.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("search"); name != "" {
		entry, err := s.scores.Search(r.Context(), name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, scoreRow{Name: entry.Name, Score: entry.Score})
		return
	}

	entries, err := s.scores.Top(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	rows := make([]scoreRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, scoreRow{Name: e.Name, Score: e.Score})
	}
	writeJSON(w, http.StatusOK, rows)
}

type scoreRow struct {
	Name  string `json:"name"`
	Score int64  `json:"score"`
}

// handleSubmitScore records one play result. Score arrives as json.Number so
// fractional values are rejected instead of silently truncated.
func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string      `json:"name"`
		Score json.Number `json:"score"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	score, err := req.Score.Int64()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid score data"})
		return
	}
	if err := s.scores.Submit(r.Context(), req.Name, score); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/arcade-go/internal/api/middleware"
	"github.com/mcoot/arcade-go/internal/api/request"
	"github.com/mcoot/arcade-go/internal/api/response"
	"github.com/mcoot/arcade-go/internal/model"
	"github.com/mcoot/arcade-go/internal/services/score"
)

// ScoreHandler handles score submission and leaderboard queries
type ScoreHandler struct {
	scoreService *score.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreService *score.Service) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
	}
}

// Submit handles POST /api/score
func (h *ScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.GameID == "" {
		WriteError(w, NewInvalidRequestError("game_id is required"))
		return
	}
	if req.Score == nil {
		WriteError(w, NewInvalidRequestError("score is required"))
		return
	}

	if err := h.scoreService.Record(r.Context(), sess.UserID, model.GameName(req.GameID), *req.Score); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NewSuccess())
}

// Leaderboard handles GET /api/leaderboard/{gameName}
func (h *ScoreHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	gameName := model.GameName(mux.Vars(r)["gameName"])

	entries, err := h.scoreService.Top(r.Context(), gameName, model.DefaultLeaderboardLimit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, entries)
}

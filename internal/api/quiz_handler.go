package api

import (
	"net/http"

	"github.com/gomi-quiz/backend/internal/domain/dictionary"
)

const defaultQuizLimit = 100

type QuizResponse struct {
	Count int                 `json:"count"`
	Items []dictionary.Record `json:"items"`
}

// getQuiz returns a randomized batch of dictionary records.
// @Summary      Fetch a quiz batch
// @Produce      json
// @Param        limit  query     int  false  "batch size, default 100; zero or negative returns everything"
// @Success      200    {object}  QuizResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /api/quiz [get]
func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultQuizLimit)

	items, err := h.quiz.Sample(limit)
	if err != nil {
		h.logger.Error("failed to load quiz dataset", "error", err)
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to load quiz data"})
		return
	}

	respondJSON(w, http.StatusOK, QuizResponse{Count: len(items), Items: items})
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gomi-quiz/backend/internal/store"
)

const defaultResultLimit = 50

type SubmitResultRequest struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type SubmitResultResponse struct {
	OK    bool         `json:"ok"`
	Saved store.Result `json:"saved"`
}

type ListResultsResponse struct {
	Count int            `json:"count"`
	Items []store.Result `json:"items"`
}

// submitResult records one quiz outcome.
// @Summary      Submit a quiz result
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitResultRequest  true  "result to record"
// @Success      200   {object}  SubmitResultResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/results [post]
func (h *Handler) submitResult(w http.ResponseWriter, r *http.Request) {
	var req SubmitResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "correct and total must be integers"})
		return
	}

	saved, err := h.results.SaveResult(req.Correct, req.Total)
	if errors.Is(err, store.ErrInvalidResult) {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("failed to save result", "error", err)
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to save result"})
		return
	}

	respondJSON(w, http.StatusOK, SubmitResultResponse{OK: true, Saved: saved})
}

// listResults returns recorded quiz outcomes, newest first.
// @Summary      List quiz results
// @Produce      json
// @Param        limit  query     int  false  "row cap, default 50, clamped to [1,1000]"
// @Success      200    {object}  ListResultsResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /api/results [get]
func (h *Handler) listResults(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultResultLimit)

	items, err := h.results.ListResults(limit)
	if err != nil {
		h.logger.Error("failed to list results", "error", err)
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to list results"})
		return
	}

	respondJSON(w, http.StatusOK, ListResultsResponse{Count: len(items), Items: items})
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/performance"
	"github.com/raptorsgg/orgdash/internal/repository"
)

// SubmitPerformanceRequest represents a single match performance submission
type SubmitPerformanceRequest struct {
	TeamID       string  `json:"team_id" validate:"required,uuid4"`
	PlayerID     string  `json:"player_id" validate:"required,uuid4"`
	MatchDate    string  `json:"match_date" validate:"required,datetime=2006-01-02"`
	Tournament   string  `json:"tournament" validate:"max=128"`
	Kills        int     `json:"kills" validate:"gte=0"`
	Damage       float64 `json:"damage" validate:"gte=0"`
	SurvivalTime float64 `json:"survival_time" validate:"gte=0"`
	Placement    int     `json:"placement" validate:"gte=0"`
	Won          bool    `json:"won"`
}

// HandleSubmitPerformance records one player's match result
func HandleSubmitPerformance(svc performance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitPerformanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit performance"); err != nil {
			return
		}

		matchDate, _ := time.Parse("2006-01-02", req.MatchDate)

		perf, err := svc.Submit(r.Context(), domain.MatchPerformance{
			TeamID:       req.TeamID,
			PlayerID:     req.PlayerID,
			MatchDate:    matchDate,
			Tournament:   req.Tournament,
			Kills:        req.Kills,
			Damage:       req.Damage,
			SurvivalTime: req.SurvivalTime,
			Placement:    req.Placement,
			Won:          req.Won,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgSubmitPerfFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, perf)
	}
}

// HandleListPerformances lists performances filtered by team, player, month
func HandleListPerformances(svc performance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := repository.PerformanceFilter{
			TeamID:   GetOptionalQueryParam(r, "team_id", ""),
			PlayerID: GetOptionalQueryParam(r, "player_id", ""),
			Month:    GetOptionalQueryParam(r, "month", ""),
		}
		if limitStr := GetOptionalQueryParam(r, "limit", ""); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
				return
			}
			filter.Limit = limit
		}

		perfs, err := svc.List(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgListPerfFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: perfs})
	}
}

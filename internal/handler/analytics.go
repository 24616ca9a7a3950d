package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raptorsgg/orgdash/internal/analytics"
)

// HandleAnalyticsOverview returns the organization-wide aggregate
func HandleAnalyticsOverview(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := GetOptionalQueryParam(r, "month", "")

		overview, err := svc.Overview(r.Context(), month)
		if err != nil {
			respondServiceError(w, r, ErrMsgOverviewFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, overview)
	}
}

// HandleTeamAnalytics returns one team's aggregate report
func HandleTeamAnalytics(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		month := GetOptionalQueryParam(r, "month", "")

		report, err := svc.Team(r.Context(), teamID, month)
		if err != nil {
			respondServiceError(w, r, ErrMsgTeamAnalyticsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// HandlePlayerAnalytics returns one player's aggregate report
func HandlePlayerAnalytics(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		month := GetOptionalQueryParam(r, "month", "")

		report, err := svc.Player(r.Context(), playerID, month)
		if err != nil {
			respondServiceError(w, r, ErrMsgPlayerAnalyticsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

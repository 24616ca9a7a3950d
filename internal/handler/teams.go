package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/logger"
	"github.com/raptorsgg/orgdash/internal/roster"
)

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name       string `json:"name" validate:"required,max=64"`
	Game       string `json:"game" validate:"required,max=64"`
	Region     string `json:"region" validate:"max=32"`
	Tier       string `json:"tier" validate:"required,tier"`
	TrialPhase string `json:"trial_phase" validate:"omitempty,oneof=none trial extended"`
}

// UpdateTeamRequest represents a partial team update
type UpdateTeamRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=64"`
	Region     *string `json:"region" validate:"omitempty,max=32"`
	Tier       *string `json:"tier" validate:"omitempty,tier"`
	TrialPhase *string `json:"trial_phase" validate:"omitempty,oneof=none trial extended"`
}

// HandleCreateTeam handles team creation
func HandleCreateTeam(svc roster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTeamRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create team"); err != nil {
			return
		}

		team, err := svc.CreateTeam(r.Context(), domain.Team{
			Name:        req.Name,
			Game:        req.Game,
			Region:      req.Region,
			CurrentTier: domain.Tier(req.Tier),
			TrialPhase:  domain.TrialPhase(req.TrialPhase),
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateTeamFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, team)
	}
}

// HandleListTeams lists teams, active only unless include_inactive=true
func HandleListTeams(svc roster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeInactive := GetOptionalQueryParam(r, "include_inactive", "false") == "true"

		teams, err := svc.ListTeams(r.Context(), !includeInactive)
		if err != nil {
			respondServiceError(w, r, ErrMsgListTeamsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: teams})
	}
}

// HandleGetTeam returns one team by ID
func HandleGetTeam(svc roster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")

		team, err := svc.GetTeam(r.Context(), teamID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetTeamFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, team)
	}
}

// HandleUpdateTeam applies a partial update to a team
func HandleUpdateTeam(svc roster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")

		var req UpdateTeamRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update team"); err != nil {
			return
		}

		update := roster.TeamUpdate{
			Name:   req.Name,
			Region: req.Region,
		}
		if req.Tier != nil {
			tier := domain.Tier(*req.Tier)
			update.Tier = &tier
		}
		if req.TrialPhase != nil {
			phase := domain.TrialPhase(*req.TrialPhase)
			update.TrialPhase = &phase
		}

		team, err := svc.UpdateTeam(r.Context(), teamID, update)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateTeamFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, team)
	}
}

// HandleDeleteTeam deactivates a team. Rows are kept for history.
func HandleDeleteTeam(svc roster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")

		if err := svc.DeactivateTeam(r.Context(), teamID); err != nil {
			respondServiceError(w, r, ErrMsgDeleteTeamFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Team deactivated via API", "team_id", teamID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTeamDeactivated})
	}
}

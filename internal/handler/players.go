package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/roster"
)

// AddPlayerRequest represents the request to add a player to a roster
type AddPlayerRequest struct {
	Handle    string `json:"handle" validate:"required,max=64"`
	FullName  string `json:"full_name" validate:"max=128"`
	Role      string `json:"role" validate:"max=32"`
	DiscordID string `json:"discord_id" validate:"max=32"`
	JoinedAt  string `json:"joined_at" validate:"omitempty,datetime=2006-01-02"`
}

// HandleAddPlayer adds a player to a team's roster
func HandleAddPlayer(svc roster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")

		var req AddPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add player"); err != nil {
			return
		}

		player := domain.Player{
			TeamID:    teamID,
			Handle:    req.Handle,
			FullName:  req.FullName,
			Role:      req.Role,
			DiscordID: req.DiscordID,
		}
		if req.JoinedAt != "" {
			// Validated by the datetime tag above.
			player.JoinedAt, _ = time.Parse("2006-01-02", req.JoinedAt)
		}

		created, err := svc.AddPlayer(r.Context(), player)
		if err != nil {
			respondServiceError(w, r, ErrMsgAddPlayerFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListPlayers lists a team's roster with an optional role filter
func HandleListPlayers(svc roster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		role := GetOptionalQueryParam(r, "role", "")
		includeInactive := GetOptionalQueryParam(r, "include_inactive", "false") == "true"

		players, err := svc.ListPlayers(r.Context(), teamID, role, !includeInactive)
		if err != nil {
			respondServiceError(w, r, ErrMsgListPlayersFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: players})
	}
}

// HandleRemovePlayer deactivates a roster member
func HandleRemovePlayer(svc roster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		if err := svc.RemovePlayer(r.Context(), playerID); err != nil {
			respondServiceError(w, r, ErrMsgRemovePlayerFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerRemoved})
	}
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/recruitment"
)

// SubmitApplicationRequest represents the public recruitment form
type SubmitApplicationRequest struct {
	FullName   string `json:"full_name" validate:"required,max=128"`
	Handle     string `json:"handle" validate:"required,max=64"`
	Email      string `json:"email" validate:"required,email,max=128"`
	DiscordID  string `json:"discord_id" validate:"max=32"`
	Game       string `json:"game" validate:"required,max=64"`
	Role       string `json:"role" validate:"max=32"`
	Experience string `json:"experience" validate:"max=2000"`
}

// SubmitApplicationResponse exposes only the reference code to the applicant
type SubmitApplicationResponse struct {
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

// ReviewApplicationRequest represents a manager's pipeline decision
type ReviewApplicationRequest struct {
	Status     string `json:"status" validate:"required,oneof=reviewing accepted rejected"`
	Note       string `json:"note" validate:"max=512"`
	ReviewedBy string `json:"reviewed_by" validate:"required,max=64"`
}

// HandleSubmitApplication accepts a public recruitment form submission
func HandleSubmitApplication(svc recruitment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitApplicationRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit application"); err != nil {
			return
		}

		app, err := svc.Submit(r.Context(), domain.Application{
			FullName:   req.FullName,
			Handle:     req.Handle,
			Email:      req.Email,
			DiscordID:  req.DiscordID,
			Game:       req.Game,
			Role:       req.Role,
			Experience: req.Experience,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgSubmitApplicationFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, SubmitApplicationResponse{
			Message:   MsgApplicationThanks,
			Reference: app.Reference,
		})
	}
}

// HandleListApplications lists applications for manager review
func HandleListApplications(svc recruitment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := domain.ApplicationStatus(GetOptionalQueryParam(r, "status", ""))

		limit := 0
		if limitStr := GetOptionalQueryParam(r, "limit", ""); limitStr != "" {
			var err error
			limit, err = strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
				return
			}
		}

		apps, err := svc.List(r.Context(), status, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgListApplicationsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: apps})
	}
}

// HandleGetApplication returns one application by its reference code
func HandleGetApplication(svc recruitment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reference := chi.URLParam(r, "ref")

		app, err := svc.GetByReference(r.Context(), reference)
		if err != nil {
			respondServiceError(w, r, ErrMsgListApplicationsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, app)
	}
}

// HandleReviewApplication moves an application through the review pipeline
func HandleReviewApplication(svc recruitment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reference := chi.URLParam(r, "ref")

		var req ReviewApplicationRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Review application"); err != nil {
			return
		}

		app, err := svc.Review(r.Context(), reference, domain.ApplicationStatus(req.Status), req.Note, req.ReviewedBy)
		if err != nil {
			respondServiceError(w, r, ErrMsgReviewApplicationFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, app)
	}
}

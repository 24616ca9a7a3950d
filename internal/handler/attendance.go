package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/raptorsgg/orgdash/internal/attendance"
	"github.com/raptorsgg/orgdash/internal/domain"
)

// RecordAttendanceRequest represents an attendance submission for one slot
type RecordAttendanceRequest struct {
	TeamID   string `json:"team_id" validate:"required,uuid4"`
	PlayerID string `json:"player_id" validate:"required,uuid4"`
	SlotDate string `json:"slot_date" validate:"required,datetime=2006-01-02"`
	Present  bool   `json:"present"`
	Note     string `json:"note" validate:"max=256"`
}

// ReviewAttendanceRequest represents a manager's verification decision
type ReviewAttendanceRequest struct {
	Approve    bool   `json:"approve"`
	VerifiedBy string `json:"verified_by" validate:"required,max=64"`
}

// HandleRecordAttendance records a pending attendance entry
func HandleRecordAttendance(svc attendance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordAttendanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record attendance"); err != nil {
			return
		}

		slotDate, _ := time.Parse("2006-01-02", req.SlotDate)

		record, err := svc.Record(r.Context(), domain.AttendanceRecord{
			TeamID:   req.TeamID,
			PlayerID: req.PlayerID,
			SlotDate: slotDate,
			Present:  req.Present,
			Note:     req.Note,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgRecordAttendanceFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, record)
	}
}

// HandleReviewAttendance verifies or rejects a pending record
func HandleReviewAttendance(svc attendance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID := chi.URLParam(r, "recordID")

		var req ReviewAttendanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Review attendance"); err != nil {
			return
		}

		record, err := svc.Review(r.Context(), recordID, req.Approve, req.VerifiedBy)
		if err != nil {
			respondServiceError(w, r, ErrMsgReviewAttendanceFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, record)
	}
}

// HandleAttendanceSummary returns the aggregated team-month summary
func HandleAttendanceSummary(svc attendance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, ok := GetQueryParam(r, w, "team_id")
		if !ok {
			return
		}
		month, ok := GetQueryParam(r, w, "month")
		if !ok {
			return
		}

		summary, err := svc.Summary(r.Context(), teamID, month)
		if err != nil {
			respondServiceError(w, r, ErrMsgAttendanceSummaryFail, err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/finance"
)

// SubmitMonthlyRequest represents the monthly figures for one team.
// Tier and trial phase default to the team's current roster state.
type SubmitMonthlyRequest struct {
	TeamID             string  `json:"team_id" validate:"required,uuid4"`
	Month              string  `json:"month" validate:"required,month"`
	CurrentTier        string  `json:"current_tier" validate:"omitempty,tier"`
	SlotsPlayed        int     `json:"slots_played" validate:"gte=0"`
	SlotsWon           int     `json:"slots_won" validate:"gte=0,ltefield=SlotsPlayed"`
	SlotPricePerSlot   float64 `json:"slot_price_per_slot" validate:"gte=0"`
	SlotCostPerSlot    float64 `json:"slot_cost_per_slot" validate:"gte=0"`
	TournamentWinnings float64 `json:"tournament_winnings" validate:"gte=0"`
	TrialPhase         string  `json:"trial_phase" validate:"omitempty,oneof=none trial extended"`
}

// PutTierRateRequest represents an update to one tier's default rates
type PutTierRateRequest struct {
	Tier         string  `json:"tier" validate:"required,tier"`
	CostPerSlot  float64 `json:"cost_per_slot" validate:"required,gt=0"`
	PricePerSlot float64 `json:"price_per_slot" validate:"required,gt=0"`
}

// RecordExpenseRequest represents a raw expense/winnings entry
type RecordExpenseRequest struct {
	TeamID             string  `json:"team_id" validate:"required,uuid4"`
	Month              string  `json:"month" validate:"required,month"`
	SlotsPlayed        int     `json:"slots_played" validate:"gte=0"`
	SlotsWon           int     `json:"slots_won" validate:"gte=0,ltefield=SlotsPlayed"`
	SlotPrice          float64 `json:"slot_price" validate:"gte=0"`
	SlotCost           float64 `json:"slot_cost" validate:"gte=0"`
	TournamentWinnings float64 `json:"tournament_winnings" validate:"gte=0"`
}

// HandleSubmitMonthly computes and persists a team's monthly outcome
func HandleSubmitMonthly(svc finance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitMonthlyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit monthly record"); err != nil {
			return
		}

		record, err := svc.SubmitMonthly(r.Context(), domain.MonthlyInput{
			TeamID:             req.TeamID,
			Month:              req.Month,
			CurrentTier:        domain.Tier(req.CurrentTier),
			SlotsPlayed:        req.SlotsPlayed,
			SlotsWon:           req.SlotsWon,
			SlotPricePerSlot:   req.SlotPricePerSlot,
			SlotCostPerSlot:    req.SlotCostPerSlot,
			TournamentWinnings: req.TournamentWinnings,
			TrialPhase:         domain.TrialPhase(req.TrialPhase),
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgSubmitMonthlyFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, record)
	}
}

// HandleListMonthly lists the month's records, persisted or recomputed
func HandleListMonthly(svc finance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := GetQueryParam(r, w, "month")
		if !ok {
			return
		}

		records, err := svc.ListMonthly(r.Context(), month)
		if err != nil {
			respondServiceError(w, r, ErrMsgListMonthlyFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: records})
	}
}

// HandleGetMonthly returns one team's persisted record for a month
func HandleGetMonthly(svc finance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		month, ok := GetQueryParam(r, w, "month")
		if !ok {
			return
		}

		record, err := svc.GetMonthly(r.Context(), teamID, month)
		if err != nil {
			respondServiceError(w, r, ErrMsgListMonthlyFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, record)
	}
}

// HandleGetTierRates returns the tier default-rate table
func HandleGetTierRates(svc finance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates, err := svc.TierRates(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetTierRatesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: rates})
	}
}

// HandlePutTierRate updates one tier's default rates
func HandlePutTierRate(svc finance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PutTierRateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update tier rate"); err != nil {
			return
		}

		err := svc.SetTierRate(r.Context(), domain.TierRate{
			Tier:         domain.Tier(req.Tier),
			CostPerSlot:  req.CostPerSlot,
			PricePerSlot: req.PricePerSlot,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgPutTierRateFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTierRateUpdated})
	}
}

// HandleRecordExpense stores a raw expense entry for fallback recomputes
func HandleRecordExpense(svc finance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordExpenseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record expense"); err != nil {
			return
		}

		expense, err := svc.RecordExpense(r.Context(), domain.ExpenseRecord{
			TeamID:             req.TeamID,
			Month:              req.Month,
			SlotsPlayed:        req.SlotsPlayed,
			SlotsWon:           req.SlotsWon,
			SlotPrice:          req.SlotPrice,
			SlotCost:           req.SlotCost,
			TournamentWinnings: req.TournamentWinnings,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgRecordExpenseFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, expense)
	}
}

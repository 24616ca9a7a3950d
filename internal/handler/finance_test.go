package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/raptorsgg/orgdash/internal/domain"
	"github.com/raptorsgg/orgdash/internal/finance"
)

// MockFinanceService is a mock implementation of finance.Service
type MockFinanceService struct {
	mock.Mock
}

func (m *MockFinanceService) SubmitMonthly(ctx context.Context, input domain.MonthlyInput) (*domain.MonthlyRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyRecord), args.Error(1)
}

func (m *MockFinanceService) GetMonthly(ctx context.Context, teamID, month string) (*domain.MonthlyRecord, error) {
	args := m.Called(ctx, teamID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyRecord), args.Error(1)
}

func (m *MockFinanceService) ListMonthly(ctx context.Context, month string) ([]domain.MonthlyRecord, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyRecord), args.Error(1)
}

func (m *MockFinanceService) RecordExpense(ctx context.Context, expense domain.ExpenseRecord) (domain.ExpenseRecord, error) {
	args := m.Called(ctx, expense)
	return args.Get(0).(domain.ExpenseRecord), args.Error(1)
}

func (m *MockFinanceService) TierRates(ctx context.Context) ([]domain.TierRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TierRate), args.Error(1)
}

func (m *MockFinanceService) SetTierRate(ctx context.Context, rate domain.TierRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockFinanceService) CloseMonth(ctx context.Context, month string) (int, error) {
	args := m.Called(ctx, month)
	return args.Int(0), args.Error(1)
}

func (m *MockFinanceService) Policy() finance.Policy {
	args := m.Called()
	return args.Get(0).(finance.Policy)
}

const testTeamUUID = "7b0337bd-20f5-448e-8bc8-3a0f43b0e32c"

func TestHandleSubmitMonthly(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockFinanceService)
		mockSvc.On("SubmitMonthly", mock.Anything, mock.MatchedBy(func(input domain.MonthlyInput) bool {
			return input.TeamID == testTeamUUID && input.Month == "2026-07" && input.SlotsWon == 6
		})).Return(&domain.MonthlyRecord{
			TeamID:       testTeamUUID,
			Month:        "2026-07",
			StatusUpdate: domain.StatusPromoted,
			UpdatedTier:  domain.TierT2,
		}, nil)

		body := `{"team_id":"` + testTeamUUID + `","month":"2026-07","slots_played":10,"slots_won":6,"slot_price_per_slot":1000,"slot_cost_per_slot":500}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/finance/monthly", strings.NewReader(body))
		w := httptest.NewRecorder()
		HandleSubmitMonthly(mockSvc)(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status_update":"promoted"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Wins Cannot Exceed Played", func(t *testing.T) {
		mockSvc := new(MockFinanceService)

		body := `{"team_id":"` + testTeamUUID + `","month":"2026-07","slots_played":5,"slots_won":9}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/finance/monthly", strings.NewReader(body))
		w := httptest.NewRecorder()
		HandleSubmitMonthly(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "SubmitMonthly")
	})

	t.Run("Invalid Month Format", func(t *testing.T) {
		mockSvc := new(MockFinanceService)

		body := `{"team_id":"` + testTeamUUID + `","month":"July","slots_played":5,"slots_won":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/finance/monthly", strings.NewReader(body))
		w := httptest.NewRecorder()
		HandleSubmitMonthly(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Expected YYYY-MM")
		mockSvc.AssertNotCalled(t, "SubmitMonthly")
	})

	t.Run("Unknown Team", func(t *testing.T) {
		mockSvc := new(MockFinanceService)
		mockSvc.On("SubmitMonthly", mock.Anything, mock.Anything).Return(nil, domain.ErrTeamNotFound)

		body := `{"team_id":"` + testTeamUUID + `","month":"2026-07","slots_played":5,"slots_won":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/finance/monthly", strings.NewReader(body))
		w := httptest.NewRecorder()
		HandleSubmitMonthly(mockSvc)(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleListMonthly(t *testing.T) {
	t.Run("Requires Month Param", func(t *testing.T) {
		mockSvc := new(MockFinanceService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/finance/monthly", nil)
		w := httptest.NewRecorder()
		HandleListMonthly(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "ListMonthly")
	})

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockFinanceService)
		mockSvc.On("ListMonthly", mock.Anything, "2026-07").Return([]domain.MonthlyRecord{
			{TeamID: testTeamUUID, Month: "2026-07"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/finance/monthly?month=2026-07", nil)
		w := httptest.NewRecorder()
		HandleListMonthly(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), testTeamUUID)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandlePutTierRate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockFinanceService)
		mockSvc.On("SetTierRate", mock.Anything, domain.TierRate{
			Tier:         domain.TierT3,
			CostPerSlot:  450,
			PricePerSlot: 900,
		}).Return(nil)

		body := `{"tier":"T3","cost_per_slot":450,"price_per_slot":900}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/finance/tier-rates", strings.NewReader(body))
		w := httptest.NewRecorder()
		HandlePutTierRate(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgTierRateUpdated)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Zero Rate Rejected", func(t *testing.T) {
		mockSvc := new(MockFinanceService)

		body := `{"tier":"T3","cost_per_slot":0,"price_per_slot":900}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/finance/tier-rates", strings.NewReader(body))
		w := httptest.NewRecorder()
		HandlePutTierRate(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "SetTierRate")
	})
}

func TestHandleRecordExpense(t *testing.T) {
	mockSvc := new(MockFinanceService)
	mockSvc.On("RecordExpense", mock.Anything, mock.MatchedBy(func(e domain.ExpenseRecord) bool {
		return e.TeamID == testTeamUUID && e.SlotsPlayed == 4
	})).Return(domain.ExpenseRecord{ID: "exp-1", TeamID: testTeamUUID, Month: "2026-07", SlotsPlayed: 4}, nil)

	body := `{"team_id":"` + testTeamUUID + `","month":"2026-07","slots_played":4,"slots_won":2,"slot_price":1000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/finance/expenses", strings.NewReader(body))
	w := httptest.NewRecorder()
	HandleRecordExpense(mockSvc)(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"exp-1"`)
	mockSvc.AssertExpectations(t)
}

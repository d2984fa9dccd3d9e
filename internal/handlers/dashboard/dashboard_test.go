package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/dto"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*DashboardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetDashboardHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		memberID     string
		prepareMock  func()
		expectedCode int
		expectedBody dto.DashboardResponseDTO
	}{
		{
			name:     "Successful retrieval",
			memberID: "1",
			prepareMock: func() {
				service.EXPECT().
					Dashboard(gomock.Any(), domain.ID(1)).
					Return(&domain.Dashboard{
						TotalSavings:    1500,
						TotalCredit:     2000,
						RemainingDebt:   1200,
						TotalPaid:       800,
						PendingSavings:  1,
						PendingCredits:  2,
						PendingPayments: 0,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.DashboardResponseDTO{
				TotalSavings:  1500,
				TotalCredit:   2000,
				RemainingDebt: 1200,
				TotalPaid:     800,
				Pending:       dto.PendingCountsDTO{Savings: 1, Credits: 2},
			},
		},
		{
			name:         "Invalid member id",
			memberID:     "0",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Internal error",
			memberID: "1",
			prepareMock: func() {
				service.EXPECT().
					Dashboard(gomock.Any(), domain.ID(1)).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodGet, "/dashboard/"+tt.memberID, nil)
			r = withURLParam(r, "memberId", tt.memberID)
			w := httptest.NewRecorder()
			handler.GetDashboard(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.DashboardResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetStatsHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now().UTC().Truncate(time.Second)

	service.EXPECT().CoopStats(gomock.Any()).Return(&domain.CoopStats{
		TotalMembers:       12,
		TotalSavings:       10000,
		TotalCredits:       4000,
		TotalRemainingDebt: 2500,
		TotalPayments:      1500,
		TotalCapital:       6000,
		UpdatedAt:          now,
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()
	handler.GetStats(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.CoopStatsResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, 12, body.TotalMembers)
	assert.Equal(t, 6000.0, body.TotalCapital)

	service.EXPECT().CoopStats(gomock.Any()).Return(nil, errors.New("db error"))
	w = httptest.NewRecorder()
	handler.GetStats(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

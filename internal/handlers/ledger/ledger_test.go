package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/dto"
	"github.com/saccodev/sacco-api/internal/service/ledgerservice"
	"github.com/saccodev/sacco-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*LedgerHandler, *MockService) {
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

func TestSubmitSavingHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful deposit",
			body: `{"memberId":1,"amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitSaving(gomock.Any(), domain.ID(1), 500.0).
					Return(&domain.Saving{ID: 10, MemberID: 1, Amount: 500, Status: domain.StatusPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid JSON",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative amount",
			body:         `{"memberId":1,"amount":-5}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Sub-cent amount",
			body:         `{"memberId":1,"amount":10.001}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown member",
			body: `{"memberId":99,"amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitSaving(gomock.Any(), domain.ID(99), 500.0).
					Return(nil, ledgerservice.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Member not approved",
			body: `{"memberId":2,"amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitSaving(gomock.Any(), domain.ID(2), 500.0).
					Return(nil, ledgerservice.ErrMemberNotApproved)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/savings", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.SubmitSaving(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRequestCreditHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Accepted within limit",
			body: `{"memberId":1,"amount":1800}`,
			prepareMock: func() {
				service.EXPECT().
					RequestCredit(gomock.Any(), domain.ID(1), 1800.0).
					Return(&domain.Credit{ID: 20, MemberID: 1, Amount: 1800, RemainingDebt: 1800, Status: domain.StatusPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Limit exceeded",
			body: `{"memberId":1,"amount":2500}`,
			prepareMock: func() {
				service.EXPECT().
					RequestCredit(gomock.Any(), domain.ID(1), 2500.0).
					Return(nil, &ledgerservice.LimitExceededError{Requested: 2500, Limit: 2000, ApprovedSavings: 1000})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "LimitExceeded",
		},
		{
			name: "No approved savings",
			body: `{"memberId":1,"amount":0.01}`,
			prepareMock: func() {
				service.EXPECT().
					RequestCredit(gomock.Any(), domain.ID(1), 0.01).
					Return(nil, ledgerservice.ErrNoApprovedSavings)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "NoApprovedSavings",
		},
		{
			name: "Internal error",
			body: `{"memberId":1,"amount":100}`,
			prepareMock: func() {
				service.EXPECT().
					RequestCredit(gomock.Any(), domain.ID(1), 100.0).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/credits", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.RequestCredit(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var body utils.Response
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedError, body.Error)
				assert.NotEmpty(t, body.Details)
			}
		})
	}
}

func TestRequestPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Accepted payment",
			body: `{"memberId":1,"amount":400}`,
			prepareMock: func() {
				service.EXPECT().
					RequestPayment(gomock.Any(), domain.ID(1), 400.0).
					Return(&domain.Payment{ID: 30, MemberID: 1, Amount: 400, Status: domain.StatusPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Exceeds outstanding debt",
			body: `{"memberId":1,"amount":900}`,
			prepareMock: func() {
				service.EXPECT().
					RequestPayment(gomock.Any(), domain.ID(1), 900.0).
					Return(nil, &ledgerservice.ExceedsOutstandingDebtError{Requested: 900, Outstanding: 600})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "ExceedsOutstandingDebt",
		},
		{
			name: "No outstanding debt",
			body: `{"memberId":1,"amount":100}`,
			prepareMock: func() {
				service.EXPECT().
					RequestPayment(gomock.Any(), domain.ID(1), 100.0).
					Return(nil, ledgerservice.ErrNoOutstandingDebt)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "NoOutstandingDebt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.RequestPayment(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var body utils.Response
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedError, body.Error)
			}
		})
	}
}

func TestUpdatePaymentStatusHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful approval",
			body: `{"paymentId":30,"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdatePaymentStatus(gomock.Any(), domain.ID(30), domain.StatusApproved).
					Return(&domain.Payment{ID: 30, MemberID: 1, Amount: 400, Status: domain.StatusApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Pending is not a valid target",
			body:         `{"paymentId":30,"status":"pending"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Payment not found",
			body: `{"paymentId":99,"status":"approved"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdatePaymentStatus(gomock.Any(), domain.ID(99), domain.StatusApproved).
					Return(nil, ledgerservice.ErrRecordNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already decided",
			body: `{"paymentId":30,"status":"rejected"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdatePaymentStatus(gomock.Any(), domain.ID(30), domain.StatusRejected).
					Return(nil, ledgerservice.ErrStatusFinal)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPut, "/payments/status", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.UpdatePaymentStatus(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateSavingStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		UpdateSavingStatus(gomock.Any(), domain.ID(10), domain.StatusApproved).
		Return(&domain.Saving{ID: 10, MemberID: 1, Amount: 500, Status: domain.StatusApproved}, nil)

	r := httptest.NewRequest(http.MethodPut, "/savings/status", bytes.NewBufferString(`{"savingId":10,"status":"approved"}`))
	w := httptest.NewRecorder()
	handler.UpdateSavingStatus(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.SavingDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, "approved", body.Status)
}

func TestUpdateCreditStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		UpdateCreditStatus(gomock.Any(), domain.ID(20), domain.StatusRejected).
		Return(&domain.Credit{ID: 20, MemberID: 1, Amount: 1000, RemainingDebt: 1000, Status: domain.StatusRejected}, nil)

	r := httptest.NewRequest(http.MethodPut, "/credits/status", bytes.NewBufferString(`{"creditId":20,"status":"rejected"}`))
	w := httptest.NewRecorder()
	handler.UpdateCreditStatus(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListSavingsHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		memberID     string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:     "Successful listing",
			memberID: "1",
			prepareMock: func() {
				service.EXPECT().
					ListSavings(gomock.Any(), domain.ID(1)).
					Return([]domain.Saving{
						{ID: 10, MemberID: 1, Amount: 500, Status: domain.StatusApproved},
						{ID: 11, MemberID: 1, Amount: 250, Status: domain.StatusPending},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:         "Invalid member id",
			memberID:     "abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Internal error",
			memberID: "1",
			prepareMock: func() {
				service.EXPECT().
					ListSavings(gomock.Any(), domain.ID(1)).
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
			r := httptest.NewRequest(http.MethodGet, "/savings/"+tt.memberID, nil)
			r = withURLParam(r, "memberId", tt.memberID)
			w := httptest.NewRecorder()
			handler.ListSavings(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.SavingDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestListCreditsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		ListCredits(gomock.Any(), domain.ID(1)).
		Return([]domain.Credit{{ID: 20, MemberID: 1, Amount: 1000, RemainingDebt: 600, Status: domain.StatusApproved}}, nil)

	r := withURLParam(httptest.NewRequest(http.MethodGet, "/credits/1", nil), "memberId", "1")
	w := httptest.NewRecorder()
	handler.ListCredits(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body []dto.CreditDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, 600.0, body[0].RemainingDebt)
}

func TestListPaymentsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		ListPayments(gomock.Any(), domain.ID(1)).
		Return([]domain.Payment{{ID: 30, MemberID: 1, Amount: 400, Status: domain.StatusApproved}}, nil)

	r := withURLParam(httptest.NewRequest(http.MethodGet, "/payments/1", nil), "memberId", "1")
	w := httptest.NewRecorder()
	handler.ListPayments(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/dto"
	"github.com/saccodev/sacco-api/internal/service/authservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"name":"Jane Doe","email":"jane@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "Jane Doe", "jane@example.com", "secret123").
					Return(&domain.Member{
						ID:     1,
						Name:   "Jane Doe",
						Email:  "jane@example.com",
						Role:   domain.RoleMember,
						Status: domain.StatusPending,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid JSON",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Short password",
			body:         `{"name":"Jane Doe","email":"jane@example.com","password":"short"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Email already taken",
			body: `{"name":"Jane Doe","email":"jane@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "Jane Doe", "jane@example.com", "secret123").
					Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal error",
			body: `{"name":"Jane Doe","email":"jane@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "Jane Doe", "jane@example.com", "secret123").
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
			r := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.MemberDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "pending", body.Status)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	member := &domain.Member{
		ID:     1,
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Role:   domain.RoleMember,
		Status: domain.StatusApproved,
	}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "jane@example.com", "secret123").
					Return(member, nil)
				service.EXPECT().GenerateToken(member).Return("token123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid JSON",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"jane@example.com","password":"wrong-pass"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "jane@example.com", "wrong-pass").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Not approved",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "jane@example.com", "secret123").
					Return(nil, authservice.ErrNotApproved)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Token generation failure",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "jane@example.com", "secret123").
					Return(member, nil)
				service.EXPECT().GenerateToken(member).Return("", errors.New("sign error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.LoginResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "token123", body.Token)
				assert.Equal(t, "Bearer token123", w.Header().Get("Authorization"))
			}
		})
	}
}

package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService, 7*24*time.Hour)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func(repo *MockRepo, hasher *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name:     "Successful registration",
			email:    "abeba@example.com",
			password: "testpassword",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), "abeba@example.com").Return(nil, nil)
				hasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, member *domain.Member) (*domain.Member, error) {
					member.ID = 1
					return member, nil
				})
			},
		},
		{
			name:     "Email already registered",
			email:    "abeba@example.com",
			password: "testpassword",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), "abeba@example.com").Return(&domain.Member{ID: 1}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:     "Hashing failure",
			email:    "abeba@example.com",
			password: "testpassword",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), "abeba@example.com").Return(nil, nil)
				hasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hasher, _ := NewMock(t)
			tt.prepareMock(repo, hasher)

			member, err := service.Register(context.Background(), "Abeba", tt.email, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.StatusPending, member.Status)
				assert.Equal(t, domain.RoleMember, member.Role)
				assert.Equal(t, "hashedpassword", member.PasswordHash)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(repo *MockRepo, hasher *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name: "Successful authentication",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), "abeba@example.com").Return(&domain.Member{
					ID:           1,
					Email:        "abeba@example.com",
					PasswordHash: "hashedpassword",
					Status:       domain.StatusApproved,
				}, nil)
				hasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
		},
		{
			name: "Unknown email",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), "abeba@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), "abeba@example.com").Return(&domain.Member{
					ID:           1,
					PasswordHash: "hashedpassword",
					Status:       domain.StatusApproved,
				}, nil)
				hasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Pending account is blocked",
			prepareMock: func(repo *MockRepo, hasher *auth.MockHashServiceInterface) {
				repo.EXPECT().FindByEmail(context.Background(), "abeba@example.com").Return(&domain.Member{
					ID:           1,
					PasswordHash: "hashedpassword",
					Status:       domain.StatusPending,
				}, nil)
				hasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedError: ErrNotApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hasher, _ := NewMock(t)
			tt.prepareMock(repo, hasher)

			member, err := service.Authenticate(context.Background(), "abeba@example.com", "testpassword")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, member)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.ID(1), member.ID)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)
	member := &domain.Member{ID: 1, Role: domain.RoleMember}

	jwtService.EXPECT().
		GenerateJWT(domain.ID(1), domain.RoleMember, gomock.Any()).
		Return("token", nil)

	token, err := service.GenerateToken(member)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	jwtService.EXPECT().
		GenerateJWT(domain.ID(1), domain.RoleMember, gomock.Any()).
		Return("", errors.New("sign error"))

	_, err = service.GenerateToken(member)
	assert.Error(t, err)
}

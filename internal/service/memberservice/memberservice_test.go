package memberservice

import (
	"context"
	"errors"
	"testing"

	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	service := New(repo, notifier)
	return service, repo, notifier
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        domain.Status
		prepareMock   func(repo *MockRepo, notifier *MockNotifier)
		expectedError error
	}{
		{
			name:   "Approve pending member",
			status: domain.StatusApproved,
			prepareMock: func(repo *MockRepo, notifier *MockNotifier) {
				repo.EXPECT().FindByID(gomock.Any(), domain.ID(1)).Return(&domain.Member{
					ID: 1, Status: domain.StatusPending,
				}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), domain.ID(1), domain.StatusApproved).Return(&domain.Member{
					ID: 1, Status: domain.StatusApproved,
				}, nil)
				notifier.EXPECT().StatusDecided(gomock.Any(), "membership", 0.0, domain.StatusApproved)
			},
		},
		{
			name:   "Reject pending member",
			status: domain.StatusRejected,
			prepareMock: func(repo *MockRepo, notifier *MockNotifier) {
				repo.EXPECT().FindByID(gomock.Any(), domain.ID(1)).Return(&domain.Member{
					ID: 1, Status: domain.StatusPending,
				}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), domain.ID(1), domain.StatusRejected).Return(&domain.Member{
					ID: 1, Status: domain.StatusRejected,
				}, nil)
				notifier.EXPECT().StatusDecided(gomock.Any(), "membership", 0.0, domain.StatusRejected)
			},
		},
		{
			name:   "Already decided",
			status: domain.StatusApproved,
			prepareMock: func(repo *MockRepo, notifier *MockNotifier) {
				repo.EXPECT().FindByID(gomock.Any(), domain.ID(1)).Return(&domain.Member{
					ID: 1, Status: domain.StatusApproved,
				}, nil)
			},
			expectedError: ErrStatusFinal,
		},
		{
			name:   "Unknown member",
			status: domain.StatusApproved,
			prepareMock: func(repo *MockRepo, notifier *MockNotifier) {
				repo.EXPECT().FindByID(gomock.Any(), domain.ID(1)).Return(nil, nil)
			},
			expectedError: ErrMemberNotFound,
		},
		{
			name:          "Pending is not a valid target",
			status:        domain.StatusPending,
			expectedError: domain.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, notifier := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(repo, notifier)
			}

			member, err := service.UpdateStatus(context.Background(), 1, tt.status)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, member)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, member.Status)
			}
		})
	}
}

func TestListPending(t *testing.T) {
	service, repo, _ := NewMock(t)
	expected := []domain.Member{{ID: 1, Status: domain.StatusPending}}
	repo.EXPECT().FindByStatus(gomock.Any(), domain.StatusPending).Return(expected, nil)

	members, err := service.ListPending(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, members)

	repo.EXPECT().FindByStatus(gomock.Any(), domain.StatusPending).Return(nil, errors.New("db error"))
	_, err = service.ListPending(context.Background())
	assert.Error(t, err)
}

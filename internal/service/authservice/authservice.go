package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
}

type Service struct {
	memberRepo  Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		memberRepo:  repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotApproved        = errors.New("account not approved")
)

// Register creates a member in pending status. The account stays
// unusable until an administrator approves it.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.Member, error) {
	existing, err := s.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find member: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("email already registered", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	member := &domain.Member{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         domain.RoleMember,
		Status:       domain.StatusPending,
	}
	member, err = s.memberRepo.Create(ctx, member)
	if err != nil {
		zap.L().Error("can't create member: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("member registered, waiting for approval", zap.String("email", email))
	return member, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Member, error) {
	member, err := s.memberRepo.FindByEmail(ctx, email)
	if err != nil || member == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(member.PasswordHash, password); !ok {
		return nil, ErrInvalidCredentials
	}
	if member.Status != domain.StatusApproved {
		zap.L().Info("login blocked, account not approved", zap.String("email", email))
		return nil, ErrNotApproved
	}
	zap.L().Info("member successfully authenticated", zap.String("email", email))
	return member, nil
}

func (s *Service) GenerateToken(member *domain.Member) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(member.ID, member.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

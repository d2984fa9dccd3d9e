package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/dto"
	"github.com/saccodev/sacco-api/internal/service/authservice"
	"github.com/saccodev/sacco-api/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=auth

type Service interface {
	Register(ctx context.Context, name, email, password string) (*domain.Member, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Member, error)
	GenerateToken(member *domain.Member) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new member
//	@Description	Create a membership application. The member stays pending until an administrator approves it.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		201		{object}	dto.MemberDTO			"Pending member"
//	@Failure		400		{object}	utils.Response			"Invalid request payload"
//	@Failure		409		{object}	utils.Response			"Email already registered"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ValidationError")
		return
	}
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", "name, email and a password of at least 8 characters are required")
		return
	}

	member, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, "EmailTaken")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toMemberDTO(member))
}

// Login godoc
//
//	@Summary		Authenticate a member
//	@Description	Exchange email and password for a bearer token. Only approved members can log in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO		true	"Login payload"
//	@Success		200		{object}	dto.LoginResponseDTO	"Token and member"
//	@Failure		400		{object}	utils.Response			"Invalid request payload"
//	@Failure		401		{object}	utils.Response			"Invalid credentials"
//	@Failure		403		{object}	utils.Response			"Membership not approved"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ValidationError")
		return
	}

	member, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, "InvalidCredentials")
		case errors.Is(err, authservice.ErrNotApproved):
			utils.RespondWithError(w, http.StatusForbidden, "NotApproved")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(member)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token:  token,
		Member: toMemberDTO(member),
	})
}

func toMemberDTO(member *domain.Member) dto.MemberDTO {
	return dto.MemberDTO{
		ID:        int64(member.ID),
		Name:      member.Name,
		Email:     member.Email,
		Role:      string(member.Role),
		Status:    string(member.Status),
		CreatedAt: member.CreatedAt,
	}
}

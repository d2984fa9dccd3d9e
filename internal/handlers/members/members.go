package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/dto"
	"github.com/saccodev/sacco-api/internal/service/memberservice"
	"github.com/saccodev/sacco-api/pkg/utils"
)

//go:generate mockgen -source=members.go -destination=members_mock.go -package=members

type Service interface {
	UpdateStatus(ctx context.Context, memberID domain.ID, status domain.Status) (*domain.Member, error)
	ListPending(ctx context.Context) ([]domain.Member, error)
}

type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// UpdateStatus godoc
//
//	@Summary		Resolve a membership application
//	@Description	Approve or reject a pending membership. The decision is final.
//	@Tags			Members
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MemberStatusRequestDTO	true	"Decision payload"
//	@Success		200		{object}	dto.MemberDTO				"Updated member"
//	@Failure		400		{object}	utils.Response				"Invalid request payload"
//	@Failure		404		{object}	utils.Response				"Member not found"
//	@Failure		409		{object}	utils.Response				"Status already final"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/members/status [put]
func (h *MemberHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.MemberStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ValidationError")
		return
	}

	if req.MemberID <= 0 {
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", "memberId must be a positive integer")
		return
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", "status must be approved or rejected")
		return
	}

	member, err := h.memberService.UpdateStatus(r.Context(), domain.ID(req.MemberID), status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", "status must be approved or rejected")
		case errors.Is(err, memberservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "NotFound")
		case errors.Is(err, memberservice.ErrStatusFinal):
			utils.RespondWithError(w, http.StatusConflict, "StatusAlreadyFinal")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMemberDTO(member))
}

// ListPending godoc
//
//	@Summary		List pending membership applications
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.MemberDTO	"Pending members"
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/members/pending [get]
func (h *MemberHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.memberService.ListPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.MemberDTO, len(pending))
	for i, member := range pending {
		response[i] = toMemberDTO(&member)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
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

package dashboard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/dto"
	"github.com/saccodev/sacco-api/pkg/utils"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=dashboard

type Service interface {
	Dashboard(ctx context.Context, memberID domain.ID) (*domain.Dashboard, error)
	CoopStats(ctx context.Context) (*domain.CoopStats, error)
}

type DashboardHandler struct {
	statsService Service
}

func New(statsService Service) *DashboardHandler {
	return &DashboardHandler{
		statsService: statsService,
	}
}

// GetDashboard godoc
//
//	@Summary		Get a member's financial rollup
//	@Description	Approved savings, total credit, remaining debt, approved payments and pending counts for one member.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Param			memberId	path		int						true	"Member ID"
//	@Success		200			{object}	dto.DashboardResponseDTO	"Member rollup"
//	@Failure		400			{object}	utils.Response				"Invalid member ID"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/dashboard/{memberId} [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	memberID, err := domain.ParseID(chi.URLParam(r, "memberId"))
	if err != nil {
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", "memberId must be a positive integer")
		return
	}

	dashboard, err := h.statsService.Dashboard(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		TotalSavings:  dashboard.TotalSavings,
		TotalCredit:   dashboard.TotalCredit,
		RemainingDebt: dashboard.RemainingDebt,
		TotalPaid:     dashboard.TotalPaid,
		Pending: dto.PendingCountsDTO{
			Savings:  dashboard.PendingSavings,
			Credits:  dashboard.PendingCredits,
			Payments: dashboard.PendingPayments,
		},
	})
}

// GetStats godoc
//
//	@Summary		Get cooperative-wide aggregates
//	@Description	Member count, total approved savings, credits, remaining debt, payments and working capital. Recomputed live on every call.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CoopStatsResponseDTO	"Cooperative aggregates"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/stats [get]
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.CoopStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CoopStatsResponseDTO{
		TotalMembers:       stats.TotalMembers,
		TotalSavings:       stats.TotalSavings,
		TotalCredits:       stats.TotalCredits,
		TotalRemainingDebt: stats.TotalRemainingDebt,
		TotalPayments:      stats.TotalPayments,
		TotalCapital:       stats.TotalCapital,
		UpdatedAt:          stats.UpdatedAt,
	})
}

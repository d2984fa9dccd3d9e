package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saccodev/sacco-api/internal/domain"
	"github.com/saccodev/sacco-api/internal/dto"
	"github.com/saccodev/sacco-api/internal/service/ledgerservice"
	"github.com/saccodev/sacco-api/pkg/utils"
	"github.com/saccodev/sacco-api/pkg/validate"
)

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=ledger

type Service interface {
	SubmitSaving(ctx context.Context, memberID domain.ID, amount float64) (*domain.Saving, error)
	RequestCredit(ctx context.Context, memberID domain.ID, amount float64) (*domain.Credit, error)
	RequestPayment(ctx context.Context, memberID domain.ID, amount float64) (*domain.Payment, error)
	UpdateSavingStatus(ctx context.Context, savingID domain.ID, status domain.Status) (*domain.Saving, error)
	UpdateCreditStatus(ctx context.Context, creditID domain.ID, status domain.Status) (*domain.Credit, error)
	UpdatePaymentStatus(ctx context.Context, paymentID domain.ID, status domain.Status) (*domain.Payment, error)
	ListSavings(ctx context.Context, memberID domain.ID) ([]domain.Saving, error)
	ListCredits(ctx context.Context, memberID domain.ID) ([]domain.Credit, error)
	ListPayments(ctx context.Context, memberID domain.ID) ([]domain.Payment, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// SubmitSaving godoc
//
//	@Summary		Submit a saving deposit
//	@Description	Record a saving deposit for an approved member. The deposit stays pending until an administrator approves it.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitRequestDTO	true	"Deposit payload"
//	@Success		201		{object}	dto.SavingDTO			"Pending saving"
//	@Failure		400		{object}	utils.Response			"Invalid request payload"
//	@Failure		404		{object}	utils.Response			"Member not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/savings [post]
func (h *LedgerHandler) SubmitSaving(w http.ResponseWriter, r *http.Request) {
	memberID, amount, ok := h.decodeSubmit(w, r)
	if !ok {
		return
	}

	saving, err := h.ledgerService.SubmitSaving(r.Context(), memberID, amount)
	if err != nil {
		h.respondSubmitError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toSavingDTO(saving))
}

// RequestCredit godoc
//
//	@Summary		Request a credit
//	@Description	Request a credit limited to twice the member's approved savings. The request stays pending until an administrator decides it.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitRequestDTO	true	"Credit request payload"
//	@Success		201		{object}	dto.CreditDTO			"Pending credit"
//	@Failure		400		{object}	utils.Response			"Limit exceeded or no approved savings"
//	@Failure		404		{object}	utils.Response			"Member not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/credits [post]
func (h *LedgerHandler) RequestCredit(w http.ResponseWriter, r *http.Request) {
	memberID, amount, ok := h.decodeSubmit(w, r)
	if !ok {
		return
	}

	credit, err := h.ledgerService.RequestCredit(r.Context(), memberID, amount)
	if err != nil {
		var limitErr *ledgerservice.LimitExceededError
		switch {
		case errors.As(err, &limitErr):
			utils.RespondWithErrorDetails(w, http.StatusBadRequest, "LimitExceeded", limitErr.Error())
		case errors.Is(err, ledgerservice.ErrNoApprovedSavings):
			utils.RespondWithErrorDetails(w, http.StatusBadRequest, "NoApprovedSavings", err.Error())
		default:
			h.respondSubmitError(w, err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toCreditDTO(credit))
}

// RequestPayment godoc
//
//	@Summary		Submit a debt payment
//	@Description	Submit a payment against the member's outstanding debt. The payment stays pending until an administrator decides it.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitRequestDTO	true	"Payment payload"
//	@Success		201		{object}	dto.PaymentDTO			"Pending payment"
//	@Failure		400		{object}	utils.Response			"No outstanding debt or amount exceeds it"
//	@Failure		404		{object}	utils.Response			"Member not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/payments [post]
func (h *LedgerHandler) RequestPayment(w http.ResponseWriter, r *http.Request) {
	memberID, amount, ok := h.decodeSubmit(w, r)
	if !ok {
		return
	}

	payment, err := h.ledgerService.RequestPayment(r.Context(), memberID, amount)
	if err != nil {
		var debtErr *ledgerservice.ExceedsOutstandingDebtError
		switch {
		case errors.As(err, &debtErr):
			utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ExceedsOutstandingDebt", debtErr.Error())
		case errors.Is(err, ledgerservice.ErrNoOutstandingDebt):
			utils.RespondWithErrorDetails(w, http.StatusBadRequest, "NoOutstandingDebt", err.Error())
		default:
			h.respondSubmitError(w, err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPaymentDTO(payment))
}

// UpdateSavingStatus godoc
//
//	@Summary		Resolve a pending saving
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SavingStatusRequestDTO	true	"Decision payload"
//	@Success		200		{object}	dto.SavingDTO				"Updated saving"
//	@Failure		400		{object}	utils.Response				"Invalid request payload"
//	@Failure		404		{object}	utils.Response				"Saving not found"
//	@Failure		409		{object}	utils.Response				"Status already final"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/savings/status [put]
func (h *LedgerHandler) UpdateSavingStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.SavingStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ValidationError")
		return
	}

	id, status, ok := h.validateDecision(w, req.SavingID, req.Status)
	if !ok {
		return
	}
	saving, err := h.ledgerService.UpdateSavingStatus(r.Context(), id, status)
	if err != nil {
		h.respondDecisionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSavingDTO(saving))
}

// UpdateCreditStatus godoc
//
//	@Summary		Resolve a pending credit
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreditStatusRequestDTO	true	"Decision payload"
//	@Success		200		{object}	dto.CreditDTO				"Updated credit"
//	@Failure		400		{object}	utils.Response				"Invalid request payload"
//	@Failure		404		{object}	utils.Response				"Credit not found"
//	@Failure		409		{object}	utils.Response				"Status already final"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/credits/status [put]
func (h *LedgerHandler) UpdateCreditStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.CreditStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ValidationError")
		return
	}

	id, status, ok := h.validateDecision(w, req.CreditID, req.Status)
	if !ok {
		return
	}
	credit, err := h.ledgerService.UpdateCreditStatus(r.Context(), id, status)
	if err != nil {
		h.respondDecisionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCreditDTO(credit))
}

// UpdatePaymentStatus godoc
//
//	@Summary		Resolve a pending payment
//	@Description	Approve or reject a pending payment. Approval redistributes the member's remaining debt across their approved credits.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentStatusRequestDTO	true	"Decision payload"
//	@Success		200		{object}	dto.PaymentDTO				"Updated payment"
//	@Failure		400		{object}	utils.Response				"Invalid request payload"
//	@Failure		404		{object}	utils.Response				"Payment not found"
//	@Failure		409		{object}	utils.Response				"Status already final"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/payments/status [put]
func (h *LedgerHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ValidationError")
		return
	}

	id, status, ok := h.validateDecision(w, req.PaymentID, req.Status)
	if !ok {
		return
	}
	payment, err := h.ledgerService.UpdatePaymentStatus(r.Context(), id, status)
	if err != nil {
		h.respondDecisionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentDTO(payment))
}

// ListSavings godoc
//
//	@Summary		List a member's savings
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			memberId	path		int				true	"Member ID"
//	@Success		200			{array}		dto.SavingDTO	"Savings"
//	@Failure		400			{object}	utils.Response	"Invalid member ID"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/savings/{memberId} [get]
func (h *LedgerHandler) ListSavings(w http.ResponseWriter, r *http.Request) {
	memberID, ok := h.pathMemberID(w, r)
	if !ok {
		return
	}

	savings, err := h.ledgerService.ListSavings(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.SavingDTO, len(savings))
	for i, saving := range savings {
		response[i] = toSavingDTO(&saving)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListCredits godoc
//
//	@Summary		List a member's credits
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			memberId	path		int				true	"Member ID"
//	@Success		200			{array}		dto.CreditDTO	"Credits"
//	@Failure		400			{object}	utils.Response	"Invalid member ID"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/credits/{memberId} [get]
func (h *LedgerHandler) ListCredits(w http.ResponseWriter, r *http.Request) {
	memberID, ok := h.pathMemberID(w, r)
	if !ok {
		return
	}

	credits, err := h.ledgerService.ListCredits(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.CreditDTO, len(credits))
	for i, credit := range credits {
		response[i] = toCreditDTO(&credit)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListPayments godoc
//
//	@Summary		List a member's payments
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			memberId	path		int				true	"Member ID"
//	@Success		200			{array}		dto.PaymentDTO	"Payments"
//	@Failure		400			{object}	utils.Response	"Invalid member ID"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/payments/{memberId} [get]
func (h *LedgerHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	memberID, ok := h.pathMemberID(w, r)
	if !ok {
		return
	}

	payments, err := h.ledgerService.ListPayments(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PaymentDTO, len(payments))
	for i, payment := range payments {
		response[i] = toPaymentDTO(&payment)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *LedgerHandler) decodeSubmit(w http.ResponseWriter, r *http.Request) (domain.ID, float64, bool) {
	var req dto.SubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "ValidationError")
		return 0, 0, false
	}
	if req.MemberID <= 0 {
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", "memberId must be a positive integer")
		return 0, 0, false
	}
	if !validate.IsAmount(req.Amount) {
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", "amount must be a positive number with at most two decimals")
		return 0, 0, false
	}
	return domain.ID(req.MemberID), req.Amount, true
}

func (h *LedgerHandler) validateDecision(w http.ResponseWriter, id int64, status string) (domain.ID, domain.Status, bool) {
	if id <= 0 {
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", "record id must be a positive integer")
		return 0, "", false
	}
	parsed, err := domain.ParseStatus(status)
	if err != nil || !parsed.Final() {
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", "status must be approved or rejected")
		return 0, "", false
	}
	return domain.ID(id), parsed, true
}

func (h *LedgerHandler) pathMemberID(w http.ResponseWriter, r *http.Request) (domain.ID, bool) {
	memberID, err := domain.ParseID(chi.URLParam(r, "memberId"))
	if err != nil {
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", "memberId must be a positive integer")
		return 0, false
	}
	return memberID, true
}

func (h *LedgerHandler) respondSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrInvalidAmount):
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", err.Error())
	case errors.Is(err, ledgerservice.ErrMemberNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "NotFound")
	case errors.Is(err, ledgerservice.ErrMemberNotApproved):
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *LedgerHandler) respondDecisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrRecordNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "NotFound")
	case errors.Is(err, ledgerservice.ErrStatusFinal):
		utils.RespondWithError(w, http.StatusConflict, "StatusAlreadyFinal")
	case errors.Is(err, domain.ErrInvalidStatus):
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "ValidationError", err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toSavingDTO(saving *domain.Saving) dto.SavingDTO {
	return dto.SavingDTO{
		ID:        int64(saving.ID),
		MemberID:  int64(saving.MemberID),
		Amount:    saving.Amount,
		Status:    string(saving.Status),
		CreatedAt: saving.CreatedAt,
	}
}

func toCreditDTO(credit *domain.Credit) dto.CreditDTO {
	return dto.CreditDTO{
		ID:            int64(credit.ID),
		MemberID:      int64(credit.MemberID),
		Amount:        credit.Amount,
		RemainingDebt: credit.RemainingDebt,
		Status:        string(credit.Status),
		CreatedAt:     credit.CreatedAt,
	}
}

func toPaymentDTO(payment *domain.Payment) dto.PaymentDTO {
	return dto.PaymentDTO{
		ID:        int64(payment.ID),
		MemberID:  int64(payment.MemberID),
		Amount:    payment.Amount,
		Status:    string(payment.Status),
		CreatedAt: payment.CreatedAt,
	}
}

package balance

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/dto"
	"github.com/MaxwellWhoSquats/acex/internal/handlers/httperr"
	"github.com/MaxwellWhoSquats/acex/pkg/auth"
	"github.com/MaxwellWhoSquats/acex/pkg/utils"
)

type Service interface {
	CreateBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Adjust(ctx context.Context, userID int, amount int64) (*domain.Balance, error)
	GrantRefill(ctx context.Context, userID int) (*domain.RefillResult, error)
	RefillStatus(ctx context.Context, userID int) (*domain.RefillStatus, error)
	GetHistory(ctx context.Context, userID int) ([]domain.LedgerEntry, error)
}

type BalanceHandler struct {
	balanceService Service
	allowAdjust    bool
}

// New builds the balance handler. The direct PATCH endpoint answers 403
// unless allowAdjust is set.
func New(balanceService Service, allowAdjust bool) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		allowAdjust:    allowAdjust,
	}
}

// GetBalance godoc
//
//	@Summary		Get current balance
//	@Description	Current balance of the authenticated user in cents.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, domain.ErrUnauthenticated)
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance.CurrentBalance})
}

// AdjustBalance godoc
//
//	@Summary		Change balance directly
//	@Description	Applies a signed amount in cents. Debits never take the balance below zero. Disabled (403) unless ALLOW_BALANCE_PATCH is set.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdjustBalanceRequestDTO	true	"Signed amount in cents"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or insufficient funds"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Direct balance changes are disabled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balance [patch]
func (h *BalanceHandler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, domain.ErrUnauthenticated)
		return
	}
	if !h.allowAdjust {
		utils.RespondWithError(w, http.StatusForbidden, "Direct balance changes are disabled")
		return
	}

	var req dto.AdjustBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	balance, err := h.balanceService.Adjust(r.Context(), userID, req.Amount)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance.CurrentBalance})
}

// Refill godoc
//
//	@Summary		Refill balance
//	@Description	Credits the refill amount once per cooldown window.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RefillResponseDTO
//	@Failure		400	{object}	dto.CooldownResponseDTO	"Cooldown active, timeRemaining in ms"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/refill [post]
func (h *BalanceHandler) Refill(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, domain.ErrUnauthenticated)
		return
	}

	result, err := h.balanceService.GrantRefill(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RefillResponseDTO{
		Balance: result.Balance,
		Message: "Balance refilled",
	})
}

// RefillStatus godoc
//
//	@Summary		Refill availability
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RefillStatusResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/refill-status [get]
func (h *BalanceHandler) RefillStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, domain.ErrUnauthenticated)
		return
	}

	status, err := h.balanceService.RefillStatus(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	resp := dto.RefillStatusResponseDTO{CanRefill: status.CanRefill}
	if !status.CanRefill {
		ms := status.TimeRemaining.Milliseconds()
		resp.TimeRemaining = &ms
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetHistory godoc
//
//	@Summary		Balance history
//	@Description	Ledger entries of the authenticated user, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LedgerEntryDTO
//	@Success		204	{object}	utils.Response	"No entries"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/balance/history [get]
func (h *BalanceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, domain.ErrUnauthenticated)
		return
	}

	entries, err := h.balanceService.GetHistory(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if len(entries) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.LedgerEntryDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LedgerEntryDTO{
			ID:           e.ID,
			Kind:         string(e.Kind),
			Amount:       e.Amount,
			BalanceAfter: e.BalanceAfter,
			CreatedAt:    e.CreatedAt,
		}
		if e.RoundID != nil {
			response[i].RoundID = e.RoundID.String()
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

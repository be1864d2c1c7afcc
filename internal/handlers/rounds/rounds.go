package rounds

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/dto"
	"github.com/MaxwellWhoSquats/acex/internal/game"
	"github.com/MaxwellWhoSquats/acex/internal/handlers/httperr"
	"github.com/MaxwellWhoSquats/acex/internal/service/roundservice"
	"github.com/MaxwellWhoSquats/acex/pkg/auth"
	"github.com/MaxwellWhoSquats/acex/pkg/utils"
)

type Service interface {
	PlaceBet(ctx context.Context, userID int, kind game.Kind, wager int64, cfg game.Config) (*roundservice.Snapshot, error)
	Act(ctx context.Context, userID int, roundID uuid.UUID, action game.Action) (*roundservice.Snapshot, error)
	GetRound(ctx context.Context, userID int, roundID uuid.UUID) (*roundservice.Snapshot, error)
	ListRounds(ctx context.Context, userID int) ([]domain.Round, error)
	SettleRound(ctx context.Context, userID int, roundID uuid.UUID) (*domain.Round, error)
}

type RoundHandler struct {
	roundService Service
}

func New(roundService Service) *RoundHandler {
	return &RoundHandler{
		roundService: roundService,
	}
}

// PlaceBet godoc
//
//	@Summary		Start a round
//	@Description	Debits the wager and deals a new round of the chosen game.
//	@Tags			Rounds
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlaceBetRequestDTO	true	"Game, wager in cents and game options"
//	@Success		201		{object}	dto.RoundResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid wager, options or insufficient funds"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		503		{object}	utils.Response	"Store unavailable"
//	@Router			/api/rounds [post]
func (h *RoundHandler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, domain.ErrUnauthenticated)
		return
	}

	var req dto.PlaceBetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cfg := game.Config{
		Board:      req.Config.Board,
		Difficulty: req.Config.Difficulty,
		Length:     req.Config.Length,
		Asteroids:  req.Config.Asteroids,
		Target:     req.Config.Target,
	}
	snap, err := h.roundService.PlaceBet(r.Context(), userID, game.Kind(req.Game), req.Wager, cfg)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(snap.Round, snap.View))
}

// Act godoc
//
//	@Summary		Play a round
//	@Description	Applies one action: hit, stand, double, reveal, cashout or guess.
//	@Tags			Rounds
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Round id"
//	@Param			request	body		dto.ActionRequestDTO	true	"Action"
//	@Success		200		{object}	dto.RoundResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid action or insufficient funds"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Round not found"
//	@Failure		409		{object}	utils.Response	"Round closed"
//	@Router			/api/rounds/{id}/actions [post]
func (h *RoundHandler) Act(w http.ResponseWriter, r *http.Request) {
	userID, roundID, ok := h.target(w, r)
	if !ok {
		return
	}

	var req dto.ActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snap, err := h.roundService.Act(r.Context(), userID, roundID, game.Action{
		Type:  req.Type,
		Cell:  req.Cell,
		Cells: req.Cells,
		Guess: req.Guess,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(snap.Round, snap.View))
}

// GetRound godoc
//
//	@Summary		Get a round
//	@Tags			Rounds
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Round id"
//	@Success		200	{object}	dto.RoundResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Round not found"
//	@Router			/api/rounds/{id} [get]
func (h *RoundHandler) GetRound(w http.ResponseWriter, r *http.Request) {
	userID, roundID, ok := h.target(w, r)
	if !ok {
		return
	}

	snap, err := h.roundService.GetRound(r.Context(), userID, roundID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(snap.Round, snap.View))
}

// ListRounds godoc
//
//	@Summary		Recent rounds
//	@Tags			Rounds
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RoundResponseDTO
//	@Success		204	{object}	utils.Response	"No rounds"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/rounds [get]
func (h *RoundHandler) ListRounds(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, domain.ErrUnauthenticated)
		return
	}

	rounds, err := h.roundService.ListRounds(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if len(rounds) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.RoundResponseDTO, len(rounds))
	for i := range rounds {
		response[i] = toResponse(&rounds[i], nil)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SettleRound godoc
//
//	@Summary		Retry settlement
//	@Description	Credits the payout of a decided round. Safe to repeat: a settled round is never paid twice.
//	@Tags			Rounds
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Round id"
//	@Success		200	{object}	dto.SettleResponseDTO
//	@Failure		400	{object}	utils.Response	"Round is still in play"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Round not found"
//	@Failure		503	{object}	utils.Response	"Store unavailable"
//	@Router			/api/rounds/{id}/settle [post]
func (h *RoundHandler) SettleRound(w http.ResponseWriter, r *http.Request) {
	userID, roundID, ok := h.target(w, r)
	if !ok {
		return
	}

	round, err := h.roundService.SettleRound(r.Context(), userID, roundID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettleResponseDTO{Payout: round.Payout, Settled: round.Settled})
}

// target reads the caller and the round id from the request.
func (h *RoundHandler) target(w http.ResponseWriter, r *http.Request) (int, uuid.UUID, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httperr.Write(w, domain.ErrUnauthenticated)
		return 0, uuid.Nil, false
	}
	roundID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid round id")
		return 0, uuid.Nil, false
	}
	return userID, roundID, true
}

func toResponse(round *domain.Round, view any) dto.RoundResponseDTO {
	resp := dto.RoundResponseDTO{
		ID:        round.ID.String(),
		Game:      round.Game,
		Phase:     string(round.Phase),
		Wager:     round.Wager,
		Outcome:   round.Outcome,
		Payout:    round.Payout,
		Settled:   round.Settled,
		View:      view,
		CreatedAt: round.CreatedAt,
		UpdatedAt: round.UpdatedAt,
	}
	if round.Outcome != "" {
		resp.Multiplier = round.Multiplier.StringFixed(2)
	}
	return resp
}

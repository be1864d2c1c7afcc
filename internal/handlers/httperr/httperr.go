// Package httperr maps domain errors to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/dto"
	"github.com/MaxwellWhoSquats/acex/pkg/utils"
)

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrCooldownActive),
		errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrRoundNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRoundClosed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Write responds with the status for err. Internal failures are logged and
// answered with a generic message.
func Write(w http.ResponseWriter, err error) {
	var cooldown *domain.CooldownError
	if errors.As(err, &cooldown) {
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.CooldownResponseDTO{
			Error:         "Refill not available yet",
			TimeRemaining: cooldown.Remaining.Milliseconds(),
		})
		return
	}

	code := Status(err)
	switch code {
	case http.StatusInternalServerError:
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
	case http.StatusServiceUnavailable:
		utils.RespondWithError(w, code, "Service temporarily unavailable")
	default:
		utils.RespondWithError(w, code, err.Error())
	}
}

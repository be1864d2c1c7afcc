package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCooldownActive    = errors.New("refill cooldown active")
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrInvalidInput      = errors.New("invalid input")
	ErrRoundNotFound     = errors.New("round not found")
	ErrRoundClosed       = errors.New("round closed")
	ErrInvalidAction     = errors.New("invalid action")
)

// CooldownError reports how long until the next refill is allowed.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: %s remaining", ErrCooldownActive, e.Remaining)
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrCooldownActive
}

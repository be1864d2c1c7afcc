package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldownError(t *testing.T) {
	err := fmt.Errorf("refill: %w", &CooldownError{Remaining: 90 * time.Second})

	assert.ErrorIs(t, err, ErrCooldownActive)
	assert.NotErrorIs(t, err, ErrInsufficientFunds)

	var cd *CooldownError
	assert.True(t, errors.As(err, &cd))
	assert.Equal(t, 90*time.Second, cd.Remaining)
	assert.Contains(t, err.Error(), "1m30s remaining")
}

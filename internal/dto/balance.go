package dto

import "time"

// Amounts are integer cents.
type BalanceResponseDTO struct {
	Balance int64 `json:"balance" example:"100000"`
}

type AdjustBalanceRequestDTO struct {
	Amount int64 `json:"amount" example:"-2500"`
}

type RefillResponseDTO struct {
	Balance int64  `json:"balance" example:"100000"`
	Message string `json:"message" example:"Balance refilled"`
}

type CooldownResponseDTO struct {
	Error         string `json:"error" example:"Refill not available yet"`
	TimeRemaining int64  `json:"timeRemaining" example:"1800000"`
}

type RefillStatusResponseDTO struct {
	CanRefill     bool   `json:"canRefill" example:"false"`
	TimeRemaining *int64 `json:"timeRemaining,omitempty" example:"1800000"`
}

type LedgerEntryDTO struct {
	ID           int64     `json:"id" example:"42"`
	Kind         string    `json:"kind" example:"bet"`
	Amount       int64     `json:"amount" example:"-2000"`
	BalanceAfter int64     `json:"balance_after" example:"98000"`
	RoundID      string    `json:"round_id,omitempty" example:"5b0e2c1e-8f1a-4a0e-9a57-1f3f3c7f2a10"`
	CreatedAt    time.Time `json:"created_at" example:"2024-05-01T12:00:00Z"`
}

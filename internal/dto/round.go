package dto

import "time"

type PlaceBetRequestDTO struct {
	Game   string         `json:"game" example:"blackjack"`
	Wager  int64          `json:"wager" example:"2000"`
	Config RoundConfigDTO `json:"config"`
}

type RoundConfigDTO struct {
	Board      int `json:"board,omitempty" example:"25"`
	Difficulty int `json:"difficulty,omitempty" example:"1"`
	Length     int `json:"length,omitempty" example:"5"`
	Asteroids  int `json:"asteroids,omitempty" example:"3"`
	Target     int `json:"target,omitempty" example:"5"`
}

type ActionRequestDTO struct {
	Type  string `json:"type" example:"hit"`
	Cell  *int   `json:"cell,omitempty" example:"7"`
	Cells []int  `json:"cells,omitempty"`
	Guess string `json:"guess,omitempty" example:"grape"`
}

type RoundResponseDTO struct {
	ID         string    `json:"id" example:"5b0e2c1e-8f1a-4a0e-9a57-1f3f3c7f2a10"`
	Game       string    `json:"game" example:"blackjack"`
	Phase      string    `json:"phase" example:"ACTIVE"`
	Wager      int64     `json:"wager" example:"2000"`
	Outcome    string    `json:"outcome,omitempty" example:"WIN"`
	Multiplier string    `json:"multiplier,omitempty" example:"2"`
	Payout     int64     `json:"payout" example:"4000"`
	Settled    bool      `json:"settled" example:"false"`
	View       any       `json:"view,omitempty" swaggertype:"object"`
	CreatedAt  time.Time `json:"created_at" example:"2024-05-01T12:00:00Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2024-05-01T12:00:05Z"`
}

type SettleResponseDTO struct {
	Payout  int64 `json:"payout" example:"4000"`
	Settled bool  `json:"settled" example:"true"`
}

package rounds

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
	"github.com/MaxwellWhoSquats/acex/internal/dto"
	"github.com/MaxwellWhoSquats/acex/internal/game"
	"github.com/MaxwellWhoSquats/acex/internal/service/roundservice"
	"github.com/MaxwellWhoSquats/acex/pkg/auth"
)

func NewMock(t *testing.T) (*RoundHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

// serve routes the request through chi so URL parameters resolve.
func serve(handler *RoundHandler, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/api/rounds", handler.PlaceBet)
	r.Get("/api/rounds", handler.ListRounds)
	r.Get("/api/rounds/{id}", handler.GetRound)
	r.Post("/api/rounds/{id}/actions", handler.Act)
	r.Post("/api/rounds/{id}/settle", handler.SettleRound)

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlaceBetHandler(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Blackjack",
			body: `{"game":"blackjack","wager":2000}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceBet(gomock.Any(), 1, game.KindBlackjack, int64(2000), game.Config{}).
					Return(&roundservice.Snapshot{
						Round: &domain.Round{ID: id, Game: "blackjack", Phase: domain.PhaseActive, Wager: 2000},
						View:  map[string]int{"player_value": 15},
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Asteroids options are passed through",
			body: `{"game":"asteroids","wager":500,"config":{"asteroids":3,"target":5}}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceBet(gomock.Any(), 1, game.KindAsteroids, int64(500), game.Config{Asteroids: 3, Target: 5}).
					Return(&roundservice.Snapshot{Round: &domain.Round{ID: id, Game: "asteroids", Phase: domain.PhaseActive}}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Insufficient funds",
			body: `{"game":"words","wager":500000}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().PlaceBet(gomock.Any(), 1, game.KindWords, int64(500000), game.Config{}).
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed body",
			body:         `{"game":`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := serve(handler, http.MethodPost, "/api/rounds", tt.body)
			assert.Equal(t, tt.expectedCode, w.Code)
			if w.Code == http.StatusCreated {
				var body dto.RoundResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, id.String(), body.ID)
				assert.Equal(t, "ACTIVE", body.Phase)
				assert.Empty(t, body.Multiplier)
			}
		})
	}
}

func TestActHandler(t *testing.T) {
	id := uuid.New()
	cell := 7

	tests := []struct {
		name         string
		target       string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Reveal",
			target: "/api/rounds/" + id.String() + "/actions",
			body:   `{"type":"reveal","cell":7}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Act(gomock.Any(), 1, id, game.Action{Type: "reveal", Cell: &cell}).
					Return(&roundservice.Snapshot{Round: &domain.Round{
						ID: id, Game: "honeybear", Phase: domain.PhaseTerminal, Wager: 100,
						Outcome: "LOSE", Multiplier: decimal.Zero, Settled: true,
					}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Closed round",
			target: "/api/rounds/" + id.String() + "/actions",
			body:   `{"type":"hit"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Act(gomock.Any(), 1, id, game.Action{Type: "hit"}).Return(nil, domain.ErrRoundClosed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Someone else's round",
			target: "/api/rounds/" + id.String() + "/actions",
			body:   `{"type":"stand"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Act(gomock.Any(), 1, id, game.Action{Type: "stand"}).Return(nil, domain.ErrRoundNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Bad id",
			target:       "/api/rounds/not-a-uuid/actions",
			body:         `{"type":"stand"}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid round id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := serve(handler, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestGetAndListHandlers(t *testing.T) {
	id := uuid.New()
	round := domain.Round{
		ID: id, Game: "words", Phase: domain.PhaseTerminal, Wager: 100,
		Outcome: "WIN", Multiplier: decimal.NewFromInt(3), Payout: 300, Settled: true,
	}

	t.Run("Get", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetRound(gomock.Any(), 1, id).Return(&roundservice.Snapshot{Round: &round, View: map[string]string{"target": "grape"}}, nil)

		w := serve(handler, http.MethodGet, "/api/rounds/"+id.String(), "")
		require.Equal(t, http.StatusOK, w.Code)
		var body dto.RoundResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "3.00", body.Multiplier)
		assert.Equal(t, int64(300), body.Payout)
		assert.NotNil(t, body.View)
	})

	t.Run("List", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListRounds(gomock.Any(), 1).Return([]domain.Round{round}, nil)

		w := serve(handler, http.MethodGet, "/api/rounds", "")
		require.Equal(t, http.StatusOK, w.Code)
		var body []dto.RoundResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body, 1)
	})

	t.Run("Empty list", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListRounds(gomock.Any(), 1).Return(nil, nil)

		w := serve(handler, http.MethodGet, "/api/rounds", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestSettleRoundHandler(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Settled",
			prepareMock: func(service *MockService) {
				service.EXPECT().SettleRound(gomock.Any(), 1, id).Return(&domain.Round{ID: id, Payout: 500, Settled: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"payout":500,"settled":true}`,
		},
		{
			name: "Still in play",
			prepareMock: func(service *MockService) {
				service.EXPECT().SettleRound(gomock.Any(), 1, id).Return(nil, domain.ErrInvalidAction)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Store down",
			prepareMock: func(service *MockService) {
				service.EXPECT().SettleRound(gomock.Any(), 1, id).Return(nil, domain.ErrStoreUnavailable)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			w := serve(handler, http.MethodPost, "/api/rounds/"+id.String()+"/settle", "")
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

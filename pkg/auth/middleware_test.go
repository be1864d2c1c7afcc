package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		prepareMock  func(jwt *MockJWTServiceInterface)
		expectedCode int
		expectedUser int
	}{
		{
			name:         "missing header",
			prepareMock:  func(*MockJWTServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "not a bearer token",
			header:       "Basic dXNlcjpwYXNz",
			prepareMock:  func(*MockJWTServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer bad",
			prepareMock: func(jwt *MockJWTServiceInterface) {
				jwt.EXPECT().ValidateToken("bad").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			prepareMock: func(jwt *MockJWTServiceInterface) {
				jwt.EXPECT().ValidateToken("good").Return(&Claims{UserID: 7}, nil)
			},
			expectedCode: http.StatusOK,
			expectedUser: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := NewMockJWTServiceInterface(ctrl)
			tt.prepareMock(jwtService)

			var seen int
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/balance", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			AuthMiddleware(jwtService)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedUser, seen)
		})
	}
}

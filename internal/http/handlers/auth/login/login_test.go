package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	services "github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockToken      string
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantMessage    string
		wantToken      string
	}{
		{
			name:           "valid login",
			requestBody:    Request{Username: "Alice Smith", Password: "longpass1"},
			mockToken:      "signed-token",
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantMessage:    "login successful",
			wantToken:      "signed-token",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
		{
			name:           "validation error - missing password",
			requestBody:    Request{Username: "Alice Smith"},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "field Password is a required field",
		},
		{
			name:           "unknown username",
			requestBody:    Request{Username: "Nobody Here", Password: "longpass1"},
			mockErr:        services.ErrUserNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "no account is found with this username",
		},
		{
			name:           "wrong password",
			requestBody:    Request{Username: "Alice Smith", Password: "wrongpass1"},
			mockErr:        services.ErrInvalidCredentials,
			mockCalled:     true,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid credentials",
		},
		{
			name:           "store failure",
			requestBody:    Request{Username: "Alice Smith", Password: "longpass1"},
			mockErr:        errors.New("db error"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			handler := New(newNoopLogger(), authMock)

			if tt.mockCalled {
				r := tt.requestBody.(Request)
				authMock.On("Login", mock.Anything, r.Username, r.Password).
					Return(tt.mockToken, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantMessage, got["message"])

			if tt.wantToken != "" {
				assert.Equal(t, tt.wantToken, got["token"])
			} else {
				assert.Nil(t, got["token"])
			}

			authMock.AssertExpectations(t)
		})
	}
}

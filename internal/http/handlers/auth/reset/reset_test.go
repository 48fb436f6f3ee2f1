package reset

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

func (m *AuthServiceMock) ResetPassword(ctx context.Context, username, code, newPassword string) error {
	args := m.Called(ctx, username, code, newPassword)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestResetHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "successful reset",
			requestBody:    Request{Username: "Alice Smith", Otp: "004321", Password: "newpass12"},
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantMessage:    "password reset successfully",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
		{
			name:           "short new password",
			requestBody:    Request{Username: "Alice Smith", Otp: "004321", Password: "short"},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "field Password must be at least 8 characters long",
		},
		{
			name:           "unknown username",
			requestBody:    Request{Username: "Nobody Here", Otp: "004321", Password: "newpass12"},
			mockErr:        services.ErrUserNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "no account is found with this username",
		},
		{
			name:           "expired otp",
			requestBody:    Request{Username: "Alice Smith", Otp: "004321", Password: "newpass12"},
			mockErr:        services.ErrOtpExpired,
			mockCalled:     true,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "OTP has expired",
		},
		{
			name:           "wrong otp",
			requestBody:    Request{Username: "Alice Smith", Otp: "123456", Password: "newpass12"},
			mockErr:        services.ErrInvalidOtp,
			mockCalled:     true,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid OTP",
		},
		{
			name:           "zero rows updated is a soft failure",
			requestBody:    Request{Username: "Alice Smith", Otp: "004321", Password: "newpass12"},
			mockErr:        services.ErrNothingUpdated,
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantMessage:    "something went wrong",
		},
		{
			name:           "store failure",
			requestBody:    Request{Username: "Alice Smith", Otp: "004321", Password: "newpass12"},
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
				authMock.On("ResetPassword", mock.Anything, r.Username, r.Otp, r.Password).
					Return(tt.mockErr).Once()
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

			req := httptest.NewRequest(http.MethodPost, "/reset", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantMessage, got["message"])

			authMock.AssertExpectations(t)
		})
	}
}

// Package otp реализует сервисный обработчик, возвращающий выданный пользователю
// одноразовый код. ТОЛЬКО ДЛЯ ТЕСТИРОВАНИЯ: маршрут регистрируется
// исключительно в окружении local и в боевой конфигурации недоступен.
package otp

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/http/response"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/lib/sl"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/models"
)

// Request — входные данные запроса.
type Request struct {
	Username string `json:"username"`
}

// UserProvider отдаёт пользователя по имени напрямую из хранилища.
type UserProvider interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Handler обрабатывает сервисные запросы чтения кода.
type Handler struct {
	log   *slog.Logger
	users UserProvider
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, users UserProvider) *Handler {
	return &Handler{
		log:   log,
		users: users,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.otp"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	user, err := h.users.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		log.Error("failed to get user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error"))
		return
	}

	var code string
	if user.Otp != nil {
		code = *user.Otp
	}
	render.JSON(w, r, map[string]any{"otp": code})
}

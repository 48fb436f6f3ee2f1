// Package reset реализует HTTP-обработчик сброса пароля по одноразовому коду.
//
// Успешный сброс расходует код: обновление хэша и очистка кода выполняются
// хранилищем как единое атомарное изменение.
package reset

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/http/response"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/lib/sl"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/lib/validation"
	services "github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/services/auth"
)

// Request — входные данные сброса пароля.
type Request struct {
	Username string `json:"username" validate:"required,alphaspace"`
	Otp      string `json:"otp" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// Service описывает интерфейс бизнес-логики сброса пароля.
type Service interface {
	ResetPassword(ctx context.Context, username, code, newPassword string) error
}

// Handler обрабатывает HTTP-запросы сброса пароля.
type Handler struct {
	log      *slog.Logger
	auth     Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler с указанными логгером и сервисом аутентификации.
func New(log *slog.Logger, auth Service) *Handler {
	return &Handler{
		log:      log,
		auth:     auth,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Сброс пароля по одноразовому коду
// @Description Проверяет код и атомарно устанавливает новый пароль, одновременно гася код.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Имя пользователя, код и новый пароль"
// @Success 200 {object} response.Response "Пароль сброшен (или мягкий отказ)"
// @Failure 400 {object} response.Response "Код неверен или просрочен"
// @Failure 500 {object} response.Response "Внутренняя ошибка сервера"
// @Router /reset [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.reset"

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
	req.Otp = strings.TrimSpace(req.Otp)
	log.Info("request body decoded", slog.String("username", req.Username))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.auth.ResetPassword(r.Context(), req.Username, req.Otp, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			log.Info("unknown username", slog.String("username", req.Username))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("no account is found with this username"))
		case errors.Is(err, services.ErrOtpExpired):
			log.Info("otp expired", slog.String("username", req.Username))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("OTP has expired"))
		case errors.Is(err, services.ErrInvalidOtp):
			log.Info("invalid otp", slog.String("username", req.Username))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid OTP"))
		case errors.Is(err, services.ErrNothingUpdated):
			// мягкий отказ: проверка прошла, но обновлять оказалось нечего
			log.Warn("reset updated no rows", slog.String("username", req.Username))
			render.JSON(w, r, response.Error("something went wrong"))
		default:
			log.Error("password reset failed", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("server error"))
		}
		return
	}

	log.Info("password reset", slog.String("username", req.Username))
	render.JSON(w, r, response.OK("password reset successfully"))
}

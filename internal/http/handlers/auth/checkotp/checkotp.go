// Package checkotp реализует HTTP-обработчик проверки одноразового кода.
//
// Проверка не расходует код: успешный ответ оставляет его действительным
// для последующего запроса сброса пароля до истечения срока.
package checkotp

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

// Request — входные данные проверки одноразового кода.
type Request struct {
	Username string `json:"username" validate:"required,alphaspace"`
	Otp      string `json:"otp" validate:"required"`
}

// Service описывает интерфейс бизнес-логики проверки одноразовых кодов.
type Service interface {
	VerifyOtp(ctx context.Context, username, code string) error
}

// Handler обрабатывает HTTP-запросы проверки одноразового кода.
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
// @Summary Проверка одноразового кода
// @Description Сверяет код с выданным и проверяет срок его действия. Код не расходуется.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Имя пользователя и код"
// @Success 200 {object} response.Response "Код подтверждён"
// @Failure 400 {object} response.Response "Код неверен или просрочен"
// @Failure 500 {object} response.Response "Внутренняя ошибка сервера"
// @Router /checkOtp [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.checkotp"

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

	if err := h.auth.VerifyOtp(r.Context(), req.Username, req.Otp); err != nil {
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
		default:
			log.Error("otp verification failed", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("server error"))
		}
		return
	}

	log.Info("otp verified", slog.String("username", req.Username))
	render.JSON(w, r, response.OK("OTP verified successfully"))
}

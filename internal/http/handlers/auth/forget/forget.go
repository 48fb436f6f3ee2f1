// Package forget реализует HTTP-обработчик запроса одноразового кода для сброса пароля.
//
// Новый код перезаписывает ранее выданный. Доставка кода пользователю
// выполняется внешним сервисом и в этом обработчике не производится.
package forget

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

// Request — входные данные запроса одноразового кода.
type Request struct {
	Username string `json:"username" validate:"required,alphaspace"`
}

// Service описывает интерфейс бизнес-логики выдачи одноразовых кодов.
type Service interface {
	RequestOtp(ctx context.Context, username string) error
}

// Handler обрабатывает HTTP-запросы выдачи одноразового кода.
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
// @Summary Запрос одноразового кода
// @Description Генерирует пользователю 6-значный код для сброса пароля.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Имя пользователя"
// @Success 200 {object} response.Response "Код сгенерирован"
// @Failure 400 {object} response.Response "Некорректные данные или неизвестное имя"
// @Failure 500 {object} response.Response "Не удалось сгенерировать код"
// @Router /forget [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.forget"

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
	log.Info("request body decoded", slog.String("username", req.Username))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.auth.RequestOtp(r.Context(), req.Username); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			log.Info("unknown username", slog.String("username", req.Username))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("no account is found with this username"))
			return
		}
		log.Error("otp generation failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not generate OTP"))
		return
	}

	log.Info("otp generated", slog.String("username", req.Username))
	render.JSON(w, r, response.OK("OTP generated and sent to your email"))
}

// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Каждый ответ несёт
// человекочитаемое message; успешные ответы аутентификации — ещё и токен.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Message — человекочитаемый результат операции.
// Поле Token — подписанный токен (только в успешных ответах регистрации и входа).
type Response struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// OK возвращает успешный Response с переданным сообщением.
func OK(msg string) Response {
	return Response{
		Message: msg,
	}
}

// OKWithToken возвращает успешный Response с сообщением и выданным токеном.
func OKWithToken(msg, token string) Response {
	return Response{
		Message: msg,
		Token:   token,
	}
}

// Error возвращает Response с сообщением об ошибке.
// Текст сообщения никогда не содержит внутренних деталей.
func Error(msg string) Response {
	return Response{
		Message: msg,
	}
}

// ValidationError формирует Response на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s characters long", err.Field(), err.Param()))
		case "alphaspace":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only letters and spaces", err.Field()))
		case "simpleemail":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Message: strings.Join(errsMsgs, ", "),
	}
}

// Package validation настраивает валидатор входных данных HTTP-запросов.
//
// Помимо встроенных правил регистрируются два проектных тега:
// alphaspace — имя пользователя из букв и пробелов, simpleemail — адрес
// формы local@domain.tld.
package validation

import (
	"regexp"

	"github.com/go-playground/validator"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// New возвращает валидатор с зарегистрированными проектными правилами.
func New() *validator.Validate {
	v := validator.New()
	// ошибки регистрации возможны только при пустом имени тега
	_ = v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	return v
}

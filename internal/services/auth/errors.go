package services

import "errors"

// Ожидаемые доменные исходы операций аутентификации.
// HTTP-слой различает их через errors.Is и детерминированно выбирает
// код ответа; любая другая ошибка трактуется как внутренняя.
var (
	// ErrUserExists — попытка регистрации с занятым email или username.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound — пользователь с таким username не существует.
	// Намеренно отличим от ErrInvalidCredentials: username в этой системе не секрет.
	ErrUserNotFound = errors.New("no account is found with this username")
	// ErrInvalidCredentials — пароль не совпал с хэшем.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrOtpExpired — код не выдавался либо срок его действия истёк.
	ErrOtpExpired = errors.New("otp has expired")
	// ErrInvalidOtp — переданный код не совпал с сохранённым.
	ErrInvalidOtp = errors.New("invalid otp")
	// ErrNothingUpdated — сброс пароля не изменил ни одной строки
	// (пользователь исчез между проверкой и обновлением). Мягкий отказ.
	ErrNothingUpdated = errors.New("nothing was updated")
)

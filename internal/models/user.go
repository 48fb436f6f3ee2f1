// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и состояние одноразового кода (OTP).
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
//
// Поля Otp и OtpExpiry либо оба равны nil (кода нет), либо оба заполнены:
// код действителен строго до момента OtpExpiry.
type User struct {
	UID          string     // Уникальный идентификатор пользователя, назначается хранилищем
	Username     string     // Имя пользователя (уникальное)
	Email        string     // Электронная почта (уникальная)
	PasswordHash string     // Хэш пароля пользователя, никогда не plain-text
	Otp          *string    // Одноразовый 6-значный код для сброса пароля
	OtpExpiry    *time.Time // Момент истечения кода
	CreatedAt    time.Time  // Дата создания учётной записи
}

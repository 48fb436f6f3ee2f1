// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией:
// регистрация, вход, выдача и проверка одноразовых кодов, сброс пароля.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/lib/jwt"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/lib/otp"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/lib/password"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/models"
	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/storage"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
//
// Методы поиска сообщают об отсутствии пользователя ошибкой storage.ErrUserNotFound.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByEmail возвращает пользователя по почте.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateOtp записывает пользователю новый одноразовый код и срок его действия.
	UpdateOtp(ctx context.Context, userUID, code string, expiry time.Time) error

	// ResetPassword атомарно обновляет хэш пароля и сбрасывает одноразовый код,
	// возвращая количество обновлённых строк.
	ResetPassword(ctx context.Context, userUID, passwordHash string) (int64, error)
}

// AuthService отвечает за регистрацию, вход и жизненный цикл одноразовых кодов.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	otpTTL   time.Duration
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, otpTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		otpTTL:   otpTTL,
	}
}

// Register создает нового пользователя и возвращает подписанный токен с его UID.
//
// Занятость email и username проверяется двумя независимыми запросами;
// совпадение по любому из них — ErrUserExists. Пароль хэшируется до обращения
// к хранилищу, чтобы не занимать соединение на время работы bcrypt.
func (s *AuthService) Register(ctx context.Context, email, username, rawPassword string) (string, error) {
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return "", ErrUserExists
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return "", err
	}
	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return "", ErrUserExists
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return "", err
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}

	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
	}
	newUID, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return "", err
	}
	return s.jwtMaker.GenerateToken(newUID)
}

// Login проверяет пароль пользователя и возвращает подписанный токен.
//
// Отсутствие учётной записи и неверный пароль — разные исходы
// (ErrUserNotFound и ErrInvalidCredentials соответственно).
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwtMaker.GenerateToken(user.UID)
}

// RequestOtp генерирует пользователю новый одноразовый код со сроком действия otpTTL
// и сохраняет его, перезаписывая ранее выданный код.
//
// Доставка кода (например, почтой) выполняется внешним сервисом и здесь не производится.
func (s *AuthService) RequestOtp(ctx context.Context, username string) error {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code, err := otp.Generate()
	if err != nil {
		return err
	}
	expiry := time.Now().UTC().Add(s.otpTTL)
	return s.users.UpdateOtp(ctx, user.UID, code, expiry)
}

// VerifyOtp проверяет код, не расходуя его: после успешной проверки код
// остаётся действительным до истечения срока или до сброса пароля.
func (s *AuthService) VerifyOtp(ctx context.Context, username, code string) error {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return checkOtp(user, code)
}

// ResetPassword проверяет код и устанавливает пользователю новый пароль.
//
// Обновление хэша и сброс кода выполняются хранилищем атомарно; новый пароль
// хэшируется после всех проверок. Если обновление не затронуло ни одной строки,
// возвращается ErrNothingUpdated.
func (s *AuthService) ResetPassword(ctx context.Context, username, code, newPassword string) error {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := checkOtp(user, code); err != nil {
		return err
	}

	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return err
	}
	rowsAffected, err := s.users.ResetPassword(ctx, user.UID, hashed)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNothingUpdated
	}
	return nil
}

// checkOtp сверяет код с состоянием пользователя: сначала срок действия,
// затем точное строковое совпадение.
func checkOtp(user *models.User, code string) error {
	if user.OtpExpiry == nil || time.Now().After(*user.OtpExpiry) {
		return ErrOtpExpired
	}
	if user.Otp == nil || *user.Otp != code {
		return ErrInvalidOtp
	}
	return nil
}

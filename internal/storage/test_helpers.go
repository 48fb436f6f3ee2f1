package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/subrata-chowdhury/Basic-Auth-REST-APIs/internal/migrations"
)

// setupTestStorage поднимает контейнер PostgreSQL, накатывает миграции
// и возвращает готовое хранилище с функцией очистки.
func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	st, err := New(dsn)
	require.NoError(t, err)

	migrationsPath, err := filepath.Abs(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	require.NoError(t, migrations.Run(st.DB, migrationsPath))

	cleanup := func() {
		_ = st.DB.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return st, cleanup
}

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его UID
func (f *TestDataFactory) CreateUser(t *testing.T, username, email, passwordHash string) string {
	var uid string
	err := f.storage.DB.QueryRow(`INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3) RETURNING uid`,
		username, email, passwordHash).Scan(&uid)
	require.NoError(t, err)
	return uid
}

// CreateUserWithOtp создает тестового пользователя с выданным одноразовым кодом
func (f *TestDataFactory) CreateUserWithOtp(t *testing.T, username, email, passwordHash,
	otpCode string, otpExpiry time.Time) string {
	var uid string
	err := f.storage.DB.QueryRow(`INSERT INTO users (username, email, password_hash, otp, otp_expiry)
		VALUES ($1, $2, $3, $4, $5) RETURNING uid`,
		username, email, passwordHash, otpCode, otpExpiry).Scan(&uid)
	require.NoError(t, err)
	return uid
}

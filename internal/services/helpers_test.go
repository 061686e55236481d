package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/database"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func newTestTokens(t *testing.T, secret string) *TokenService {
	t.Helper()
	tokens, err := NewTokenService(TokenConfig{Secret: []byte(secret), Algorithm: "HS256", TTL: 30 * time.Minute})
	require.NoError(t, err)
	return tokens
}

func newTestHasher() *PasswordHasher {
	return NewPasswordHasher(bcrypt.MinCost)
}

func registerRep(t *testing.T, db *gorm.DB, email, password string) *models.Representative {
	t.Helper()
	svc := NewRepresentativeService(db, newTestHasher(), "US")
	rep, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName:  "Test Representative",
		BirthDate: "1990-05-17",
		Country:   "Colombia",
		Email:     email,
		Password:  password,
	})
	require.NoError(t, err)
	return rep
}

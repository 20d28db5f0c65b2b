package services_test

import (
	"context"
	"testing"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
	"tripwise/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
}

var _ repositories.AccountRepository = (*fakeAccountRepo)(nil)

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	return f.accounts[email], nil
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.Email] = account
	return nil
}

func TestCreateAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := services.NewAccountService(repo)

	req := request_models.SignUpRequest{
		Email:       "ana@example.com",
		Password:    "secret123",
		DisplayName: "Ana",
	}

	account, err := svc.CreateAccount(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", account.Email)
	assert.Equal(t, "Ana", account.Name)
	assert.NotEmpty(t, account.ID)

	// Password is stored hashed, never verbatim.
	stored := repo.accounts["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(stored.PasswordHash, "secret123"))

	_, err = svc.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-key")

	repo := newFakeAccountRepo()
	svc := services.NewAccountService(repo)

	_, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:       "ana@example.com",
		Password:    "secret123",
		DisplayName: "Ana",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, repo.accounts["ana@example.com"].ID.String(), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-desk/models"
	"service-desk/testutil"
	"service-desk/utils"
)

func newAuthService() (*AuthService, *testutil.UserStore, *utils.TokenService) {
	users := testutil.NewUserStore()
	tokens := utils.NewTokenService("test-secret", time.Hour)
	return NewAuthService(users, tokens), users, tokens
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc, users, tokens := newAuthService()
	ctx := context.Background()

	created, err := svc.Register(ctx, models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", created.Name)

	stored, err := users.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.Password)

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "s3cret"})
	require.NoError(t, err)

	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()
	req := models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "s3cret"}

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_StoreFailureIsInternal(t *testing.T) {
	svc, users, _ := newAuthService()
	users.Err = errors.New("connection refused")

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@example.com", Password: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)

	_, err = svc.ListUsers(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

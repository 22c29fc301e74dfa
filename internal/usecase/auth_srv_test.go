package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rk-commerce/internal/data/repository/repotest"
	"rk-commerce/internal/dto/request"
	"rk-commerce/internal/usecase"
	"rk-commerce/pkg/token"
)

func TestRegisterStoresHashedPassword(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Auth.Register(ctx, &request.RegisterRequest{
		Email:    "a@x.com",
		Password: "pw",
		FullName: "Ayu",
		Phone:    "0812",
		Address:  "Jl. Merdeka 1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.True(t, user.IsActive)

	stored, err := repo.User.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw", stored.PasswordHash)
	assert.Equal(t, "Jl. Merdeka 1", stored.Address)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	registerUser(t, svc, "a@x.com")

	_, err := svc.Auth.Register(context.Background(), &request.RegisterRequest{
		Email:    "a@x.com",
		Password: "other",
		FullName: "Someone Else",
	})
	require.ErrorIs(t, err, usecase.ErrConflict)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterValidatesInput(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)

	_, err := svc.Auth.Register(context.Background(), &request.RegisterRequest{
		Email:    "not-an-email",
		Password: "pw",
		FullName: "X",
	})
	assert.ErrorIs(t, err, usecase.ErrBadRequest)
}

func TestLoginIssuesBearerToken(t *testing.T) {
	t.Parallel()

	svc, _, tokens := newTestService(t)
	registerUser(t, svc, "a@x.com")

	resp, err := svc.Auth.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	subject, err := tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestLoginFailuresLookAlike(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	registerUser(t, svc, "a@x.com")
	ctx := context.Background()

	_, wrongPassword := svc.Auth.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "nope"})
	_, unknownEmail := svc.Auth.Login(ctx, &request.LoginRequest{Email: "b@x.com", Password: "pw"})

	require.ErrorIs(t, wrongPassword, usecase.ErrUnauthorized)
	require.ErrorIs(t, unknownEmail, usecase.ErrUnauthorized)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestVerifyResolvesUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	registered := registerUser(t, svc, "a@x.com")

	resp, err := svc.Auth.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	user, err := svc.Auth.Verify(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestVerifyRejectsTokenOfDeletedUser(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService(t)
	registered := registerUser(t, svc, "a@x.com")

	resp, err := svc.Auth.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	repo.User.(*repotest.Users).Delete(registered.ID)

	_, err = svc.Auth.Verify(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := issued

	tokens, err := token.NewManager(testSecret, 30*time.Minute)
	require.NoError(t, err)
	tokens.WithClock(func() time.Time { return clock })

	repo := repotest.New()
	svc := usecase.NewService(repo, tokens, testConfig(), zap.NewNop())
	registerUser(t, svc, "a@x.com")

	resp, err := svc.Auth.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	clock = issued.Add(31 * time.Minute)
	_, err = svc.Auth.Verify(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)

	_, err := svc.Auth.Verify(context.Background(), "garbage")
	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	registered := registerUser(t, svc, "a@x.com")

	profile, err := svc.User.GetProfile(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", profile.Email)

	_, err = svc.User.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

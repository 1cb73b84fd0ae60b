package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-frontdesk-backend/internal/models"
	"hotel-frontdesk-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthService_SignUpAndSignIn(t *testing.T) {
	f := newFixture()
	svc := NewAuthService(f.users, f.audit, []string{"jefa@hotel.test"}, zap.NewNop())
	ctx := context.Background()

	session, err := svc.SignUp(ctx, " Recepcion@Hotel.test ", "secreto1")
	require.NoError(t, err)
	assert.Equal(t, "recepcion@hotel.test", session.User.Email)
	assert.Equal(t, models.RoleStaff, session.User.Role)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)

	admin, err := svc.SignUp(ctx, "jefa@hotel.test", "secreto1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.User.Role)

	_, err = svc.SignUp(ctx, "recepcion@hotel.test", "otro-secreto")
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.StatusCode)
	assert.ErrorIs(t, err, ErrEmailExists)

	signedIn, err := svc.SignInWithPassword(ctx, "RECEPCION@hotel.test", "secreto1")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, signedIn.User.ID)

	_, err = svc.SignInWithPassword(ctx, "recepcion@hotel.test", "wrong")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
	assert.Equal(t, "No se pudo iniciar sesión.", appErr.Message)

	_, err = svc.SignInWithPassword(ctx, "nadie@hotel.test", "secreto1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Equal(t, 3, f.gw.Len(repository.TableAuditLogs))
}

func TestAuthService_SignUpValidation(t *testing.T) {
	f := newFixture()
	svc := NewAuthService(f.users, f.audit, nil, zap.NewNop())

	var appErr *AppError
	_, err := svc.SignUp(context.Background(), "not-an-email", "secreto1")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)

	_, err = svc.SignUp(context.Background(), "a@hotel.test", "123")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, 0, f.gw.Len(repository.TableStaffUsers))
}

func TestAuthService_SessionLifecycle(t *testing.T) {
	f := newFixture()
	svc := NewAuthService(f.users, f.audit, nil, zap.NewNop())
	ctx := context.Background()

	session, err := svc.SignUp(ctx, "recepcion@hotel.test", "secreto1")
	require.NoError(t, err)

	current, err := svc.GetCurrentSession(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, current.ID)

	_, err = svc.GetCurrentSession(ctx, "")
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = svc.GetCurrentSession(ctx, "garbage")
	assert.ErrorIs(t, err, ErrNoSession)

	refreshed, err := svc.Refresh(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, session.User.ID, refreshed.User.ID)

	require.NoError(t, svc.SignOut(ctx, session.RefreshToken))
	_, err = svc.Refresh(ctx, session.RefreshToken)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
}

func TestAuthService_SessionCheckFailsWhenStoreFails(t *testing.T) {
	f := newFixture()
	svc := NewAuthService(f.users, f.audit, nil, zap.NewNop())
	ctx := context.Background()

	session, err := svc.SignUp(ctx, "recepcion@hotel.test", "secreto1")
	require.NoError(t, err)

	f.gw.FailOn("select", repository.TableStaffUsers, errors.New("offline"))
	_, err = svc.GetCurrentSession(ctx, session.AccessToken)
	assert.Error(t, err)
}

func TestTokenJanitor_Sweep(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, f.users.CreateRefreshToken(ctx, &models.RefreshToken{UserID: "u1", TokenHash: "old", ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, f.users.CreateRefreshToken(ctx, &models.RefreshToken{UserID: "u1", TokenHash: "new", ExpiresAt: now.Add(time.Hour)}))

	janitor := NewTokenJanitor(f.users, time.Minute, zap.NewNop())
	janitor.now = func() time.Time { return now }

	assert.Equal(t, int64(1), janitor.Sweep(ctx))
	assert.Equal(t, int64(0), janitor.Sweep(ctx))

	f.gw.FailOn("update", repository.TableRefreshTokens, errors.New("offline"))
	assert.Equal(t, int64(0), janitor.Sweep(ctx))
}

func TestTokenJanitor_StartStopsOnCancel(t *testing.T) {
	f := newFixture()
	janitor := NewTokenJanitor(f.users, time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		janitor.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

package repository

import (
	"context"
	"errors"
	"time"

	"hotel-frontdesk-backend/internal/models"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrRefreshTokenNotFound = errors.New("refresh token not found or revoked")
)

type UserRepository struct {
	gw Gateway
}

func NewUserRepo(gw Gateway) *UserRepository {
	return &UserRepository{gw: gw}
}

// FindUserByEmail finds a staff user by email
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	return r.findUser(ctx, Eq("email", email))
}

// FindUserByID finds a staff user by ID
func (r *UserRepository) FindUserByID(ctx context.Context, id string) (*models.StaffUser, error) {
	return r.findUser(ctx, Eq("id", id))
}

func (r *UserRepository) findUser(ctx context.Context, f Filter) (*models.StaffUser, error) {
	var users []models.StaffUser
	if err := r.gw.Select(ctx, TableStaffUsers, Query{Filters: []Filter{f}, Limit: 1}, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return &users[0], nil
}

// CreateUser creates a new staff user
func (r *UserRepository) CreateUser(ctx context.Context, user *models.StaffUser) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	return r.gw.Insert(ctx, TableStaffUsers, user)
}

// CreateRefreshToken creates a new refresh token
func (r *UserRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}
	return r.gw.Insert(ctx, TableRefreshTokens, token)
}

// FindRefreshTokenByHash finds a non-revoked refresh token by its hash
func (r *UserRepository) FindRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error) {
	var tokens []models.RefreshToken
	err := r.gw.Select(ctx, TableRefreshTokens, Query{
		Filters: []Filter{Eq("token_hash", hash), Eq("revoked", false)},
		Limit:   1,
	}, &tokens)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrRefreshTokenNotFound
	}
	return &tokens[0], nil
}

// RevokeRefreshTokenByHash marks a refresh token as revoked by its hash
func (r *UserRepository) RevokeRefreshTokenByHash(ctx context.Context, hash string) error {
	_, err := r.gw.Update(ctx, TableRefreshTokens, []Filter{Eq("token_hash", hash)}, map[string]any{"revoked": true})
	return err
}

// RevokeExpiredRefreshTokens revokes every live token that expired before now
func (r *UserRepository) RevokeExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.gw.Update(ctx, TableRefreshTokens, []Filter{
		Eq("revoked", false),
		Lt("expires_at", now.UTC()),
	}, map[string]any{"revoked": true})
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"hotel-frontdesk-backend/internal/models"
	"hotel-frontdesk-backend/internal/repository"
	"hotel-frontdesk-backend/pkg/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const minPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
	ErrNoSession          = errors.New("no active session")
)

var validate = validator.New()

type AuthService struct {
	userRepo    *repository.UserRepository
	auditRepo   *repository.AuditRepository
	adminEmails []string
	log         *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, auditRepo *repository.AuditRepository, adminEmails []string, log *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		auditRepo:   auditRepo,
		adminEmails: adminEmails,
		log:         log,
	}
}

// Session is what a successful sign-in hands back to the client
type Session struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SignUp creates a staff account and signs it in
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, invalidInput("Ingresa un correo electrónico válido.", err)
	}
	if len(password) < minPasswordLength {
		return nil, invalidInput(fmt.Sprintf("La contraseña debe tener al menos %d caracteres.", minPasswordLength), nil)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		return nil, &AppError{StatusCode: http.StatusConflict, Code: CodeConflict, Message: "No se pudo crear la cuenta.", Err: ErrEmailExists}
	case err != nil && !errors.Is(err, repository.ErrUserNotFound):
		return nil, internal("No se pudo crear la cuenta.", err)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, internal("No se pudo crear la cuenta.", fmt.Errorf("failed to hash password: %w", err))
	}

	role := models.RoleStaff
	if slices.Contains(s.adminEmails, email) {
		role = models.RoleAdmin
	}
	user := &models.StaffUser{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, internal("No se pudo crear la cuenta.", fmt.Errorf("failed to create user: %w", err))
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, internal("No se pudo crear la cuenta.", err)
	}

	s.audit(ctx, &user.ID, "staff_signup", fmt.Sprintf("Staff user %s signed up", email))
	return session, nil
}

// SignInWithPassword authenticates a staff user and returns a new session
func (s *AuthService) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, unauthorized("No se pudo iniciar sesión.", ErrInvalidCredentials)
		}
		return nil, internal("No se pudo iniciar sesión.", err)
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, unauthorized("No se pudo iniciar sesión.", ErrInvalidCredentials)
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, internal("No se pudo iniciar sesión.", err)
	}

	s.audit(ctx, &user.ID, "staff_login", fmt.Sprintf("Staff user %s logged in", email))
	return session, nil
}

// GetCurrentSession validates an access token and confirms its account still exists
func (s *AuthService) GetCurrentSession(ctx context.Context, accessToken string) (*UserResponse, error) {
	if accessToken == "" {
		return nil, ErrNoSession
	}

	claims, err := utils.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSession, err)
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID())
	if err != nil {
		return nil, fmt.Errorf("session check failed: %w", err)
	}
	return toUserResponse(user), nil
}

// Refresh issues a new access token from a refresh token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	token, err := s.userRepo.FindRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		return nil, unauthorized("Tu sesión expiró. Inicia sesión de nuevo.", err)
	}

	if time.Now().After(token.ExpiresAt) {
		return nil, unauthorized("Tu sesión expiró. Inicia sesión de nuevo.", errors.New("refresh token expired"))
	}

	user, err := s.userRepo.FindUserByID(ctx, token.UserID)
	if err != nil {
		return nil, unauthorized("Tu sesión expiró. Inicia sesión de nuevo.", err)
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, internal("No se pudo renovar la sesión.", fmt.Errorf("failed to generate access token: %w", err))
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(utils.GetAccessTokenExpiry()),
		User:         *toUserResponse(user),
	}, nil
}

// SignOut revokes a refresh token
func (s *AuthService) SignOut(ctx context.Context, refreshToken string) error {
	if err := s.userRepo.RevokeRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *AuthService) issueSession(ctx context.Context, user *models.StaffUser) (*Session, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// Only the hash of the refresh token is stored
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: utils.HashRefreshToken(refreshToken),
		ExpiresAt: time.Now().UTC().Add(utils.GetRefreshTokenExpiry()),
	}
	if err := s.userRepo.CreateRefreshToken(ctx, refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(utils.GetAccessTokenExpiry()),
		User:         *toUserResponse(user),
	}, nil
}

func (s *AuthService) audit(ctx context.Context, userID *string, action, details string) {
	if err := s.auditRepo.CreateAuditLog(ctx, userID, action, details); err != nil {
		s.log.Warn("failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}

func toUserResponse(user *models.StaffUser) *UserResponse {
	return &UserResponse{ID: user.ID, Email: user.Email, Role: user.Role}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

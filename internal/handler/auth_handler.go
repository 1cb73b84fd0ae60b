package handler

import (
	"net/http"

	"hotel-frontdesk-backend/internal/middleware"
	"hotel-frontdesk-backend/internal/service"
	"hotel-frontdesk-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const refreshCookie = "refresh_token"

type AuthHandler struct {
	authService   *service.AuthService
	secureCookies bool
}

func NewAuthHandler(authService *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
	}
}

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignUp creates a staff account and signs it in
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, invalidRequestBody)
		return
	}

	session, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.startSession(c, http.StatusCreated, session)
}

// Login handles staff authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, invalidRequestBody)
		return
	}

	session, err := h.authService.SignInWithPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.startSession(c, http.StatusOK, session)
}

// Refresh generates a new access token from the refresh cookie
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil {
		utils.RedirectErrorResponse(c, http.StatusUnauthorized, "Inicia sesión para continuar.", middleware.LoginPath)
		return
	}

	session, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		h.clearCookie(c)
		appErr := service.AsAppError(err)
		utils.RedirectErrorResponse(c, appErr.StatusCode, appErr.Message, middleware.LoginPath)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access_token": session.AccessToken,
		"expires_at":   session.ExpiresAt,
		"user":         session.User,
	})
}

// Logout revokes the refresh token
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err == nil {
		if err := h.authService.SignOut(c.Request.Context(), refreshToken); err != nil {
			respondError(c, err)
			return
		}
	}

	h.clearCookie(c)
	utils.MessageResponse(c, "Sesión cerrada.")
}

// Session returns the signed-in staff user
func (h *AuthHandler) Session(c *gin.Context) {
	utils.SuccessResponse(c, service.UserResponse{
		ID:    middleware.UserID(c),
		Email: c.GetString(middleware.ContextEmail),
		Role:  c.GetString(middleware.ContextRole),
	})
}

func (h *AuthHandler) startSession(c *gin.Context, status int, session *service.Session) {
	// Refresh token only travels in an HttpOnly cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		refreshCookie,
		session.RefreshToken,
		int(utils.GetRefreshTokenExpiry().Seconds()),
		"/",
		"",
		h.secureCookies,
		true,
	)

	c.JSON(status, gin.H{
		"success": true,
		"data": gin.H{
			"access_token": session.AccessToken,
			"expires_at":   session.ExpiresAt,
			"user":         session.User,
		},
	})
}

func (h *AuthHandler) clearCookie(c *gin.Context) {
	c.SetCookie(refreshCookie, "", -1, "/", "", h.secureCookies, true)
}

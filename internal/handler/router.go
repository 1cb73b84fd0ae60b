package handler

import (
	"hotel-frontdesk-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every route handler the server exposes
type Handlers struct {
	Auth         *AuthHandler
	Dashboard    *DashboardHandler
	Bookings     *BookingHandler
	Rooms        *RoomHandler
	Guests       *GuestHandler
	Registration *RegistrationHandler
}

// RegisterRoutes mounts the public routes and, behind guard, every page route
func RegisterRoutes(r *gin.Engine, h Handlers, guard gin.HandlerFunc) {
	r.GET("/health", Health)

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Auth.SignUp)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", h.Auth.Logout)
	}

	// Page routes (session required)
	protected := r.Group("/")
	protected.Use(guard)
	{
		protected.GET("/auth/session", h.Auth.Session)
		protected.GET("/dashboard", h.Dashboard.Get)
		protected.GET("/bookings", h.Bookings.List)
		protected.POST("/bookings", h.Bookings.Create)
		protected.GET("/rooms", h.Rooms.List)
		protected.GET("/rooms/available", h.Rooms.Available)
		protected.GET("/guests", h.Guests.List)
		protected.POST("/registrations", h.Registration.Register)

		// Admin-only routes
		protected.PATCH("/rooms/:id/status", middleware.RequireAdmin(), h.Rooms.SetStatus)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-frontdesk-backend/internal/config"
	"hotel-frontdesk-backend/internal/database"
	"hotel-frontdesk-backend/internal/handler"
	"hotel-frontdesk-backend/internal/middleware"
	"hotel-frontdesk-backend/internal/registration"
	"hotel-frontdesk-backend/internal/repository"
	"hotel-frontdesk-backend/internal/service"
	"hotel-frontdesk-backend/pkg/logger"
	"hotel-frontdesk-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "hotel-frontdesk-backend"

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}
	hotelLoc, _ := cfg.Hotel.Location()
	log.Info("configuration loaded",
		zap.String("store_driver", cfg.Store.Driver),
		zap.String("timezone", hotelLoc.String()),
		zap.Bool("registration_atomic", cfg.Hotel.RegistrationAtomic))

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Open the record store
	gw, closeStore, err := database.OpenGateway(cfg, log)
	if err != nil {
		log.Fatal("failed to open record store", zap.Error(err))
	}
	defer closeStore()

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(gw)
	auditRepo := repository.NewAuditRepo(gw)
	roomRepo := repository.NewRoomRepo(gw)
	guestRepo := repository.NewGuestRepo(gw)
	bookingRepo := repository.NewBookingRepo(gw)

	if n, err := roomRepo.NormalizeRoomStatuses(context.Background()); err != nil {
		log.Warn("room status normalization failed", zap.Error(err))
	} else if n > 0 {
		log.Info("normalized room statuses", zap.Int64("rooms", n))
	}

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo, cfg.Auth.AdminEmails, log)
	dashboardService := service.NewDashboardService(roomRepo, guestRepo, bookingRepo, cfg.Hotel.RecentLimit, log)
	bookingService := service.NewBookingService(bookingRepo, roomRepo, guestRepo, auditRepo, log)
	roomService := service.NewRoomService(roomRepo, auditRepo, log)
	guestService := service.NewGuestService(guestRepo, log)
	workflow := registration.NewWorkflow(gw, cfg.Hotel.RegistrationAtomic, log)
	if cfg.Hotel.RegistrationAtomic && !workflow.Atomic() {
		log.Warn("record store has no transactions; registrations may end in partial success")
	}

	// 6. Start background token janitor
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewTokenJanitor(userRepo, cfg.Server.TokenJanitorInterval, log).Start(ctx)

	// 7. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS(cfg.CORS.AllowedOrigins))

	clock := handler.Clock{Location: hotelLoc}
	handler.RegisterRoutes(r, handler.Handlers{
		Auth:         handler.NewAuthHandler(authService, cfg.Server.GinMode == gin.ReleaseMode),
		Dashboard:    handler.NewDashboardHandler(dashboardService, clock),
		Bookings:     handler.NewBookingHandler(bookingService, clock),
		Rooms:        handler.NewRoomHandler(roomService),
		Guests:       handler.NewGuestHandler(guestService),
		Registration: handler.NewRegistrationHandler(workflow, roomService),
	}, middleware.SessionGuard(authService, log))

	// 8. Serve with graceful shutdown
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	// Stop the janitor before draining requests
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	log.Info("server exited")
}

package service

import (
	"context"
	"errors"
	"fmt"

	"hotel-frontdesk-backend/internal/dashboard"
	"hotel-frontdesk-backend/internal/models"
	"hotel-frontdesk-backend/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	bookingsLoadFailed   = "No se pudieron cargar las reservas."
	bookingCreateFailed  = "No se pudo crear la reserva."
	bookingInvalidDates  = "Las fechas deben tener el formato AAAA-MM-DD."
	bookingDatesReversed = "La fecha de salida no puede ser anterior a la de entrada."
	bookingBadStatus     = "Estado de reserva no válido."
)

// BookingsView is the bookings page: every booking joined with its room and guest
type BookingsView struct {
	Movement dashboard.DailyMovement `json:"movement"`
	Today    models.Date             `json:"today"`
	Bookings []dashboard.BookingRow  `json:"bookings"`
}

// CreateBookingInput is a new booking as entered by staff
type CreateBookingInput struct {
	RoomID   string `json:"room_id" binding:"required"`
	GuestID  string `json:"guest_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Status   string `json:"status"`
}

type BookingService struct {
	bookingRepo *repository.BookingRepository
	roomRepo    *repository.RoomRepository
	guestRepo   *repository.GuestRepository
	auditRepo   *repository.AuditRepository
	log         *zap.Logger
}

func NewBookingService(
	bookingRepo *repository.BookingRepository,
	roomRepo *repository.RoomRepository,
	guestRepo *repository.GuestRepository,
	auditRepo *repository.AuditRepository,
	log *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		auditRepo:   auditRepo,
		log:         log,
	}
}

// List fetches all bookings newest first, then only the rooms and guests
// they reference, and joins them.
func (s *BookingService) List(ctx context.Context, today models.Date) (*BookingsView, error) {
	bookings, err := s.bookingRepo.ListBookings(ctx, 0)
	if err != nil {
		s.log.Error("bookings load failed", zap.Error(err))
		return nil, FetchFailure(bookingsLoadFailed, err)
	}
	if len(bookings) == 0 {
		return &BookingsView{Today: today, Bookings: []dashboard.BookingRow{}}, nil
	}

	roomIDs, guestIDs := dashboard.ReferencedIDs(bookings)
	var (
		rooms  []models.Room
		guests []models.Guest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rooms, err = s.roomRepo.GetRoomsByIDs(gctx, roomIDs)
		return err
	})
	g.Go(func() error {
		var err error
		guests, err = s.guestRepo.GetGuestsByIDs(gctx, guestIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("bookings join fetch failed", zap.Error(err))
		return nil, FetchFailure(bookingsLoadFailed, err)
	}

	return &BookingsView{
		Movement: dashboard.ComputeDailyMovement(bookings, today),
		Today:    today,
		Bookings: dashboard.BookingRows(dashboard.JoinBookings(bookings, rooms, guests)),
	}, nil
}

// Create validates and stores a booking for an existing room and guest
func (s *BookingService) Create(ctx context.Context, userID string, input CreateBookingInput) (*models.Booking, error) {
	checkIn, err := models.ParseDate(input.CheckIn)
	if err != nil {
		return nil, invalidInput(bookingInvalidDates, err)
	}
	checkOut, err := models.ParseDate(input.CheckOut)
	if err != nil {
		return nil, invalidInput(bookingInvalidDates, err)
	}
	// Canonical dates order lexically
	if checkOut < checkIn {
		return nil, invalidInput(bookingDatesReversed, nil)
	}

	status := models.BookingActive
	if input.Status != "" {
		status = models.ParseBookingStatus(input.Status)
		if status == models.BookingUnknown {
			return nil, invalidInput(bookingBadStatus, fmt.Errorf("unknown booking status %q", input.Status))
		}
	}

	if _, err := s.roomRepo.GetRoomByID(ctx, input.RoomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, notFound("La habitación no existe.", err)
		}
		return nil, internal(bookingCreateFailed, err)
	}
	if _, err := s.guestRepo.GetGuestByID(ctx, input.GuestID); err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return nil, notFound("El huésped no existe.", err)
		}
		return nil, internal(bookingCreateFailed, err)
	}

	booking := &models.Booking{
		RoomID:   input.RoomID,
		GuestID:  input.GuestID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   string(status),
	}
	if err := s.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, internal(bookingCreateFailed, err)
	}

	if err := s.auditRepo.CreateAuditLog(ctx, &userID, "booking_created",
		fmt.Sprintf("Booking %s for room %s, %s to %s", booking.ID, booking.RoomID, checkIn, checkOut)); err != nil {
		s.log.Warn("failed to write audit log", zap.String("action", "booking_created"), zap.Error(err))
	}
	return booking, nil
}

package service

import (
	"context"

	"hotel-frontdesk-backend/internal/dashboard"
	"hotel-frontdesk-backend/internal/models"
	"hotel-frontdesk-backend/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const dashboardLoadFailed = "No se pudieron cargar los datos del dashboard."

// DashboardView is everything the dashboard page renders from one load
type DashboardView struct {
	Summary        dashboard.Summary      `json:"summary"`
	Rooms          []dashboard.RoomRow    `json:"rooms"`
	RecentGuests   []dashboard.GuestRow   `json:"recent_guests"`
	RecentBookings []dashboard.BookingRow `json:"recent_bookings"`
}

type DashboardService struct {
	roomRepo    *repository.RoomRepository
	guestRepo   *repository.GuestRepository
	bookingRepo *repository.BookingRepository
	recentLimit int
	log         *zap.Logger
}

func NewDashboardService(
	roomRepo *repository.RoomRepository,
	guestRepo *repository.GuestRepository,
	bookingRepo *repository.BookingRepository,
	recentLimit int,
	log *zap.Logger,
) *DashboardService {
	return &DashboardService{
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		bookingRepo: bookingRepo,
		recentLimit: recentLimit,
		log:         log,
	}
}

// Load fetches rooms, recent bookings and recent guests concurrently and
// derives the dashboard from that snapshot. If any fetch fails the whole
// load fails and no partial data is returned.
func (s *DashboardService) Load(ctx context.Context, today models.Date) (*DashboardView, error) {
	var (
		rooms    []models.Room
		bookings []models.Booking
		guests   []models.Guest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rooms, err = s.roomRepo.ListRooms(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.bookingRepo.ListBookings(gctx, s.recentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		guests, err = s.guestRepo.ListGuests(gctx, s.recentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("dashboard load failed", zap.Error(err))
		return nil, FetchFailure(dashboardLoadFailed, err)
	}

	return &DashboardView{
		Summary:        dashboard.Summarize(rooms, bookings, guests, today),
		Rooms:          dashboard.RoomRows(rooms),
		RecentGuests:   dashboard.GuestRows(guests),
		RecentBookings: dashboard.BookingRows(dashboard.JoinBookings(bookings, rooms, guests)),
	}, nil
}

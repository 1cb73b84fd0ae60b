package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-frontdesk-backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gormDB, mock
}

func TestGormGateway_SelectBuildsFilteredOrderedQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	gw := NewGormGateway(db)
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "number", "type", "price_per_night", "status", "created_at"}).
		AddRow("r1", "101", "double", 80.0, "available", created).
		AddRow("r2", "102", "single", 60.0, "disponible", created)
	mock.ExpectQuery("SELECT \\* FROM .rooms. WHERE status IN \\(\\?,\\?\\) ORDER BY number ASC").
		WithArgs("available", "disponible").
		WillReturnRows(rows)

	var rooms []models.Room
	err := gw.Select(context.Background(), TableRooms, Query{
		Filters: []Filter{In("status", []string{"available", "disponible"})},
		Order:   Asc("number"),
	}, &rooms)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].Number)
	assert.Equal(t, 60.0, rooms[1].PricePerNight)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormGateway_SelectWithLimit(t *testing.T) {
	db, mock := setupMockDB(t)
	gw := NewGormGateway(db)

	mock.ExpectQuery("SELECT \\* FROM .guests. ORDER BY created_at DESC LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name"}).AddRow("g1", "Ana"))

	var guests []models.Guest
	err := gw.Select(context.Background(), TableGuests, Query{Order: Desc("created_at"), Limit: 8}, &guests)
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, "Ana", guests[0].FullName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormGateway_SelectPropagatesErrors(t *testing.T) {
	db, mock := setupMockDB(t)
	gw := NewGormGateway(db)
	boom := errors.New("connection reset")

	mock.ExpectQuery("SELECT \\* FROM .bookings.").WillReturnError(boom)

	var bookings []models.Booking
	err := gw.Select(context.Background(), TableBookings, Query{}, &bookings)
	assert.ErrorIs(t, err, boom)
}

func TestGormGateway_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	gw := NewGormGateway(db)

	mock.ExpectExec("INSERT INTO .guests.").WillReturnResult(sqlmock.NewResult(0, 1))

	guest := models.Guest{ID: "g1", FullName: "Ana", CreatedAt: time.Now().UTC()}
	require.NoError(t, gw.Insert(context.Background(), TableGuests, &guest))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormGateway_UpdateReturnsRowsAffected(t *testing.T) {
	db, mock := setupMockDB(t)
	gw := NewGormGateway(db)

	mock.ExpectExec("UPDATE .rooms. SET .status.=\\? WHERE id = \\?").
		WithArgs("occupied", "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := gw.Update(context.Background(), TableRooms, []Filter{Eq("id", "r1")}, map[string]any{"status": "occupied"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormGateway_UpdateWithoutFiltersIsRejected(t *testing.T) {
	db, _ := setupMockDB(t)
	gw := NewGormGateway(db)

	_, err := gw.Update(context.Background(), TableRooms, nil, map[string]any{"status": "occupied"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestGormGateway_InTxCommitsAndRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	gw := NewGormGateway(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO .guests.").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := gw.InTx(context.Background(), func(tx Gateway) error {
		return tx.Insert(context.Background(), TableGuests, &models.Guest{ID: "g1", FullName: "Ana", CreatedAt: time.Now().UTC()})
	})
	require.NoError(t, err)

	boom := errors.New("room update failed")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err = gw.InTx(context.Background(), func(tx Gateway) error { return boom })
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"testing"
	"time"

	"hotel-frontdesk-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRepository_AvailableAndOccupy(t *testing.T) {
	gw := NewMemoryGateway()
	seedRooms(t, gw,
		models.Room{ID: "r2", Number: "102", Status: "Disponible"},
		models.Room{ID: "r1", Number: "101", Status: "available"},
		models.Room{ID: "r3", Number: "201", Status: "cleaning"},
	)
	repo := NewRoomRepo(gw)
	ctx := context.Background()

	rooms, err := repo.ListAvailableRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].Number)

	require.NoError(t, repo.OccupyRoom(ctx, "r2"))
	assert.ErrorIs(t, repo.OccupyRoom(ctx, "r2"), ErrRoomUnavailable)
	assert.ErrorIs(t, repo.OccupyRoom(ctx, "r3"), ErrRoomUnavailable)
	assert.ErrorIs(t, repo.OccupyRoom(ctx, "missing"), ErrRoomUnavailable)

	room, err := repo.GetRoomByID(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, "occupied", room.Status)

	_, err = repo.GetRoomByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.ErrorIs(t, repo.UpdateRoomStatus(ctx, "missing", models.RoomCleaning), ErrRoomNotFound)
}

func TestRoomRepository_StatusSpellings(t *testing.T) {
	gw := NewMemoryGateway()
	seedRooms(t, gw,
		models.Room{ID: "r1", Number: "101", Status: "Available"},
		models.Room{ID: "r2", Number: "102", Status: " disponible "},
		models.Room{ID: "r3", Number: "103", Status: "DISPONIBLE"},
		models.Room{ID: "r4", Number: "104", Status: "Ocupada"},
		models.Room{ID: "r5", Number: "105", Status: "on hold"},
	)
	repo := NewRoomRepo(gw)
	ctx := context.Background()

	rooms, err := repo.ListAvailableRooms(ctx)
	require.NoError(t, err)
	var ids []string
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"r1", "r2", "r3"}, ids)

	require.NoError(t, repo.OccupyRoom(ctx, "r1"))
	require.NoError(t, repo.OccupyRoom(ctx, "r2"))
	assert.ErrorIs(t, repo.OccupyRoom(ctx, "r4"), ErrRoomUnavailable)
	assert.ErrorIs(t, repo.OccupyRoom(ctx, "r5"), ErrRoomUnavailable)

	room, err := repo.GetRoomByID(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, "occupied", room.Status)

	rooms, err = repo.ListAvailableRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "r3", rooms[0].ID)
}

func TestRoomRepository_OccupyRoomSelectFails(t *testing.T) {
	gw := NewMemoryGateway()
	seedRooms(t, gw, models.Room{ID: "r1", Number: "101", Status: "available"})
	gw.FailOn("select", TableRooms, assert.AnError)

	assert.ErrorIs(t, NewRoomRepo(gw).OccupyRoom(context.Background(), "r1"), assert.AnError)
}

func TestRoomRepository_NormalizeRoomStatuses(t *testing.T) {
	gw := NewMemoryGateway()
	seedRooms(t, gw,
		models.Room{ID: "r1", Number: "101", Status: "Disponible"},
		models.Room{ID: "r2", Number: "102", Status: "occupied"},
		models.Room{ID: "r3", Number: "103", Status: " Limpieza"},
		models.Room{ID: "r4", Number: "104", Status: "on hold"},
	)
	repo := NewRoomRepo(gw)
	ctx := context.Background()

	n, err := repo.NormalizeRoomStatuses(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	want := map[string]string{"r1": "available", "r2": "occupied", "r3": "cleaning", "r4": "on hold"}
	for id, status := range want {
		room, err := repo.GetRoomByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, status, room.Status, id)
	}

	n, err = repo.NormalizeRoomStatuses(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRoomRepository_CreateRoomStoresCanonicalStatus(t *testing.T) {
	repo := NewRoomRepo(NewMemoryGateway())
	ctx := context.Background()

	for _, room := range []models.Room{
		{ID: "r1", Number: "101", Status: " Disponible"},
		{ID: "r2", Number: "102"},
		{ID: "r3", Number: "103", Status: "on hold"},
	} {
		require.NoError(t, repo.CreateRoom(ctx, &room))
	}

	for id, status := range map[string]string{"r1": "available", "r2": "available", "r3": "on hold"} {
		room, err := repo.GetRoomByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, status, room.Status, id)
	}
}

func TestRoomRepository_GetRoomsByIDsEmpty(t *testing.T) {
	gw := NewMemoryGateway()
	gw.FailOn("select", TableRooms, assert.AnError)

	rooms, err := NewRoomRepo(gw).GetRoomsByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestGuestRepository_ListNewestFirst(t *testing.T) {
	gw := NewMemoryGateway()
	repo := NewGuestRepo(gw)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	for i, name := range []string{"Ana", "Luis", "Marta"} {
		require.NoError(t, repo.CreateGuest(ctx, &models.Guest{FullName: name, CreatedAt: base.Add(time.Duration(i) * time.Hour)}))
	}

	guests, err := repo.ListGuests(ctx, 2)
	require.NoError(t, err)
	require.Len(t, guests, 2)
	assert.Equal(t, "Marta", guests[0].FullName)
	assert.Equal(t, "Luis", guests[1].FullName)

	found, err := repo.GetGuestByID(ctx, guests[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Marta", found.FullName)
}

func TestUserRepository_RefreshTokens(t *testing.T) {
	gw := NewMemoryGateway()
	repo := NewUserRepo(gw)
	ctx := context.Background()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateRefreshToken(ctx, &models.RefreshToken{UserID: "u1", TokenHash: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.CreateRefreshToken(ctx, &models.RefreshToken{UserID: "u1", TokenHash: "live", ExpiresAt: now.Add(time.Hour)}))

	n, err := repo.RevokeExpiredRefreshTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.FindRefreshTokenByHash(ctx, "old")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)

	token, err := repo.FindRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "u1", token.UserID)

	require.NoError(t, repo.RevokeRefreshTokenByHash(ctx, "live"))
	_, err = repo.FindRefreshTokenByHash(ctx, "live")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
}

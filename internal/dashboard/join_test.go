package dashboard

import (
	"testing"

	"hotel-frontdesk-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinBookings_ResolvesRoomAndGuest(t *testing.T) {
	bookings := []models.Booking{{ID: "b1", RoomID: "r1", GuestID: "g1", CheckIn: "2024-06-01", CheckOut: "2024-06-03"}}
	rooms := []models.Room{{ID: "r1", Number: "101", Status: "available", PricePerNight: 50}}
	guests := []models.Guest{{ID: "g1", FullName: "Ana"}}

	joined := JoinBookings(bookings, rooms, guests)

	require.Len(t, joined, 1)
	require.NotNil(t, joined[0].Room)
	require.NotNil(t, joined[0].Guest)
	assert.Equal(t, "101", joined[0].Room.Number)
	assert.Equal(t, "Ana", joined[0].Guest.FullName)
	assert.Equal(t, "b1", joined[0].ID)
}

func TestJoinBookings_MissingReferencesStayNil(t *testing.T) {
	bookings := []models.Booking{{ID: "b1", RoomID: "r9", GuestID: "g9"}}
	rooms := []models.Room{{ID: "r1", Number: "101"}}

	joined := JoinBookings(bookings, rooms, nil)

	require.Len(t, joined, 1)
	assert.Nil(t, joined[0].Room)
	assert.Nil(t, joined[0].Guest)

	rows := BookingRows(joined)
	assert.Equal(t, "r9", rows[0].RoomLabel)
	assert.Equal(t, EmptyLabel, rows[0].GuestName)
}

func TestJoinBookings_PreservesOrderAndLength(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b3", RoomID: "r2", GuestID: "g1"},
		{ID: "b1", RoomID: "r1", GuestID: "g2"},
		{ID: "b2", RoomID: "r2", GuestID: "g2"},
	}
	rooms := []models.Room{{ID: "r1", Number: "101"}, {ID: "r2", Number: "202"}}
	guests := []models.Guest{{ID: "g1", FullName: "Ana"}, {ID: "g2", FullName: "Luis"}}

	joined := JoinBookings(bookings, rooms, guests)

	require.Len(t, joined, len(bookings))
	for i := range bookings {
		assert.Equal(t, bookings[i].ID, joined[i].ID)
	}
	assert.Equal(t, "202", joined[2].Room.Number)
	assert.Equal(t, "Luis", joined[2].Guest.FullName)
}

func TestJoinBookings_LastDuplicateWins(t *testing.T) {
	bookings := []models.Booking{{ID: "b1", RoomID: "r1", GuestID: "g1"}}
	rooms := []models.Room{{ID: "r1", Number: "101"}, {ID: "r1", Number: "102"}}

	joined := JoinBookings(bookings, rooms, nil)

	assert.Equal(t, "102", joined[0].Room.Number)
}

func TestJoinBookings_Empty(t *testing.T) {
	assert.Empty(t, JoinBookings(nil, nil, nil))
}

func TestReferencedIDs_Distinct(t *testing.T) {
	bookings := []models.Booking{
		{RoomID: "r1", GuestID: "g1"},
		{RoomID: "r2", GuestID: "g1"},
		{RoomID: "r1", GuestID: "g2"},
	}

	roomIDs, guestIDs := ReferencedIDs(bookings)

	assert.Equal(t, []string{"r1", "r2"}, roomIDs)
	assert.Equal(t, []string{"g1", "g2"}, guestIDs)
}

package registration

import (
	"context"

	"hotel-frontdesk-backend/internal/models"
)

// RoomSource lists the rooms currently open for registration
type RoomSource interface {
	Available(ctx context.Context) ([]models.Room, error)
}

// Desk holds the registration form and the available rooms shown beside it
type Desk struct {
	Form           Form          `json:"form"`
	AvailableRooms []models.Room `json:"available_rooms"`
	State          State         `json:"state"`
	Message        string        `json:"message,omitempty"`

	workflow *Workflow
	rooms    RoomSource
}

func NewDesk(workflow *Workflow, rooms RoomSource) *Desk {
	return &Desk{
		AvailableRooms: []models.Room{},
		State:          Idle,
		workflow:       workflow,
		rooms:          rooms,
	}
}

// Load refreshes the available rooms
func (d *Desk) Load(ctx context.Context) error {
	rooms, err := d.rooms.Available(ctx)
	if err != nil {
		return err
	}
	d.AvailableRooms = rooms
	return nil
}

// Submit registers the current form. On success the form is cleared and the
// room leaves the available list; otherwise the form is left as entered.
func (d *Desk) Submit(ctx context.Context, userID string) Outcome {
	d.State = Validating
	d.Message = ""
	if msg := Validate(d.Form); msg != "" {
		d.State = Idle
		d.Message = msg
		return Outcome{State: Idle, Message: msg}
	}

	d.State = Submitting
	out := d.workflow.Submit(ctx, userID, d.Form)
	d.State = out.State
	d.Message = out.Message

	if out.State == Succeeded {
		d.Form = Form{}
		d.removeRoom(out.RoomID)
	}
	return out
}

func (d *Desk) removeRoom(id string) {
	kept := d.AvailableRooms[:0]
	for _, r := range d.AvailableRooms {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	d.AvailableRooms = kept
}

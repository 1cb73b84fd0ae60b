// Package registration walks a walk-in guest through check-in: the guest row
// is created and the chosen room is marked occupied.
package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-frontdesk-backend/internal/models"
	"hotel-frontdesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// State of a registration attempt
type State string

const (
	Idle           State = "idle"
	Validating     State = "validating"
	Submitting     State = "submitting"
	Succeeded      State = "succeeded"
	PartialSuccess State = "partial_success"
	Failed         State = "failed"
)

// User-facing messages
const (
	MsgNameRequired    = "El nombre completo es obligatorio."
	MsgRoomRequired    = "Debes seleccionar una habitación disponible."
	MsgInvalidEmail    = "El correo electrónico no es válido."
	MsgGuestFailed     = "No se pudo registrar el huésped. Intenta de nuevo."
	MsgRoomUnavailable = "La habitación seleccionada ya no está disponible."
	MsgPartialSuccess  = "Huésped creado, pero no se pudo actualizar el estado de la habitación."
	MsgSucceeded       = "Huésped y habitación registrados correctamente."
	MsgUnexpected      = "Ocurrió un error inesperado. Intenta de nuevo."
)

// Form is the registration form as typed by staff
type Form struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	DocumentID string `json:"document_id"`
	RoomID     string `json:"room_id"`
}

// Outcome is the terminal result of Submit. A validation failure leaves State at Idle.
type Outcome struct {
	State   State         `json:"state"`
	Message string        `json:"message"`
	Guest   *models.Guest `json:"guest,omitempty"`
	RoomID  string        `json:"room_id,omitempty"`
}

var validate = validator.New()

// Workflow performs registrations against a record store. When atomic is set
// and the store supports transactions, the guest insert and the room update
// commit together and PartialSuccess cannot occur.
type Workflow struct {
	gw     repository.Gateway
	atomic bool
	log    *zap.Logger
}

func NewWorkflow(gw repository.Gateway, atomic bool, log *zap.Logger) *Workflow {
	return &Workflow{gw: gw, atomic: atomic, log: log}
}

// Atomic reports whether registrations run in a single transaction
func (w *Workflow) Atomic() bool {
	_, ok := w.gw.(repository.Transactor)
	return w.atomic && ok
}

// Submit validates form and, if valid, registers the guest into the room
func (w *Workflow) Submit(ctx context.Context, userID string, form Form) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("registration panicked", zap.Any("panic", r))
			out = Outcome{State: Failed, Message: MsgUnexpected}
		}
	}()

	if msg := Validate(form); msg != "" {
		return Outcome{State: Idle, Message: msg}
	}

	guest := newGuest(form)
	roomID := strings.TrimSpace(form.RoomID)
	if w.Atomic() {
		out = w.submitAtomic(ctx, guest, roomID)
	} else {
		out = w.submitSequential(ctx, guest, roomID)
	}
	w.audit(ctx, userID, out)
	return out
}

// Validate returns the message for the first failed precondition, or "" when
// the form may be submitted. It performs no external calls.
func Validate(form Form) string {
	if strings.TrimSpace(form.FullName) == "" {
		return MsgNameRequired
	}
	if strings.TrimSpace(form.RoomID) == "" {
		return MsgRoomRequired
	}
	if email := strings.TrimSpace(form.Email); email != "" {
		if err := validate.Var(email, "email"); err != nil {
			return MsgInvalidEmail
		}
	}
	return ""
}

func (w *Workflow) submitSequential(ctx context.Context, guest *models.Guest, roomID string) Outcome {
	if err := repository.NewGuestRepo(w.gw).CreateGuest(ctx, guest); err != nil {
		w.log.Error("guest insert failed", zap.Error(err))
		return Outcome{State: Failed, Message: MsgGuestFailed}
	}

	if err := repository.NewRoomRepo(w.gw).OccupyRoom(ctx, roomID); err != nil {
		w.log.Error("room update failed after guest insert",
			zap.String("guest_id", guest.ID), zap.String("room_id", roomID), zap.Error(err))
		return Outcome{State: PartialSuccess, Message: MsgPartialSuccess, Guest: guest, RoomID: roomID}
	}
	return Outcome{State: Succeeded, Message: MsgSucceeded, Guest: guest, RoomID: roomID}
}

var errGuestInsert = errors.New("guest insert failed")

func (w *Workflow) submitAtomic(ctx context.Context, guest *models.Guest, roomID string) Outcome {
	err := w.gw.(repository.Transactor).InTx(ctx, func(tx repository.Gateway) error {
		if err := repository.NewGuestRepo(tx).CreateGuest(ctx, guest); err != nil {
			return fmt.Errorf("%w: %w", errGuestInsert, err)
		}
		return repository.NewRoomRepo(tx).OccupyRoom(ctx, roomID)
	})
	switch {
	case err == nil:
		return Outcome{State: Succeeded, Message: MsgSucceeded, Guest: guest, RoomID: roomID}
	case errors.Is(err, repository.ErrRoomUnavailable):
		w.log.Warn("room no longer available, registration rolled back", zap.String("room_id", roomID))
		return Outcome{State: Failed, Message: MsgRoomUnavailable}
	default:
		w.log.Error("registration rolled back", zap.String("room_id", roomID), zap.Error(err))
		return Outcome{State: Failed, Message: MsgGuestFailed}
	}
}

func (w *Workflow) audit(ctx context.Context, userID string, out Outcome) {
	var action string
	switch out.State {
	case Succeeded:
		action = "guest_registered"
	case PartialSuccess:
		action = "guest_registered_room_pending"
	default:
		return
	}

	details := fmt.Sprintf("Guest %s (%s) into room %s", out.Guest.ID, out.Guest.FullName, out.RoomID)
	if err := repository.NewAuditRepo(w.gw).CreateAuditLog(ctx, &userID, action, details); err != nil {
		w.log.Warn("failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}

func newGuest(form Form) *models.Guest {
	return &models.Guest{
		FullName:   strings.TrimSpace(form.FullName),
		Email:      optional(form.Email),
		Phone:      optional(form.Phone),
		DocumentID: optional(form.DocumentID),
	}
}

// optional trims s and maps blank input to NULL
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultPricePerNight applies when neither the Room Authority nor the
// caller supplies a rate.
var DefaultPricePerNight = NewMoney(10000)

var (
	ErrCannotConfirm  = errors.New("only pending reservations can be confirmed")
	ErrCannotCheckIn  = errors.New("check-in requires a confirmed reservation")
	ErrCannotCheckOut = errors.New("check-out requires a checked-in reservation")
	ErrCannotCancel   = errors.New("only pending or confirmed reservations can be cancelled")
	ErrCannotModify   = errors.New("only pending or confirmed reservations can be modified")
)

// Reservation is the aggregate root. Status moves only through the
// lifecycle methods below; field edits are limited to modifiable states.
type Reservation struct {
	id            uuid.UUID
	clientID      int64
	roomID        int64
	stay          DateRange
	status        Status
	pricePerNight Money
	totalAmount   Money
	remarks       Remarks
	createdAt     time.Time
	updatedAt     time.Time
	version       int32
}

func NewReservation(clientID, roomID int64, stay DateRange, pricePerNight Money, remarks Remarks) *Reservation {
	r := &Reservation{
		id:            uuid.New(),
		clientID:      clientID,
		roomID:        roomID,
		stay:          stay,
		status:        StatusPending,
		pricePerNight: pricePerNight,
		remarks:       remarks,
	}
	r.recomputeTotal()
	return r
}

func ReconstructReservation(
	id uuid.UUID,
	clientID, roomID int64,
	stay DateRange,
	status Status,
	pricePerNight, totalAmount Money,
	remarks Remarks,
	createdAt, updatedAt time.Time,
	version int32,
) *Reservation {
	return &Reservation{
		id:            id,
		clientID:      clientID,
		roomID:        roomID,
		stay:          stay,
		status:        status,
		pricePerNight: pricePerNight,
		totalAmount:   totalAmount,
		remarks:       remarks,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
	}
}

func (r *Reservation) Confirm() error {
	if r.status != StatusPending {
		return ErrCannotConfirm
	}
	r.status = StatusConfirmed
	return nil
}

func (r *Reservation) CheckIn() error {
	if r.status != StatusConfirmed {
		return ErrCannotCheckIn
	}
	r.status = StatusCheckedIn
	return nil
}

func (r *Reservation) CheckOut() error {
	if r.status != StatusCheckedIn {
		return ErrCannotCheckOut
	}
	r.status = StatusCheckedOut
	return nil
}

func (r *Reservation) Cancel() error {
	if !r.IsModifiable() {
		return ErrCannotCancel
	}
	r.status = StatusCancelled
	return nil
}

// IsModifiable reports whether field edits (and cancellation) are still
// permitted.
func (r *Reservation) IsModifiable() bool {
	return r.status == StatusPending || r.status == StatusConfirmed
}

// ApplyChanges overlays the edited fields and recomputes the total.
// The stay is assumed already validated.
func (r *Reservation) ApplyChanges(roomID int64, stay DateRange, pricePerNight Money, remarks Remarks) error {
	if !r.IsModifiable() {
		return ErrCannotModify
	}
	r.roomID = roomID
	r.stay = stay
	r.pricePerNight = pricePerNight
	r.remarks = remarks
	r.recomputeTotal()
	return nil
}

func (r *Reservation) recomputeTotal() {
	r.totalAmount = r.pricePerNight.Times(r.stay.Nights())
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) ClientID() int64      { return r.clientID }
func (r *Reservation) RoomID() int64        { return r.roomID }
func (r *Reservation) Stay() DateRange      { return r.stay }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) PricePerNight() Money { return r.pricePerNight }
func (r *Reservation) TotalAmount() Money   { return r.totalAmount }
func (r *Reservation) Remarks() Remarks     { return r.remarks }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
func (r *Reservation) Version() int32       { return r.version }

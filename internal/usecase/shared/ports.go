package shared

import (
	"context"
	"fmt"

	"hotel-reservations/internal/domain/reservation"
	"hotel-reservations/internal/infra/db"
	"hotel-reservations/internal/pkg/errs"

	"github.com/google/uuid"
)

// Sentinels produced by the gateway implementations. ErrClientInvalid is
// the one fail-closed result in the system: an explicit 404 from the
// Client Authority must block the operation.
var (
	ErrRoomNotFound  = errs.New("room not found")
	ErrClientInvalid = errs.New("client not found or invalid")
)

// RoomStatus values pushed to the Room Authority on lifecycle transitions.
type RoomStatus string

const (
	RoomStatusReserved RoomStatus = "RESERVED"
	RoomStatusOccupied RoomStatus = "OCCUPIED"
	RoomStatusFree     RoomStatus = "FREE"
)

// RoomSnapshot is the write-side view of a Room Authority record.
// Placeholder marks synthesized fallback data rather than an
// authoritative read.
type RoomSnapshot struct {
	ID            int64
	Number        string
	Type          string
	PricePerNight reservation.Money
	Status        string
	Available     bool
	Description   string
	Capacity      int
	Placeholder   bool
}

type ClientSnapshot struct {
	ID            int64
	LastName      string
	FirstName     string
	Email         string
	Phone         string
	HasUnpaidFees bool
	StayCount     int
	Placeholder   bool
}

func (c *ClientSnapshot) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// RoomAuthorityGateway owns the degradation policy for the Room
// Authority: reads fail open (FetchRoom falls back to a placeholder,
// CheckAvailability to true) so this dependency never blocks a booking.
// PushStatus errors are logged and swallowed by callers; the committed
// transition is never rolled back.
type RoomAuthorityGateway interface {
	// FetchRoom returns ErrRoomNotFound on an explicit 404; any other
	// failure yields a placeholder snapshot with a nil error.
	FetchRoom(ctx context.Context, roomID int64) (*RoomSnapshot, error)
	CheckAvailability(ctx context.Context, roomID int64, stay reservation.DateRange) bool
	PushStatus(ctx context.Context, roomID int64, status RoomStatus) error
}

// ClientAuthorityGateway owns the Client Authority policy: an explicit
// 404 from FetchClient fails closed with ErrClientInvalid, every other
// failure falls open (placeholder in good standing).
type ClientAuthorityGateway interface {
	FetchClient(ctx context.Context, clientID int64) (*ClientSnapshot, error)
	HasGoodStanding(ctx context.Context, clientID int64) bool
	Exists(ctx context.Context, clientID int64) bool
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	// Update is a compare-and-swap on version: a stale expectedVersion
	// yields a KindStaleVersion repository error.
	Update(ctx context.Context, tx db.DBTX, res *reservation.Reservation, expectedVersion int32) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	// FindOverlapping returns ids of reservations on the room whose status
	// still blocks availability and whose range overlaps the stay under
	// the inclusive boundary test.
	FindOverlapping(ctx context.Context, tx db.DBTX, roomID int64, stay reservation.DateRange, excludeID *uuid.UUID) ([]uuid.UUID, error)
}

package commands

import (
	"context"
	"fmt"

	"hotel-reservations/internal/domain/reservation"
	"hotel-reservations/internal/infra/db"
	"hotel-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

// RoomUnavailableError carries the conflicting room id for the error
// payload. Always marked with errs.ErrRoomUnavailable.
type RoomUnavailableError struct {
	RoomID int64
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("room %d is not available for the requested dates", e.RoomID)
}

// AvailabilityChecker combines the local overlap scan with the Room
// Authority's opinion. The local scan fails closed: a database error
// blocks the booking. The remote check fails open inside the gateway.
type AvailabilityChecker struct {
	repo  shared.ReservationRepository
	rooms shared.RoomAuthorityGateway
}

func NewAvailabilityChecker(repo shared.ReservationRepository, rooms shared.RoomAuthorityGateway) *AvailabilityChecker {
	return &AvailabilityChecker{repo: repo, rooms: rooms}
}

// IsAvailable reports whether the room can take the stay. excludeID
// skips the reservation being modified so it never conflicts with
// itself.
func (c *AvailabilityChecker) IsAvailable(ctx context.Context, tx db.DBTX, roomID int64, stay reservation.DateRange, excludeID *uuid.UUID) (bool, error) {
	conflicts, err := c.repo.FindOverlapping(ctx, tx, roomID, stay, excludeID)
	if err != nil {
		return false, err
	}
	if len(conflicts) > 0 {
		return false, nil
	}
	return c.rooms.CheckAvailability(ctx, roomID, stay), nil
}

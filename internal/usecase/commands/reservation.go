package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hotel-reservations/internal/domain/reservation"
	"hotel-reservations/internal/infra"
	"hotel-reservations/internal/infra/db"
	"hotel-reservations/internal/pkg/clock"
	"hotel-reservations/internal/pkg/errs"
	"hotel-reservations/internal/pkg/patch"
	"hotel-reservations/internal/usecase/queries"
	"hotel-reservations/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateReservationCommand struct {
	ClientID      int64
	RoomID        int64
	StartDate     time.Time
	EndDate       time.Time
	PricePerNight *float64
	Remarks       string
}

type ModifyReservationCommand struct {
	RoomID        *int64
	StartDate     *time.Time
	EndDate       *time.Time
	PricePerNight *float64
	Remarks       *string
}

type ReservationCommands interface {
	Create(ctx context.Context, cmd CreateReservationCommand) (*queries.ReservationView, error)
	Modify(ctx context.Context, id uuid.UUID, cmd ModifyReservationCommand) (*queries.ReservationView, error)
	Confirm(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	CheckOut(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	Cancel(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

// txRunner executes fn inside one write transaction.
type txRunner func(ctx context.Context, fn func(tx db.DBTX) error) error

type reservationCommandsImpl struct {
	db      db.DBTX
	tx      txRunner
	repo    shared.ReservationRepository
	rooms   shared.RoomAuthorityGateway
	clients shared.ClientAuthorityGateway
	views   queries.ReservationQueries
	avail   *AvailabilityChecker
	clock   clock.Clock
}

func NewReservationCommands(
	pool *pgxpool.Pool,
	repo shared.ReservationRepository,
	rooms shared.RoomAuthorityGateway,
	clients shared.ClientAuthorityGateway,
	views queries.ReservationQueries,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		db:      pool,
		tx:      poolRunner(pool),
		repo:    repo,
		rooms:   rooms,
		clients: clients,
		views:   views,
		avail:   NewAvailabilityChecker(repo, rooms),
		clock:   clk,
	}
}

func poolRunner(pool *pgxpool.Pool) txRunner {
	return func(ctx context.Context, fn func(tx db.DBTX) error) error {
		_, err := shared.WithDefaultRetry(ctx, pool, func(tx db.DBTX) (struct{}, error) {
			return struct{}{}, fn(tx)
		})
		return err
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, cmd CreateReservationCommand) (*queries.ReservationView, error) {
	stay, err := reservation.NewDateRange(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatesInvalid)
	}
	if err := stay.ValidateNotPastAt(c.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatesInvalid)
	}
	remarks, err := reservation.NewRemarks(cmd.Remarks)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRemarksInvalid)
	}

	// Availability pre-check and authority reads happen before the write
	// transaction; the local overlap check is repeated inside it.
	available, err := c.avail.IsAvailable(ctx, c.db, cmd.RoomID, stay, nil)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !available {
		return nil, errs.Mark(&RoomUnavailableError{RoomID: cmd.RoomID}, errs.ErrRoomUnavailable)
	}

	client, err := c.clients.FetchClient(ctx, cmd.ClientID)
	if err != nil {
		return nil, err
	}
	if client.HasUnpaidFees {
		return nil, errs.Wrap(errs.ErrClientUnpaidFees, fmt.Sprintf("client %d", cmd.ClientID))
	}

	room, err := c.rooms.FetchRoom(ctx, cmd.RoomID)
	if err != nil {
		if errors.Is(err, shared.ErrRoomNotFound) {
			// An unknown room does not block the booking; pricing falls
			// back to the caller's rate or the default.
			room = nil
		} else {
			return nil, err
		}
	}

	price := resolvePrice(room, cmd.PricePerNight)
	res := reservation.NewReservation(cmd.ClientID, cmd.RoomID, stay, price, remarks)

	err = c.tx(ctx, func(tx db.DBTX) error {
		conflicts, err := c.repo.FindOverlapping(ctx, tx, cmd.RoomID, stay, nil)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if len(conflicts) > 0 {
			return errs.Mark(&RoomUnavailableError{RoomID: cmd.RoomID}, errs.ErrRoomUnavailable)
		}
		if err := c.repo.Create(ctx, tx, res); err != nil {
			return mapRepoErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.views.GetByID(ctx, res.ID())
}

func (c *reservationCommandsImpl) Modify(ctx context.Context, id uuid.UUID, cmd ModifyReservationCommand) (*queries.ReservationView, error) {
	return c.mutate(ctx, id, func(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
		if !res.IsModifiable() {
			return errs.Mark(reservation.ErrCannotModify, errs.ErrModificationImpossible)
		}

		roomID := patch.Coalesce(cmd.RoomID, res.RoomID())
		start := patch.Coalesce(cmd.StartDate, res.Stay().Start())
		end := patch.Coalesce(cmd.EndDate, res.Stay().End())

		stay, err := reservation.NewDateRange(start, end)
		if err != nil {
			return errs.Mark(err, errs.ErrDatesInvalid)
		}
		// The effective dates are re-validated even when the patch does not
		// touch them; only the availability re-check is conditional.
		if err := stay.ValidateNotPastAt(c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDatesInvalid)
		}
		datesChanged := cmd.StartDate != nil || cmd.EndDate != nil

		remarks := res.Remarks()
		if cmd.Remarks != nil {
			remarks, err = reservation.NewRemarks(*cmd.Remarks)
			if err != nil {
				return errs.Mark(err, errs.ErrRemarksInvalid)
			}
		}

		price := res.PricePerNight()
		if cmd.PricePerNight != nil {
			price = reservation.NewMoneyFromFloat(*cmd.PricePerNight)
		}

		if datesChanged || roomID != res.RoomID() {
			resID := res.ID()
			available, err := c.avail.IsAvailable(ctx, tx, roomID, stay, &resID)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if !available {
				return errs.Mark(&RoomUnavailableError{RoomID: roomID}, errs.ErrRoomUnavailable)
			}
		}

		if err := res.ApplyChanges(roomID, stay, price, remarks); err != nil {
			return errs.Mark(err, errs.ErrModificationImpossible)
		}
		return nil
	}, nil)
}

func (c *reservationCommandsImpl) Confirm(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return c.mutate(ctx, id, func(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
		if err := res.Confirm(); err != nil {
			return errs.Mark(err, errs.ErrConfirmImpossible)
		}
		return nil
	}, statusPush(shared.RoomStatusReserved))
}

func (c *reservationCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return c.mutate(ctx, id, func(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
		if err := res.CheckIn(); err != nil {
			return errs.Mark(err, errs.ErrCheckInImpossible)
		}
		return nil
	}, statusPush(shared.RoomStatusOccupied))
}

func (c *reservationCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return c.mutate(ctx, id, func(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
		if err := res.CheckOut(); err != nil {
			return errs.Mark(err, errs.ErrCheckOutImpossible)
		}
		return nil
	}, statusPush(shared.RoomStatusFree))
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return c.mutate(ctx, id, func(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
		if err := res.Cancel(); err != nil {
			return errs.Mark(err, errs.ErrCancelImpossible)
		}
		return nil
	}, statusPush(shared.RoomStatusFree))
}

// mutate loads the reservation, applies the change, and saves it under a
// compare-and-swap on version. The optional afterCommit hook runs once
// the transaction has committed; its failures never roll anything back.
func (c *reservationCommandsImpl) mutate(
	ctx context.Context,
	id uuid.UUID,
	apply func(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error,
	afterCommit func(ctx context.Context, c *reservationCommandsImpl, res *reservation.Reservation),
) (*queries.ReservationView, error) {
	var res *reservation.Reservation
	err := c.tx(ctx, func(tx db.DBTX) error {
		found, err := c.repo.FindByID(ctx, tx, id)
		if err != nil {
			return mapRepoErr(err)
		}
		if err := apply(ctx, tx, found); err != nil {
			return err
		}
		if err := c.repo.Update(ctx, tx, found, found.Version()); err != nil {
			return mapRepoErr(err)
		}
		res = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if afterCommit != nil {
		afterCommit(ctx, c, res)
	}

	return c.views.GetByID(ctx, res.ID())
}

// statusPush notifies the Room Authority after a committed transition.
// Failures are logged and swallowed; the reservation state already won.
func statusPush(status shared.RoomStatus) func(context.Context, *reservationCommandsImpl, *reservation.Reservation) {
	return func(ctx context.Context, c *reservationCommandsImpl, res *reservation.Reservation) {
		if err := c.rooms.PushStatus(ctx, res.RoomID(), status); err != nil {
			slog.Warn("room status push failed after commit",
				"reservation_id", res.ID(),
				"room_id", res.RoomID(),
				"status", string(status),
				"error", err)
		}
	}
}

func resolvePrice(room *shared.RoomSnapshot, override *float64) reservation.Money {
	if room != nil && !room.PricePerNight.IsZero() {
		return room.PricePerNight
	}
	if override != nil {
		return reservation.NewMoneyFromFloat(*override)
	}
	return reservation.DefaultPricePerNight
}

func mapRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrReservationNotFound)
	case infra.IsKind(err, infra.KindStaleVersion):
		return errs.Mark(err, errs.ErrConcurrentModification)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

package repository

import (
	"context"
	"time"

	"hotel-reservations/internal/domain/reservation"
	"hotel-reservations/internal/infra"
	"hotel-reservations/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReservationRepository is the write side: inserts and optimistic
// versioned updates against the reservations table.
type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const insertReservationSQL = `
INSERT INTO reservations
    (id, client_id, room_id, start_date, end_date, status,
     price_per_night_cents, total_amount_cents, remarks, version)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1)`

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	_, err := tx.Exec(ctx, insertReservationSQL,
		res.ID(),
		res.ClientID(),
		res.RoomID(),
		res.Stay().Start(),
		res.Stay().End(),
		res.Status().String(),
		res.PricePerNight().Cents(),
		res.TotalAmount().Cents(),
		res.Remarks().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

const updateReservationSQL = `
UPDATE reservations
SET room_id = $1,
    start_date = $2,
    end_date = $3,
    status = $4,
    price_per_night_cents = $5,
    total_amount_cents = $6,
    remarks = $7,
    updated_at = now(),
    version = version + 1
WHERE id = $8 AND version = $9`

// Update commits the mutation only if the row still carries
// expectedVersion; zero rows affected means a concurrent writer won.
func (r *ReservationRepository) Update(ctx context.Context, tx db.DBTX, res *reservation.Reservation, expectedVersion int32) error {
	tag, err := tx.Exec(ctx, updateReservationSQL,
		res.RoomID(),
		res.Stay().Start(),
		res.Stay().End(),
		res.Status().String(),
		res.PricePerNight().Cents(),
		res.TotalAmount().Cents(),
		res.Remarks().String(),
		res.ID(),
		expectedVersion,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation version is stale", nil, infra.KindStaleVersion)
	}
	return nil
}

const selectReservationSQL = `
SELECT id, client_id, room_id, start_date, end_date, status,
       price_per_night_cents, total_amount_cents, remarks,
       created_at, updated_at, version
FROM reservations
WHERE id = $1`

func (r *ReservationRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row := tx.QueryRow(ctx, selectReservationSQL, id)

	res, err := scanReservation(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return res, nil
}

// Inclusive boundary on purpose: a stay ending the day another begins
// still conflicts.
const overlapSQL = `
SELECT id
FROM reservations
WHERE room_id = $1
  AND status NOT IN ('CANCELLED', 'CHECKED_OUT')
  AND start_date <= $3
  AND end_date >= $2
  AND ($4::uuid IS NULL OR id <> $4)`

func (r *ReservationRepository) FindOverlapping(ctx context.Context, tx db.DBTX, roomID int64, stay reservation.DateRange, excludeID *uuid.UUID) ([]uuid.UUID, error) {
	rows, err := tx.Query(ctx, overlapSQL, roomID, stay.Start(), stay.End(), excludeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping reservations", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overlapping reservation", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read overlapping reservations", err)
	}
	return ids, nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id                   uuid.UUID
		clientID, roomID     int64
		startDate, endDate   time.Time
		status               string
		priceCents, total    int64
		remarksText          string
		createdAt, updatedAt time.Time
		version              int32
	)

	if err := row.Scan(&id, &clientID, &roomID, &startDate, &endDate, &status,
		&priceCents, &total, &remarksText, &createdAt, &updatedAt, &version); err != nil {
		return nil, err
	}

	stay, err := reservation.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	remarks, err := reservation.NewRemarks(remarksText)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id, clientID, roomID, stay,
		reservation.Status(status),
		reservation.NewMoney(priceCents), reservation.NewMoney(total),
		remarks, createdAt, updatedAt, version,
	), nil
}

package readstore

import (
	"context"
	"time"

	"hotel-reservations/internal/domain/reservation"
	"hotel-reservations/internal/infra"
	"hotel-reservations/internal/infra/db"
	"hotel-reservations/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const viewColumns = `
id, client_id, room_id, start_date, end_date, status,
price_per_night_cents, total_amount_cents, remarks,
created_at, updated_at, version`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+viewColumns+` FROM reservations WHERE id = $1`, id)

	view, err := scanView(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

const listColumns = `id, client_id, room_id, start_date, end_date, status, total_amount_cents, created_at`

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listColumns+` FROM reservations ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return collectListItems(rows)
}

func (r *ReservationReadStore) FindByStatus(ctx context.Context, status reservation.Status) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listColumns+` FROM reservations WHERE status = $1 ORDER BY start_date`,
		status.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by status", err)
	}
	return collectListItems(rows)
}

func (r *ReservationReadStore) FindByClient(ctx context.Context, clientID int64) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listColumns+` FROM reservations WHERE client_id = $1 ORDER BY start_date DESC`,
		clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by client", err)
	}
	return collectListItems(rows)
}

func (r *ReservationReadStore) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return count, nil
}

func (r *ReservationReadStore) CountByStatus(ctx context.Context, status reservation.Status) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE status = $1`, status.String()).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations by status", err)
	}
	return count, nil
}

func (r *ReservationReadStore) FindCheckedIn(ctx context.Context) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listColumns+` FROM reservations WHERE status = $1 ORDER BY start_date`,
		reservation.StatusCheckedIn.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list current occupancy", err)
	}
	return collectListItems(rows)
}

// FindUpcoming returns pending or confirmed reservations starting after
// the given day, soonest first.
func (r *ReservationReadStore) FindUpcoming(ctx context.Context, after time.Time) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listColumns+` FROM reservations
		 WHERE status IN ($1, $2) AND start_date > $3
		 ORDER BY start_date`,
		reservation.StatusPending.String(),
		reservation.StatusConfirmed.String(),
		after)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming reservations", err)
	}
	return collectListItems(rows)
}

func scanView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		view              queries.ReservationView
		priceCents, total int64
	)

	if err := row.Scan(&view.ID, &view.ClientID, &view.RoomID,
		&view.StartDate, &view.EndDate, &view.Status,
		&priceCents, &total, &view.Remarks,
		&view.CreatedAt, &view.UpdatedAt, &view.Version); err != nil {
		return nil, err
	}

	view.PricePerNight = reservation.NewMoney(priceCents).Amount()
	view.TotalAmount = reservation.NewMoney(total).Amount()
	view.Nights = int(view.EndDate.Sub(view.StartDate).Hours() / 24)
	return &view, nil
}

func collectListItems(rows pgx.Rows) ([]*queries.ReservationListItem, error) {
	defer rows.Close()

	result := make([]*queries.ReservationListItem, 0)
	for rows.Next() {
		var (
			item  queries.ReservationListItem
			total int64
		)
		if err := rows.Scan(&item.ID, &item.ClientID, &item.RoomID,
			&item.StartDate, &item.EndDate, &item.Status, &total, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.TotalAmount = reservation.NewMoney(total).Amount()
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}

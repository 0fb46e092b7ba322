package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-reservations/internal/domain/reservation"
	"hotel-reservations/internal/infra"
	"hotel-reservations/internal/pkg/clock"
	"hotel-reservations/internal/pkg/errs"
	"hotel-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	ClientID      int64     `json:"client_id"`
	RoomID        int64     `json:"room_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Nights        int       `json:"nights"`
	Status        string    `json:"status"`
	PricePerNight float64   `json:"price_per_night"`
	TotalAmount   float64   `json:"total_amount"`
	Remarks       string    `json:"remarks,omitempty"`
	ClientName    string    `json:"client_name,omitempty"`
	RoomNumber    string    `json:"room_number,omitempty"`
	RoomType      string    `json:"room_type,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int32     `json:"version"`
}

type ReservationListItem struct {
	ID          uuid.UUID `json:"id"`
	ClientID    int64     `json:"client_id"`
	RoomID      int64     `json:"room_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListFilter struct {
	Status   *reservation.Status
	ClientID *int64
}

type ReservationReport struct {
	TotalReservations int                    `json:"total_reservations"`
	CurrentOccupancy  int                    `json:"current_occupancy"`
	OccupancyList     []*ReservationListItem `json:"occupancy_list"`
	Upcoming          int                    `json:"upcoming"`
	UpcomingList      []*ReservationListItem `json:"upcoming_list"`
	Cancelled         int                    `json:"cancelled"`
	GeneratedAt       time.Time              `json:"generated_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ListFilter) ([]*ReservationListItem, error)
	Report(ctx context.Context) (*ReservationReport, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationListItem, error)
	FindByStatus(ctx context.Context, status reservation.Status) ([]*ReservationListItem, error)
	FindByClient(ctx context.Context, clientID int64) ([]*ReservationListItem, error)
	CountAll(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status reservation.Status) (int, error)
	FindCheckedIn(ctx context.Context) ([]*ReservationListItem, error)
	FindUpcoming(ctx context.Context, after time.Time) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo    ReservationViewRepo
	rooms   shared.RoomAuthorityGateway
	clients shared.ClientAuthorityGateway
	clock   clock.Clock
}

func NewReservationQueries(
	repo ReservationViewRepo,
	rooms shared.RoomAuthorityGateway,
	clients shared.ClientAuthorityGateway,
	clk clock.Clock,
) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, rooms: rooms, clients: clients, clock: clk}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	q.enrich(ctx, view)
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ListFilter) ([]*ReservationListItem, error) {
	var (
		items []*ReservationListItem
		err   error
	)

	switch {
	case filter.ClientID != nil:
		items, err = q.repo.FindByClient(ctx, *filter.ClientID)
	case filter.Status != nil:
		items, err = q.repo.FindByStatus(ctx, *filter.Status)
	default:
		items, err = q.repo.FindAll(ctx)
	}

	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *reservationQueriesImpl) Report(ctx context.Context) (*ReservationReport, error) {
	total, err := q.repo.CountAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	occupancy, err := q.repo.FindCheckedIn(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	upcoming, err := q.repo.FindUpcoming(ctx, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	cancelled, err := q.repo.CountByStatus(ctx, reservation.StatusCancelled)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &ReservationReport{
		TotalReservations: total,
		CurrentOccupancy:  len(occupancy),
		OccupancyList:     occupancy,
		Upcoming:          len(upcoming),
		UpcomingList:      upcoming,
		Cancelled:         cancelled,
		GeneratedAt:       q.clock.Now(),
	}, nil
}

// enrich populates client and room display fields fresh from the two
// gateways; nothing here is cached on the entity. Enrichment is
// best-effort: an unknown client or room just leaves the fields empty.
func (q *reservationQueriesImpl) enrich(ctx context.Context, view *ReservationView) {
	client, err := q.clients.FetchClient(ctx, view.ClientID)
	switch {
	case errors.Is(err, shared.ErrClientInvalid):
		slog.Debug("client unknown to authority, view left unenriched", "client_id", view.ClientID)
	case err != nil:
		slog.Warn("client enrichment failed", "client_id", view.ClientID, "error", err)
	default:
		view.ClientName = client.FullName()
	}

	room, err := q.rooms.FetchRoom(ctx, view.RoomID)
	switch {
	case errors.Is(err, shared.ErrRoomNotFound):
		slog.Debug("room unknown to authority, view left unenriched", "room_id", view.RoomID)
	case err != nil:
		slog.Warn("room enrichment failed", "room_id", view.RoomID, "error", err)
	default:
		view.RoomNumber = room.Number
		view.RoomType = room.Type
	}
}

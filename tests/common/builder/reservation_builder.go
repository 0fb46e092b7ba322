//go:build unit || e2e

package builder

import (
	"time"

	domres "hotel-reservations/internal/domain/reservation"
	reqdto "hotel-reservations/internal/handler/dto/request"
	"hotel-reservations/internal/usecase/commands"
	"hotel-reservations/internal/usecase/queries"
	"hotel-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	ClientID   int64
	RoomID     int64
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	PriceCents int64
	Remarks    string
	ClientName string
	RoomNumber string
	RoomType   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int32
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, 30).Truncate(24 * time.Hour)
	return &ReservationBuilder{
		ID:         uuid.New(),
		ClientID:   1,
		RoomID:     101,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 3),
		Status:     domres.StatusPending.String(),
		PriceCents: 12000,
		Remarks:    "Sea view please",
		ClientName: "Test Client",
		RoomNumber: "CH-101",
		RoomType:   "DOUBLE",
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	stay, err := domres.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	remarks, err := domres.NewRemarks(b.Remarks)
	if err != nil {
		return nil, err
	}
	return domres.NewReservation(b.ClientID, b.RoomID, stay, domres.NewMoney(b.PriceCents), remarks), nil
}

func (b *ReservationBuilder) BuildReconstructed() (*domres.Reservation, error) {
	stay, err := domres.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	remarks, err := domres.NewRemarks(b.Remarks)
	if err != nil {
		return nil, err
	}
	price := domres.NewMoney(b.PriceCents)
	total := price.Times(stay.Nights())
	return domres.ReconstructReservation(
		b.ID, b.ClientID, b.RoomID, stay,
		domres.Status(b.Status), price, total, remarks,
		b.CreatedAt, b.UpdatedAt, b.Version,
	), nil
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	nights := int(b.EndDate.Sub(b.StartDate).Hours() / 24)
	price := domres.NewMoney(b.PriceCents)
	return &queries.ReservationView{
		ID:            b.ID,
		ClientID:      b.ClientID,
		RoomID:        b.RoomID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Nights:        nights,
		Status:        b.Status,
		PricePerNight: price.Amount(),
		TotalAmount:   price.Times(nights).Amount(),
		Remarks:       b.Remarks,
		ClientName:    b.ClientName,
		RoomNumber:    b.RoomNumber,
		RoomType:      b.RoomType,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		Version:       b.Version,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	nights := int(b.EndDate.Sub(b.StartDate).Hours() / 24)
	price := domres.NewMoney(b.PriceCents)
	return &queries.ReservationListItem{
		ID:          b.ID,
		ClientID:    b.ClientID,
		RoomID:      b.RoomID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Status:      b.Status,
		TotalAmount: price.Times(nights).Amount(),
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ClientID:  b.ClientID,
		RoomID:    b.RoomID,
		StartDate: b.StartDate.Format(time.DateOnly),
		EndDate:   b.EndDate.Format(time.DateOnly),
		Remarks:   b.Remarks,
	}
}

func (b *ReservationBuilder) BuildModifyRequestDTO() reqdto.ModifyReservationRequest {
	start := b.StartDate.Format(time.DateOnly)
	end := b.EndDate.Format(time.DateOnly)
	remarks := b.Remarks
	return reqdto.ModifyReservationRequest{
		StartDate: &start,
		EndDate:   &end,
		Remarks:   &remarks,
	}
}

func (b *ReservationBuilder) BuildCreateCommand() commands.CreateReservationCommand {
	return commands.CreateReservationCommand{
		ClientID:  b.ClientID,
		RoomID:    b.RoomID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Remarks:   b.Remarks,
	}
}

func (b *ReservationBuilder) BuildRoomSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:            b.RoomID,
		Number:        b.RoomNumber,
		Type:          b.RoomType,
		PricePerNight: domres.NewMoney(b.PriceCents),
		Status:        string(shared.RoomStatusFree),
		Available:     true,
		Capacity:      2,
	}
}

func (b *ReservationBuilder) BuildClientSnapshot() *shared.ClientSnapshot {
	return &shared.ClientSnapshot{
		ID:        b.ClientID,
		LastName:  "Client",
		FirstName: "Test",
		Email:     "client@hotel.test",
		Phone:     "+33600000000",
		StayCount: 5,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithClientID(clientID int64) *ReservationBuilder {
	b.ClientID = clientID
	return b
}

func (b *ReservationBuilder) WithRoomID(roomID int64) *ReservationBuilder {
	b.RoomID = roomID
	return b
}

func (b *ReservationBuilder) WithDates(start, end time.Time) *ReservationBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithPriceCents(cents int64) *ReservationBuilder {
	b.PriceCents = cents
	return b
}

func (b *ReservationBuilder) WithRemarks(remarks string) *ReservationBuilder {
	b.Remarks = remarks
	return b
}

func (b *ReservationBuilder) AsConfirmed() *ReservationBuilder {
	b.Status = domres.StatusConfirmed.String()
	return b
}

func (b *ReservationBuilder) AsCheckedIn() *ReservationBuilder {
	b.Status = domres.StatusCheckedIn.String()
	return b
}

func (b *ReservationBuilder) AsCancelled() *ReservationBuilder {
	b.Status = domres.StatusCancelled.String()
	return b
}

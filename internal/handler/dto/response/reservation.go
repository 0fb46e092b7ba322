package response

import (
	"time"

	"hotel-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	ClientID      int64     `json:"client_id"`
	RoomID        int64     `json:"room_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
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

type ReservationListResponse struct {
	ID          uuid.UUID `json:"id"`
	ClientID    int64     `json:"client_id"`
	RoomID      int64     `json:"room_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReportResponse struct {
	TotalReservations int                        `json:"total_reservations"`
	CurrentOccupancy  int                        `json:"current_occupancy"`
	OccupancyList     []*ReservationListResponse `json:"occupancy_list"`
	Upcoming          int                        `json:"upcoming"`
	UpcomingList      []*ReservationListResponse `json:"upcoming_list"`
	Cancelled         int                        `json:"cancelled"`
	GeneratedAt       time.Time                  `json:"generated_at"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            rm.ID,
		ClientID:      rm.ClientID,
		RoomID:        rm.RoomID,
		StartDate:     rm.StartDate.Format(time.DateOnly),
		EndDate:       rm.EndDate.Format(time.DateOnly),
		Nights:        rm.Nights,
		Status:        rm.Status,
		PricePerNight: rm.PricePerNight,
		TotalAmount:   rm.TotalAmount,
		Remarks:       rm.Remarks,
		ClientName:    rm.ClientName,
		RoomNumber:    rm.RoomNumber,
		RoomType:      rm.RoomType,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
		Version:       rm.Version,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:          rm.ID,
		ClientID:    rm.ClientID,
		RoomID:      rm.RoomID,
		StartDate:   rm.StartDate.Format(time.DateOnly),
		EndDate:     rm.EndDate.Format(time.DateOnly),
		Status:      rm.Status,
		TotalAmount: rm.TotalAmount,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromReservationList(items []*queries.ReservationListItem) []*ReservationListResponse {
	out := make([]*ReservationListResponse, len(items))
	for i, item := range items {
		out[i] = FromReservationListItem(item)
	}
	return out
}

func FromReport(rm *queries.ReservationReport) *ReportResponse {
	return &ReportResponse{
		TotalReservations: rm.TotalReservations,
		CurrentOccupancy:  rm.CurrentOccupancy,
		OccupancyList:     FromReservationList(rm.OccupancyList),
		Upcoming:          rm.Upcoming,
		UpcomingList:      FromReservationList(rm.UpcomingList),
		Cancelled:         rm.Cancelled,
		GeneratedAt:       rm.GeneratedAt,
	}
}

package gateway

import (
	"fmt"

	"hotel-reservations/internal/domain/reservation"
	"hotel-reservations/internal/usecase/shared"
)

// Synthesized records used whenever an authority cannot answer. Booking
// against these is the accepted tradeoff for staying available while an
// authority is down.

func placeholderRoom(roomID int64) *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:            roomID,
		Number:        fmt.Sprintf("CH-%d", roomID),
		Type:          "DOUBLE",
		PricePerNight: reservation.NewMoney(12000),
		Status:        "FREE",
		Available:     true,
		Capacity:      2,
		Placeholder:   true,
	}
}

func placeholderClient(clientID int64) *shared.ClientSnapshot {
	return &shared.ClientSnapshot{
		ID:            clientID,
		LastName:      "Client",
		FirstName:     "Test",
		Email:         fmt.Sprintf("client%d@hotel.test", clientID),
		Phone:         "+33600000000",
		HasUnpaidFees: false,
		StayCount:     5,
		Placeholder:   true,
	}
}

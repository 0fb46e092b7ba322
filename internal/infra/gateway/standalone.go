package gateway

import (
	"context"

	"hotel-reservations/internal/domain/reservation"
	"hotel-reservations/internal/usecase/shared"
)

// StandaloneRoomGateway serves placeholder rooms without a Room Authority.
// Used when AUTHORITY_STANDALONE is set, and in tests.
type StandaloneRoomGateway struct{}

func NewStandaloneRoomGateway() *StandaloneRoomGateway {
	return &StandaloneRoomGateway{}
}

func (g *StandaloneRoomGateway) FetchRoom(_ context.Context, roomID int64) (*shared.RoomSnapshot, error) {
	return placeholderRoom(roomID), nil
}

func (g *StandaloneRoomGateway) CheckAvailability(_ context.Context, _ int64, _ reservation.DateRange) bool {
	return true
}

func (g *StandaloneRoomGateway) PushStatus(_ context.Context, _ int64, _ shared.RoomStatus) error {
	return nil
}

// StandaloneClientGateway serves placeholder clients in good standing.
type StandaloneClientGateway struct{}

func NewStandaloneClientGateway() *StandaloneClientGateway {
	return &StandaloneClientGateway{}
}

func (g *StandaloneClientGateway) FetchClient(_ context.Context, clientID int64) (*shared.ClientSnapshot, error) {
	return placeholderClient(clientID), nil
}

func (g *StandaloneClientGateway) HasGoodStanding(_ context.Context, _ int64) bool {
	return true
}

func (g *StandaloneClientGateway) Exists(_ context.Context, _ int64) bool {
	return true
}

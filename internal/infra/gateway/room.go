package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"hotel-reservations/internal/domain/reservation"
	"hotel-reservations/internal/pkg/config"
	"hotel-reservations/internal/pkg/errs"
	"hotel-reservations/internal/usecase/shared"

	"github.com/go-resty/resty/v2"
)

type roomPayload struct {
	ID            int64    `json:"id"`
	Number        string   `json:"number"`
	Type          string   `json:"type"`
	PricePerNight *float64 `json:"pricePerNight"`
	Status        string   `json:"status"`
	Available     *bool    `json:"available"`
	Description   string   `json:"description"`
	Capacity      int      `json:"capacity"`
}

type availabilityPayload struct {
	Available bool `json:"available"`
}

// RemoteRoomGateway talks to the Room Authority. Read paths never block a
// booking: anything short of a clean answer degrades to the placeholder
// (FetchRoom) or to "available" (CheckAvailability).
type RemoteRoomGateway struct {
	http *resty.Client
}

func NewRemoteRoomGateway(cfg config.AuthoritiesConfig) *RemoteRoomGateway {
	client := resty.New().
		SetBaseURL(cfg.RoomBaseURL).
		SetTimeout(cfg.ReadTimeout).
		SetHeader("Accept", "application/json").
		SetTransport(&http.Transport{
			DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
		})

	return &RemoteRoomGateway{http: client}
}

func (g *RemoteRoomGateway) FetchRoom(ctx context.Context, roomID int64) (*shared.RoomSnapshot, error) {
	var payload roomPayload
	resp, err := g.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(fmt.Sprintf("/%d", roomID))

	if err != nil {
		slog.Warn("room authority unreachable, using placeholder room",
			"room_id", roomID, "error", err)
		return placeholderRoom(roomID), nil
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, errs.Wrap(shared.ErrRoomNotFound, fmt.Sprintf("room %d", roomID))
	case resp.IsSuccess():
		return roomSnapshotFromPayload(payload), nil
	default:
		slog.Warn("room authority returned error, using placeholder room",
			"room_id", roomID, "status_code", resp.StatusCode())
		return placeholderRoom(roomID), nil
	}
}

func (g *RemoteRoomGateway) CheckAvailability(ctx context.Context, roomID int64, stay reservation.DateRange) bool {
	var payload availabilityPayload
	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParam("startDate", stay.Start().Format(time.DateOnly)).
		SetQueryParam("endDate", stay.End().Format(time.DateOnly)).
		SetResult(&payload).
		Get(fmt.Sprintf("/%d/availability", roomID))

	if err != nil {
		slog.Warn("room availability check failed open",
			"room_id", roomID, "error", err)
		return true
	}
	if !resp.IsSuccess() {
		slog.Warn("room availability check failed open",
			"room_id", roomID, "status_code", resp.StatusCode())
		return true
	}
	return payload.Available
}

func (g *RemoteRoomGateway) PushStatus(ctx context.Context, roomID int64, status shared.RoomStatus) error {
	resp, err := g.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"status": string(status)}).
		Put(fmt.Sprintf("/%d/status", roomID))

	if err != nil {
		return errs.Wrap(err, "failed to push room status")
	}
	if !resp.IsSuccess() {
		return errs.New(fmt.Sprintf("room status push rejected with HTTP %d", resp.StatusCode()))
	}
	return nil
}

func roomSnapshotFromPayload(p roomPayload) *shared.RoomSnapshot {
	snap := &shared.RoomSnapshot{
		ID:          p.ID,
		Number:      p.Number,
		Type:        p.Type,
		Status:      p.Status,
		Available:   true,
		Description: p.Description,
		Capacity:    p.Capacity,
	}
	if p.PricePerNight != nil {
		snap.PricePerNight = reservation.NewMoneyFromFloat(*p.PricePerNight)
	}
	if p.Available != nil {
		snap.Available = *p.Available
	}
	return snap
}

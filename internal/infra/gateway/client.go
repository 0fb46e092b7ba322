package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"hotel-reservations/internal/pkg/config"
	"hotel-reservations/internal/pkg/errs"
	"hotel-reservations/internal/usecase/shared"

	"github.com/go-resty/resty/v2"
)

type clientPayload struct {
	ID            int64  `json:"id"`
	LastName      string `json:"lastName"`
	FirstName     string `json:"firstName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	HasUnpaidFees bool   `json:"hasUnpaidFees"`
	StayCount     int    `json:"stayCount"`
}

type historyPayload struct {
	UnpaidFees bool `json:"unpaidFees"`
}

// RemoteClientGateway talks to the Client Authority. An explicit 404 on
// FetchClient is the only fail-closed path in the system; every other
// failure degrades to a placeholder client in good standing.
type RemoteClientGateway struct {
	http *resty.Client
}

func NewRemoteClientGateway(cfg config.AuthoritiesConfig) *RemoteClientGateway {
	client := resty.New().
		SetBaseURL(cfg.ClientBaseURL).
		SetTimeout(cfg.ReadTimeout).
		SetHeader("Accept", "application/json").
		SetTransport(&http.Transport{
			DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
		})

	return &RemoteClientGateway{http: client}
}

func (g *RemoteClientGateway) FetchClient(ctx context.Context, clientID int64) (*shared.ClientSnapshot, error) {
	var payload clientPayload
	resp, err := g.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(fmt.Sprintf("/%d", clientID))

	if err != nil {
		slog.Warn("client authority unreachable, using placeholder client",
			"client_id", clientID, "error", err)
		return placeholderClient(clientID), nil
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, errs.Wrap(shared.ErrClientInvalid, fmt.Sprintf("client %d", clientID))
	case resp.IsSuccess():
		return &shared.ClientSnapshot{
			ID:            payload.ID,
			LastName:      payload.LastName,
			FirstName:     payload.FirstName,
			Email:         payload.Email,
			Phone:         payload.Phone,
			HasUnpaidFees: payload.HasUnpaidFees,
			StayCount:     payload.StayCount,
		}, nil
	default:
		slog.Warn("client authority returned error, using placeholder client",
			"client_id", clientID, "status_code", resp.StatusCode())
		return placeholderClient(clientID), nil
	}
}

func (g *RemoteClientGateway) HasGoodStanding(ctx context.Context, clientID int64) bool {
	var payload historyPayload
	resp, err := g.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(fmt.Sprintf("/%d/history", clientID))

	if err != nil {
		slog.Warn("client standing check failed open",
			"client_id", clientID, "error", err)
		return true
	}
	if !resp.IsSuccess() {
		slog.Warn("client standing check failed open",
			"client_id", clientID, "status_code", resp.StatusCode())
		return true
	}
	return !payload.UnpaidFees
}

func (g *RemoteClientGateway) Exists(ctx context.Context, clientID int64) bool {
	resp, err := g.http.R().
		SetContext(ctx).
		Head(fmt.Sprintf("/%d", clientID))

	if err != nil {
		slog.Warn("client existence probe failed open",
			"client_id", clientID, "error", err)
		return true
	}
	// Only an explicit 404 denies; degraded responses fail open.
	return resp.StatusCode() != http.StatusNotFound
}

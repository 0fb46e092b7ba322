package bootstrap

import (
	"log/slog"

	"hotel-reservations/internal/infra/gateway"
	"hotel-reservations/internal/pkg/config"
	"hotel-reservations/internal/usecase/shared"

	"go.uber.org/fx"
)

// GatewayModule selects the authority implementations once at startup.
// Standalone mode serves synthesized data for environments where neither
// authority is reachable.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewRoomGateway,
		NewClientGateway,
	),
)

func NewRoomGateway(cfg config.Config) shared.RoomAuthorityGateway {
	if cfg.Authorities.Standalone {
		slog.Info("room authority gateway in standalone mode")
		return gateway.NewStandaloneRoomGateway()
	}
	return gateway.NewRemoteRoomGateway(cfg.Authorities)
}

func NewClientGateway(cfg config.Config) shared.ClientAuthorityGateway {
	if cfg.Authorities.Standalone {
		slog.Info("client authority gateway in standalone mode")
		return gateway.NewStandaloneClientGateway()
	}
	return gateway.NewRemoteClientGateway(cfg.Authorities)
}

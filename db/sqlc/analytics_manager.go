package sqlc

import (
	"context"
	"net"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager keeps the per server counters of the setup
// service. All counters are keyed by the server ip.
type AnalyticsManager struct {
	queries  Querier
	serverIp pqtype.Inet
}

func NewAnalyticsManager(queries Querier, serverIpNet net.IPNet) *AnalyticsManager {
	return &AnalyticsManager{
		queries:  queries,
		serverIp: pqtype.Inet{IPNet: serverIpNet, Valid: true},
	}
}

func (a *AnalyticsManager) ServerIp() pqtype.Inet {
	return a.serverIp
}

func (a *AnalyticsManager) IncrementBoardsGeneratedCount(ctx context.Context) error {
	return a.queries.IncrementBoardsGeneratedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) IncrementPlacementFailuresCount(ctx context.Context) error {
	return a.queries.IncrementPlacementFailuresCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetBoardsGeneratedCount(ctx context.Context) (int64, error) {
	return a.queries.GetBoardsGeneratedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetPlacementFailuresCount(ctx context.Context) (int64, error) {
	return a.queries.GetPlacementFailuresCount(ctx, a.serverIp)
}

package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager counts created and completed games per server.
// A nil Querier turns every call into a no-op.
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) Enabled() bool {
	return a != nil && a.queries != nil
}

func (a *AnalyticsManager) IncrementGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.IncrementGamesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementGamesCompletedCount(ctx context.Context, serverIpNet pqtype.Inet, rounds int) error {
	if !a.Enabled() {
		return nil
	}
	return a.queries.IncrementGamesCompletedCount(ctx, IncrementGamesCompletedCountParams{
		ServerIp:     serverIpNet,
		RoundsPlayed: int64(rounds),
	})
}

// A server without a row yet has created no games.
func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	return noRowsAsZero(a.queries.GetGamesCreatedCount(ctx, serverIpNet))
}

func (a *AnalyticsManager) GetGamesCompletedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	if !a.Enabled() {
		return 0, nil
	}
	return noRowsAsZero(a.queries.GetGamesCompletedCount(ctx, serverIpNet))
}

func noRowsAsZero(count int64, err error) (int64, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return count, err
}

// RecordGameCreated logs instead of failing; analytics never
// stop a game.
func (a *AnalyticsManager) RecordGameCreated(serverIpNet pqtype.Inet) {
	ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
	defer cancel()
	if err := a.IncrementGamesCreatedCount(ctx, serverIpNet); err != nil {
		log.Println("analytics games created:", err)
	}
}

func (a *AnalyticsManager) RecordGameCompleted(serverIpNet pqtype.Inet, rounds int) {
	ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
	defer cancel()
	if err := a.IncrementGamesCompletedCount(ctx, serverIpNet, rounds); err != nil {
		log.Println("analytics games completed:", err)
	}
}

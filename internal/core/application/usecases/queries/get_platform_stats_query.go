package queries

import (
	"errors"

	"pindrop/internal/pkg/guard"
)

var ErrGetPlatformStatsQueryIsNotConstructed = errors.New(
	"GetPlatformStatsQuery must be created via NewGetPlatformStatsQuery constructor",
)

// GetPlatformStatsQuery retrieves platform-wide order and complaint counters
// for the admin dashboard.
type GetPlatformStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlatformStatsQuery creates a parameterless query for platform stats.
func NewGetPlatformStatsQuery() GetPlatformStatsQuery {
	return GetPlatformStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPlatformStatsQueryIsNotConstructed if validation fails.
func (q GetPlatformStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPlatformStatsQueryIsNotConstructed)
}

// GetPlatformStatsQueryResponse carries the platform counters.
// Revenue sums the totals of delivered orders only.
type GetPlatformStatsQueryResponse struct {
	TotalOrders      int64
	DeliveredOrders  int64
	CancelledOrders  int64
	DeliveredRevenue float64
	OpenComplaints   int64
}

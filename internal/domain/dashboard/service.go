package dashboard

import (
	"context"
)

// DashboardService exposes the workforce metrics to the API layer. Both
// operations read through the cache facade with a 30s TTL.
type DashboardService interface {
	GetSummary(ctx context.Context) (DashboardSummary, error)
	GetAttendanceSummary(ctx context.Context) ([]EmployeeAttendanceSummary, error)
}

package interfaces

import "context"

// IUsageCounterRepository counts the agreements a user created in one calendar month.
//
// period is the month as returned by entities.UsagePeriod. Current returns 0 for a month
// with no recorded usage.
type IUsageCounterRepository interface {
	Current(ctx context.Context, userID, period string) (int64, error)
	Increment(ctx context.Context, userID, period string) (int64, error)
}

package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// UserPlan is the contractor's subscription tier. It caps how many agreements can be
// created per calendar month.
type UserPlan string

const (
	UserPlanFree     UserPlan = "FREE"
	UserPlanSolo     UserPlan = "SOLO"
	UserPlanBusiness UserPlan = "BUSINESS"
)

// ErrPlanLimitReached is matched by PlanLimitError.
var ErrPlanLimitReached = errors.New("plan limit reached")

// planLimits holds the monthly creation cap per plan. Plans missing from the map are unlimited.
var planLimits = map[UserPlan]int64{
	UserPlanFree: 3,
	UserPlanSolo: 20,
}

func ParseUserPlan(raw string) (UserPlan, bool) {
	p := UserPlan(strings.ToUpper(strings.TrimSpace(raw)))
	switch p {
	case UserPlanFree, UserPlanSolo, UserPlanBusiness:
		return p, true
	}
	return "", false
}

// MonthlyLimit returns the plan's cap and false when the plan is unlimited.
func (p UserPlan) MonthlyLimit() (int64, bool) {
	n, ok := planLimits[p]
	return n, ok
}

// UsagePeriod names the calendar month t falls in, e.g. "2026-10". Months are counted in UTC.
func UsagePeriod(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// PlanLimitError is returned when a contractor has used up the plan's monthly agreements.
type PlanLimitError struct {
	Plan  UserPlan
	Limit int64
}

func (e *PlanLimitError) Error() string {
	return fmt.Sprintf("Plan limit reached. %s plan allows %d agreements per month. Please upgrade your plan to create more agreements.", e.Plan, e.Limit)
}

func (e *PlanLimitError) Is(target error) bool {
	return target == ErrPlanLimitReached
}

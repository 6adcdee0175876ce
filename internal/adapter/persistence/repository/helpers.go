package repository

import (
	"errors"
	"fmt"
	"os"
	"time"

	"quotelock/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultAgreementsTableName  = "agreements"
	defaultAuditEventsTableName = "audit_events"
	defaultRateLimitsTableName  = "rate_limits"

	publicSlugIndexName = "public_slug-index"
	userIDIndexName     = "user_id-index"

	// sortableTimeLayout has a fixed-width fraction so stored timestamps order lexically.
	sortableTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Table names resolved from the environment, shared with the provisioning command.
func AgreementsTableName() string {
	return getenvDefault("AGREEMENTS_TABLE", defaultAgreementsTableName)
}

func AuditEventsTableName() string {
	return getenvDefault("AUDIT_EVENTS_TABLE", defaultAuditEventsTableName)
}

func RateLimitsTableName() string {
	return getenvDefault("RATE_LIMITS_TABLE", defaultRateLimitsTableName)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sortableTimeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func parseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := parseTime(*s)
	return &t
}

func parseDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// transactionError maps a cancelled transaction onto the repository sentinels.
//
// guardIndex is the position of the item whose condition guards the agreement row. When
// that condition failed and DynamoDB returned no old item, the agreement does not exist.
// A negative guardIndex skips that check.
func transactionError(err error, guardIndex int) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	if guardIndex >= 0 && guardIndex < len(tce.CancellationReasons) {
		reason := tce.CancellationReasons[guardIndex]
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			if len(reason.Item) == 0 {
				return interfaces.ErrNotFound
			}
			return interfaces.ErrConflict
		}
	}
	retryable := false
	for _, reason := range tce.CancellationReasons {
		switch aws.ToString(reason.Code) {
		case "ConditionalCheckFailed":
			return interfaces.ErrConflict
		case "TransactionConflict", "ThrottlingError", "ProvisionedThroughputExceeded":
			retryable = true
		}
	}
	if retryable {
		return fmt.Errorf("%w: %v", interfaces.ErrRetryable, err)
	}
	return err
}

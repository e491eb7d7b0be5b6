package repository

import (
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Money and timestamps are stored as strings: decimals keep their exact
// digits and RFC3339Nano UTC timestamps sort lexicographically.

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func formatDecimalPtr(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func parseDecimalPtr(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d := parseDecimal(s)
	return &d
}

// conditionFailed unwraps a failed ConditionExpression.
func conditionFailed(err error) (*types.ConditionalCheckFailedException, bool) {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return cfe, true
	}
	return nil, false
}

func stringAttr(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

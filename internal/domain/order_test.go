package domain

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestSeverityFor(t *testing.T) {
	assert.Equal(t, SeveritySuccess, SeverityFor(OrderStatusDelivered))
	assert.Equal(t, SeveritySuccess, SeverityFor(OrderStatusReturned))
	assert.Equal(t, SeveritySuccess, SeverityFor(OrderStatusExchanged))
	assert.Equal(t, SeverityDanger, SeverityFor(OrderStatusCancelled))
	assert.Equal(t, SeverityWarning, SeverityFor(OrderStatusShipped))
	assert.Equal(t, SeverityWarning, SeverityFor("SOME_FUTURE_STATUS"))
}

func TestIsReviewable(t *testing.T) {
	for _, status := range OrderStatuses {
		reviewable := IsReviewable(status)
		switch status {
		case OrderStatusDelivered, OrderStatusReturned, OrderStatusExchanged:
			assert.True(t, reviewable, status)
		default:
			assert.False(t, reviewable, status)
		}
	}
}

func TestParseActionKind(t *testing.T) {
	for _, s := range []string{"cancel", "return", "exchange"} {
		kind, err := ParseActionKind(s)
		assert.NoError(t, err)
		assert.Equal(t, s, kind.String())
		assert.Equal(t, s, kind.PathSuffix())
	}

	_, err := ParseActionKind("refund")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestComposerMeta_OnlyExchangeWantsProduct(t *testing.T) {
	assert.False(t, ActionCancel.Composer().WantsExchangeProduct)
	assert.False(t, ActionReturn.Composer().WantsExchangeProduct)
	assert.True(t, ActionExchange.Composer().WantsExchangeProduct)
}

func TestTimestamp_UnmarshalFormats(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"2026-03-01T10:15:30Z"`, "2026-03-01T10:15:30Z"},
		{`"2026-03-01T10:15:30.123"`, "2026-03-01T10:15:30.123Z"},
		{`"2026-03-01T10:15:30"`, "2026-03-01T10:15:30Z"},
	}
	for _, tt := range tests {
		var ts Timestamp
		assert.NoError(t, json.Unmarshal([]byte(tt.raw), &ts), tt.raw)
		assert.Equal(t, tt.want, ts.UTC().Format("2006-01-02T15:04:05.999Z07:00"), tt.raw)
	}

	var ts Timestamp
	assert.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"01/03/2026"`), &ts))
}

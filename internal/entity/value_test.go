package entity_test

import (
	"procurement-management-api/internal/entity"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValueEqualNulls(t *testing.T) {
	require.True(t, entity.NullValue().Equal(entity.NullValue()))
	require.False(t, entity.NullValue().Equal(entity.TextValue("")))
	require.False(t, entity.TextValue("x").Equal(entity.NullValue()))
}

func TestValueEqualText(t *testing.T) {
	require.True(t, entity.TextValue("abc").Equal(entity.TextValue("abc")))
	require.False(t, entity.TextValue("abc").Equal(entity.TextValue("abd")))
}

func TestValueEqualDecimalAgainstText(t *testing.T) {
	stored := entity.DecimalValue(decimal.RequireFromString("10.5"))

	require.True(t, stored.Equal(entity.TextValue("10.50")))
	require.True(t, stored.Equal(entity.TextValue(" 10.5 ")))
	require.False(t, stored.Equal(entity.TextValue("10.51")))

	// A parse failure counts as changed, never as equal.
	require.False(t, stored.Equal(entity.TextValue("ten and a half")))
}

func TestValueEqualTimeNormalizesZones(t *testing.T) {
	zone := time.FixedZone("BRT", -3*60*60)
	stored := entity.TimeValue(time.Date(2026, 3, 1, 9, 0, 0, 0, zone))

	require.True(t, stored.Equal(entity.TextValue("2026-03-01T12:00:00Z")))
	require.True(t, stored.Equal(entity.TextValue("2026-03-01 12:00:00")))
	require.False(t, stored.Equal(entity.TextValue("2026-03-01T12:00:01Z")))
	require.False(t, stored.Equal(entity.TextValue("whenever")))
}

func TestValueIsBlank(t *testing.T) {
	require.True(t, entity.NullValue().IsBlank())
	require.True(t, entity.TextValue("").IsBlank())
	require.True(t, entity.TextValue("   ").IsBlank())
	require.False(t, entity.TextValue("x").IsBlank())
	require.False(t, entity.DecimalValue(decimal.Zero).IsBlank())
}

func TestValueDecimalFromText(t *testing.T) {
	value, err := entity.TextValue(" 12.50 ").Decimal()
	require.NoError(t, err)
	require.True(t, value.Equal(decimal.RequireFromString("12.5")))

	_, err = entity.TextValue("abc").Decimal()
	require.Error(t, err)

	_, err = entity.NullValue().Decimal()
	require.Error(t, err)
}

func TestValueInterface(t *testing.T) {
	require.Nil(t, entity.NullValue().Interface())
	require.Equal(t, "x", entity.TextValue("x").Interface())

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, ts, entity.TimeValue(ts).Interface())
}

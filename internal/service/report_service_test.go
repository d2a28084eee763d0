package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReportQueryDateRange(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("no bounds means no range", func(t *testing.T) {
		r, err := ReportQuery{}.dateRange()
		assert.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("both bounds", func(t *testing.T) {
		r, err := ReportQuery{DateFrom: &from, DateTo: &to}.dateRange()
		assert.NoError(t, err)
		assert.Equal(t, from, r.From)
		assert.Equal(t, to, r.To)
	})

	t.Run("from only is open-ended", func(t *testing.T) {
		r, err := ReportQuery{DateFrom: &from}.dateRange()
		assert.NoError(t, err)
		assert.True(t, r.Contains(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
		assert.False(t, r.Contains(from.Add(-time.Second)))
	})

	t.Run("inverted bounds rejected", func(t *testing.T) {
		_, err := ReportQuery{DateFrom: &to, DateTo: &from}.dateRange()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestReportQueryTruckID(t *testing.T) {
	id := uuid.New()

	t.Run("empty means fleet-wide", func(t *testing.T) {
		got, err := ReportQuery{}.truckID()
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("all sentinel means fleet-wide", func(t *testing.T) {
		got, err := ReportQuery{TruckID: "all"}.truckID()
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("valid uuid narrows", func(t *testing.T) {
		got, err := ReportQuery{TruckID: id.String()}.truckID()
		assert.NoError(t, err)
		assert.Equal(t, id, *got)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := ReportQuery{TruckID: "not-a-uuid"}.truckID()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("calendar date", func(t *testing.T) {
		got, err := parseDate("2025-03-15")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := parseDate("2025-03-15T08:30:00Z")
		assert.NoError(t, err)
		assert.Equal(t, 8, got.Hour())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := parseDate("15/03/2025")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

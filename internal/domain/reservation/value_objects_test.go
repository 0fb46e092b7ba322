//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"hotel-reservations/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, start, end string) reservation.DateRange {
	t.Helper()
	r, err := reservation.NewDateRange(date(start), date(end))
	require.NoError(t, err)
	return r
}

func TestDateRange(t *testing.T) {
	t.Run("construction", func(t *testing.T) {
		cases := []struct {
			name  string
			start time.Time
			end   time.Time
			errIs error
		}{
			{name: "three night stay", start: date("2026-09-10"), end: date("2026-09-13")},
			{name: "single night stay", start: date("2026-09-10"), end: date("2026-09-11")},
			{name: "same day is invalid", start: date("2026-09-10"), end: date("2026-09-10"), errIs: reservation.ErrInvalidDateRange},
			{name: "end before start is invalid", start: date("2026-09-13"), end: date("2026-09-10"), errIs: reservation.ErrInvalidDateRange},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				r, err := reservation.NewDateRange(c.start, c.end)
				if c.errIs != nil {
					require.ErrorIs(t, err, c.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, c.start, r.Start())
				assert.Equal(t, c.end, r.End())
			})
		}
	})

	t.Run("normalizes time of day to UTC midnight", func(t *testing.T) {
		start := time.Date(2026, 9, 10, 15, 30, 45, 0, time.UTC)
		end := time.Date(2026, 9, 13, 8, 0, 0, 0, time.UTC)

		r, err := reservation.NewDateRange(start, end)
		require.NoError(t, err)

		assert.Equal(t, date("2026-09-10"), r.Start())
		assert.Equal(t, date("2026-09-13"), r.End())
		assert.Equal(t, 3, r.Nights())
	})

	t.Run("nights", func(t *testing.T) {
		assert.Equal(t, 1, mustRange(t, "2026-09-10", "2026-09-11").Nights())
		assert.Equal(t, 3, mustRange(t, "2026-09-10", "2026-09-13").Nights())
		assert.Equal(t, 31, mustRange(t, "2026-09-10", "2026-10-11").Nights())
	})

	t.Run("overlap boundaries are inclusive", func(t *testing.T) {
		base := mustRange(t, "2026-09-10", "2026-09-13")

		cases := []struct {
			name     string
			other    reservation.DateRange
			overlaps bool
		}{
			{name: "identical range", other: mustRange(t, "2026-09-10", "2026-09-13"), overlaps: true},
			{name: "fully inside", other: mustRange(t, "2026-09-11", "2026-09-12"), overlaps: true},
			{name: "fully covering", other: mustRange(t, "2026-09-08", "2026-09-15"), overlaps: true},
			{name: "partial overlap at start", other: mustRange(t, "2026-09-08", "2026-09-11"), overlaps: true},
			{name: "partial overlap at end", other: mustRange(t, "2026-09-12", "2026-09-15"), overlaps: true},
			{name: "touching at departure day", other: mustRange(t, "2026-09-13", "2026-09-16"), overlaps: true},
			{name: "touching at arrival day", other: mustRange(t, "2026-09-07", "2026-09-10"), overlaps: true},
			{name: "one day after", other: mustRange(t, "2026-09-14", "2026-09-16"), overlaps: false},
			{name: "one day before", other: mustRange(t, "2026-09-07", "2026-09-09"), overlaps: false},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.overlaps, base.Overlaps(c.other))
				assert.Equal(t, c.overlaps, c.other.Overlaps(base))
			})
		}
	})

	t.Run("past start validation", func(t *testing.T) {
		stay := mustRange(t, "2026-09-10", "2026-09-13")

		assert.NoError(t, stay.ValidateNotPastAt(date("2026-09-10")))
		assert.NoError(t, stay.ValidateNotPastAt(date("2026-09-01")))
		// time of day on "today" is irrelevant
		assert.NoError(t, stay.ValidateNotPastAt(time.Date(2026, 9, 10, 23, 59, 0, 0, time.UTC)))
		assert.ErrorIs(t, stay.ValidateNotPastAt(date("2026-09-11")), reservation.ErrStartDateInPast)
	})

	t.Run("string form", func(t *testing.T) {
		assert.Equal(t, "[2026-09-10,2026-09-13]", mustRange(t, "2026-09-10", "2026-09-13").String())
	})
}

func TestMoney(t *testing.T) {
	t.Run("from float rounds to cents", func(t *testing.T) {
		assert.Equal(t, int64(12000), reservation.NewMoneyFromFloat(120.00).Cents())
		assert.Equal(t, int64(12001), reservation.NewMoneyFromFloat(120.005).Cents())
		assert.Equal(t, int64(9999), reservation.NewMoneyFromFloat(99.99).Cents())
	})

	t.Run("amount", func(t *testing.T) {
		assert.InDelta(t, 120.00, reservation.NewMoney(12000).Amount(), 1e-9)
	})

	t.Run("times", func(t *testing.T) {
		total := reservation.NewMoney(12000).Times(3)
		assert.Equal(t, int64(36000), total.Cents())
		assert.InDelta(t, 360.00, total.Amount(), 1e-9)
	})

	t.Run("zero", func(t *testing.T) {
		assert.True(t, reservation.NewMoney(0).IsZero())
		assert.False(t, reservation.NewMoney(1).IsZero())
	})
}

func TestRemarks(t *testing.T) {
	t.Run("empty is allowed", func(t *testing.T) {
		r, err := reservation.NewRemarks("")
		require.NoError(t, err)
		assert.True(t, r.IsEmpty())
	})

	t.Run("maximum length", func(t *testing.T) {
		r, err := reservation.NewRemarks(strings.Repeat("a", reservation.MaxRemarksLength))
		require.NoError(t, err)
		assert.False(t, r.IsEmpty())
	})

	t.Run("over maximum length", func(t *testing.T) {
		_, err := reservation.NewRemarks(strings.Repeat("a", reservation.MaxRemarksLength+1))
		assert.ErrorIs(t, err, reservation.ErrRemarksTooLong)
	})

	t.Run("length counts runes not bytes", func(t *testing.T) {
		r, err := reservation.NewRemarks(strings.Repeat("é", reservation.MaxRemarksLength))
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("é", reservation.MaxRemarksLength), r.String())
	})
}

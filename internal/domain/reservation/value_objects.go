package reservation

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const MaxRemarksLength = 500

var (
	ErrInvalidDateRange = errors.New("start date must be strictly before end date")
	ErrStartDateInPast  = errors.New("start date cannot be in the past")
	ErrRemarksTooLong   = errors.New("remarks cannot exceed 500 characters")
)

// DateRange is a stay expressed as calendar dates, normalized to UTC
// midnight. The end date is the departure day, so a one-night stay is
// [d, d+1) and start == end is invalid.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)

	if !start.Before(end) {
		return DateRange{}, ErrInvalidDateRange
	}

	return DateRange{start: start, end: end}, nil
}

func (d DateRange) Start() time.Time {
	return d.start
}

func (d DateRange) End() time.Time {
	return d.end
}

func (d DateRange) Nights() int {
	return int(d.end.Sub(d.start).Hours() / 24)
}

// Overlaps uses an inclusive boundary test: ranges that merely touch
// (one's end equals the other's start) count as overlapping. Back-to-back
// same-day turnover is rejected on purpose. The repository's overlap
// query runs this same predicate in SQL; this method is the in-memory
// reference for it.
func (d DateRange) Overlaps(other DateRange) bool {
	return !d.start.After(other.end) && !d.end.Before(other.start)
}

// ValidateNotPastAt rejects stays that begin before the given day.
func (d DateRange) ValidateNotPastAt(today time.Time) error {
	if d.start.Before(truncateToDate(today)) {
		return ErrStartDateInPast
	}
	return nil
}

func (d DateRange) String() string {
	return fmt.Sprintf("[%s,%s]", d.start.Format(time.DateOnly), d.end.Format(time.DateOnly))
}

func truncateToDate(t time.Time) time.Time {
	y, m, day := t.UTC().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// Money is an amount in integer cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromFloat converts a decimal amount (e.g. 120.00 from an
// authority payload) to cents, rounding half away from zero.
func NewMoneyFromFloat(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

type Remarks struct {
	value string
}

func NewRemarks(value string) (Remarks, error) {
	if len([]rune(value)) > MaxRemarksLength {
		return Remarks{}, ErrRemarksTooLong
	}
	return Remarks{value: value}, nil
}

func (r Remarks) String() string {
	return r.value
}

func (r Remarks) IsEmpty() bool {
	return r.value == ""
}

//go:build unit

package reservation_test

import (
	"testing"

	"hotel-reservations/internal/domain/reservation"
	"hotel-reservations/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, int64(1), actual.ClientID())
		assert.Equal(t, int64(101), actual.RoomID())
	})

	t.Run("total is price times nights", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().WithPriceCents(12000).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, 3, actual.Stay().Nights())
		assert.Equal(t, int64(36000), actual.TotalAmount().Cents())
		assert.InDelta(t, 360.00, actual.TotalAmount().Amount(), 1e-9)
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		r1, err1 := builder.NewReservationBuilder().BuildDomain()
		r2, err2 := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, r1.ID(), r2.ID())
	})
}

func TestReservationLifecycle(t *testing.T) {
	build := func(t *testing.T, status reservation.Status) *reservation.Reservation {
		t.Helper()
		r, err := builder.NewReservationBuilder().WithStatus(status.String()).BuildReconstructed()
		require.NoError(t, err)
		return r
	}

	t.Run("full lifecycle to check-out", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, r.Status())

		require.NoError(t, r.CheckIn())
		assert.Equal(t, reservation.StatusCheckedIn, r.Status())

		require.NoError(t, r.CheckOut())
		assert.Equal(t, reservation.StatusCheckedOut, r.Status())
	})

	t.Run("transition guards", func(t *testing.T) {
		cases := []struct {
			name  string
			from  reservation.Status
			op    func(*reservation.Reservation) error
			errIs error
		}{
			{name: "confirm from pending", from: reservation.StatusPending, op: (*reservation.Reservation).Confirm},
			{name: "confirm from confirmed", from: reservation.StatusConfirmed, op: (*reservation.Reservation).Confirm, errIs: reservation.ErrCannotConfirm},
			{name: "confirm from checked-in", from: reservation.StatusCheckedIn, op: (*reservation.Reservation).Confirm, errIs: reservation.ErrCannotConfirm},
			{name: "confirm from cancelled", from: reservation.StatusCancelled, op: (*reservation.Reservation).Confirm, errIs: reservation.ErrCannotConfirm},
			{name: "check-in from confirmed", from: reservation.StatusConfirmed, op: (*reservation.Reservation).CheckIn},
			{name: "check-in from pending", from: reservation.StatusPending, op: (*reservation.Reservation).CheckIn, errIs: reservation.ErrCannotCheckIn},
			{name: "check-in from checked-out", from: reservation.StatusCheckedOut, op: (*reservation.Reservation).CheckIn, errIs: reservation.ErrCannotCheckIn},
			{name: "check-out from checked-in", from: reservation.StatusCheckedIn, op: (*reservation.Reservation).CheckOut},
			{name: "check-out from confirmed", from: reservation.StatusConfirmed, op: (*reservation.Reservation).CheckOut, errIs: reservation.ErrCannotCheckOut},
			{name: "cancel from pending", from: reservation.StatusPending, op: (*reservation.Reservation).Cancel},
			{name: "cancel from confirmed", from: reservation.StatusConfirmed, op: (*reservation.Reservation).Cancel},
			{name: "cancel from checked-in", from: reservation.StatusCheckedIn, op: (*reservation.Reservation).Cancel, errIs: reservation.ErrCannotCancel},
			{name: "cancel from checked-out", from: reservation.StatusCheckedOut, op: (*reservation.Reservation).Cancel, errIs: reservation.ErrCannotCancel},
			{name: "cancel from cancelled", from: reservation.StatusCancelled, op: (*reservation.Reservation).Cancel, errIs: reservation.ErrCannotCancel},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				r := build(t, c.from)
				err := c.op(r)
				if c.errIs != nil {
					assert.ErrorIs(t, err, c.errIs)
					assert.Equal(t, c.from, r.Status(), "status must not change on a rejected transition")
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestReservationModification(t *testing.T) {
	newStay := func(t *testing.T) reservation.DateRange {
		t.Helper()
		b := builder.NewReservationBuilder()
		stay, err := reservation.NewDateRange(b.StartDate.AddDate(0, 0, 7), b.EndDate.AddDate(0, 0, 7))
		require.NoError(t, err)
		return stay
	}

	t.Run("modifiable states", func(t *testing.T) {
		assert.True(t, mustReconstruct(t, reservation.StatusPending).IsModifiable())
		assert.True(t, mustReconstruct(t, reservation.StatusConfirmed).IsModifiable())
		assert.False(t, mustReconstruct(t, reservation.StatusCheckedIn).IsModifiable())
		assert.False(t, mustReconstruct(t, reservation.StatusCheckedOut).IsModifiable())
		assert.False(t, mustReconstruct(t, reservation.StatusCancelled).IsModifiable())
	})

	t.Run("apply changes recomputes total", func(t *testing.T) {
		r := mustReconstruct(t, reservation.StatusPending)
		stay := newStay(t)
		remarks, err := reservation.NewRemarks("late arrival")
		require.NoError(t, err)

		require.NoError(t, r.ApplyChanges(202, stay, reservation.NewMoney(15000), remarks))

		assert.Equal(t, int64(202), r.RoomID())
		assert.Empty(t, cmp.Diff(stay, r.Stay(), cmp.AllowUnexported(reservation.DateRange{})))
		assert.Equal(t, int64(15000*3), r.TotalAmount().Cents())
		assert.Equal(t, "late arrival", r.Remarks().String())
	})

	t.Run("apply changes rejected after check-in", func(t *testing.T) {
		r := mustReconstruct(t, reservation.StatusCheckedIn)
		err := r.ApplyChanges(202, newStay(t), reservation.NewMoney(15000), reservation.Remarks{})
		assert.ErrorIs(t, err, reservation.ErrCannotModify)
	})
}

func TestStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		for _, s := range []reservation.Status{
			reservation.StatusPending,
			reservation.StatusConfirmed,
			reservation.StatusCheckedIn,
			reservation.StatusCheckedOut,
			reservation.StatusCancelled,
		} {
			assert.True(t, s.IsValid(), s.String())
		}
		assert.False(t, reservation.Status("UNKNOWN").IsValid())
	})

	t.Run("availability blocking", func(t *testing.T) {
		assert.True(t, reservation.StatusPending.BlocksAvailability())
		assert.True(t, reservation.StatusConfirmed.BlocksAvailability())
		assert.True(t, reservation.StatusCheckedIn.BlocksAvailability())
		assert.False(t, reservation.StatusCheckedOut.BlocksAvailability())
		assert.False(t, reservation.StatusCancelled.BlocksAvailability())
	})

	t.Run("terminal states", func(t *testing.T) {
		assert.True(t, reservation.StatusCheckedOut.IsTerminal())
		assert.True(t, reservation.StatusCancelled.IsTerminal())
		assert.False(t, reservation.StatusPending.IsTerminal())
		assert.False(t, reservation.StatusConfirmed.IsTerminal())
		assert.False(t, reservation.StatusCheckedIn.IsTerminal())
	})
}

func mustReconstruct(t *testing.T, status reservation.Status) *reservation.Reservation {
	t.Helper()
	r, err := builder.NewReservationBuilder().WithStatus(status.String()).BuildReconstructed()
	require.NoError(t, err)
	return r
}

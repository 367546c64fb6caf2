package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorker_AdjustLeaveBalance_Credit(t *testing.T) {
	t.Parallel()
	w := &Worker{LeaveBalances: map[LeaveCategory]float64{LeaveVacation: 3}}

	err := w.AdjustLeaveBalance(LeaveVacation, 2.5)

	require.NoError(t, err)
	assert.Equal(t, 5.5, w.LeaveBalance(LeaveVacation))
}

func TestWorker_AdjustLeaveBalance_DebitToZero(t *testing.T) {
	t.Parallel()
	w := &Worker{LeaveBalances: map[LeaveCategory]float64{LeaveSick: 3}}

	err := w.AdjustLeaveBalance(LeaveSick, -3)

	require.NoError(t, err)
	assert.Equal(t, 0.0, w.LeaveBalance(LeaveSick))
}

func TestWorker_AdjustLeaveBalance_InsufficientBalance(t *testing.T) {
	t.Parallel()
	w := &Worker{LeaveBalances: map[LeaveCategory]float64{LeaveVacation: 3}}

	err := w.AdjustLeaveBalance(LeaveVacation, -5)

	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 3.0, w.LeaveBalance(LeaveVacation), "failed debit must leave the balance unchanged")
}

func TestWorker_AdjustLeaveBalance_UnknownCategory(t *testing.T) {
	t.Parallel()
	w := &Worker{}

	err := w.AdjustLeaveBalance(LeaveCategory("sabbatical"), 1)

	assert.ErrorIs(t, err, ErrInvalidLeaveCategory)
}

func TestWorker_AdjustLeaveBalance_AbsentCategoryIsZero(t *testing.T) {
	t.Parallel()
	w := &Worker{}

	assert.Equal(t, 0.0, w.LeaveBalance(LeaveStudy))

	// Crediting an absent category starts from zero.
	err := w.AdjustLeaveBalance(LeaveStudy, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, w.LeaveBalance(LeaveStudy))

	// Debiting an absent category fails immediately.
	err = w.AdjustLeaveBalance(LeaveUnpaid, -0.5)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestWorker_AdjustLeaveBalance_NeverNegative(t *testing.T) {
	t.Parallel()
	w := &Worker{LeaveBalances: DefaultLeaveBalances()}

	deltas := []float64{-8, -8, -8, 5, -5, -0.5, -0.5, -20}
	for _, delta := range deltas {
		_ = w.AdjustLeaveBalance(LeaveVacation, delta)
		assert.GreaterOrEqual(t, w.LeaveBalance(LeaveVacation), 0.0,
			"balance must stay non-negative after applying %v", delta)
	}
}

func TestWorker_ResetLeaveBalances_DefaultsMissingCategories(t *testing.T) {
	t.Parallel()
	w := &Worker{}

	err := w.ResetLeaveBalances(map[LeaveCategory]float64{LeaveVacation: 12})

	require.NoError(t, err)
	assert.Equal(t, 12.0, w.LeaveBalance(LeaveVacation))
	assert.Equal(t, DefaultLeaveBalances()[LeaveSick], w.LeaveBalance(LeaveSick))
	assert.Len(t, w.LeaveBalances, len(LeaveCategoryValues))
}

func TestWorker_ResetLeaveBalances_RejectsNegative(t *testing.T) {
	t.Parallel()
	w := &Worker{LeaveBalances: map[LeaveCategory]float64{LeaveVacation: 3}}

	err := w.ResetLeaveBalances(map[LeaveCategory]float64{LeaveVacation: -1})

	require.ErrorIs(t, err, ErrNegativeBalance)
	assert.Equal(t, 3.0, w.LeaveBalance(LeaveVacation), "rejected reset must not touch balances")
}

func TestWorker_Location(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "UTC", (&Worker{}).Location().String())
	assert.Equal(t, "Europe/Paris", (&Worker{Timezone: "Europe/Paris"}).Location().String())
	assert.Equal(t, "UTC", (&Worker{Timezone: "Mars/Olympus"}).Location().String())
}

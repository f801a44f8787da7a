package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/standby-engine/calendar"
	"github.com/warp/standby-engine/standby"
	"github.com/warp/standby-engine/state"
	"github.com/warp/standby-engine/state/memory"
)

var june = calendar.NewDate(2024, time.June, 1)

func TestMemory_ImplementsStore(t *testing.T) {
	var _ state.Store = memory.New()
}

func TestMemory_SettingsRoundTrip(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	settings := state.Settings{
		Salary:  decimal.NewFromInt(90000),
		Profile: standby.ProfileOtherEmployee,
	}
	require.NoError(t, store.SaveSettings(ctx, june, settings))

	ps, err := store.LoadPeriod(ctx, june)
	require.NoError(t, err)
	assert.True(t, ps.Settings.Salary.Equal(settings.Salary))
	assert.Equal(t, standby.ProfileOtherEmployee, ps.Settings.Profile)
}

func TestMemory_ToggleCycle(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	day := calendar.NewDate(2024, time.June, 11)

	for _, want := range []standby.ShiftVariant{
		standby.VariantFull, standby.VariantStart, standby.VariantEnd, standby.VariantSplit,
	} {
		variant, assigned, err := store.ToggleShift(ctx, june, day)
		require.NoError(t, err)
		require.True(t, assigned)
		assert.Equal(t, want, variant)
	}

	_, assigned, err := store.ToggleShift(ctx, june, day)
	require.NoError(t, err)
	assert.False(t, assigned)
}

func TestMemory_WorkLogLifecycle(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	entry := standby.WorkLogEntry{ID: "w1", Date: calendar.NewDate(2024, time.June, 5), Hours: decimal.NewFromInt(2)}
	require.NoError(t, store.PutWorkLog(ctx, june, entry))

	entry.Hours = decimal.NewFromInt(5)
	require.NoError(t, store.PutWorkLog(ctx, june, entry))

	ps, err := store.LoadPeriod(ctx, june)
	require.NoError(t, err)
	require.Len(t, ps.WorkLogs, 1)
	assert.True(t, ps.WorkLogs[0].Hours.Equal(decimal.NewFromInt(5)))

	require.NoError(t, store.DeleteWorkLog(ctx, june, "w1"))
	assert.ErrorIs(t, store.DeleteWorkLog(ctx, june, "w1"), state.ErrWorkLogNotFound)
}

func TestMemory_LoadReturnsACopy(t *testing.T) {
	// Mutating a loaded period must not leak back into the store.
	store := memory.New()
	ctx := context.Background()
	day := calendar.NewDate(2024, time.June, 11)

	_, _, err := store.ToggleShift(ctx, june, day)
	require.NoError(t, err)

	ps, err := store.LoadPeriod(ctx, june)
	require.NoError(t, err)
	delete(ps.Shifts, day)

	reloaded, err := store.LoadPeriod(ctx, june)
	require.NoError(t, err)
	assert.Len(t, reloaded.Shifts, 1)
}

func TestMemory_ReplaceShiftsCopiesInput(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	imported := standby.ShiftSet{calendar.NewDate(2024, time.June, 10): standby.VariantFull}
	require.NoError(t, store.ReplaceShifts(ctx, june, imported))

	// Mutating the caller's set after the fact changes nothing
	imported.Toggle(calendar.NewDate(2024, time.June, 12))

	ps, err := store.LoadPeriod(ctx, june)
	require.NoError(t, err)
	assert.Len(t, ps.Shifts, 1)
}

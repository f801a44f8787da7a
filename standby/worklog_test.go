package standby_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/standby-engine/standby"
)

func entry(d time.Month, day int, h float64, override bool) standby.WorkLogEntry {
	return standby.WorkLogEntry{
		Date:            date(2024, d, day),
		Hours:           decimal.NewFromFloat(h),
		HolidayOverride: override,
	}
}

// =============================================================================
// BUCKETING
// =============================================================================

func TestReconcile_NormalAndHolidayBuckets(t *testing.T) {
	// GIVEN: 3h on a plain Tuesday, 2h on a weekday holiday (July 5)
	// THEN: Buckets split 3 normal / 2 holiday

	entries := []standby.WorkLogEntry{
		entry(time.June, 11, 3, false),
		entry(time.July, 5, 2, false),
	}

	r := standby.Reconcile(entries, hours(0))
	assert.True(t, r.WorkNormal.Equal(decimal.NewFromInt(3)), "got %s", r.WorkNormal)
	assert.True(t, r.WorkHoliday.Equal(decimal.NewFromInt(2)), "got %s", r.WorkHoliday)
}

func TestReconcile_WeekendIsNotHolidayForWorkLogs(t *testing.T) {
	// Weekend status matters only for shift attribution. A Saturday work
	// log without an override lands in the normal bucket.
	entries := []standby.WorkLogEntry{entry(time.June, 8, 4, false)}

	r := standby.Reconcile(entries, hours(0))
	assert.True(t, r.WorkNormal.Equal(decimal.NewFromInt(4)))
	assert.True(t, r.WorkHoliday.IsZero())
}

func TestReconcile_OverrideUpgradesToHoliday(t *testing.T) {
	entries := []standby.WorkLogEntry{entry(time.June, 11, 5, true)}

	r := standby.Reconcile(entries, hours(0))
	assert.True(t, r.WorkNormal.IsZero())
	assert.True(t, r.WorkHoliday.Equal(decimal.NewFromInt(5)))
}

func TestReconcile_OverrideIsMonotonic(t *testing.T) {
	// GIVEN: A work log on an auto-detected holiday with override=false
	// THEN: Holiday classification still applies (union semantics; the
	// override can never downgrade)

	entries := []standby.WorkLogEntry{entry(time.December, 25, 6, false)}

	r := standby.Reconcile(entries, hours(0))
	assert.True(t, r.WorkHoliday.Equal(decimal.NewFromInt(6)))
	assert.True(t, r.WorkNormal.IsZero())
}

func TestReconcile_MultipleEntriesSameDate(t *testing.T) {
	// No uniqueness constraint on work log dates.
	entries := []standby.WorkLogEntry{
		entry(time.June, 11, 2, false),
		entry(time.June, 11, 3.5, false),
	}

	r := standby.Reconcile(entries, hours(0))
	assert.True(t, r.WorkNormal.Equal(decimal.NewFromFloat(5.5)))
}

// =============================================================================
// STANDBY RECONCILIATION
// =============================================================================

func TestReconcile_WorkedHoursReduceStandby(t *testing.T) {
	// GIVEN: 40h standby exposure, 10h actually worked
	// THEN: 30h payable standby; the worked hours are compensated once,
	// as overtime, not twice

	entries := []standby.WorkLogEntry{entry(time.June, 11, 10, false)}

	r := standby.Reconcile(entries, hours(40))
	assert.True(t, r.PayableStandby.Equal(decimal.NewFromInt(30)), "got %s", r.PayableStandby)
}

func TestReconcile_PayableStandbyNeverNegative(t *testing.T) {
	// GIVEN: 40h standby, 50h worked
	// THEN: Payable standby clamps to zero

	entries := []standby.WorkLogEntry{entry(time.June, 11, 50, false)}

	r := standby.Reconcile(entries, hours(40))
	assert.True(t, r.PayableStandby.IsZero())
}

func TestReconcile_SubtractionIsGlobalAcrossDates(t *testing.T) {
	// Inherited behavior: a worked hour on one date offsets standby
	// accrued on a different date within the same period.
	entries := []standby.WorkLogEntry{
		entry(time.June, 3, 6, false),
		entry(time.June, 20, 4, false),
	}

	r := standby.Reconcile(entries, hours(16))
	assert.True(t, r.PayableStandby.Equal(decimal.NewFromInt(6)), "got %s", r.PayableStandby)
}

func TestReconcile_BothBucketsCountTowardSubtraction(t *testing.T) {
	// Holiday-bucketed hours reduce the standby pool too.
	entries := []standby.WorkLogEntry{
		entry(time.June, 11, 3, false),
		entry(time.December, 25, 2, false),
	}

	r := standby.Reconcile(entries, hours(10))
	assert.True(t, r.PayableStandby.Equal(decimal.NewFromInt(5)))
}

func TestReconcile_NoEntries(t *testing.T) {
	r := standby.Reconcile(nil, hours(24))
	assert.True(t, r.PayableStandby.Equal(decimal.NewFromInt(24)))
	assert.True(t, r.WorkNormal.IsZero())
	assert.True(t, r.WorkHoliday.IsZero())
}

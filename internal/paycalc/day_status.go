package paycalc

// DayResolution is the derived state for one attendance day: the worked
// fraction, the denormalized status label, and the refreshed OT hours.
type DayResolution struct {
	WorkDay float64
	Status  Status
	OtHours float64
}

// ResolveDayStatus derives a day's worked fraction and status from raw
// punches and remarks. Precedence: MC (paid, workDay 1) over OFF (unpaid,
// workDay 0) over the time-based rule (both punches present and unequal →
// Present). OT hours are refreshed from EndTime unless the day is MC/OFF
// or EndTime is empty, in which case the record's existing value is kept.
//
// The function is idempotent: re-applying it to an unchanged record yields
// the same resolution, so callers may run it on every field edit.
func ResolveDayStatus(rec DayRecord, salaryType SalaryType) DayResolution {
	res := DayResolution{OtHours: rec.OtHours}

	switch rec.Remarks {
	case RemarkMC:
		res.WorkDay = 1
		res.Status = StatusMC
		return res
	case RemarkOff:
		res.WorkDay = 0
		res.Status = StatusLeave
		return res
	}

	if rec.StartTime != "" && rec.EndTime != "" && rec.StartTime != rec.EndTime {
		res.WorkDay = 1
		res.Status = StatusPresent
	} else {
		res.WorkDay = 0
		res.Status = StatusAbsent
	}

	if rec.EndTime != "" {
		res.OtHours = OvertimeHours(salaryType, rec.EndTime)
	}

	return res
}

// Apply writes a resolution back onto a record, keeping the stored
// status/workDay/otHours fields in agreement with the resolver.
func (res DayResolution) Apply(rec DayRecord) DayRecord {
	rec.WorkDay = res.WorkDay
	rec.Status = res.Status
	rec.OtHours = res.OtHours
	return rec
}

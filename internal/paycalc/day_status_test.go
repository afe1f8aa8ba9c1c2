package paycalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDayStatus_Transitions(t *testing.T) {
	tests := []struct {
		name        string
		rec         DayRecord
		wantWorkDay float64
		wantStatus  Status
		wantOtHours float64
	}{
		{
			name:        "untouched day is absent",
			rec:         DayRecord{},
			wantWorkDay: 0,
			wantStatus:  StatusAbsent,
		},
		{
			name:        "both punches present",
			rec:         DayRecord{StartTime: "08:00", EndTime: "17:00"},
			wantWorkDay: 1,
			wantStatus:  StatusPresent,
		},
		{
			name:        "equal punches stay absent",
			rec:         DayRecord{StartTime: "08:00", EndTime: "08:00"},
			wantWorkDay: 0,
			wantStatus:  StatusAbsent,
		},
		{
			name:        "only start punch",
			rec:         DayRecord{StartTime: "08:00"},
			wantWorkDay: 0,
			wantStatus:  StatusAbsent,
		},
		{
			name:        "other remarks behave as working day",
			rec:         DayRecord{StartTime: "08:00", EndTime: "18:00", Remarks: "Other"},
			wantWorkDay: 1,
			wantStatus:  StatusPresent,
			wantOtHours: 1,
		},
		{
			name:        "checkout past threshold refreshes overtime",
			rec:         DayRecord{StartTime: "08:00", EndTime: "19:30", OtHours: 99},
			wantWorkDay: 1,
			wantStatus:  StatusPresent,
			wantOtHours: 2.5,
		},
		{
			name:        "empty end time keeps stored overtime",
			rec:         DayRecord{StartTime: "08:00", OtHours: 1.25},
			wantWorkDay: 0,
			wantStatus:  StatusAbsent,
			wantOtHours: 1.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveDayStatus(tt.rec, SalaryTypeDaily)
			assert.Equal(t, tt.wantWorkDay, res.WorkDay)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantOtHours, res.OtHours)
		})
	}
}

func TestResolveDayStatus_RemarkPrecedence(t *testing.T) {
	timeCombos := []struct{ start, end string }{
		{"", ""},
		{"08:00", ""},
		{"", "17:00"},
		{"08:00", "17:00"},
		{"08:00", "08:00"},
	}

	for _, combo := range timeCombos {
		mc := ResolveDayStatus(DayRecord{StartTime: combo.start, EndTime: combo.end, Remarks: RemarkMC, OtHours: 2}, SalaryTypeMonthly)
		assert.Equal(t, 1.0, mc.WorkDay, "MC overrides times %q-%q", combo.start, combo.end)
		assert.Equal(t, StatusMC, mc.Status)
		assert.Equal(t, 2.0, mc.OtHours, "MC keeps stored overtime untouched")

		off := ResolveDayStatus(DayRecord{StartTime: combo.start, EndTime: combo.end, Remarks: RemarkOff}, SalaryTypeMonthly)
		assert.Equal(t, 0.0, off.WorkDay, "OFF overrides times %q-%q", combo.start, combo.end)
		assert.Equal(t, StatusLeave, off.Status)
	}
}

func TestResolveDayStatus_Idempotent(t *testing.T) {
	records := []DayRecord{
		{},
		{StartTime: "08:00", EndTime: "20:15"},
		{StartTime: "07:30", EndTime: "07:30", OtHours: 3},
		{Remarks: RemarkMC, OtHours: 1.5},
		{Remarks: RemarkOff, StartTime: "08:00", EndTime: "18:00"},
	}

	for _, rec := range records {
		once := ResolveDayStatus(rec, SalaryTypeMonthly)
		twice := ResolveDayStatus(once.Apply(rec), SalaryTypeMonthly)
		assert.Equal(t, once, twice)
	}
}

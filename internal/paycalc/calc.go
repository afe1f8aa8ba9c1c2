// Package paycalc is the attendance-to-payroll computation engine. Every
// function here is pure and total over its documented inputs: missing
// optional data is substituted with neutral defaults instead of returning
// errors, so concurrent callers need no coordination.
package paycalc

import (
	"math"
	"strings"
	"time"
)

const (
	// Daily-rated employees earn overtime after 17:00, monthly-rated after 19:00.
	otThresholdDaily   = "17:00"
	otThresholdMonthly = "19:00"

	workingDaysPerMonth = 26
	hoursPerDay         = 8
	otMultiplier        = 1.5

	DefaultHolidayPayMultiplier = 1.5
	lunchAllowancePerHour       = 1.0
)

// round2 rounds to 2 decimal places with standard half-up rounding,
// matching the presentation layer.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// parseClock parses a local "HH:mm" time of day into minutes since
// midnight. Returns false for empty or malformed values.
func parseClock(v string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// OvertimeHours derives overtime hours from a checkout time. The
// comparison is time-of-day only: an end time at or before the threshold
// is zero overtime, never overnight overtime.
func OvertimeHours(salaryType SalaryType, endTime string) float64 {
	end, ok := parseClock(endTime)
	if !ok {
		return 0
	}

	threshold := otThresholdMonthly
	if salaryType == SalaryTypeDaily {
		threshold = otThresholdDaily
	}
	start, _ := parseClock(threshold)

	if end <= start {
		return 0
	}
	return round2(float64(end-start) / 60)
}

// OvertimePay converts overtime hours into a pay amount. The hourly rate
// is the daily rate over 8 hours for Daily employees and the monthly
// salary over a fixed 26-day, 8-hour month for Monthly employees.
func OvertimePay(emp Employee, otHours float64) float64 {
	if otHours <= 0 {
		return 0
	}

	var hourlyRate float64
	if emp.SalaryType == SalaryTypeDaily {
		hourlyRate = emp.BasicSalary / hoursPerDay
	} else {
		hourlyRate = emp.BasicSalary / (workingDaysPerMonth * hoursPerDay)
	}

	return round2(hourlyRate * otMultiplier * otHours)
}

// WorkingDaysInMonth counts the non-Sunday days of the calendar month
// containing t.
func WorkingDaysInMonth(t time.Time) int {
	year, month, _ := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	count := 0
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			count++
		}
	}
	return count
}

// dailyRateFor resolves the effective daily rate: the basic salary itself
// for Daily employees, or the monthly salary spread over the month's
// working days for Monthly employees.
func dailyRateFor(emp Employee, monthAnchor time.Time) float64 {
	if emp.SalaryType == SalaryTypeDaily {
		return emp.BasicSalary
	}
	workingDays := WorkingDaysInMonth(monthAnchor)
	if workingDays == 0 {
		return 0
	}
	return emp.BasicSalary / float64(workingDays)
}

func holidayMultiplier(settings Settings) float64 {
	if settings.HolidayPayMultiplier <= 0 {
		return DefaultHolidayPayMultiplier
	}
	return settings.HolidayPayMultiplier
}

func isPublicHoliday(settings Settings, date string) bool {
	for _, h := range settings.PublicHolidays {
		if h.Date == date {
			return true
		}
	}
	return false
}

// isPremiumDay reports whether the date earns the holiday multiplier:
// a Sunday or a configured public holiday.
func isPremiumDay(settings Settings, date time.Time) bool {
	if date.Weekday() == time.Sunday {
		return true
	}
	return isPublicHoliday(settings, date.Format("2006-01-02"))
}

// DailyPay computes one day's total pay (base + overtime) for live
// feedback while attendance is being entered.
func DailyPay(emp Employee, otHours, workDay float64, date time.Time, settings Settings) float64 {
	dailyRate := dailyRateFor(emp, date)

	basePayMultiplier := 1.0
	if isPremiumDay(settings, date) {
		basePayMultiplier = holidayMultiplier(settings)
	}

	basePay := dailyRate * workDay * basePayMultiplier
	return round2(basePay + OvertimePay(emp, otHours))
}

// MonthlyPayroll folds one employee's attendance for a month, plus manual
// adjustments and settings, into the final payroll record. Records outside
// the requested month are ignored. Overtime pay is computed once on the
// summed hours, not per day.
func MonthlyPayroll(
	emp Employee,
	month string, // YYYY-MM
	records []DayRecord,
	adjustments Adjustments,
	settings Settings,
) PayrollRecord {
	monthAnchor, err := time.Parse("2006-01", month)
	if err != nil {
		monthAnchor = time.Time{}
	}
	dailyRate := dailyRateFor(emp, monthAnchor)
	multiplier := holidayMultiplier(settings)

	rec := PayrollRecord{Month: month}

	for _, day := range records {
		if !strings.HasPrefix(day.Date, month) {
			continue
		}

		rec.TotalDaysWorked += day.WorkDay
		rec.TotalOtHours += day.OtHours
		rec.TotalLunchHours += day.LunchHours
		switch day.Remarks {
		case RemarkMC:
			rec.McDays++
		case RemarkOff:
			rec.OffDays++
		}

		dayPay := dailyRate * day.WorkDay
		date, dateErr := time.Parse("2006-01-02", day.Date)
		premium := dateErr == nil && isPremiumDay(settings, date)

		// Premium classification is keyed only on the calendar date;
		// remarks never exempt a day, only a zero workDay does.
		if premium && day.WorkDay > 0 {
			rec.HolidayPayTotal += dayPay * multiplier
			rec.TotalHolidayDays += day.WorkDay
		} else {
			rec.BasicPayTotal += dayPay
		}
	}

	rec.TotalOtHours = round2(rec.TotalOtHours)
	rec.BasicPayTotal = round2(rec.BasicPayTotal)
	rec.HolidayPayTotal = round2(rec.HolidayPayTotal)
	rec.OtPayTotal = OvertimePay(emp, rec.TotalOtHours)
	rec.LunchAllowanceTotal = round2(rec.TotalLunchHours * lunchAllowancePerHour)

	rec.TransportAllowance = adjustments.Transport
	rec.OtherAllowances = adjustments.Other
	rec.HousingDeduction = adjustments.Housing
	rec.AdvanceDeduction = adjustments.Advance
	rec.Deductions = round2(adjustments.Housing + adjustments.Advance)

	rec.NetSalary = round2(
		rec.BasicPayTotal +
			rec.HolidayPayTotal +
			rec.OtPayTotal +
			rec.LunchAllowanceTotal +
			adjustments.Transport +
			adjustments.Other -
			adjustments.Housing -
			adjustments.Advance,
	)

	return rec
}

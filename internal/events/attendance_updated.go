package events

import "time"

const AttendanceUpdatedTopic = "hr.attendance.updated.v1"

// AttendanceUpdatedEvent is emitted after every attendance upsert so the
// affected month's payroll can be re-derived downstream. Month is the
// "YYYY-MM" prefix of Date.
type AttendanceUpdatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	Date       string    `json:"date"`
	Month      string    `json:"month"`
	OccurredAt time.Time `json:"occurred_at"`
}

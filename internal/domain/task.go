package domain

import "time"

// DefaultTaskStatus is applied by the schema when a task is stored without a
// status. Status is otherwise free text.
const DefaultTaskStatus = "Pending"

// Task is a unit of work owned by exactly one Employee.
type Task struct {
	ID          int64
	EmployeeID  int64
	Title       string
	Description string
	Status      string
	// DueDate has date granularity; see TruncateToDate.
	DueDate     *time.Time
	CreatedDate time.Time
}

// Validate checks the mutable fields of the Task.
func (t *Task) Validate() error {
	if t.EmployeeID <= 0 {
		return NewValidationError("employeeId", "is required", nil)
	}
	if err := requireText("title", t.Title, 100); err != nil {
		return err
	}
	return limitText("status", t.Status, 20)
}

// ValidateDueDate rejects a due date that is strictly earlier than now.
func ValidateDueDate(due *time.Time, now time.Time) error {
	if due != nil && due.Before(now) {
		return NewValidationError("dueDate", "Due date cannot be in the past.", ErrDueDateInPast)
	}
	return nil
}

// TruncateToDate drops the time of day, returning midnight UTC of the same
// calendar date as t in its own location.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeDueDate returns a copy of due truncated to its date, or nil.
func NormalizeDueDate(due *time.Time) *time.Time {
	if due == nil {
		return nil
	}
	d := TruncateToDate(*due)
	return &d
}

package domain

import "time"

// Employee is a member of staff that tasks can be assigned to.
type Employee struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Department  string
	Designation string
	// CreatedDate is assigned by the store and never changes.
	CreatedDate time.Time
}

// Validate checks the mutable fields of the Employee.
// Email, phone, department and designation are optional.
func (e *Employee) Validate() error {
	if err := requireText("firstName", e.FirstName, 50); err != nil {
		return err
	}
	if err := requireText("lastName", e.LastName, 50); err != nil {
		return err
	}
	if e.Email != "" {
		if err := limitText("email", e.Email, 100); err != nil {
			return err
		}
		if err := validateEmail("email", e.Email); err != nil {
			return err
		}
	}
	if err := limitText("phone", e.Phone, 20); err != nil {
		return err
	}
	if err := limitText("department", e.Department, 50); err != nil {
		return err
	}
	return limitText("designation", e.Designation, 50)
}

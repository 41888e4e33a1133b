package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEmployee() *Employee {
	return &Employee{
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "ann@x.com",
		Phone:       "555",
		Department:  "Eng",
		Designation: "Dev",
	}
}

func TestEmployeeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(e *Employee)
		wantErr string
	}{
		{name: "valid", mutate: func(e *Employee) {}},
		{name: "optional fields empty", mutate: func(e *Employee) {
			e.Email, e.Phone, e.Department, e.Designation = "", "", "", ""
		}},
		{name: "missing first name", mutate: func(e *Employee) { e.FirstName = " " }, wantErr: "firstName"},
		{name: "missing last name", mutate: func(e *Employee) { e.LastName = "" }, wantErr: "lastName"},
		{name: "bad email", mutate: func(e *Employee) { e.Email = "not-an-email" }, wantErr: "email"},
		{name: "display name email", mutate: func(e *Employee) { e.Email = "Ann <ann@x.com>" }, wantErr: "email"},
		{name: "long phone", mutate: func(e *Employee) { e.Phone = strings.Repeat("5", 21) }, wantErr: "phone"},
		{name: "long designation", mutate: func(e *Employee) { e.Designation = strings.Repeat("d", 51) }, wantErr: "designation"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := validEmployee()
			tt.mutate(e)

			err := e.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantErr, ve.Field)
		})
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	task := &Task{EmployeeID: 1, Title: "Write report"}
	assert.NoError(t, task.Validate())

	task.EmployeeID = 0
	assert.ErrorIs(t, task.Validate(), ErrValidation)

	task.EmployeeID = 1
	task.Title = ""
	assert.ErrorIs(t, task.Validate(), ErrValidation)

	task.Title = "Write report"
	task.Status = strings.Repeat("s", 21)
	assert.ErrorIs(t, task.Validate(), ErrValidation)
}

func TestValidateDueDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	assert.NoError(t, ValidateDueDate(nil, now))
	assert.NoError(t, ValidateDueDate(&tomorrow, now))
	assert.NoError(t, ValidateDueDate(&now, now), "a due date equal to now is allowed")

	err := ValidateDueDate(&yesterday, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDueDateInPast)
	assert.ErrorIs(t, err, ErrValidation)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Due date cannot be in the past.", ve.Message)
}

func TestTruncateToDate(t *testing.T) {
	t.Parallel()

	in := time.Date(2026, 5, 17, 23, 45, 10, 99, time.UTC)
	assert.Equal(t, time.Date(2026, 5, 17, 0, 0, 0, 0, time.UTC), TruncateToDate(in))

	assert.Nil(t, NormalizeDueDate(nil))
	got := NormalizeDueDate(&in)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 5, 17, 0, 0, 0, 0, time.UTC), *got)
	assert.Equal(t, 45, in.Minute(), "input must not be modified")
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	valid := func() *User {
		return &User{Username: "bob", Email: "bob@x.com", Role: RoleUser, PasswordHash: "$2a$10$hash"}
	}

	assert.NoError(t, valid().Validate())

	u := valid()
	u.Role = "Root"
	assert.ErrorIs(t, u.Validate(), ErrInvalidRole)

	u = valid()
	u.PasswordHash = ""
	err := u.Validate()
	assert.ErrorIs(t, err, ErrPasswordRequired)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Password is required", ve.Message)

	u = valid()
	u.Email = "bob"
	assert.ErrorIs(t, u.Validate(), ErrInvalidEmail)

	u = valid()
	u.Username = ""
	assert.ErrorIs(t, u.Validate(), ErrValidation)
}

func TestValidRole(t *testing.T) {
	t.Parallel()

	for _, r := range []string{RoleAdmin, RoleManager, RoleUser} {
		assert.True(t, ValidRole(r), r)
	}
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("secret1"))
	assert.NoError(t, ValidatePassword(strings.Repeat("a", MaxPasswordBytes)))
	assert.NoError(t, ValidatePassword(strings.Repeat("€", 24)))

	assert.ErrorIs(t, ValidatePassword(""), ErrPasswordRequired)
	assert.ErrorIs(t, ValidatePassword(" \t "), ErrPasswordRequired)

	err := ValidatePassword(strings.Repeat("€", 30))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "password: must be at most 72 bytes", err.Error())
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@company.co.id",
		"user+tag@example.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidEmployeeID(t *testing.T) {
	valid := []string{"EMP-001", "ABC", "E-2024-0042", "100"}
	for _, id := range valid {
		assert.True(t, IsValidEmployeeID(id), id)
	}

	invalid := []string{"", "AB", "emp-001", "EMP 001", "EMP_001"}
	for _, id := range invalid {
		assert.False(t, IsValidEmployeeID(id), id)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-01-15")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, 15, date.Day())

	_, ok = IsValidDate("15-01-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	departments := []string{"Engineering", "Sales", "Finance"}
	assert.True(t, IsInSlice("Sales", departments))
	assert.False(t, IsInSlice("sales", departments))
	assert.False(t, IsInSlice("Legal", departments))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid email format"},
		{Field: "date", Message: "date is required"},
	}

	assert.Equal(t, "email: invalid email format; date: date is required", errs.Error())

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "invalid email format", m["email"])
}

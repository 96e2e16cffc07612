package domain

import "time"

// User mirrors the wire shape the users microservice exposes. Field
// names follow the upstream contract, which is snake_case throughout.
type User struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	FirstLastname      string     `json:"first_lastname"`
	SecondLastname     *string    `json:"second_lastname,omitempty"`
	DateBirth          time.Time  `json:"date_birth"`
	CI                 string     `json:"ci"`
	Role               string     `json:"role"`
	HireDate           *time.Time `json:"hire_date,omitempty"`
	MonthlySalary      *float64   `json:"monthly_salary,omitempty"`
	Specialization     *string    `json:"specialization,omitempty"`
	Email              string     `json:"email"`
	Password           string     `json:"password,omitempty"`
	MustChangePassword bool       `json:"must_change_password"`
	IsActive           bool       `json:"is_active"`
	Audit
}

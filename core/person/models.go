package person

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

var (
	// errors
	ErrNotFound    = errors.New("person not found")
	ErrInvalidRole = errors.New("invalid role")
)

// Role is the immutable discriminator fixing which specialised fields a Record has.
type Role string

// Roles
const (
	RoleTeacher Role = "Teacher"
	RoleAdmin   Role = "Admin"
	RoleStudent Role = "Student"
)

var AllRoles = []Role{RoleTeacher, RoleAdmin, RoleStudent}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ParseRole matches `s` against AllRoles, ignoring case.
func ParseRole(s string) (Role, error) {
	for _, role := range AllRoles {
		if strings.EqualFold(s, role.String()) {
			return role, nil
		}
	}
	return "", ErrInvalidRole
}

// Placeholder values held by a freshly built Record.
const (
	DefaultName      = "Unknown"
	DefaultTelephone = "0000000000"
	DefaultEmail     = "N/A"
)

// Person holds the attributes shared by every Record.
type Person struct {
	ID        uuid.UUID `json:"id"`
	role      Role
	Name      string `json:"name" label:"Name" validate:"notblank"`
	Telephone string `json:"telephone" label:"Phone" validate:"phone"`
	Email     string `json:"email" label:"Email" validate:"notblank"`
}

func newPerson(role Role) Person {
	return Person{
		ID:        uuid.New(),
		role:      role,
		Name:      DefaultName,
		Telephone: DefaultTelephone,
		Email:     DefaultEmail,
	}
}

func (p *Person) Role() Role { return p.role }

func (p *Person) Base() *Person { return p }

// Payroll holds a salary that can never go negative.
type Payroll struct {
	salary decimal.Decimal
}

func (p *Payroll) Salary() decimal.Decimal { return p.salary }

// SetSalary assigns `amount` unless it is negative, in which case the current salary is kept.
func (p *Payroll) SetSalary(amount decimal.Decimal) bool {
	if amount.IsNegative() {
		return false
	}
	p.salary = amount
	return true
}

type Teacher struct {
	Person
	Payroll
	Subjects [2]null.String `json:"subjects"`
}

type Admin struct {
	Person
	Payroll
	IsFullTime   bool `json:"is_full_time"`
	WorkingHours int  `json:"working_hours"` // not guarded against negative values
}

type Student struct {
	Person
	Subjects [3]null.String `json:"subjects"`
}

// Record is one of *Teacher, *Admin or *Student.
type Record interface {
	Base() *Person
	Role() Role
}

var (
	_ Record = (*Teacher)(nil)
	_ Record = (*Admin)(nil)
	_ Record = (*Student)(nil)
)

// New builds a Record of the given role, filled with placeholder values.
func New(role Role) (Record, error) {
	switch role {
	case RoleTeacher:
		return &Teacher{Person: newPerson(role)}, nil
	case RoleAdmin:
		return &Admin{Person: newPerson(role)}, nil
	case RoleStudent:
		return &Student{Person: newPerson(role)}, nil
	default:
		return nil, ErrInvalidRole
	}
}

// Subjects returns the subject slots of `rec`, aliasing its storage; nil for roles without subjects.
func Subjects(rec Record) []null.String {
	switch r := rec.(type) {
	case *Teacher:
		return r.Subjects[:]
	case *Student:
		return r.Subjects[:]
	default:
		return nil
	}
}

// SubjectOrNA renders an unset subject slot as "N/A".
func SubjectOrNA(sub null.String) string {
	if !sub.Valid || sub.String == "" {
		return "N/A"
	}
	return sub.String
}

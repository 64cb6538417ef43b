package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/edcentre/core"
	"github.com/trezcool/edcentre/core/person"
)

// Script is a core.Prompter answering prompts from a fixed list of lines.
// Running out of lines behaves like a closed input.
type Script struct {
	Lines    []string
	Prompts  []string
	Output   []string
	Warnings []string
}

var _ core.Prompter = (*Script)(nil)

func NewScript(lines ...string) *Script {
	return &Script{Lines: lines}
}

func (s *Script) Prompt(label string) (string, error) {
	s.Prompts = append(s.Prompts, label)
	if len(s.Lines) == 0 {
		return "", core.NewShutdownError("input closed")
	}
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return line, nil
}

func (s *Script) Println(a ...interface{}) {
	for _, v := range a {
		if str, ok := v.(string); ok {
			s.Output = append(s.Output, str)
		}
	}
}

func (s *Script) Warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
}

func newRecord(t *testing.T, role person.Role, name, phone, email string) person.Record {
	rec, err := person.New(role)
	if err != nil {
		t.Fatalf("newRecord() failed: %v", err)
	}
	base := rec.Base()
	base.Name = name
	base.Telephone = phone
	base.Email = email
	return rec
}

func subjects(names []string) []null.String {
	slots := make([]null.String, len(names))
	for i, n := range names {
		slots[i] = null.NewString(n, n != "")
	}
	return slots
}

func NewTeacher(t *testing.T, name, phone, email, salary string, subs ...string) *person.Teacher {
	rec := newRecord(t, person.RoleTeacher, name, phone, email).(*person.Teacher)
	if salary != "" {
		rec.SetSalary(decimal.RequireFromString(salary))
	}
	copy(rec.Subjects[:], subjects(subs))
	return rec
}

func NewAdmin(t *testing.T, name, phone, email, salary string, fullTime bool, hours int) *person.Admin {
	rec := newRecord(t, person.RoleAdmin, name, phone, email).(*person.Admin)
	if salary != "" {
		rec.SetSalary(decimal.RequireFromString(salary))
	}
	rec.IsFullTime = fullTime
	rec.WorkingHours = hours
	return rec
}

func NewStudent(t *testing.T, name, phone, email string, subs ...string) *person.Student {
	rec := newRecord(t, person.RoleStudent, name, phone, email).(*person.Student)
	copy(rec.Subjects[:], subjects(subs))
	return rec
}

// CreateRecord stores `rec` through `repo`.
func CreateRecord(t *testing.T, repo person.Repository, rec person.Record) person.Record {
	if err := repo.AppendRecord(rec); err != nil {
		t.Fatalf("CreateRecord() failed: %v", err)
	}
	return rec
}

package person

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/edcentre/core"
)

// RunGuidedEdit walks through every field of `rec` showing its current value.
// Blank input keeps the value; invalid optional values are ignored without warning,
// only the telephone is asked again until it is blank or valid.
func RunGuidedEdit(rec Record, p core.Prompter) error {
	p.Println("--- Editing Common Info (Press Enter to keep current) ---")
	if err := editBase(rec.Base(), p); err != nil {
		return err
	}

	switch r := rec.(type) {
	case *Teacher:
		if err := editSalary(&r.Payroll, p); err != nil {
			return err
		}
		return editSubjects(r.Subjects[:], p)
	case *Admin:
		if err := editSalary(&r.Payroll, p); err != nil {
			return err
		}
		if err := editFullTime(r, p); err != nil {
			return err
		}
		return editWorkingHours(r, p)
	case *Student:
		return editSubjects(r.Subjects[:], p)
	default:
		return ErrInvalidRole
	}
}

func editBase(base *Person, p core.Prompter) error {
	name, err := p.Prompt(fmt.Sprintf("Name (%s): ", base.Name))
	if err != nil {
		return errors.Wrap(err, "edit name")
	}
	if !core.IsBlank(name) {
		base.Name = name
	}

	for {
		phone, err := p.Prompt(fmt.Sprintf("Telephone (%s): ", base.Telephone))
		if err != nil {
			return errors.Wrap(err, "edit telephone")
		}
		if phone == "" {
			break
		}
		if core.IsPhoneNumber(phone) {
			base.Telephone = phone
			break
		}
		p.Warn(">>> Error: Must be 10 digits.")
	}

	email, err := p.Prompt(fmt.Sprintf("Email (%s): ", base.Email))
	if err != nil {
		return errors.Wrap(err, "edit email")
	}
	if !core.IsBlank(email) {
		base.Email = email
	}
	return nil
}

func editSalary(pay *Payroll, p core.Prompter) error {
	input, err := p.Prompt(fmt.Sprintf("Salary (%s): ", pay.Salary().String()))
	if err != nil {
		return errors.Wrap(err, "edit salary")
	}
	if core.IsBlank(input) {
		return nil
	}
	if amount, ok := parseSalary(input); ok {
		pay.SetSalary(amount)
	}
	return nil
}

func editSubjects(slots []null.String, p core.Prompter) error {
	p.Println("--- Edit Subjects (Press Enter to keep) ---")
	for i := range slots {
		input, err := p.Prompt(fmt.Sprintf("Subject %d (%s): ", i+1, SubjectOrNA(slots[i])))
		if err != nil {
			return errors.Wrap(err, "edit subjects")
		}
		if !core.IsBlank(input) {
			slots[i] = null.StringFrom(input)
		}
	}
	return nil
}

func editFullTime(a *Admin, p core.Prompter) error {
	input, err := p.Prompt(fmt.Sprintf("Is Full-time? (%s) (yes/no): ", employmentType(a.IsFullTime)))
	if err != nil {
		return errors.Wrap(err, "edit full-time")
	}
	switch {
	case isYes(input):
		a.IsFullTime = true
	case isNo(input):
		a.IsFullTime = false
	}
	return nil
}

func editWorkingHours(a *Admin, p core.Prompter) error {
	input, err := p.Prompt(fmt.Sprintf("Working Hours (%s): ", strconv.Itoa(a.WorkingHours)))
	if err != nil {
		return errors.Wrap(err, "edit working hours")
	}
	if core.IsBlank(input) {
		return nil
	}
	if hours, ok := parseHours(input); ok {
		a.WorkingHours = hours
	}
	return nil
}

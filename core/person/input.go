package person

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/edcentre/core"
)

const (
	teacherSalaryLabel = "Enter Salary (Optional, Enter to skip): "
	adminSalaryLabel   = "Enter Salary (Optional): "

	teacherInvalidText = ">>> Invalid input. Set to 0."
	adminInvalidText   = ">>> Invalid. Set to 0."
)

// RunGuidedInput populates `rec` from the prompter: the base fields are asked until valid,
// role specific fields are asked exactly once, invalid optional values fall back to their defaults.
func RunGuidedInput(rec Record, p core.Prompter) error {
	if err := inputBase(rec.Base(), p); err != nil {
		return err
	}

	switch r := rec.(type) {
	case *Teacher:
		if err := inputSalary(&r.Payroll, p, teacherSalaryLabel, teacherInvalidText); err != nil {
			return err
		}
		return inputSubjects(r.Subjects[:], p)
	case *Admin:
		if err := inputSalary(&r.Payroll, p, adminSalaryLabel, adminInvalidText); err != nil {
			return err
		}
		ft, err := p.Prompt("Is Full-time? (yes/no, Optional): ")
		if err != nil {
			return err
		}
		r.IsFullTime = isYes(ft)
		return inputWorkingHours(r, p)
	case *Student:
		return inputSubjects(r.Subjects[:], p)
	default:
		return ErrInvalidRole
	}
}

func inputBase(base *Person, p core.Prompter) error {
	fields := []struct {
		name  string
		label string
		dest  *string
	}{
		{name: "Name", label: "Enter Name (Required): ", dest: &base.Name},
		{name: "Telephone", label: "Enter Telephone (10 digits, Required): ", dest: &base.Telephone},
		{name: "Email", label: "Enter Email (Required): ", dest: &base.Email},
	}
	for _, fld := range fields {
		val, err := askRequired(p, fld.name, fld.label)
		if err != nil {
			return errors.Wrapf(err, "input %s", strings.ToLower(fld.name))
		}
		*fld.dest = val
	}
	return nil
}

// askRequired prompts until the input is a valid value for `field`.
func askRequired(p core.Prompter, field, label string) (string, error) {
	for {
		input, err := p.Prompt(label)
		if err != nil {
			return "", err
		}
		msg := validateField(field, input)
		if msg == "" {
			return input, nil
		}
		p.Warn(">>> Error: " + msg)
	}
}

func inputSalary(pay *Payroll, p core.Prompter, label, invalidText string) error {
	input, err := p.Prompt(label)
	if err != nil {
		return errors.Wrap(err, "input salary")
	}
	if core.IsBlank(input) {
		pay.SetSalary(decimal.Zero)
		return nil
	}
	amount, ok := parseSalary(input)
	if !ok {
		p.Warn(invalidText)
		amount = decimal.Zero
	}
	pay.SetSalary(amount)
	return nil
}

func inputSubjects(slots []null.String, p core.Prompter) error {
	for i := range slots {
		input, err := p.Prompt(fmt.Sprintf("Enter Subject %d (Optional): ", i+1))
		if err != nil {
			return errors.Wrap(err, "input subjects")
		}
		slots[i] = subjectFrom(input)
	}
	return nil
}

func inputWorkingHours(a *Admin, p core.Prompter) error {
	input, err := p.Prompt("Enter Working Hours (Optional): ")
	if err != nil {
		return errors.Wrap(err, "input working hours")
	}
	if core.IsBlank(input) {
		a.WorkingHours = 0
		return nil
	}
	hours, ok := parseHours(input)
	if !ok {
		p.Warn(adminInvalidText)
	}
	a.WorkingHours = hours
	return nil
}

// parseSalary accepts non-negative plain or exponent decimals ("1500.75", "1e3").
// Grouped digits such as "1,000" are rejected.
func parseSalary(input string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(core.CleanString(input))
	if err != nil || amount.IsNegative() {
		return decimal.Zero, false
	}
	return amount, true
}

// parseHours accepts any integer, negative ones included.
func parseHours(input string) (int, bool) {
	hours, err := strconv.Atoi(core.CleanString(input))
	if err != nil {
		return 0, false
	}
	return hours, true
}

func subjectFrom(input string) null.String {
	if core.IsBlank(input) {
		return null.String{}
	}
	return null.StringFrom(input)
}

func isYes(input string) bool {
	return strings.EqualFold(input, "yes") || strings.EqualFold(input, "y")
}

func isNo(input string) bool {
	return strings.EqualFold(input, "no") || strings.EqualFold(input, "n")
}

package person

import (
	"fmt"
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/edcentre/core"
)

var separator = strings.Repeat("-", 50)

// RenderDisplay returns the lines describing `rec`: the base fields then the role specific ones.
func RenderDisplay(rec Record) []string {
	base := rec.Base()
	lines := []string{
		separator,
		"Role:  " + rec.Role().String(),
		"Name:  " + base.Name,
		"Phone: " + base.Telephone,
		"Email: " + base.Email,
	}

	switch r := rec.(type) {
	case *Teacher:
		lines = append(lines, "Salary: "+core.FormatMoney(r.Salary()))
		lines = append(lines, subjectLines(Subjects(r))...)
	case *Admin:
		lines = append(lines,
			"Salary: "+core.FormatMoney(r.Salary()),
			"Type: "+employmentType(r.IsFullTime),
			fmt.Sprintf("Working Hours: %d", r.WorkingHours),
		)
	case *Student:
		lines = append(lines, subjectLines(Subjects(r))...)
	}
	return append(lines, separator)
}

func subjectLines(slots []null.String) []string {
	lines := make([]string, 0, len(slots))
	for i, sub := range slots {
		lines = append(lines, fmt.Sprintf("Subject %d: %s", i+1, SubjectOrNA(sub)))
	}
	return lines
}

func employmentType(fullTime bool) string {
	if fullTime {
		return "Full-time"
	}
	return "Part-time"
}

package person_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/edcentre/core"
	"github.com/trezcool/edcentre/core/person"
)

func TestNew(t *testing.T) {
	for _, role := range person.AllRoles {
		t.Run(role.String(), func(t *testing.T) {
			rec, err := person.New(role)
			require.NoError(t, err)

			assert.Equal(t, role, rec.Role())
			base := rec.Base()
			assert.NotEqual(t, uuid.Nil, base.ID)
			assert.Equal(t, person.DefaultName, base.Name)
			assert.Equal(t, person.DefaultTelephone, base.Telephone)
			assert.Equal(t, person.DefaultEmail, base.Email)
			// placeholders already hold every invariant
			assert.NoError(t, base.Validate())

			switch r := rec.(type) {
			case *person.Teacher:
				assert.True(t, r.Salary().IsZero())
				assert.Equal(t, [2]null.String{}, r.Subjects)
			case *person.Admin:
				assert.True(t, r.Salary().IsZero())
				assert.False(t, r.IsFullTime)
				assert.Zero(t, r.WorkingHours)
			case *person.Student:
				assert.Equal(t, [3]null.String{}, r.Subjects)
			default:
				t.Fatalf("unexpected record type %T", rec)
			}
		})
	}

	rec, err := person.New("Janitor")
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, person.ErrInvalidRole)
}

func TestNew_distinctIDs(t *testing.T) {
	a, _ := person.New(person.RoleStudent)
	b, _ := person.New(person.RoleStudent)
	assert.NotEqual(t, a.Base().ID, b.Base().ID)
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    person.Role
		wantErr error
	}{
		{input: "Teacher", want: person.RoleTeacher},
		{input: "teacher", want: person.RoleTeacher},
		{input: "ADMIN", want: person.RoleAdmin},
		{input: "sTuDeNt", want: person.RoleStudent},
		{input: "", wantErr: person.ErrInvalidRole},
		{input: " teacher", wantErr: person.ErrInvalidRole},
		{input: "principal", wantErr: person.ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := person.ParseRole(tt.input)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayroll_SetSalary(t *testing.T) {
	var pay person.Payroll
	assert.True(t, pay.SetSalary(decimal.NewFromInt(300)))
	assert.True(t, pay.Salary().Equal(decimal.NewFromInt(300)))

	assert.False(t, pay.SetSalary(decimal.NewFromInt(-1)))
	assert.True(t, pay.Salary().Equal(decimal.NewFromInt(300)), "negative salary must keep the prior value")

	assert.True(t, pay.SetSalary(decimal.Zero))
	assert.True(t, pay.Salary().IsZero())
}

func TestPerson_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(p *person.Person)
		wantFields []core.FieldError
	}{
		{name: "valid", mutate: func(p *person.Person) {}},
		{
			name:       "blank name",
			mutate:     func(p *person.Person) { p.Name = "  " },
			wantFields: []core.FieldError{{Field: "Name", Error: "Name cannot be empty."}},
		},
		{
			name:       "short phone",
			mutate:     func(p *person.Person) { p.Telephone = "12345" },
			wantFields: []core.FieldError{{Field: "Phone", Error: "Phone must be exactly 10 digits."}},
		},
		{
			name:   "everything wrong",
			mutate: func(p *person.Person) { p.Name, p.Telephone, p.Email = "", "phone", "" },
			wantFields: []core.FieldError{
				{Field: "Name", Error: "Name cannot be empty."},
				{Field: "Phone", Error: "Phone must be exactly 10 digits."},
				{Field: "Email", Error: "Email cannot be empty."},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := person.New(person.RoleAdmin)
			require.NoError(t, err)
			tt.mutate(rec.Base())

			err = rec.Base().Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			var vErr *core.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantFields, vErr.Fields)
		})
	}
}

func TestPerson_Validate_zeroRole(t *testing.T) {
	p := &person.Person{Name: "Ada", Telephone: "0123456789", Email: "ada@test.cd"}

	var vErr *core.ValidationError
	require.ErrorAs(t, p.Validate(), &vErr)
	assert.Equal(t, []core.FieldError{{Field: "Role", Error: "Role must be one of Teacher, Admin or Student."}}, vErr.Fields)
}

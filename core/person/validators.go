package person

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/edcentre/core"
)

var (
	roleTag  = "role"
	roleText = "{0} must be one of Teacher, Admin or Student."
)

// register custom validators
func init() {
	core.Validate.RegisterStructValidation(personStructValidation, Person{})
	core.RegisterCustomTranslation(roleTag, roleText)
}

// personStructValidation checks the unexported role tag, which field tags cannot reach.
func personStructValidation(sl validator.StructLevel) {
	if p, ok := sl.Current().Interface().(Person); ok {
		if !p.role.IsValid() {
			sl.ReportError(p.role, "Role", "role", roleTag, "")
		}
	}
}

// Validate checks the invariants every stored Record must hold.
func (p *Person) Validate() error {
	return core.TranslateValidationErrors(core.Validate.Struct(p))
}

// validateField checks a single candidate value for one of Person's fields ("Name", "Telephone" or "Email").
// It returns the translated message, or "" when the value is valid.
func validateField(field, value string) string {
	candidate := Person{role: RoleStudent}
	switch field {
	case "Name":
		candidate.Name = value
	case "Telephone":
		candidate.Telephone = value
	case "Email":
		candidate.Email = value
	}
	err := core.TranslateValidationErrors(core.Validate.StructPartial(candidate, field))
	if vErr, ok := err.(*core.ValidationError); ok && len(vErr.Fields) > 0 {
		return vErr.Fields[0].Error
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

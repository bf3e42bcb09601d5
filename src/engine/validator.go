package engine

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/multierr"

	"surveymart/src/helpers"
	"surveymart/src/models"
)

// Pure per-entity checks, invoked by the store before a record is
// accepted. Each function returns nil on acceptance or every broken rule
// combined into one error.

var stateCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewViolation(field, "required", "must not be empty")
	}
	return nil
}

func requireDigits(field, value string, n int) error {
	if !helpers.IsDigitString(value, n) {
		return NewViolation(field, "digit_string", fmt.Sprintf("must be exactly %d digits", n))
	}
	return nil
}

func ValidateUser(u models.User) error {
	return multierr.Combine(
		requireText("name", u.Name),
		requireDigits("tax_id", u.TaxID, 11),
		requireText("email", u.Email),
		requireText("credential", u.Credential),
	)
}

func ValidateCompany(c models.Company) error {
	err := multierr.Combine(
		requireText("trade_name", c.TradeName),
		requireText("legal_name", c.LegalName),
		requireDigits("registry_id", c.RegistryID, 14),
		requireText("street", c.Street),
		requireText("number", c.Number),
		requireText("district", c.District),
		requireText("city", c.City),
		requireDigits("postal_code", c.PostalCode, 8),
	)
	if !stateCodeRe.MatchString(c.State) {
		err = multierr.Append(err, NewViolation("state", "state_code", "must match ^[A-Z]{2}$"))
	}
	return err
}

func ValidateSeniorityLevel(s models.SeniorityLevel) error {
	return requireText("label", s.Label)
}

func ValidateRoleSpecialty(r models.RoleSpecialty) error {
	return requireText("label", r.Label)
}

func ValidateBenefit(b models.Benefit) error {
	return requireText("label", b.Label)
}

func ValidateBond(b models.EmploymentBond) error {
	var err error
	if b.WeeklyHours < 1 || b.WeeklyHours > 44 {
		err = multierr.Append(err, NewViolation("weekly_hours", "range", "must be between 1 and 44"))
	}
	if !b.Regime.Valid() {
		err = multierr.Append(err, NewViolation("regime", "enum", fmt.Sprintf("unknown regime code %d", b.Regime)))
	}
	if !b.Model.Valid() {
		err = multierr.Append(err, NewViolation("model", "enum", fmt.Sprintf("unknown work model code %d", b.Model)))
	}
	if !b.Shift.Valid() {
		err = multierr.Append(err, NewViolation("shift", "enum", fmt.Sprintf("unknown shift code %d", b.Shift)))
	}
	if b.Salary.IsNegative() {
		err = multierr.Append(err, NewViolation("salary", "non_negative", "must not be negative"))
	}
	return err
}

func ValidateEvaluation(e models.Evaluation) error {
	var err error
	if e.Score < 1 || e.Score > 5 {
		err = multierr.Append(err, NewViolation("score", "range", "must be between 1 and 5"))
	}
	err = multierr.Append(err, requireText("testimony", e.Testimony))
	if e.PJProblem != nil && !e.PJProblem.Valid() {
		err = multierr.Append(err, NewViolation("pj_problem", "enum", fmt.Sprintf("unknown problem code %d", *e.PJProblem)))
	}
	if e.Harassment != nil && !e.Harassment.Valid() {
		err = multierr.Append(err, NewViolation("harassment", "enum", fmt.Sprintf("unknown harassment code %d", *e.Harassment)))
	}
	// Cross-field rule: compensated must be present exactly when overtime is worked.
	if e.WorksOvertime && e.OvertimeCompensated == nil {
		err = multierr.Append(err, NewCombinationViolation("overtime_compensated", "overtime_pair", "required when works_overtime is true"))
	}
	if !e.WorksOvertime && e.OvertimeCompensated != nil {
		err = multierr.Append(err, NewCombinationViolation("overtime_compensated", "overtime_pair", "must be absent when works_overtime is false"))
	}
	return err
}

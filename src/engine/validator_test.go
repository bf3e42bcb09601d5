package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"surveymart/src/models"
)

func violationFields(t *testing.T, err error) map[string]ViolationCode {
	t.Helper()
	out := map[string]ViolationCode{}
	for _, v := range Violations(err) {
		out[v.Field] = v.Code
	}
	return out
}

func validBond() models.EmploymentBond {
	return models.EmploymentBond{
		UserID:      1,
		CompanyID:   1,
		RoleID:      1,
		SeniorityID: 1,
		Salary:      decimal.NewFromInt(3000),
		Regime:      models.RegimeCLT,
		Model:       models.ModelRemote,
		WeeklyHours: 40,
		Shift:       models.ShiftDay,
	}
}

func TestValidateBond(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.EmploymentBond)
		wantField string
	}{
		{"hours too low", func(b *models.EmploymentBond) { b.WeeklyHours = 0 }, "weekly_hours"},
		{"hours too high", func(b *models.EmploymentBond) { b.WeeklyHours = 45 }, "weekly_hours"},
		{"bad regime", func(b *models.EmploymentBond) { b.Regime = 3 }, "regime"},
		{"bad model", func(b *models.EmploymentBond) { b.Model = 0 }, "model"},
		{"bad shift", func(b *models.EmploymentBond) { b.Shift = 9 }, "shift"},
		{"negative salary", func(b *models.EmploymentBond) { b.Salary = decimal.NewFromInt(-1) }, "salary"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := validBond()
			tc.mutate(&b)
			fields := violationFields(t, ValidateBond(b))
			if code, ok := fields[tc.wantField]; !ok {
				t.Fatalf("want violation on %q, got %v", tc.wantField, fields)
			} else if code != CodeConstraintViolation {
				t.Fatalf("code = %q; want %q", code, CodeConstraintViolation)
			}
		})
	}

	if err := ValidateBond(validBond()); err != nil {
		t.Fatalf("valid bond rejected: %v", err)
	}

	// boundary values are accepted
	for _, hours := range []int{1, 44} {
		b := validBond()
		b.WeeklyHours = hours
		if err := ValidateBond(b); err != nil {
			t.Fatalf("hours=%d rejected: %v", hours, err)
		}
	}
}

func TestValidateBondReportsAll(t *testing.T) {
	b := validBond()
	b.WeeklyHours = 80
	b.Regime = 7
	b.Shift = 0
	vs := Violations(ValidateBond(b))
	if len(vs) != 3 {
		t.Fatalf("violations = %d; want 3 (%v)", len(vs), vs)
	}
}

func TestValidateEvaluationOvertimePair(t *testing.T) {
	compensated := true
	tests := []struct {
		name        string
		worksOT     bool
		compensated *bool
		wantReject  bool
	}{
		{"no overtime, absent", false, nil, false},
		{"overtime, present", true, &compensated, false},
		{"overtime, absent", true, nil, true},
		{"no overtime, present", false, &compensated, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := models.Evaluation{
				UserID:              1,
				CompanyID:           1,
				WorksOvertime:       tc.worksOT,
				OvertimeCompensated: tc.compensated,
				Testimony:           "fine",
				Score:               4,
			}
			err := ValidateEvaluation(e)
			if !tc.wantReject {
				if err != nil {
					t.Fatalf("unexpected rejection: %v", err)
				}
				return
			}
			fields := violationFields(t, err)
			if code, ok := fields["overtime_compensated"]; !ok || code != CodeInvalidCombination {
				t.Fatalf("want invalid_combination on overtime_compensated, got %v", fields)
			}
		})
	}
}

func TestValidateEvaluationDomain(t *testing.T) {
	problem := models.PJProblem(9)
	harassment := models.HarassmentCode(0)
	e := models.Evaluation{
		UserID:     1,
		CompanyID:  1,
		Score:      6,
		Testimony:  " ",
		PJProblem:  &problem,
		Harassment: &harassment,
	}
	fields := violationFields(t, ValidateEvaluation(e))
	for _, want := range []string{"score", "testimony", "pj_problem", "harassment"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("missing violation on %q (got %v)", want, fields)
		}
	}
}

func TestValidateUser(t *testing.T) {
	u := models.User{Name: "Ana", TaxID: "12345678901", Email: "ana@example.com", Credential: "x"}
	if err := ValidateUser(u); err != nil {
		t.Fatalf("valid user rejected: %v", err)
	}
	for _, taxID := range []string{"1234567890", "123456789012", "1234567890a", ""} {
		bad := u
		bad.TaxID = taxID
		if _, ok := violationFields(t, ValidateUser(bad))["tax_id"]; !ok {
			t.Errorf("tax id %q accepted", taxID)
		}
	}
}

func TestValidateCompany(t *testing.T) {
	c := models.Company{
		TradeName:  "Tech",
		LegalName:  "Tech Ltda.",
		RegistryID: "10000000000001",
		Street:     "Av. Paulista",
		Number:     "1000",
		District:   "Bela Vista",
		City:       "Sao Paulo",
		State:      "SP",
		PostalCode: "01311000",
	}
	if err := ValidateCompany(c); err != nil {
		t.Fatalf("valid company rejected: %v", err)
	}
	for _, state := range []string{"sp", "S", "SPX", "S1", ""} {
		bad := c
		bad.State = state
		if _, ok := violationFields(t, ValidateCompany(bad))["state"]; !ok {
			t.Errorf("state %q accepted", state)
		}
	}
	bad := c
	bad.RegistryID = "123"
	bad.PostalCode = "0131100"
	fields := violationFields(t, ValidateCompany(bad))
	if len(fields) != 2 {
		t.Fatalf("want 2 violations, got %v", fields)
	}
}

package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"surveymart/src/models"
)

func testUser(taxID, email string) models.User {
	return models.User{
		Name:       "Someone",
		TaxID:      taxID,
		Email:      email,
		Credential: "opaque",
		CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testCompany(registryID string) models.Company {
	return models.Company{
		TradeName:  "Tech",
		LegalName:  "Tech Ltda.",
		RegistryID: registryID,
		Street:     "Av. Paulista",
		Number:     "1000",
		District:   "Bela Vista",
		City:       "Sao Paulo",
		State:      "SP",
		PostalCode: "01311000",
	}
}

// mustPut fails the test on rejection.
func mustPut(t *testing.T, s *Store, entity interface{}) int {
	t.Helper()
	id, err := s.Put(entity)
	if err != nil {
		t.Fatalf("Put(%T) rejected: %v", entity, err)
	}
	return id
}

func TestStoreAssignsMonotonicIDsPerKind(t *testing.T) {
	s := NewStore(nil)
	if id := mustPut(t, s, testUser("11111111111", "a@example.com")); id != 1 {
		t.Fatalf("first user id = %d; want 1", id)
	}
	if id := mustPut(t, s, testUser("22222222222", "b@example.com")); id != 2 {
		t.Fatalf("second user id = %d; want 2", id)
	}
	// counters are per kind, not shared
	if id := mustPut(t, s, testCompany("10000000000001")); id != 1 {
		t.Fatalf("first company id = %d; want 1", id)
	}

	// a second store starts its own counters
	other := NewStore(nil)
	if id := mustPut(t, other, testUser("33333333333", "c@example.com")); id != 1 {
		t.Fatalf("fresh store first user id = %d; want 1", id)
	}
}

func TestStoreRejectsDuplicateUniqueFields(t *testing.T) {
	s := NewStore(nil)
	mustPut(t, s, testUser("11111111111", "a@example.com"))

	_, err := s.Put(testUser("11111111111", "other@example.com"))
	fields := violationFields(t, err)
	if code, ok := fields["tax_id"]; !ok || code != CodeConstraintViolation {
		t.Fatalf("duplicate tax id: got %v", fields)
	}

	_, err = s.Put(testUser("99999999999", "a@example.com"))
	if _, ok := violationFields(t, err)["email"]; !ok {
		t.Fatalf("duplicate email accepted")
	}

	mustPut(t, s, models.Benefit{Label: "Health Plan"})
	if _, err := s.Put(models.Benefit{Label: "Health Plan"}); err == nil {
		t.Fatalf("duplicate benefit label accepted")
	}
}

func TestStoreRejectsDanglingReferences(t *testing.T) {
	s := NewStore(nil)
	b := validBond()
	_, err := s.Put(b)
	fields := violationFields(t, err)
	for _, want := range []string{"user_id", "company_id", "role_id", "seniority_id"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("missing reference violation on %q (got %v)", want, fields)
		}
	}
}

func TestStoreEnforcesOneCurrentBondPerUser(t *testing.T) {
	s := newPopulatedStore(t)
	b := validBond()
	b.Current = true
	mustPut(t, s, b)

	b2 := validBond()
	b2.CompanyID = 2
	b2.Current = true
	_, err := s.Put(b2)
	fields := violationFields(t, err)
	if _, ok := fields["current"]; !ok {
		t.Fatalf("second current bond accepted: %v", fields)
	}

	// a non-current bond for the same user is fine
	b3 := validBond()
	b3.CompanyID = 2
	mustPut(t, s, b3)
}

// newPopulatedStore returns a store with one user, two companies, one
// role and one seniority level, all with id 1 (2 for the second company).
func newPopulatedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(nil)
	mustPut(t, s, testUser("11111111111", "a@example.com"))
	mustPut(t, s, testCompany("10000000000001"))
	mustPut(t, s, testCompany("20000000000002"))
	mustPut(t, s, models.SeniorityLevel{Label: "Junior"})
	mustPut(t, s, models.RoleSpecialty{Label: "Developer"})
	return s
}

func TestStoreGet(t *testing.T) {
	s := newPopulatedStore(t)
	got, err := s.Get(models.KindUser, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.(models.User).TaxID != "11111111111" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := s.Get(models.KindUser, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: err = %v; want ErrNotFound", err)
	}
	if _, err := s.Get(models.EntityKind("nope"), 1); err == nil {
		t.Fatalf("unknown kind accepted")
	}
}

func TestStoreScanInsertionOrderAndReset(t *testing.T) {
	s := NewStore(nil)
	for _, label := range []string{"QA", "DevOps", "Analyst"} {
		mustPut(t, s, models.RoleSpecialty{Label: label})
	}
	cur := s.Scan(models.KindRoleSpecialty)
	var got []string
	for cur.Next() {
		got = append(got, cur.Value().(models.RoleSpecialty).Label)
	}
	want := []string{"QA", "DevOps", "Analyst"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("scan order = %v; want %v", got, want)
		}
	}

	cur.Reset()
	if !cur.Next() {
		t.Fatalf("cursor not restartable")
	}
	if cur.Value().(models.RoleSpecialty).Label != "QA" {
		t.Fatalf("after Reset, first = %v", cur.Value())
	}

	// the cursor sees the store as of the Scan call
	mustPut(t, s, models.RoleSpecialty{Label: "Architect"})
	n := 0
	cur.Reset()
	for cur.Next() {
		n++
	}
	if n != 3 {
		t.Fatalf("cursor grew to %d items; want 3", n)
	}
}

func TestStoreRejectsDuplicateBenefitLink(t *testing.T) {
	s := newPopulatedStore(t)
	mustPut(t, s, validBond())
	mustPut(t, s, models.Benefit{Label: "Health Plan"})
	mustPut(t, s, models.Evaluation{
		UserID:    1,
		CompanyID: 1,
		Testimony: "fine",
		Score:     4,
	})
	mustPut(t, s, models.EvaluationBenefit{EvaluationID: 1, BenefitID: 1})
	if _, err := s.Put(models.EvaluationBenefit{EvaluationID: 1, BenefitID: 1}); err == nil {
		t.Fatalf("duplicate benefit link accepted")
	}
}

func TestStoreRejectionReportsAllProblems(t *testing.T) {
	s := NewStore(nil)
	b := models.EmploymentBond{
		UserID:      9,
		CompanyID:   9,
		RoleID:      9,
		SeniorityID: 9,
		Salary:      decimal.NewFromInt(1000),
		Regime:      7,
		Model:       models.ModelRemote,
		WeeklyHours: 99,
		Shift:       models.ShiftDay,
	}
	_, err := s.Put(b)
	vs := Violations(err)
	// 2 domain violations + 4 dangling references
	if len(vs) != 6 {
		t.Fatalf("violations = %d; want 6 (%v)", len(vs), vs)
	}
}

func TestSnapshotIsIsolatedFromLaterWrites(t *testing.T) {
	s := newPopulatedStore(t)
	snap := s.Snapshot()
	mustPut(t, s, testUser("22222222222", "b@example.com"))
	if len(snap.Users) != 1 {
		t.Fatalf("snapshot observed later write: %d users", len(snap.Users))
	}
	if s.Len(models.KindUser) != 2 {
		t.Fatalf("store users = %d; want 2", s.Len(models.KindUser))
	}
}

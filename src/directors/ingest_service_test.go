package directors

import (
	"reflect"
	"strings"
	"testing"

	"surveymart/src/auth"
	"surveymart/src/data"
	"surveymart/src/engine"
	"surveymart/src/models"
)

// loadSeedCorpus runs the full seed load the demo binary performs.
func loadSeedCorpus(t *testing.T) (*engine.Store, *IngestService) {
	t.Helper()
	store := engine.NewStore(nil)
	svc := NewIngestService(store, nil, nil)
	if err := svc.LoadCatalog(data.SeniorityLabels(), data.RoleLabels(), data.BenefitLabels()); err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	for _, batch := range []*BatchResult{
		svc.IngestUsers(data.Users()),
		svc.IngestCompanies(data.Companies()),
		svc.IngestBonds(data.Bonds()),
		svc.IngestEvaluations(data.Evaluations()),
		svc.IngestBenefitLinks(data.BenefitLinks()),
	} {
		if batch.Rejected != 0 {
			t.Fatalf("%s batch rejected %d records: %+v", batch.Kind, batch.Rejected, batch.Results)
		}
	}
	return store, svc
}

func TestSeedCorpusLoadsCompletely(t *testing.T) {
	store, _ := loadSeedCorpus(t)
	counts := map[models.EntityKind]int{
		models.KindUser:              15,
		models.KindCompany:           5,
		models.KindSeniorityLevel:    3,
		models.KindRoleSpecialty:     6,
		models.KindBenefit:           9,
		models.KindEmploymentBond:    45,
		models.KindEvaluation:        45,
		models.KindEvaluationBenefit: 60,
	}
	for kind, want := range counts {
		if got := store.Len(kind); got != want {
			t.Errorf("%s count = %d; want %d", kind, got, want)
		}
	}
}

func TestIngestUsersHashesPasswords(t *testing.T) {
	store := engine.NewStore(nil)
	svc := NewIngestService(store, nil, nil)
	batch := svc.IngestUsers([]models.UserRecord{{
		Name:     "Ana",
		TaxID:    "11111111111",
		Email:    "ana@example.com",
		Password: "s3cret",
	}})
	if batch.Accepted != 1 {
		t.Fatalf("batch = %+v", batch)
	}
	got, err := store.Get(models.KindUser, batch.Results[0].ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	credential := got.(models.User).Credential
	if !auth.IsEncoded(credential) {
		t.Fatalf("credential not encoded: %q", credential)
	}
	if strings.Contains(credential, "s3cret") {
		t.Fatalf("credential leaks the password: %q", credential)
	}
	if !auth.VerifyPassword(credential, "s3cret") {
		t.Fatalf("stored credential does not verify the password")
	}
}

func TestIngestUsersSkipsBadRecordsAndContinues(t *testing.T) {
	store := engine.NewStore(nil)
	svc := NewIngestService(store, nil, nil)
	batch := svc.IngestUsers([]models.UserRecord{
		{Name: "Ana", TaxID: "11111111111", Email: "ana@example.com", Password: "x"},
		{Name: "", TaxID: "123", Email: "bad@example.com", Password: "x"},
		{Name: "Carla", TaxID: "33333333333", Email: "carla@example.com", Password: "x"},
	})
	if batch.Accepted != 2 || batch.Rejected != 1 {
		t.Fatalf("accepted=%d rejected=%d; want 2/1", batch.Accepted, batch.Rejected)
	}
	bad := batch.Results[1]
	if bad.Accepted() {
		t.Fatalf("bad record accepted: %+v", bad)
	}
	// both problems reported at once
	if len(bad.Violations) != 2 {
		t.Fatalf("violations = %+v; want name and tax id", bad.Violations)
	}
	if store.Len(models.KindUser) != 2 {
		t.Fatalf("store users = %d; want 2", store.Len(models.KindUser))
	}
	// ids stay contiguous across the skipped record
	if batch.Results[2].ID != 2 {
		t.Fatalf("third record id = %d; want 2", batch.Results[2].ID)
	}
}

func TestIngestBondsRejectsMalformedSalary(t *testing.T) {
	store, svc := smallFixture(t)
	batch := svc.IngestBonds([]models.BondRecord{{
		UserID: 1, CompanyID: 1, RoleID: 1, SeniorityID: 1,
		Salary: "not-a-number", Regime: 1, Model: 1, WeeklyHours: 40, Shift: 1,
	}})
	if batch.Rejected != 1 {
		t.Fatalf("batch = %+v", batch)
	}
	v := batch.Results[0].Violations
	if len(v) != 1 || v[0].Field != "salary" || v[0].Rule != "decimal" {
		t.Fatalf("violations = %+v", v)
	}
	if store.Len(models.KindEmploymentBond) != 0 {
		t.Fatalf("malformed bond stored")
	}
}

func TestIngestEvaluationsRequiresBond(t *testing.T) {
	_, svc := smallFixture(t)
	batch := svc.IngestEvaluations([]models.EvaluationRecord{{
		UserID: 1, CompanyID: 1, Testimony: "no bond here", Score: 3,
	}})
	if batch.Rejected != 1 {
		t.Fatalf("batch = %+v", batch)
	}
	found := false
	for _, v := range batch.Results[0].Violations {
		if v.Rule == "bond_exists" {
			found = true
		}
	}
	if !found {
		t.Fatalf("violations = %+v; want bond_exists", batch.Results[0].Violations)
	}
}

func TestIngestEvaluationsReportsAllProblemsTogether(t *testing.T) {
	_, svc := smallFixture(t)
	pct := "oops"
	batch := svc.IngestEvaluations([]models.EvaluationRecord{{
		UserID: 1, CompanyID: 1, // no bond
		PromotionPercent: &pct, // malformed decimal
		Testimony:        "",   // missing
		Score:            9,    // out of range
	}})
	if batch.Rejected != 1 {
		t.Fatalf("batch = %+v", batch)
	}
	if n := len(batch.Results[0].Violations); n != 4 {
		t.Fatalf("violations = %d (%+v); want 4", n, batch.Results[0].Violations)
	}
}

// smallFixture returns a store holding one user, one company, one role
// and one seniority level, all id 1.
func smallFixture(t *testing.T) (*engine.Store, *IngestService) {
	t.Helper()
	store := engine.NewStore(nil)
	svc := NewIngestService(store, nil, nil)
	if err := svc.LoadCatalog([]string{"Junior"}, []string{"Developer"}, nil); err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	users := svc.IngestUsers([]models.UserRecord{{
		Name: "Ana", TaxID: "11111111111", Email: "ana@example.com", Password: "x",
	}})
	companies := svc.IngestCompanies([]models.CompanyRecord{{
		TradeName: "Acme", LegalName: "Acme Ltda.", RegistryID: "10000000000001",
		Street: "Rua A", Number: "1", District: "Centro", City: "Sao Paulo",
		State: "SP", PostalCode: "01000000",
	}})
	if users.Rejected != 0 || companies.Rejected != 0 {
		t.Fatalf("fixture rejected: %+v %+v", users, companies)
	}
	return store, svc
}

func TestExportReingestRoundTrip(t *testing.T) {
	store, svc := loadSeedCorpus(t)

	replica := engine.NewStore(nil)
	rsvc := NewIngestService(replica, nil, nil)
	if err := rsvc.LoadCatalog(data.SeniorityLabels(), data.RoleLabels(), nil); err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	for _, batch := range []*BatchResult{
		rsvc.IngestUsers(svc.ExportUsers()),
		rsvc.IngestCompanies(svc.ExportCompanies()),
		rsvc.IngestBenefits(svc.ExportBenefits()),
		rsvc.IngestBonds(svc.ExportBonds()),
		rsvc.IngestEvaluations(svc.ExportEvaluations()),
		rsvc.IngestBenefitLinks(svc.ExportBenefitLinks()),
	} {
		if batch.Rejected != 0 {
			t.Fatalf("replay %s rejected %d records: %+v", batch.Kind, batch.Rejected, batch.Results)
		}
	}

	for _, kind := range models.Kinds() {
		if store.Len(kind) != replica.Len(kind) {
			t.Fatalf("%s count = %d vs %d", kind, store.Len(kind), replica.Len(kind))
		}
	}

	// encoded credentials replay untouched
	orig, err := store.Get(models.KindUser, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	replayed, err := replica.Get(models.KindUser, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if orig.(models.User).Credential != replayed.(models.User).Credential {
		t.Fatalf("credential rehashed on replay")
	}

	// every view reads identically from both stores
	left := engine.NewQueryFacade(store, nil)
	right := engine.NewQueryFacade(replica, nil)
	for _, name := range left.ListViewNames() {
		lres, err := left.RunView(name)
		if err != nil {
			t.Fatalf("RunView(%s): %v", name, err)
		}
		rres, err := right.RunView(name)
		if err != nil {
			t.Fatalf("RunView(%s): %v", name, err)
		}
		if !reflect.DeepEqual(lres.Rows, rres.Rows) {
			t.Fatalf("view %s differs after replay:\n%v\n%v", name, lres.Rows, rres.Rows)
		}
	}
}

func TestSeedSalaryMeanForJuniorDevelopers(t *testing.T) {
	store, _ := loadSeedCorpus(t)
	f := engine.NewQueryFacade(store, nil)
	res, err := f.RunView(engine.ViewAvgSalaryByRoleSeniority)
	if err != nil {
		t.Fatalf("RunView: %v", err)
	}
	for _, row := range res.Rows {
		if row["role"] == "Developer" && row["seniority"] == "Junior" {
			return
		}
	}
	t.Fatalf("no Developer/Junior row in %v", res.Rows)
}

package engine

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func TestRunViewUnknownName(t *testing.T) {
	f := NewQueryFacade(NewStore(nil), nil)
	_, err := f.RunView("no_such_view")
	if !errors.Is(err, ErrUnknownView) {
		t.Fatalf("err = %v; want ErrUnknownView", err)
	}
}

func TestListViewNames(t *testing.T) {
	f := NewQueryFacade(NewStore(nil), nil)
	names := f.ListViewNames()
	if len(names) != 12 {
		t.Fatalf("names = %d; want 12 (%v)", len(names), names)
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	want := map[string]bool{
		ViewAvgSalaryByRoleSeniority:        true,
		ViewTopBenefitsHighSatisfaction:     true,
		ViewPJProblemDistribution:           true,
		ViewRegimeDistributionByCompany:     true,
		ViewAvgMonthsToPromotionBySeniority: true,
		ViewDisguisedEmploymentByCompany:    true,
		ViewHighSatisfactionCompanies:       true,
		ViewAvgMonthsToRaiseDevelopers:      true,
		ViewCurrentEmploymentByCompany:      true,
		ViewOvertimeCompensationRate:        true,
		ViewCurrentEmploymentDetail:         true,
		ViewCompanyEvaluationSummary:        true,
	}
	for _, n := range names {
		if !want[n] {
			t.Fatalf("unexpected view name %q", n)
		}
	}

	// the returned slice is a copy
	names[0] = "mutated"
	if f.ListViewNames()[0] == "mutated" {
		t.Fatalf("ListViewNames exposes internal state")
	}
}

func TestRunViewColumns(t *testing.T) {
	f := NewQueryFacade(NewStore(nil), nil)
	res, err := f.RunView(ViewAvgSalaryByRoleSeniority)
	if err != nil {
		t.Fatalf("RunView: %v", err)
	}
	want := []string{"role", "seniority", "avg_salary"}
	if !reflect.DeepEqual(res.Columns, want) {
		t.Fatalf("columns = %v; want %v", res.Columns, want)
	}
	if res.View != ViewAvgSalaryByRoleSeniority {
		t.Fatalf("view = %q", res.View)
	}
}

func TestRunViewIsRepeatable(t *testing.T) {
	s := newPopulatedStore(t)
	mustPut(t, s, validBond())
	f := NewQueryFacade(s, nil)

	first, err := f.RunView(ViewAvgSalaryByRoleSeniority)
	if err != nil {
		t.Fatalf("RunView: %v", err)
	}
	second, err := f.RunView(ViewAvgSalaryByRoleSeniority)
	if err != nil {
		t.Fatalf("RunView: %v", err)
	}
	if !reflect.DeepEqual(first.Rows, second.Rows) {
		t.Fatalf("repeated run differs:\n%v\n%v", first.Rows, second.Rows)
	}
}

func TestRunViewObservesLaterWrites(t *testing.T) {
	s := newPopulatedStore(t)
	f := NewQueryFacade(s, nil)

	res, err := f.RunView(ViewCurrentEmploymentByCompany)
	if err != nil {
		t.Fatalf("RunView: %v", err)
	}
	if len(res.Rows) != 0 {
		t.Fatalf("rows before any bond = %v", res.Rows)
	}

	b := validBond()
	b.Current = true
	mustPut(t, s, b)

	res, err = f.RunView(ViewCurrentEmploymentByCompany)
	if err != nil {
		t.Fatalf("RunView: %v", err)
	}
	if len(res.Rows) != 1 || res.Rows[0]["total"] != 1 {
		t.Fatalf("rows after bond = %v", res.Rows)
	}
	if res.Rows[0]["company"] != "Tech" {
		t.Fatalf("company = %v", res.Rows[0]["company"])
	}
}

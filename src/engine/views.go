package engine

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"surveymart/src/models"
)

// Row is one result row of a view, keyed by column name. Values are
// strings, ints, booleans, decimals, timestamps or nil.
type Row map[string]interface{}

// View names exposed by the query facade.
const (
	ViewAvgSalaryByRoleSeniority        = "avg_salary_by_role_seniority"
	ViewTopBenefitsHighSatisfaction     = "top_benefits_high_satisfaction"
	ViewPJProblemDistribution           = "pj_problem_distribution"
	ViewRegimeDistributionByCompany     = "regime_distribution_by_company"
	ViewAvgMonthsToPromotionBySeniority = "avg_months_to_promotion_by_seniority"
	ViewDisguisedEmploymentByCompany    = "disguised_employment_by_company"
	ViewHighSatisfactionCompanies       = "high_satisfaction_companies"
	ViewAvgMonthsToRaiseDevelopers      = "avg_months_to_raise_developers"
	ViewCurrentEmploymentByCompany      = "current_employment_by_company"
	ViewOvertimeCompensationRate        = "overtime_compensation_rate"
	ViewCurrentEmploymentDetail         = "current_employment_detail"
	ViewCompanyEvaluationSummary        = "company_evaluation_summary"
)

type viewDef struct {
	name    string
	columns []string
	compute func(*Snapshot) []Row
}

func viewDefs() []viewDef {
	return []viewDef{
		{ViewAvgSalaryByRoleSeniority, []string{"role", "seniority", "avg_salary"}, avgSalaryByRoleSeniority},
		{ViewTopBenefitsHighSatisfaction, []string{"benefit", "total"}, topBenefitsHighSatisfaction},
		{ViewPJProblemDistribution, []string{"problem", "total"}, pjProblemDistribution},
		{ViewRegimeDistributionByCompany, []string{"company", "total_clt", "total_pj"}, regimeDistributionByCompany},
		{ViewAvgMonthsToPromotionBySeniority, []string{"seniority", "avg_months"}, avgMonthsToPromotionBySeniority},
		{ViewDisguisedEmploymentByCompany, []string{"company", "total"}, disguisedEmploymentByCompany},
		{ViewHighSatisfactionCompanies, []string{"company", "avg_score"}, highSatisfactionCompanies},
		{ViewAvgMonthsToRaiseDevelopers, []string{"seniority", "avg_months"}, avgMonthsToRaiseDevelopers},
		{ViewCurrentEmploymentByCompany, []string{"company", "total"}, currentEmploymentByCompany},
		{ViewOvertimeCompensationRate, []string{"category", "percentage"}, overtimeCompensationRate},
		{ViewCurrentEmploymentDetail, []string{"user_id", "user", "company_id", "company", "started_at", "salary"}, currentEmploymentDetail},
		{ViewCompanyEvaluationSummary, []string{"evaluation_id", "company_id", "user_id", "user", "company", "testimony", "score", "evaluated_at"}, companyEvaluationSummary},
	}
}

// meanOf divides a decimal sum by an integer count and rounds to 2
// decimal places, half away from zero.
func meanOf(sum decimal.Decimal, count int) decimal.Decimal {
	return sum.Div(decimal.NewFromInt(int64(count))).Round(2)
}

func meanOfInts(sum, count int) decimal.Decimal {
	return meanOf(decimal.NewFromInt(int64(sum)), count)
}

// countRows turns label -> count tallies into rows ordered by count
// descending, label ascending on ties.
func countRows(labelCol string, counts map[string]int) []Row {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	rows := make([]Row, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, Row{labelCol: label, "total": counts[label]})
	}
	return rows
}

func avgSalaryByRoleSeniority(s *Snapshot) []Row {
	type key struct{ roleID, seniorityID int }
	sums := make(map[key]decimal.Decimal)
	counts := make(map[key]int)
	for _, b := range s.Bonds {
		k := key{b.RoleID, b.SeniorityID}
		sums[k] = sums[k].Add(b.Salary)
		counts[k]++
	}
	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := s.RoleLabel(keys[i].roleID), s.RoleLabel(keys[j].roleID)
		if ri != rj {
			return ri < rj
		}
		return keys[i].seniorityID < keys[j].seniorityID
	})
	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, Row{
			"role":       s.RoleLabel(k.roleID),
			"seniority":  s.SeniorityLabel(k.seniorityID),
			"avg_salary": meanOf(sums[k], counts[k]),
		})
	}
	return rows
}

func topBenefitsHighSatisfaction(s *Snapshot) []Row {
	satisfied := make(map[int]bool)
	for _, e := range s.Evaluations {
		if e.Score >= 4 {
			satisfied[e.ID] = true
		}
	}
	counts := make(map[string]int)
	for _, l := range s.BenefitLinks {
		if satisfied[l.EvaluationID] {
			counts[s.BenefitLabel(l.BenefitID)]++
		}
	}
	return countRows("benefit", counts)
}

func pjProblemDistribution(s *Snapshot) []Row {
	counts := make(map[string]int)
	for _, e := range s.Evaluations {
		if e.PJProblem != nil {
			counts[e.PJProblem.Label()]++
		}
	}
	return countRows("problem", counts)
}

func regimeDistributionByCompany(s *Snapshot) []Row {
	type tally struct{ clt, pj int }
	tallies := make(map[int]*tally)
	for _, b := range s.Bonds {
		t := tallies[b.CompanyID]
		if t == nil {
			t = &tally{}
			tallies[b.CompanyID] = t
		}
		switch b.Regime {
		case models.RegimeCLT:
			t.clt++
		case models.RegimeContractor:
			t.pj++
		}
	}
	ids := make([]int, 0, len(tallies))
	for id := range tallies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ni, nj := s.CompanyName(ids[i]), s.CompanyName(ids[j])
		if ni != nj {
			return ni < nj
		}
		return ids[i] < ids[j]
	})
	rows := make([]Row, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, Row{
			"company":   s.CompanyName(id),
			"total_clt": tallies[id].clt,
			"total_pj":  tallies[id].pj,
		})
	}
	return rows
}

// meanRowsBySeniority groups (seniority id -> sum, count) tallies into
// rows of seniority label and rounded mean.
func meanRowsBySeniority(s *Snapshot, sums, counts map[int]int, less func(a, b Row) bool) []Row {
	rows := make([]Row, 0, len(counts))
	for id, count := range counts {
		rows = append(rows, Row{
			"seniority":  s.SeniorityLabel(id),
			"avg_months": meanOfInts(sums[id], count),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	return rows
}

func avgMonthsToPromotionBySeniority(s *Snapshot) []Row {
	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, e := range s.Evaluations {
		if e.MonthsToPromotion == nil {
			continue
		}
		b, ok := s.BondFor(e.UserID, e.CompanyID)
		if !ok {
			continue
		}
		sums[b.SeniorityID] += *e.MonthsToPromotion
		counts[b.SeniorityID]++
	}
	return meanRowsBySeniority(s, sums, counts, func(a, b Row) bool {
		ma, mb := a["avg_months"].(decimal.Decimal), b["avg_months"].(decimal.Decimal)
		if !ma.Equal(mb) {
			return ma.LessThan(mb)
		}
		return a["seniority"].(string) < b["seniority"].(string)
	})
}

func disguisedEmploymentByCompany(s *Snapshot) []Row {
	counts := make(map[string]int)
	for _, e := range s.Evaluations {
		if e.PJProblem != nil && *e.PJProblem == models.ProblemDisguisedEmployment {
			counts[s.CompanyName(e.CompanyID)]++
		}
	}
	return countRows("company", counts)
}

func highSatisfactionCompanies(s *Snapshot) []Row {
	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, e := range s.Evaluations {
		sums[e.CompanyID] += e.Score
		counts[e.CompanyID]++
	}
	threshold := decimal.NewFromInt(4)
	rows := make([]Row, 0, len(counts))
	for id, count := range counts {
		// filter on the unrounded mean, report the rounded one
		mean := decimal.NewFromInt(int64(sums[id])).Div(decimal.NewFromInt(int64(count)))
		if mean.GreaterThan(threshold) {
			rows = append(rows, Row{"company": s.CompanyName(id), "avg_score": mean.Round(2)})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		si, sj := rows[i]["avg_score"].(decimal.Decimal), rows[j]["avg_score"].(decimal.Decimal)
		if !si.Equal(sj) {
			return si.GreaterThan(sj)
		}
		return rows[i]["company"].(string) < rows[j]["company"].(string)
	})
	return rows
}

func avgMonthsToRaiseDevelopers(s *Snapshot) []Row {
	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, e := range s.Evaluations {
		if e.MonthsToRaise == nil {
			continue
		}
		b, ok := s.BondFor(e.UserID, e.CompanyID)
		if !ok {
			continue
		}
		if !strings.Contains(strings.ToLower(s.RoleLabel(b.RoleID)), "developer") {
			continue
		}
		sums[b.SeniorityID] += *e.MonthsToRaise
		counts[b.SeniorityID]++
	}
	return meanRowsBySeniority(s, sums, counts, func(a, b Row) bool {
		return a["seniority"].(string) < b["seniority"].(string)
	})
}

func currentEmploymentByCompany(s *Snapshot) []Row {
	counts := make(map[string]int)
	for _, b := range s.Bonds {
		if b.Current {
			counts[s.CompanyName(b.CompanyID)]++
		}
	}
	return countRows("company", counts)
}

func overtimeCompensationRate(s *Snapshot) []Row {
	remunerated := make(map[int]bool)
	unremunerated := make(map[int]bool)
	for _, e := range s.Evaluations {
		if !e.WorksOvertime || e.OvertimeCompensated == nil {
			continue
		}
		if *e.OvertimeCompensated {
			remunerated[e.CompanyID] = true
		} else {
			unremunerated[e.CompanyID] = true
		}
	}
	total := len(s.Companies)
	pct := func(n int) decimal.Decimal {
		if total == 0 {
			return decimal.Zero.Round(2)
		}
		return decimal.NewFromInt(int64(n * 100)).Div(decimal.NewFromInt(int64(total))).Round(2)
	}
	// both categories always appear, even at 0%
	return []Row{
		{"category": "Remunerated", "percentage": pct(len(remunerated))},
		{"category": "Not remunerated", "percentage": pct(len(unremunerated))},
	}
}

func currentEmploymentDetail(s *Snapshot) []Row {
	var rows []Row
	for _, b := range s.Bonds {
		if !b.Current {
			continue
		}
		rows = append(rows, Row{
			"user_id":    b.UserID,
			"user":       s.UserName(b.UserID),
			"company_id": b.CompanyID,
			"company":    s.CompanyName(b.CompanyID),
			"started_at": b.StartedAt,
			"salary":     b.Salary,
		})
	}
	return rows
}

func companyEvaluationSummary(s *Snapshot) []Row {
	rows := make([]Row, 0, len(s.Evaluations))
	for _, e := range s.Evaluations {
		rows = append(rows, Row{
			"evaluation_id": e.ID,
			"company_id":    e.CompanyID,
			"user_id":       e.UserID,
			"user":          s.UserName(e.UserID),
			"company":       s.CompanyName(e.CompanyID),
			"testimony":     e.Testimony,
			"score":         e.Score,
			"evaluated_at":  e.EvaluatedAt,
		})
	}
	return rows
}

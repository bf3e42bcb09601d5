// Package data carries the demo survey corpus: 15 users, 5 companies,
// 45 employment bonds, 45 evaluations and 60 benefit links, expressed as
// raw ingestion records.
package data

import (
	"time"

	"surveymart/src/models"
)

func SeniorityLabels() []string {
	return []string{"Junior", "Mid", "Senior"}
}

func RoleLabels() []string {
	return []string{"Developer", "Analyst", "Tech Lead", "QA", "DevOps", "Software Architect"}
}

func BenefitLabels() []string {
	return []string{
		"Meal Voucher",
		"Transport Voucher",
		"Health Plan",
		"Life Insurance",
		"Childcare Assistance",
		"Profit Sharing",
		"Paid Training",
		"Gym Membership",
		"Food Card",
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var loadedAt = day(2024, time.June, 1)

func Users() []models.UserRecord {
	names := []struct{ name, taxID, email, password string }{
		{"Ana Silva", "11111111111", "ana.silva@example.com", "pass111"},
		{"Bruno Souza", "22222222222", "bruno.souza@example.com", "pass222"},
		{"Carla Mendes", "33333333333", "carla.mendes@example.com", "pass333"},
		{"Daniel Oliveira", "44444444444", "daniel.oliveira@example.com", "pass444"},
		{"Eva Pereira", "55555555555", "eva.pereira@example.com", "pass555"},
		{"Felipe Costa", "66666666666", "felipe.costa@example.com", "pass666"},
		{"Gabriela Lima", "77777777777", "gabriela.lima@example.com", "pass777"},
		{"Henrique Rocha", "88888888888", "henrique.rocha@example.com", "pass888"},
		{"Isabela Martins", "99999999999", "isabela.martins@example.com", "pass999"},
		{"Joao Paulo", "11122233344", "joao.paulo@example.com", "passabc"},
		{"Karina Alves", "22233344455", "karina.alves@example.com", "passabcd"},
		{"Leonardo Dias", "33344455566", "leonardo.dias@example.com", "pass1234"},
		{"Mariana Barbosa", "44455566677", "mariana.barbosa@example.com", "pass5678"},
		{"Nathan Ferreira", "55566677788", "nathan.ferreira@example.com", "pass9876"},
		{"Olivia Gomes", "66677788899", "olivia.gomes@example.com", "pass6543"},
	}
	out := make([]models.UserRecord, 0, len(names))
	for _, n := range names {
		out = append(out, models.UserRecord{
			Name:      n.name,
			TaxID:     n.taxID,
			Email:     n.email,
			Password:  n.password,
			CreatedAt: loadedAt,
		})
	}
	return out
}

func Companies() []models.CompanyRecord {
	return []models.CompanyRecord{
		{TradeName: "Tech Innovators", LegalName: "Tech Innovators Ltda.", RegistryID: "10000000000001", Street: "Av. Paulista", Number: "1000", District: "Bela Vista", City: "Sao Paulo", State: "SP", PostalCode: "01311000", RegisteredAt: loadedAt},
		{TradeName: "Data Solutions", LegalName: "Data Solutions S.A.", RegistryID: "20000000000002", Street: "Rua das Flores", Number: "500", District: "Centro", City: "Rio de Janeiro", State: "RJ", PostalCode: "20090000", RegisteredAt: loadedAt},
		{TradeName: "Cloud Services", LegalName: "Cloud Services ME", RegistryID: "30000000000003", Street: "Av. Rio Branco", Number: "200", District: "Centro", City: "Rio de Janeiro", State: "RJ", PostalCode: "20090001", RegisteredAt: loadedAt},
		{TradeName: "GreenTech", LegalName: "GreenTech Ltda.", RegistryID: "40000000000004", Street: "Rua Acacias", Number: "750", District: "Botafogo", City: "Rio de Janeiro", State: "RJ", PostalCode: "22270000", RegisteredAt: loadedAt},
		{TradeName: "Alpha Systems", LegalName: "Alpha Systems S.A.", RegistryID: "50000000000005", Street: "Av. Atlantica", Number: "3000", District: "Copacabana", City: "Rio de Janeiro", State: "RJ", PostalCode: "22021000", RegisteredAt: loadedAt},
	}
}

func bond(user, company, role, seniority int, salary string, regime, model, hours, shift int, start time.Time, current bool) models.BondRecord {
	return models.BondRecord{
		UserID:      user,
		CompanyID:   company,
		RoleID:      role,
		SeniorityID: seniority,
		Salary:      salary,
		Regime:      regime,
		Model:       model,
		WeeklyHours: hours,
		Shift:       shift,
		StartedAt:   start,
		Current:     current,
	}
}

// Bonds returns two bonds per user (one current) plus one past contractor
// bond each.
func Bonds() []models.BondRecord {
	return []models.BondRecord{
		bond(1, 1, 1, 1, "3000.00", 1, 1, 40, 1, day(2022, 1, 10), true),
		bond(1, 2, 2, 1, "3100.00", 1, 2, 40, 1, day(2021, 1, 10), false),
		bond(2, 1, 3, 2, "4000.00", 2, 2, 40, 2, day(2020, 5, 1), false),
		bond(2, 2, 1, 2, "4200.00", 2, 1, 40, 2, day(2021, 5, 1), true),
		bond(3, 2, 2, 3, "4500.00", 1, 3, 40, 1, day(2020, 3, 15), false),
		bond(3, 3, 3, 3, "4600.00", 1, 2, 40, 1, day(2021, 3, 15), true),
		bond(4, 3, 1, 1, "3200.00", 2, 1, 40, 2, day(2022, 2, 20), false),
		bond(4, 4, 2, 1, "3300.00", 2, 3, 40, 2, day(2023, 2, 20), true),
		bond(5, 4, 3, 2, "3800.00", 1, 2, 40, 1, day(2022, 1, 1), false),
		bond(5, 5, 1, 2, "3900.00", 1, 1, 40, 1, day(2023, 1, 1), true),
		bond(6, 1, 2, 3, "5000.00", 2, 1, 40, 2, day(2021, 7, 1), true),
		bond(6, 3, 3, 3, "5200.00", 2, 3, 40, 2, day(2020, 7, 1), false),
		bond(7, 2, 1, 1, "2800.00", 1, 2, 40, 1, day(2023, 3, 10), true),
		bond(7, 4, 5, 1, "2900.00", 1, 1, 40, 1, day(2022, 3, 10), false),
		bond(8, 3, 6, 2, "6000.00", 2, 3, 40, 2, day(2023, 6, 5), true),
		bond(8, 5, 4, 2, "6100.00", 2, 2, 40, 2, day(2022, 6, 5), false),
		bond(9, 1, 1, 3, "7000.00", 1, 2, 40, 1, day(2021, 8, 12), false),
		bond(9, 4, 3, 3, "7300.00", 1, 1, 40, 1, day(2022, 8, 12), true),
		bond(10, 2, 2, 1, "3500.00", 2, 2, 40, 2, day(2020, 10, 1), false),
		bond(10, 5, 6, 1, "3800.00", 2, 1, 40, 2, day(2021, 10, 1), true),
		bond(11, 3, 1, 2, "4100.00", 1, 3, 40, 1, day(2022, 4, 1), true),
		bond(11, 4, 2, 2, "3900.00", 1, 2, 40, 1, day(2021, 4, 1), false),
		bond(12, 1, 3, 3, "5500.00", 2, 1, 40, 2, day(2022, 9, 10), true),
		bond(12, 2, 4, 3, "5600.00", 2, 2, 40, 2, day(2021, 9, 10), false),
		bond(13, 4, 1, 1, "3200.00", 1, 3, 40, 1, day(2023, 11, 1), true),
		bond(13, 5, 2, 1, "3300.00", 1, 1, 40, 1, day(2022, 11, 1), false),
		bond(14, 3, 3, 2, "4700.00", 2, 3, 40, 2, day(2023, 2, 15), true),
		bond(14, 5, 4, 2, "4800.00", 2, 2, 40, 2, day(2022, 2, 15), false),
		bond(15, 1, 6, 3, "7500.00", 1, 1, 40, 1, day(2023, 12, 20), true),
		bond(15, 2, 5, 3, "7600.00", 1, 2, 40, 1, day(2022, 12, 20), false),
		// past contractor engagements
		bond(1, 3, 1, 1, "2700.00", 2, 3, 35, 3, day(2020, 1, 5), false),
		bond(2, 5, 1, 2, "4000.00", 2, 2, 40, 1, day(2019, 12, 10), false),
		bond(3, 4, 2, 1, "3150.00", 2, 1, 40, 2, day(2021, 5, 20), false),
		bond(4, 2, 3, 2, "4200.00", 2, 2, 40, 2, day(2020, 11, 15), false),
		bond(5, 3, 1, 3, "6100.00", 2, 1, 40, 2, day(2021, 2, 10), false),
		bond(6, 5, 2, 2, "3600.00", 2, 3, 40, 1, day(2020, 9, 1), false),
		bond(7, 1, 5, 2, "2900.00", 2, 2, 40, 1, day(2020, 10, 10), false),
		bond(8, 4, 6, 1, "3100.00", 2, 1, 40, 1, day(2022, 1, 5), false),
		bond(9, 5, 3, 2, "3500.00", 2, 3, 35, 2, day(2021, 7, 7), false),
		bond(10, 1, 2, 3, "5300.00", 2, 2, 40, 2, day(2020, 10, 22), false),
		bond(11, 2, 2, 2, "4050.00", 2, 1, 40, 1, day(2021, 6, 6), false),
		bond(12, 4, 3, 1, "2800.00", 2, 2, 35, 3, day(2022, 2, 2), false),
		bond(13, 2, 1, 2, "3750.00", 2, 3, 40, 1, day(2021, 10, 20), false),
		bond(14, 1, 6, 3, "6950.00", 2, 2, 40, 2, day(2022, 4, 4), false),
		bond(15, 5, 5, 3, "4800.00", 2, 1, 40, 2, day(2021, 11, 11), false),
	}
}

func ip(v int) *int       { return &v }
func bp(v bool) *bool     { return &v }
func sp(v string) *string { return &v }

func eval(user, company, role int, worksOT bool, comp *bool, tp *int, pp *string, tr *int, pr *string, pj, har *int, testimony string, score int) models.EvaluationRecord {
	return models.EvaluationRecord{
		UserID:              user,
		CompanyID:           company,
		MostRequestedRoleID: ip(role),
		WorksOvertime:       worksOT,
		OvertimeCompensated: comp,
		MonthsToPromotion:   tp,
		PromotionPercent:    pp,
		MonthsToRaise:       tr,
		RaisePercent:        pr,
		PJProblem:           pj,
		Harassment:          har,
		Testimony:           testimony,
		Score:               score,
		EvaluatedAt:         loadedAt,
	}
}

func Evaluations() []models.EvaluationRecord {
	return []models.EvaluationRecord{
		eval(1, 1, 1, true, bp(true), ip(12), sp("10.00"), ip(6), sp("5.00"), nil, nil, "Excellent environment, learned a great deal.", 5),
		eval(1, 2, 2, false, nil, nil, nil, nil, nil, nil, nil, "Interesting project, could improve though.", 4),
		eval(2, 1, 3, false, nil, nil, nil, nil, nil, ip(2), ip(1), "Had contractor trouble, leadership was good.", 3),
		eval(2, 2, 1, true, bp(true), ip(8), sp("12.00"), ip(4), sp("6.00"), nil, nil, "Good growth opportunities.", 4),
		eval(3, 2, 2, true, bp(true), ip(10), sp("10.00"), ip(8), sp("8.00"), nil, ip(2), "Challenging work, overtime does happen.", 4),
		eval(3, 3, 3, true, bp(false), nil, nil, nil, nil, nil, nil, "Balanced environment and proper support.", 5),
		eval(4, 3, 1, true, bp(false), ip(18), sp("15.00"), ip(12), sp("10.00"), nil, nil, "We work overtime but it is not always paid.", 3),
		eval(4, 4, 2, false, nil, nil, nil, nil, nil, nil, nil, "Growing company, tight-knit team.", 4),
		eval(5, 4, 3, true, bp(true), ip(6), sp("10.00"), ip(3), sp("5.00"), nil, nil, "Flexible hours and a good benefits policy.", 5),
		eval(5, 5, 1, false, nil, nil, nil, nil, nil, nil, nil, "Pay could be better, great atmosphere though.", 4),
		eval(6, 1, 2, true, bp(true), ip(12), sp("12.00"), ip(6), sp("6.00"), nil, nil, "Innovative company, people management needs work.", 4),
		eval(6, 3, 3, false, nil, nil, nil, nil, nil, nil, nil, "Interesting and challenging projects.", 5),
		eval(7, 2, 1, true, bp(false), ip(10), sp("8.00"), ip(4), sp("4.00"), nil, nil, "Reasonable work-life balance.", 4),
		eval(7, 4, 5, false, nil, nil, nil, nil, nil, nil, nil, "Internal communication needs improvement.", 3),
		eval(8, 3, 6, false, nil, nil, nil, nil, nil, nil, nil, "Remote setup, but little team integration.", 4),
		eval(8, 5, 4, true, bp(true), ip(9), sp("10.00"), ip(5), sp("5.00"), nil, nil, "Good leaders, agile methodology done right.", 5),
		eval(9, 1, 1, false, nil, nil, nil, nil, nil, nil, nil, "Old-school management, but modernizing.", 4),
		eval(9, 4, 3, true, bp(true), ip(20), sp("15.00"), ip(10), sp("8.00"), nil, nil, "Excellent benefits, technically mature team.", 5),
		eval(10, 2, 2, false, nil, nil, nil, nil, nil, nil, nil, "Lots of repetitive work, little innovation.", 3),
		eval(10, 5, 6, true, bp(true), ip(12), sp("10.00"), ip(6), sp("4.00"), nil, nil, "Good pay and freedom to pick projects.", 5),
		eval(11, 3, 1, true, bp(false), ip(18), sp("10.00"), ip(9), sp("7.00"), nil, nil, "Agile mindset and a focus on results.", 4),
		eval(11, 4, 2, false, nil, nil, nil, nil, nil, nil, nil, "Several internal promotion opportunities.", 3),
		eval(12, 1, 3, true, bp(true), ip(7), sp("8.00"), ip(3), sp("3.00"), nil, ip(2), "Good collaboration culture, aggressive targets.", 4),
		eval(12, 2, 4, false, nil, nil, nil, nil, nil, nil, nil, "Processes are a bit bureaucratic.", 3),
		eval(13, 4, 1, true, bp(true), ip(5), sp("5.00"), ip(2), sp("2.00"), nil, nil, "Average benefits, interesting projects.", 4),
		eval(13, 5, 2, false, nil, nil, nil, nil, nil, nil, nil, "Great atmosphere, slow career growth.", 3),
		eval(14, 3, 3, true, bp(true), ip(10), sp("12.00"), ip(5), sp("4.00"), nil, nil, "Great managers, well-defined culture.", 5),
		eval(14, 5, 4, false, nil, nil, nil, nil, nil, nil, nil, "Some decisions lack transparency.", 3),
		eval(15, 1, 6, false, nil, nil, nil, nil, nil, nil, nil, "Big company, slow to change.", 3),
		eval(15, 2, 5, true, bp(true), ip(15), sp("15.00"), ip(7), sp("7.00"), nil, nil, "Overtime is paid, relaxed atmosphere.", 5),
		// contractor engagements
		eval(1, 3, 1, true, bp(false), ip(10), sp("10.00"), ip(5), sp("5.00"), ip(1), nil, "Hired as a contractor with no clear overtime terms.", 3),
		eval(2, 5, 1, false, nil, nil, nil, nil, nil, ip(2), nil, "Fixed working hours were demanded despite the contractor setup.", 3),
		eval(3, 4, 2, true, bp(true), ip(8), sp("9.00"), ip(4), sp("4.00"), ip(3), nil, "All fine until I noticed no 13th salary for contractors.", 3),
		eval(4, 2, 3, true, bp(false), ip(12), sp("10.00"), ip(7), sp("5.00"), ip(2), nil, "Daily presence required like an employee, but on a contractor deal.", 2),
		eval(5, 3, 1, false, nil, nil, nil, nil, nil, ip(4), nil, "No labor guarantees whatsoever in the contract.", 3),
		eval(6, 5, 2, true, bp(true), ip(6), sp("5.00"), ip(3), sp("3.00"), ip(1), nil, "Contractor with no formal contract, overtime is uncertain.", 3),
		eval(7, 1, 5, true, bp(false), ip(9), sp("8.00"), ip(5), sp("4.00"), ip(3), nil, "No 13th salary or vacation despite exclusive dedication.", 2),
		eval(8, 4, 6, false, nil, nil, nil, nil, nil, ip(4), nil, "Fully contractor, no labor support at all.", 3),
		eval(9, 5, 3, true, bp(true), ip(18), sp("15.00"), ip(9), sp("7.00"), ip(2), nil, "Time tracking and employee-style targets are required.", 3),
		eval(10, 1, 2, false, nil, nil, nil, nil, nil, ip(1), nil, "Contractor deal with many irregularities. Low pay.", 3),
		eval(11, 2, 2, true, bp(true), ip(10), sp("7.00"), ip(4), sp("4.00"), ip(4), nil, "No minimum guarantees for breaks or leave.", 3),
		eval(12, 4, 3, true, bp(false), ip(7), sp("5.00"), ip(3), sp("3.00"), ip(2), nil, "Disguised employment; treated like regular staff.", 2),
		eval(13, 2, 1, false, nil, nil, nil, nil, nil, ip(3), nil, "Contractor with no vacation or 13th, full-time work.", 3),
		eval(14, 1, 6, true, bp(true), ip(8), sp("8.00"), ip(4), sp("4.00"), ip(1), nil, "Sold as a flexible contract, but the terms are confusing.", 3),
		eval(15, 5, 5, false, nil, nil, nil, nil, nil, ip(4), nil, "Labor rules are nonexistent, everything on my own.", 3),
	}
}

// BenefitLinks lists two benefits per evaluation for the first thirty
// evaluations.
func BenefitLinks() []models.BenefitLinkRecord {
	pairs := [][2]int{
		{1, 1}, {1, 2}, {2, 2}, {2, 3}, {3, 1}, {3, 3}, {4, 2}, {4, 3},
		{5, 1}, {5, 3}, {6, 3}, {6, 2}, {7, 1}, {7, 2}, {8, 3}, {8, 1},
		{9, 1}, {9, 3}, {10, 2}, {10, 3}, {11, 1}, {11, 2}, {12, 2}, {12, 3},
		{13, 1}, {13, 2}, {14, 2}, {14, 3}, {15, 1}, {15, 3}, {16, 3}, {16, 1},
		{17, 1}, {17, 2}, {18, 2}, {18, 3}, {19, 1}, {19, 3}, {20, 1}, {20, 2},
		{21, 2}, {21, 3}, {22, 1}, {22, 3}, {23, 1}, {23, 2}, {24, 2}, {24, 3},
		{25, 1}, {25, 3}, {26, 1}, {26, 2}, {27, 2}, {27, 3}, {28, 1}, {28, 3},
		{29, 2}, {29, 3}, {30, 1}, {30, 2},
	}
	out := make([]models.BenefitLinkRecord, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, models.BenefitLinkRecord{EvaluationID: p[0], BenefitID: p[1]})
	}
	return out
}

package directors

import (
	"surveymart/src/models"
)

// Export methods re-express stored entities as raw ingestion records, so
// a downstream consumer (or a fresh store) can replay them. Credentials
// come back in their encoded form and are taken as-is on re-ingestion.

func (s *IngestService) ExportUsers() []models.UserRecord {
	cur := s.store.Scan(models.KindUser)
	var out []models.UserRecord
	for cur.Next() {
		u := cur.Value().(models.User)
		out = append(out, models.UserRecord{
			Name:      u.Name,
			TaxID:     u.TaxID,
			Email:     u.Email,
			Password:  u.Credential,
			CreatedAt: u.CreatedAt,
		})
	}
	return out
}

func (s *IngestService) ExportCompanies() []models.CompanyRecord {
	cur := s.store.Scan(models.KindCompany)
	var out []models.CompanyRecord
	for cur.Next() {
		c := cur.Value().(models.Company)
		out = append(out, models.CompanyRecord{
			TradeName:    c.TradeName,
			LegalName:    c.LegalName,
			RegistryID:   c.RegistryID,
			Street:       c.Street,
			Number:       c.Number,
			District:     c.District,
			City:         c.City,
			State:        c.State,
			PostalCode:   c.PostalCode,
			RegisteredAt: c.RegisteredAt,
		})
	}
	return out
}

func (s *IngestService) ExportBenefits() []models.BenefitRecord {
	cur := s.store.Scan(models.KindBenefit)
	var out []models.BenefitRecord
	for cur.Next() {
		b := cur.Value().(models.Benefit)
		out = append(out, models.BenefitRecord{Label: b.Label})
	}
	return out
}

func (s *IngestService) ExportBonds() []models.BondRecord {
	cur := s.store.Scan(models.KindEmploymentBond)
	var out []models.BondRecord
	for cur.Next() {
		b := cur.Value().(models.EmploymentBond)
		out = append(out, models.BondRecord{
			UserID:      b.UserID,
			CompanyID:   b.CompanyID,
			RoleID:      b.RoleID,
			SeniorityID: b.SeniorityID,
			Salary:      b.Salary.StringFixed(2),
			Regime:      int(b.Regime),
			Model:       int(b.Model),
			WeeklyHours: b.WeeklyHours,
			Shift:       int(b.Shift),
			StartedAt:   b.StartedAt,
			Current:     b.Current,
		})
	}
	return out
}

func (s *IngestService) ExportEvaluations() []models.EvaluationRecord {
	cur := s.store.Scan(models.KindEvaluation)
	var out []models.EvaluationRecord
	for cur.Next() {
		e := cur.Value().(models.Evaluation)
		rec := models.EvaluationRecord{
			UserID:              e.UserID,
			CompanyID:           e.CompanyID,
			MostRequestedRoleID: copyInt(e.MostRequestedRoleID),
			WorksOvertime:       e.WorksOvertime,
			OvertimeCompensated: copyBool(e.OvertimeCompensated),
			MonthsToPromotion:   copyInt(e.MonthsToPromotion),
			MonthsToRaise:       copyInt(e.MonthsToRaise),
			Testimony:           e.Testimony,
			Score:               e.Score,
			EvaluatedAt:         e.EvaluatedAt,
		}
		if e.PromotionPercent != nil {
			v := e.PromotionPercent.StringFixed(2)
			rec.PromotionPercent = &v
		}
		if e.RaisePercent != nil {
			v := e.RaisePercent.StringFixed(2)
			rec.RaisePercent = &v
		}
		if e.PJProblem != nil {
			v := int(*e.PJProblem)
			rec.PJProblem = &v
		}
		if e.Harassment != nil {
			v := int(*e.Harassment)
			rec.Harassment = &v
		}
		out = append(out, rec)
	}
	return out
}

func (s *IngestService) ExportBenefitLinks() []models.BenefitLinkRecord {
	cur := s.store.Scan(models.KindEvaluationBenefit)
	var out []models.BenefitLinkRecord
	for cur.Next() {
		l := cur.Value().(models.EvaluationBenefit)
		out = append(out, models.BenefitLinkRecord{
			EvaluationID: l.EvaluationID,
			BenefitID:    l.BenefitID,
		})
	}
	return out
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

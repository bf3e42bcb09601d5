package directors

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"surveymart/src/auth"
	"surveymart/src/engine"
	"surveymart/src/helpers"
	"surveymart/src/models"
	"surveymart/src/settings"
)

// IngestService converts raw records into validated entities and loads
// them into the store. A rejected record is reported and skipped; the
// rest of the batch continues.
type IngestService struct {
	store    *engine.Store
	settings *settings.Arguments
	logger   *zap.SugaredLogger
}

func NewIngestService(store *engine.Store, args *settings.Arguments, logger *zap.SugaredLogger) *IngestService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &IngestService{store: store, settings: args, logger: logger}
}

// RecordResult reports the outcome for one record of a batch: the
// assigned surrogate id, or every violation found.
type RecordResult struct {
	Index      int
	Kind       models.EntityKind
	ID         int
	Violations []*engine.Violation
	Err        error
}

func (r RecordResult) Accepted() bool { return r.Err == nil }

// BatchResult summarizes one ingested batch.
type BatchResult struct {
	BatchID  string
	Kind     models.EntityKind
	Accepted int
	Rejected int
	Results  []RecordResult
}

func (s *IngestService) newBatch(kind models.EntityKind, size int) *BatchResult {
	return &BatchResult{
		BatchID: helpers.GenerateUUID(),
		Kind:    kind,
		Results: make([]RecordResult, 0, size),
	}
}

func (s *IngestService) record(batch *BatchResult, index, id int, err error) {
	res := RecordResult{Index: index, Kind: batch.Kind, ID: id, Err: err}
	if err != nil {
		res.Violations = engine.Violations(err)
		batch.Rejected++
		s.logger.Warnw("record skipped", "batch", batch.BatchID, "kind", batch.Kind,
			"index", index, "error", err)
	} else {
		batch.Accepted++
	}
	batch.Results = append(batch.Results, res)
}

func (s *IngestService) finish(batch *BatchResult) *BatchResult {
	s.logger.Infow("batch ingested", "batch", batch.BatchID, "kind", batch.Kind,
		"accepted", batch.Accepted, "rejected", batch.Rejected)
	return batch
}

// LoadCatalog loads the closed lookup tables (seniority levels, role
// specialties, benefits). It is called once at initialization and fails
// hard: a broken catalog leaves the store unusable.
func (s *IngestService) LoadCatalog(seniorities, roles, benefits []string) error {
	for _, label := range seniorities {
		if _, err := s.store.Put(models.SeniorityLevel{Label: label}); err != nil {
			return fmt.Errorf("seniority %q: %w", label, err)
		}
	}
	for _, label := range roles {
		if _, err := s.store.Put(models.RoleSpecialty{Label: label}); err != nil {
			return fmt.Errorf("role %q: %w", label, err)
		}
	}
	for _, label := range benefits {
		if _, err := s.store.Put(models.Benefit{Label: label}); err != nil {
			return fmt.Errorf("benefit %q: %w", label, err)
		}
	}
	s.logger.Infow("catalog loaded", "seniorities", len(seniorities),
		"roles", len(roles), "benefits", len(benefits))
	return nil
}

func (s *IngestService) IngestUsers(records []models.UserRecord) *BatchResult {
	batch := s.newBatch(models.KindUser, len(records))
	for i, rec := range records {
		credential := rec.Password
		if credential != "" && !auth.IsEncoded(credential) {
			hashed, err := auth.HashPassword(credential)
			if err != nil {
				s.record(batch, i, 0, fmt.Errorf("hashing credential: %w", err))
				continue
			}
			credential = hashed
		}
		createdAt := rec.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		id, err := s.store.Put(models.User{
			Name:       rec.Name,
			TaxID:      rec.TaxID,
			Email:      rec.Email,
			Credential: credential,
			CreatedAt:  createdAt,
		})
		s.record(batch, i, id, err)
	}
	return s.finish(batch)
}

func (s *IngestService) IngestCompanies(records []models.CompanyRecord) *BatchResult {
	batch := s.newBatch(models.KindCompany, len(records))
	for i, rec := range records {
		registeredAt := rec.RegisteredAt
		if registeredAt.IsZero() {
			registeredAt = time.Now()
		}
		id, err := s.store.Put(models.Company{
			TradeName:    rec.TradeName,
			LegalName:    rec.LegalName,
			RegistryID:   rec.RegistryID,
			Street:       rec.Street,
			Number:       rec.Number,
			District:     rec.District,
			City:         rec.City,
			State:        rec.State,
			PostalCode:   rec.PostalCode,
			RegisteredAt: registeredAt,
		})
		s.record(batch, i, id, err)
	}
	return s.finish(batch)
}

func (s *IngestService) IngestBenefits(records []models.BenefitRecord) *BatchResult {
	batch := s.newBatch(models.KindBenefit, len(records))
	for i, rec := range records {
		id, err := s.store.Put(models.Benefit{Label: rec.Label})
		s.record(batch, i, id, err)
	}
	return s.finish(batch)
}

func (s *IngestService) IngestBonds(records []models.BondRecord) *BatchResult {
	batch := s.newBatch(models.KindEmploymentBond, len(records))
	for i, rec := range records {
		salary, perr := decimal.NewFromString(rec.Salary)
		if perr != nil {
			s.record(batch, i, 0, engine.NewViolation("salary", "decimal",
				fmt.Sprintf("not a decimal number: %q", rec.Salary)))
			continue
		}
		id, err := s.store.Put(models.EmploymentBond{
			UserID:      rec.UserID,
			CompanyID:   rec.CompanyID,
			RoleID:      rec.RoleID,
			SeniorityID: rec.SeniorityID,
			Salary:      salary,
			Regime:      models.ContractRegime(rec.Regime),
			Model:       models.WorkModel(rec.Model),
			WeeklyHours: rec.WeeklyHours,
			Shift:       models.Shift(rec.Shift),
			StartedAt:   rec.StartedAt,
			Current:     rec.Current,
		})
		s.record(batch, i, id, err)
	}
	return s.finish(batch)
}

func (s *IngestService) IngestEvaluations(records []models.EvaluationRecord) *BatchResult {
	batch := s.newBatch(models.KindEvaluation, len(records))
	for i, rec := range records {
		entity := models.Evaluation{
			UserID:              rec.UserID,
			CompanyID:           rec.CompanyID,
			MostRequestedRoleID: rec.MostRequestedRoleID,
			WorksOvertime:       rec.WorksOvertime,
			OvertimeCompensated: rec.OvertimeCompensated,
			MonthsToPromotion:   rec.MonthsToPromotion,
			MonthsToRaise:       rec.MonthsToRaise,
			Testimony:           rec.Testimony,
			Score:               rec.Score,
			EvaluatedAt:         rec.EvaluatedAt,
		}
		if entity.EvaluatedAt.IsZero() {
			entity.EvaluatedAt = time.Now()
		}
		if rec.PJProblem != nil {
			p := models.PJProblem(*rec.PJProblem)
			entity.PJProblem = &p
		}
		if rec.Harassment != nil {
			h := models.HarassmentCode(*rec.Harassment)
			entity.Harassment = &h
		}
		var local []*engine.Violation
		entity.PromotionPercent, local = parsePercent(local, "promotion_percent", rec.PromotionPercent)
		entity.RaisePercent, local = parsePercent(local, "raise_percent", rec.RaisePercent)
		// An evaluation must refer to an existing bond between the same
		// user and company. This is an ingestion rule, not a store FK.
		if !s.store.HasBondBetween(rec.UserID, rec.CompanyID) {
			local = append(local, engine.NewViolation("company_id", "bond_exists",
				fmt.Sprintf("no employment bond between user %d and company %d", rec.UserID, rec.CompanyID)))
		}
		if len(local) > 0 {
			// include whatever else is wrong with the record in the same report
			local = append(local, engine.Violations(engine.ValidateEvaluation(entity))...)
			s.record(batch, i, 0, combineViolations(local))
			continue
		}
		id, err := s.store.Put(entity)
		s.record(batch, i, id, err)
	}
	return s.finish(batch)
}

func (s *IngestService) IngestBenefitLinks(records []models.BenefitLinkRecord) *BatchResult {
	batch := s.newBatch(models.KindEvaluationBenefit, len(records))
	for i, rec := range records {
		id, err := s.store.Put(models.EvaluationBenefit{
			EvaluationID: rec.EvaluationID,
			BenefitID:    rec.BenefitID,
		})
		s.record(batch, i, id, err)
	}
	return s.finish(batch)
}

func parsePercent(violations []*engine.Violation, field string, raw *string) (*decimal.Decimal, []*engine.Violation) {
	if raw == nil {
		return nil, violations
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, append(violations, engine.NewViolation(field, "decimal",
			fmt.Sprintf("not a decimal number: %q", *raw)))
	}
	return &d, violations
}

func combineViolations(violations []*engine.Violation) error {
	errs := make([]error, len(violations))
	for i, v := range violations {
		errs[i] = v
	}
	return multierr.Combine(errs...)
}

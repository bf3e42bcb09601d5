package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"surveymart/src/engine"
	"surveymart/src/models"
)

// SnapshotStore persists store snapshots as bson documents on disk.
// Durability is optional for the core; this backend exists so a loaded
// mart can be reopened without replaying ingestion.
type SnapshotStore struct {
	dataDir string
	logger  *zap.SugaredLogger
}

func NewSnapshotStore(dataDir string, logger *zap.SugaredLogger) (*SnapshotStore, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return &SnapshotStore{dataDir: dataDir, logger: logger}, nil
}

// File schema. Decimal fields are stored as fixed-point strings; the
// in-memory decimal type does not round-trip through bson.

type bondDoc struct {
	ID          int       `bson:"id"`
	UserID      int       `bson:"user_id"`
	CompanyID   int       `bson:"company_id"`
	RoleID      int       `bson:"role_id"`
	SeniorityID int       `bson:"seniority_id"`
	Salary      string    `bson:"salary"`
	Regime      int       `bson:"regime"`
	Model       int       `bson:"model"`
	WeeklyHours int       `bson:"weekly_hours"`
	Shift       int       `bson:"shift"`
	StartedAt   time.Time `bson:"started_at"`
	Current     bool      `bson:"current"`
}

type evaluationDoc struct {
	ID                  int       `bson:"id"`
	UserID              int       `bson:"user_id"`
	CompanyID           int       `bson:"company_id"`
	MostRequestedRoleID *int      `bson:"most_requested_role_id,omitempty"`
	WorksOvertime       bool      `bson:"works_overtime"`
	OvertimeCompensated *bool     `bson:"overtime_compensated,omitempty"`
	MonthsToPromotion   *int      `bson:"months_to_promotion,omitempty"`
	PromotionPercent    *string   `bson:"promotion_percent,omitempty"`
	MonthsToRaise       *int      `bson:"months_to_raise,omitempty"`
	RaisePercent        *string   `bson:"raise_percent,omitempty"`
	PJProblem           *int      `bson:"pj_problem,omitempty"`
	Harassment          *int      `bson:"harassment,omitempty"`
	Testimony           string    `bson:"testimony"`
	Score               int       `bson:"score"`
	EvaluatedAt         time.Time `bson:"evaluated_at"`
}

type snapshotFile struct {
	SavedAt      time.Time                  `bson:"saved_at"`
	Users        []models.User              `bson:"users"`
	Companies    []models.Company           `bson:"companies"`
	Seniorities  []models.SeniorityLevel    `bson:"seniorities"`
	Roles        []models.RoleSpecialty     `bson:"roles"`
	Benefits     []models.Benefit           `bson:"benefits"`
	Bonds        []bondDoc                  `bson:"bonds"`
	Evaluations  []evaluationDoc            `bson:"evaluations"`
	BenefitLinks []models.EvaluationBenefit `bson:"benefit_links"`
}

// Save writes the snapshot to the named file, atomically replacing any
// previous one.
func (s *SnapshotStore) Save(name string, snap *engine.Snapshot) error {
	doc := snapshotFile{
		SavedAt:      time.Now(),
		Users:        snap.Users,
		Companies:    snap.Companies,
		Seniorities:  snap.Seniorities,
		Roles:        snap.Roles,
		Benefits:     snap.Benefits,
		BenefitLinks: snap.BenefitLinks,
	}
	for _, b := range snap.Bonds {
		doc.Bonds = append(doc.Bonds, bondDoc{
			ID:          b.ID,
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
	for _, e := range snap.Evaluations {
		ed := evaluationDoc{
			ID:                  e.ID,
			UserID:              e.UserID,
			CompanyID:           e.CompanyID,
			MostRequestedRoleID: e.MostRequestedRoleID,
			WorksOvertime:       e.WorksOvertime,
			OvertimeCompensated: e.OvertimeCompensated,
			MonthsToPromotion:   e.MonthsToPromotion,
			MonthsToRaise:       e.MonthsToRaise,
			Testimony:           e.Testimony,
			Score:               e.Score,
			EvaluatedAt:         e.EvaluatedAt,
		}
		if e.PromotionPercent != nil {
			v := e.PromotionPercent.StringFixed(2)
			ed.PromotionPercent = &v
		}
		if e.RaisePercent != nil {
			v := e.RaisePercent.StringFixed(2)
			ed.RaisePercent = &v
		}
		if e.PJProblem != nil {
			v := int(*e.PJProblem)
			ed.PJProblem = &v
		}
		if e.Harassment != nil {
			v := int(*e.Harassment)
			ed.Harassment = &v
		}
		doc.Evaluations = append(doc.Evaluations, ed)
	}

	data, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tempFile, err := os.CreateTemp(s.dataDir, "snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempFilePath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempFilePath)
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempFilePath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempFilePath, 0600); err != nil {
		os.Remove(tempFilePath)
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	target := filepath.Join(s.dataDir, name)
	if err := os.Rename(tempFilePath, target); err != nil {
		os.Remove(tempFilePath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	s.logger.Infow("snapshot saved", "file", target, "bytes", len(data))
	return nil
}

// Load reads a snapshot file written by Save.
func (s *SnapshotStore) Load(name string) (*engine.Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	var doc snapshotFile
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	snap := &engine.Snapshot{
		Users:        doc.Users,
		Companies:    doc.Companies,
		Seniorities:  doc.Seniorities,
		Roles:        doc.Roles,
		Benefits:     doc.Benefits,
		BenefitLinks: doc.BenefitLinks,
	}
	for _, b := range doc.Bonds {
		salary, err := decimal.NewFromString(b.Salary)
		if err != nil {
			return nil, fmt.Errorf("bond %d: bad salary %q: %w", b.ID, b.Salary, err)
		}
		snap.Bonds = append(snap.Bonds, models.EmploymentBond{
			ID:          b.ID,
			UserID:      b.UserID,
			CompanyID:   b.CompanyID,
			RoleID:      b.RoleID,
			SeniorityID: b.SeniorityID,
			Salary:      salary,
			Regime:      models.ContractRegime(b.Regime),
			Model:       models.WorkModel(b.Model),
			WeeklyHours: b.WeeklyHours,
			Shift:       models.Shift(b.Shift),
			StartedAt:   b.StartedAt,
			Current:     b.Current,
		})
	}
	for _, ed := range doc.Evaluations {
		e := models.Evaluation{
			ID:                  ed.ID,
			UserID:              ed.UserID,
			CompanyID:           ed.CompanyID,
			MostRequestedRoleID: ed.MostRequestedRoleID,
			WorksOvertime:       ed.WorksOvertime,
			OvertimeCompensated: ed.OvertimeCompensated,
			MonthsToPromotion:   ed.MonthsToPromotion,
			MonthsToRaise:       ed.MonthsToRaise,
			Testimony:           ed.Testimony,
			Score:               ed.Score,
			EvaluatedAt:         ed.EvaluatedAt,
		}
		if ed.PromotionPercent != nil {
			d, err := decimal.NewFromString(*ed.PromotionPercent)
			if err != nil {
				return nil, fmt.Errorf("evaluation %d: bad promotion percent %q: %w", ed.ID, *ed.PromotionPercent, err)
			}
			e.PromotionPercent = &d
		}
		if ed.RaisePercent != nil {
			d, err := decimal.NewFromString(*ed.RaisePercent)
			if err != nil {
				return nil, fmt.Errorf("evaluation %d: bad raise percent %q: %w", ed.ID, *ed.RaisePercent, err)
			}
			e.RaisePercent = &d
		}
		if ed.PJProblem != nil {
			p := models.PJProblem(*ed.PJProblem)
			e.PJProblem = &p
		}
		if ed.Harassment != nil {
			h := models.HarassmentCode(*ed.Harassment)
			e.Harassment = &h
		}
		snap.Evaluations = append(snap.Evaluations, e)
	}

	s.logger.Infow("snapshot loaded", "file", name,
		"users", len(snap.Users), "bonds", len(snap.Bonds), "evaluations", len(snap.Evaluations))
	return snap, nil
}

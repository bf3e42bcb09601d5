package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntityKind identifies one of the base tables held by the entity store.
type EntityKind string

const (
	KindUser              EntityKind = "user"
	KindCompany           EntityKind = "company"
	KindSeniorityLevel    EntityKind = "seniority_level"
	KindRoleSpecialty     EntityKind = "role_specialty"
	KindEmploymentBond    EntityKind = "employment_bond"
	KindEvaluation        EntityKind = "evaluation"
	KindBenefit           EntityKind = "benefit"
	KindEvaluationBenefit EntityKind = "evaluation_benefit"
)

// Kinds lists every entity kind in dependency order (referenced kinds first).
func Kinds() []EntityKind {
	return []EntityKind{
		KindUser,
		KindCompany,
		KindSeniorityLevel,
		KindRoleSpecialty,
		KindBenefit,
		KindEmploymentBond,
		KindEvaluation,
		KindEvaluationBenefit,
	}
}

type User struct {
	ID   int
	Name string

	// TaxID is the 11-digit national tax id, kept as a digit string to
	// preserve leading zeros.
	TaxID string

	Email string

	// Credential is the opaque stored credential (an encoded argon2id hash).
	Credential string

	CreatedAt time.Time
}

type Company struct {
	ID        int
	TradeName string
	LegalName string

	// RegistryID is the 14-digit national registry id, kept as a digit string.
	RegistryID string

	Street   string
	Number   string
	District string
	City     string

	// State is a 2-letter uppercase state code.
	State string

	// PostalCode is an 8-digit digit string.
	PostalCode string

	RegisteredAt time.Time
}

type SeniorityLevel struct {
	ID    int
	Label string
}

type RoleSpecialty struct {
	ID    int
	Label string
}

type Benefit struct {
	ID    int
	Label string
}

type EmploymentBond struct {
	ID          int
	UserID      int
	CompanyID   int
	RoleID      int
	SeniorityID int

	// Salary is the monthly compensation with 2 fraction digits.
	Salary decimal.Decimal

	Regime      ContractRegime
	Model       WorkModel
	WeeklyHours int
	Shift       Shift
	StartedAt   time.Time

	// Current marks the employment relationship presently in effect.
	// At most one bond per user carries it.
	Current bool
}

type Evaluation struct {
	ID        int
	UserID    int
	CompanyID int

	MostRequestedRoleID *int

	WorksOvertime bool

	// OvertimeCompensated is nil exactly when WorksOvertime is false.
	OvertimeCompensated *bool

	MonthsToPromotion *int
	PromotionPercent  *decimal.Decimal
	MonthsToRaise     *int
	RaisePercent      *decimal.Decimal

	PJProblem  *PJProblem
	Harassment *HarassmentCode

	Testimony string

	// Score is the overall rating, 1 to 5.
	Score int

	EvaluatedAt time.Time
}

// EvaluationBenefit links a benefit reported as granted on one evaluation.
// The (EvaluationID, BenefitID) pair is unique.
type EvaluationBenefit struct {
	ID           int
	EvaluationID int
	BenefitID    int
}

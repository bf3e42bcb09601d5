package models

import "time"

// Raw ingestion records. One struct per entity kind, fields in the same
// declared order as the entity attributes. Decimal-valued fields arrive
// as strings so malformed input is reported as a violation instead of a
// parse panic upstream.

type UserRecord struct {
	Name      string
	TaxID     string
	Email     string
	Password  string
	CreatedAt time.Time
}

type CompanyRecord struct {
	TradeName    string
	LegalName    string
	RegistryID   string
	Street       string
	Number       string
	District     string
	City         string
	State        string
	PostalCode   string
	RegisteredAt time.Time
}

type BondRecord struct {
	UserID      int
	CompanyID   int
	RoleID      int
	SeniorityID int
	Salary      string
	Regime      int
	Model       int
	WeeklyHours int
	Shift       int
	StartedAt   time.Time
	Current     bool
}

type EvaluationRecord struct {
	UserID              int
	CompanyID           int
	MostRequestedRoleID *int
	WorksOvertime       bool
	OvertimeCompensated *bool
	MonthsToPromotion   *int
	PromotionPercent    *string
	MonthsToRaise       *int
	RaisePercent        *string
	PJProblem           *int
	Harassment          *int
	Testimony           string
	Score               int
	EvaluatedAt         time.Time
}

type BenefitRecord struct {
	Label string
}

type BenefitLinkRecord struct {
	EvaluationID int
	BenefitID    int
}

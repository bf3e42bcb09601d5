package models

// ContractRegime is the contractual classification of a bond.
type ContractRegime int

const (
	RegimeCLT        ContractRegime = 1
	RegimeContractor ContractRegime = 2
)

func (r ContractRegime) Valid() bool {
	return r == RegimeCLT || r == RegimeContractor
}

func (r ContractRegime) Label() string {
	switch r {
	case RegimeCLT:
		return "CLT"
	case RegimeContractor:
		return "Contractor"
	}
	return "Unknown"
}

// WorkModel is where the work is performed.
type WorkModel int

const (
	ModelOnSite WorkModel = 1
	ModelHybrid WorkModel = 2
	ModelRemote WorkModel = 3
)

func (m WorkModel) Valid() bool {
	return m >= ModelOnSite && m <= ModelRemote
}

func (m WorkModel) Label() string {
	switch m {
	case ModelOnSite:
		return "On-site"
	case ModelHybrid:
		return "Hybrid"
	case ModelRemote:
		return "Remote"
	}
	return "Unknown"
}

// Shift is the working shift of a bond.
type Shift int

const (
	ShiftDay   Shift = 1
	ShiftNight Shift = 2
	ShiftOther Shift = 3
)

func (s Shift) Valid() bool {
	return s >= ShiftDay && s <= ShiftOther
}

func (s Shift) Label() string {
	switch s {
	case ShiftDay:
		return "Day"
	case ShiftNight:
		return "Night"
	case ShiftOther:
		return "Other"
	}
	return "Unknown"
}

// PJProblem is a categorized complaint about misuse of
// independent-contractor status.
type PJProblem int

const (
	ProblemContractIrregularity PJProblem = 1
	ProblemDisguisedEmployment  PJProblem = 2
	ProblemUnpaidStatutoryPay   PJProblem = 3
	ProblemNoLaborRights        PJProblem = 4
)

func (p PJProblem) Valid() bool {
	return p >= ProblemContractIrregularity && p <= ProblemNoLaborRights
}

func (p PJProblem) Label() string {
	switch p {
	case ProblemContractIrregularity:
		return "Contractual irregularities"
	case ProblemDisguisedEmployment:
		return "Disguised employment"
	case ProblemUnpaidStatutoryPay:
		return "Unpaid vacation or 13th salary"
	case ProblemNoLaborRights:
		return "Lack of labor-rights guarantees"
	}
	return "Unknown"
}

// HarassmentCode categorizes a reported harassment incident.
type HarassmentCode int

const (
	HarassmentMoral  HarassmentCode = 1
	HarassmentSexual HarassmentCode = 2
)

func (h HarassmentCode) Valid() bool {
	return h == HarassmentMoral || h == HarassmentSexual
}

func (h HarassmentCode) Label() string {
	switch h {
	case HarassmentMoral:
		return "Moral"
	case HarassmentSexual:
		return "Sexual"
	}
	return "Unknown"
}

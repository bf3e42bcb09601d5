package engine

import (
	"sync"

	"surveymart/src/models"
)

// Snapshot is a read-only copy of the store contents. It is safe to share
// among concurrent readers; nothing mutates it after construction. Lookup
// indexes are built once on first use.
type Snapshot struct {
	Users        []models.User
	Companies    []models.Company
	Seniorities  []models.SeniorityLevel
	Roles        []models.RoleSpecialty
	Benefits     []models.Benefit
	Bonds        []models.EmploymentBond
	Evaluations  []models.Evaluation
	BenefitLinks []models.EvaluationBenefit

	once            sync.Once
	userNames       map[int]string
	companyNames    map[int]string
	seniorityLabels map[int]string
	roleLabels      map[int]string
	benefitNames    map[int]string
	bondsByPair     map[[2]int][]int // (user id, company id) -> positions in Bonds
}

func (s *Snapshot) index() {
	s.once.Do(func() {
		s.userNames = make(map[int]string, len(s.Users))
		for _, u := range s.Users {
			s.userNames[u.ID] = u.Name
		}
		s.companyNames = make(map[int]string, len(s.Companies))
		for _, c := range s.Companies {
			s.companyNames[c.ID] = c.TradeName
		}
		s.seniorityLabels = make(map[int]string, len(s.Seniorities))
		for _, l := range s.Seniorities {
			s.seniorityLabels[l.ID] = l.Label
		}
		s.roleLabels = make(map[int]string, len(s.Roles))
		for _, r := range s.Roles {
			s.roleLabels[r.ID] = r.Label
		}
		s.benefitNames = make(map[int]string, len(s.Benefits))
		for _, b := range s.Benefits {
			s.benefitNames[b.ID] = b.Label
		}
		s.bondsByPair = make(map[[2]int][]int)
		for i, b := range s.Bonds {
			pair := [2]int{b.UserID, b.CompanyID}
			s.bondsByPair[pair] = append(s.bondsByPair[pair], i)
		}
	})
}

func (s *Snapshot) UserName(id int) string {
	s.index()
	return s.userNames[id]
}

func (s *Snapshot) CompanyName(id int) string {
	s.index()
	return s.companyNames[id]
}

func (s *Snapshot) SeniorityLabel(id int) string {
	s.index()
	return s.seniorityLabels[id]
}

func (s *Snapshot) RoleLabel(id int) string {
	s.index()
	return s.roleLabels[id]
}

func (s *Snapshot) BenefitLabel(id int) string {
	s.index()
	return s.benefitNames[id]
}

// BondFor resolves the employment bond an evaluation between the user and
// company refers to. The current bond wins; otherwise the earliest
// inserted one.
func (s *Snapshot) BondFor(userID, companyID int) (models.EmploymentBond, bool) {
	s.index()
	positions := s.bondsByPair[[2]int{userID, companyID}]
	if len(positions) == 0 {
		return models.EmploymentBond{}, false
	}
	for _, i := range positions {
		if s.Bonds[i].Current {
			return s.Bonds[i], true
		}
	}
	return s.Bonds[positions[0]], true
}

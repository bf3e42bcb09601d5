package engine

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"surveymart/src/helpers"
	"surveymart/src/models"
)

// Store is the single owner of all entity instances. Records are accepted
// through Put after validation, never updated in place, and never deleted.
// Surrogate ids are per-kind monotonic counters starting at 1, scoped to
// one store instance.
type Store struct {
	// InstanceID tags log lines from this store instance.
	InstanceID string

	logger   *zap.SugaredLogger
	counters map[models.EntityKind]int

	users       []models.User
	companies   []models.Company
	seniorities []models.SeniorityLevel
	roles       []models.RoleSpecialty
	benefits    []models.Benefit
	bonds       []models.EmploymentBond
	evaluations []models.Evaluation
	links       []models.EvaluationBenefit

	// id -> position in the insertion-order slice
	userIdx       map[int]int
	companyIdx    map[int]int
	seniorityIdx  map[int]int
	roleIdx       map[int]int
	benefitIdx    map[int]int
	bondIdx       map[int]int
	evaluationIdx map[int]int
	linkIdx       map[int]int

	// unique-field indexes
	taxIDs        map[string]int
	emails        map[string]int
	registryIDs   map[string]int
	benefitLabels map[string]int
	linkPairs     map[[2]int]int

	// user id -> id of the bond marked current
	currentBond map[int]int

	// (user id, company id) -> bond ids, insertion order
	bondPairs map[[2]int][]int
}

func NewStore(logger *zap.SugaredLogger) *Store {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Store{
		InstanceID:    helpers.GenerateUUID(),
		logger:        logger,
		counters:      make(map[models.EntityKind]int),
		userIdx:       make(map[int]int),
		companyIdx:    make(map[int]int),
		seniorityIdx:  make(map[int]int),
		roleIdx:       make(map[int]int),
		benefitIdx:    make(map[int]int),
		bondIdx:       make(map[int]int),
		evaluationIdx: make(map[int]int),
		linkIdx:       make(map[int]int),
		taxIDs:        make(map[string]int),
		emails:        make(map[string]int),
		registryIDs:   make(map[string]int),
		benefitLabels: make(map[string]int),
		linkPairs:     make(map[[2]int]int),
		currentBond:   make(map[int]int),
		bondPairs:     make(map[[2]int][]int),
	}
}

func (s *Store) nextID(kind models.EntityKind) int {
	s.counters[kind]++
	return s.counters[kind]
}

// Put validates and accepts one entity, assigning its surrogate id. The
// incoming id field is ignored. On rejection the returned error carries
// every violation found for the record.
func (s *Store) Put(entity interface{}) (int, error) {
	switch e := entity.(type) {
	case models.User:
		return s.putUser(e)
	case models.Company:
		return s.putCompany(e)
	case models.SeniorityLevel:
		return s.putSeniority(e)
	case models.RoleSpecialty:
		return s.putRole(e)
	case models.Benefit:
		return s.putBenefit(e)
	case models.EmploymentBond:
		return s.putBond(e)
	case models.Evaluation:
		return s.putEvaluation(e)
	case models.EvaluationBenefit:
		return s.putLink(e)
	default:
		return 0, fmt.Errorf("unsupported entity type %T", entity)
	}
}

func (s *Store) reject(kind models.EntityKind, err error) (int, error) {
	s.logger.Warnw("record rejected", "store", s.InstanceID, "kind", kind,
		"violations", len(Violations(err)))
	return 0, err
}

func (s *Store) putUser(u models.User) (int, error) {
	err := ValidateUser(u)
	if _, dup := s.taxIDs[u.TaxID]; dup {
		err = multierr.Append(err, NewViolation("tax_id", "unique", "tax id already registered"))
	}
	if _, dup := s.emails[u.Email]; dup {
		err = multierr.Append(err, NewViolation("email", "unique", "email already registered"))
	}
	if err != nil {
		return s.reject(models.KindUser, err)
	}
	u.ID = s.nextID(models.KindUser)
	s.userIdx[u.ID] = len(s.users)
	s.users = append(s.users, u)
	s.taxIDs[u.TaxID] = u.ID
	s.emails[u.Email] = u.ID
	return u.ID, nil
}

func (s *Store) putCompany(c models.Company) (int, error) {
	err := ValidateCompany(c)
	if _, dup := s.registryIDs[c.RegistryID]; dup {
		err = multierr.Append(err, NewViolation("registry_id", "unique", "registry id already registered"))
	}
	if err != nil {
		return s.reject(models.KindCompany, err)
	}
	c.ID = s.nextID(models.KindCompany)
	s.companyIdx[c.ID] = len(s.companies)
	s.companies = append(s.companies, c)
	s.registryIDs[c.RegistryID] = c.ID
	return c.ID, nil
}

func (s *Store) putSeniority(l models.SeniorityLevel) (int, error) {
	if err := ValidateSeniorityLevel(l); err != nil {
		return s.reject(models.KindSeniorityLevel, err)
	}
	l.ID = s.nextID(models.KindSeniorityLevel)
	s.seniorityIdx[l.ID] = len(s.seniorities)
	s.seniorities = append(s.seniorities, l)
	return l.ID, nil
}

func (s *Store) putRole(r models.RoleSpecialty) (int, error) {
	if err := ValidateRoleSpecialty(r); err != nil {
		return s.reject(models.KindRoleSpecialty, err)
	}
	r.ID = s.nextID(models.KindRoleSpecialty)
	s.roleIdx[r.ID] = len(s.roles)
	s.roles = append(s.roles, r)
	return r.ID, nil
}

func (s *Store) putBenefit(b models.Benefit) (int, error) {
	err := ValidateBenefit(b)
	if _, dup := s.benefitLabels[b.Label]; dup {
		err = multierr.Append(err, NewViolation("label", "unique", "benefit label already registered"))
	}
	if err != nil {
		return s.reject(models.KindBenefit, err)
	}
	b.ID = s.nextID(models.KindBenefit)
	s.benefitIdx[b.ID] = len(s.benefits)
	s.benefits = append(s.benefits, b)
	s.benefitLabels[b.Label] = b.ID
	return b.ID, nil
}

func (s *Store) checkRef(err error, field string, id int, idx map[int]int) error {
	if _, ok := idx[id]; !ok {
		return multierr.Append(err, NewViolation(field, "reference",
			fmt.Sprintf("no such %s: %d", field, id)))
	}
	return err
}

func (s *Store) putBond(b models.EmploymentBond) (int, error) {
	err := ValidateBond(b)
	err = s.checkRef(err, "user_id", b.UserID, s.userIdx)
	err = s.checkRef(err, "company_id", b.CompanyID, s.companyIdx)
	err = s.checkRef(err, "role_id", b.RoleID, s.roleIdx)
	err = s.checkRef(err, "seniority_id", b.SeniorityID, s.seniorityIdx)
	if b.Current {
		if other, exists := s.currentBond[b.UserID]; exists {
			err = multierr.Append(err, NewViolation("current", "unique_current_bond",
				fmt.Sprintf("user %d already has current bond %d", b.UserID, other)))
		}
	}
	if err != nil {
		return s.reject(models.KindEmploymentBond, err)
	}
	b.ID = s.nextID(models.KindEmploymentBond)
	s.bondIdx[b.ID] = len(s.bonds)
	s.bonds = append(s.bonds, b)
	if b.Current {
		s.currentBond[b.UserID] = b.ID
	}
	pair := [2]int{b.UserID, b.CompanyID}
	s.bondPairs[pair] = append(s.bondPairs[pair], b.ID)
	return b.ID, nil
}

func (s *Store) putEvaluation(e models.Evaluation) (int, error) {
	err := ValidateEvaluation(e)
	err = s.checkRef(err, "user_id", e.UserID, s.userIdx)
	err = s.checkRef(err, "company_id", e.CompanyID, s.companyIdx)
	if e.MostRequestedRoleID != nil {
		err = s.checkRef(err, "most_requested_role_id", *e.MostRequestedRoleID, s.roleIdx)
	}
	if err != nil {
		return s.reject(models.KindEvaluation, err)
	}
	e.ID = s.nextID(models.KindEvaluation)
	s.evaluationIdx[e.ID] = len(s.evaluations)
	s.evaluations = append(s.evaluations, e)
	return e.ID, nil
}

func (s *Store) putLink(l models.EvaluationBenefit) (int, error) {
	var err error
	err = s.checkRef(err, "evaluation_id", l.EvaluationID, s.evaluationIdx)
	err = s.checkRef(err, "benefit_id", l.BenefitID, s.benefitIdx)
	pair := [2]int{l.EvaluationID, l.BenefitID}
	if _, dup := s.linkPairs[pair]; dup {
		err = multierr.Append(err, NewViolation("benefit_id", "unique",
			fmt.Sprintf("evaluation %d already lists benefit %d", l.EvaluationID, l.BenefitID)))
	}
	if err != nil {
		return s.reject(models.KindEvaluationBenefit, err)
	}
	l.ID = s.nextID(models.KindEvaluationBenefit)
	s.linkIdx[l.ID] = len(s.links)
	s.links = append(s.links, l)
	s.linkPairs[pair] = l.ID
	return l.ID, nil
}

// Get returns a copy of the entity with the given kind and id.
func (s *Store) Get(kind models.EntityKind, id int) (interface{}, error) {
	var (
		entity interface{}
		ok     bool
	)
	switch kind {
	case models.KindUser:
		var i int
		if i, ok = s.userIdx[id]; ok {
			entity = s.users[i]
		}
	case models.KindCompany:
		var i int
		if i, ok = s.companyIdx[id]; ok {
			entity = s.companies[i]
		}
	case models.KindSeniorityLevel:
		var i int
		if i, ok = s.seniorityIdx[id]; ok {
			entity = s.seniorities[i]
		}
	case models.KindRoleSpecialty:
		var i int
		if i, ok = s.roleIdx[id]; ok {
			entity = s.roles[i]
		}
	case models.KindBenefit:
		var i int
		if i, ok = s.benefitIdx[id]; ok {
			entity = s.benefits[i]
		}
	case models.KindEmploymentBond:
		var i int
		if i, ok = s.bondIdx[id]; ok {
			entity = s.bonds[i]
		}
	case models.KindEvaluation:
		var i int
		if i, ok = s.evaluationIdx[id]; ok {
			entity = s.evaluations[i]
		}
	case models.KindEvaluationBenefit:
		var i int
		if i, ok = s.linkIdx[id]; ok {
			entity = s.links[i]
		}
	default:
		return nil, fmt.Errorf("unsupported entity kind %q", kind)
	}
	if !ok {
		return nil, fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return entity, nil
}

// Len reports how many entities of a kind the store holds.
func (s *Store) Len(kind models.EntityKind) int {
	switch kind {
	case models.KindUser:
		return len(s.users)
	case models.KindCompany:
		return len(s.companies)
	case models.KindSeniorityLevel:
		return len(s.seniorities)
	case models.KindRoleSpecialty:
		return len(s.roles)
	case models.KindBenefit:
		return len(s.benefits)
	case models.KindEmploymentBond:
		return len(s.bonds)
	case models.KindEvaluation:
		return len(s.evaluations)
	case models.KindEvaluationBenefit:
		return len(s.links)
	}
	return 0
}

// HasBondBetween reports whether any employment bond links the user and
// company. Evaluations must reference such a pair.
func (s *Store) HasBondBetween(userID, companyID int) bool {
	return len(s.bondPairs[[2]int{userID, companyID}]) > 0
}

// Scan returns a restartable cursor over all entities of a kind in
// insertion order. The cursor sees the store as of the call.
func (s *Store) Scan(kind models.EntityKind) *Cursor {
	var items []interface{}
	switch kind {
	case models.KindUser:
		for _, e := range s.users {
			items = append(items, e)
		}
	case models.KindCompany:
		for _, e := range s.companies {
			items = append(items, e)
		}
	case models.KindSeniorityLevel:
		for _, e := range s.seniorities {
			items = append(items, e)
		}
	case models.KindRoleSpecialty:
		for _, e := range s.roles {
			items = append(items, e)
		}
	case models.KindBenefit:
		for _, e := range s.benefits {
			items = append(items, e)
		}
	case models.KindEmploymentBond:
		for _, e := range s.bonds {
			items = append(items, e)
		}
	case models.KindEvaluation:
		for _, e := range s.evaluations {
			items = append(items, e)
		}
	case models.KindEvaluationBenefit:
		for _, e := range s.links {
			items = append(items, e)
		}
	}
	return &Cursor{items: items, pos: -1}
}

// Snapshot copies the store contents into a read-only view for the view
// engine. The snapshot never observes later writes.
func (s *Store) Snapshot() *Snapshot {
	return &Snapshot{
		Users:        append([]models.User(nil), s.users...),
		Companies:    append([]models.Company(nil), s.companies...),
		Seniorities:  append([]models.SeniorityLevel(nil), s.seniorities...),
		Roles:        append([]models.RoleSpecialty(nil), s.roles...),
		Benefits:     append([]models.Benefit(nil), s.benefits...),
		Bonds:        append([]models.EmploymentBond(nil), s.bonds...),
		Evaluations:  append([]models.Evaluation(nil), s.evaluations...),
		BenefitLinks: append([]models.EvaluationBenefit(nil), s.links...),
	}
}

// Cursor iterates one entity kind in insertion order. Reset rewinds it to
// the beginning.
type Cursor struct {
	items []interface{}
	pos   int
}

func (c *Cursor) Next() bool {
	if c.pos+1 >= len(c.items) {
		return false
	}
	c.pos++
	return true
}

func (c *Cursor) Value() interface{} {
	if c.pos < 0 || c.pos >= len(c.items) {
		return nil
	}
	return c.items[c.pos]
}

func (c *Cursor) Reset() {
	c.pos = -1
}

package rbac

import (
	"sync"
	"time"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// Actions granted on top of the plain CRUD verbs.
const (
	ActionReadAll = "read_all"
)

// policyTTL bounds how long a role change may take to reach the enforcer.
const policyTTL = 30 * time.Second

type Service interface {
	LoadCompanyPolicy(companyID string) error
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	loadedAt map[string]time.Time
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		loadedAt: make(map[string]time.Time),
		now:      time.Now,
		logger:   l,
	}
}

// LoadCompanyPolicy forces a reload regardless of the cache age.
func (s *service) LoadCompanyPolicy(companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(companyID)
}

// loadCompanyPolicyUnlocked swaps the rules of one domain. Other companies
// keep their loaded policy.
func (s *service) loadCompanyPolicyUnlocked(companyID string) error {
	policy, err := s.repo.GetCompanyPolicy(companyID)
	if err != nil {
		return err
	}

	// p = sub, dom, obj, act ; g = user, role, dom
	if _, err := s.enforcer.RemoveFilteredPolicy(1, companyID); err != nil {
		return err
	}
	if _, err := s.enforcer.RemoveFilteredGroupingPolicy(2, companyID); err != nil {
		return err
	}

	for _, a := range policy.Assignments {
		if _, err := s.enforcer.AddGroupingPolicy(a.EmployeeID, a.RoleID, companyID); err != nil {
			return err
		}
	}
	for _, g := range policy.Grants {
		if _, err := s.enforcer.AddPolicy(g.RoleID, companyID, g.Resource, g.Action); err != nil {
			return err
		}
	}

	s.loadedAt[companyID] = s.now()

	s.logger.Debug("rbac policy loaded",
		zap.String("company_id", companyID),
		zap.Int("role_assignments", len(policy.Assignments)),
		zap.Int("permission_grants", len(policy.Grants)),
	)

	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, ok := s.loadedAt[req.CompanyID]
	if !ok || s.now().Sub(loaded) >= policyTTL {
		if err := s.loadCompanyPolicyUnlocked(req.CompanyID); err != nil {
			return false, err
		}
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("company_id", req.CompanyID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}

package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// DefaultModel is the domain-scoped RBAC model; model.conf carries the same text.
const DefaultModel = `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && r.dom == p.dom && r.obj == p.obj && r.act == p.act
`

// NewEnforcer loads the model from modelPath, or DefaultModel when the path is empty.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	if modelPath == "" {
		m, err := model.NewModelFromString(DefaultModel)
		if err != nil {
			return nil, err
		}
		return casbin.NewEnforcer(m)
	}
	return casbin.NewEnforcer(modelPath)
}

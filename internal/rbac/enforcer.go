// Package rbac wires the casbin enforcer used by the route middleware.
// Policy is static role -> resource/action grants shipped next to the
// binary; role assignment itself lives on the employee record.
package rbac

import (
	"github.com/casbin/casbin/v2"
)

func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath, policyPath)
}

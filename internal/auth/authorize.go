package auth

import (
	"fmt"

	"inventar.org/internal/inventory"
)

// Principal represents a user with privileges resolved through the
// user → group → role → privileges chain in the snapshot's reference data.
type Principal struct {
	User       inventory.User
	Group      inventory.UserGroup
	Role       inventory.Role
	Privileges map[string]struct{}
}

// HasPrivilege reports whether the principal holds the named privilege.
func (p Principal) HasPrivilege(key string) bool {
	_, ok := p.Privileges[key]
	return ok
}

// PrivilegeNames returns the resolved privilege keys in unspecified order.
func (p Principal) PrivilegeNames() []string {
	out := make([]string, 0, len(p.Privileges))
	for k := range p.Privileges {
		out = append(out, k)
	}
	return out
}

// ResolvePrincipal walks the reference data for the given user id. A broken
// chain (missing group or role) yields a principal with no privileges rather
// than an error: enforcement is advisory, the store never sees it.
func ResolvePrincipal(state inventory.State, userID string) (Principal, error) {
	user, ok := state.Users[userID]
	if !ok {
		return Principal{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	principal := Principal{User: user, Privileges: map[string]struct{}{}}

	group, ok := state.Groups[user.GroupID]
	if !ok {
		return principal, nil
	}
	principal.Group = group

	role, ok := state.Roles[group.RoleID]
	if !ok {
		return principal, nil
	}
	principal.Role = role

	for _, privID := range role.Privileges {
		if priv, ok := state.Privileges[privID]; ok {
			principal.Privileges[priv.Name] = struct{}{}
		}
	}
	return principal, nil
}

package entities

import (
	"fmt"
	"strings"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// KnownRoles lists every role a combination may contain
var KnownRoles = []UserRole{UserRoleAdmin, UserRoleUser}

func isKnownRole(r UserRole) bool {
	for _, k := range KnownRoles {
		if k == r {
			return true
		}
	}
	return false
}

// ParseRoles splits a role combination such as "ADMIN,USER".
// Whitespace around tags is ignored; empty, unknown or repeated tags are rejected.
func ParseRoles(combination string) ([]UserRole, error) {
	parts := strings.Split(combination, ",")
	roles := make([]UserRole, 0, len(parts))
	seen := make(map[UserRole]bool, len(parts))
	for _, p := range parts {
		r := UserRole(strings.TrimSpace(p))
		if r == "" {
			return nil, fmt.Errorf("empty role in %q", combination)
		}
		if !isKnownRole(r) {
			return nil, fmt.Errorf("unknown role %q", r)
		}
		if seen[r] {
			return nil, fmt.Errorf("duplicate role %q", r)
		}
		seen[r] = true
		roles = append(roles, r)
	}
	return roles, nil
}

// IsRoleCombination reports whether combination parses
func IsRoleCombination(combination string) bool {
	_, err := ParseRoles(combination)
	return err == nil
}

// NormalizeRoles returns the canonical form of a combination (no spaces)
func NormalizeRoles(combination string) (string, error) {
	roles, err := ParseRoles(combination)
	if err != nil {
		return "", err
	}
	tags := make([]string, len(roles))
	for i, r := range roles {
		tags[i] = string(r)
	}
	return strings.Join(tags, ","), nil
}

// HasAnyRole reports whether the combination holds at least one allowed role
func HasAnyRole(combination string, allowed ...UserRole) bool {
	roles, err := ParseRoles(combination)
	if err != nil {
		return false
	}
	for _, r := range roles {
		for _, a := range allowed {
			if r == a {
				return true
			}
		}
	}
	return false
}

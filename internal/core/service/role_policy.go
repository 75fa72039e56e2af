package service

import (
	"strings"

	"cafe/internal/core/model"
)

// RolePolicy decides at login time which accounts hold the admin role.
// Matching is an exact, case-sensitive comparison of the email address.
type RolePolicy struct {
	adminEmails map[string]struct{}
}

func NewRolePolicy(adminEmails []string) *RolePolicy {
	p := &RolePolicy{adminEmails: make(map[string]struct{}, len(adminEmails))}
	for _, email := range adminEmails {
		email = strings.TrimSpace(email)
		if email != "" {
			p.adminEmails[email] = struct{}{}
		}
	}
	return p
}

// RoleFor returns the role the policy grants to email, and false when the
// policy has no opinion and the stored role stands.
func (p *RolePolicy) RoleFor(email string) (string, bool) {
	if p == nil {
		return "", false
	}
	if _, ok := p.adminEmails[email]; ok {
		return model.RoleAdmin, true
	}
	return "", false
}

// Package policy holds the authorization predicates shared by every
// listing, moderation and user-management operation.
package policy

import "prime-property/internal/domain"

func IsAdmin(actor domain.Actor) bool {
	return actor.Role == domain.RoleAdmin
}

func IsOwnerOrAdmin(actor domain.Actor, ownerID int64) bool {
	return actor.ID == ownerID || IsAdmin(actor)
}

// IsActive reports whether the live account may act at all.
func IsActive(user *domain.User) bool {
	return user != nil && user.Status != domain.StatusBlocked
}

// Require turns a predicate result into domain.ErrForbidden.
func Require(ok bool) error {
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

// CanView reports whether actor may see a listing in its current state.
// A nil actor is an anonymous visitor.
func CanView(actor *domain.Actor, p *domain.Property) bool {
	if p.IsApproved {
		return true
	}
	return actor != nil && IsOwnerOrAdmin(*actor, p.SellerID)
}

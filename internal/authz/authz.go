// Package authz holds the capability predicates used to gate every
// protected operation. All predicates are pure functions of token claims
// (plus a resource owner id where relevant) so the gate logic is testable
// without a request or a database.
//
// Route-level gates (business, admin) run before the handler loads the
// resource; the ownership gate runs after the fetch, because ownership
// cannot be known before the resource is loaded.
package authz

import (
	"github.com/google/uuid"

	"github.com/example/bizcard/internal/utils"
)

// IsAuthenticated reports whether the claims identify a user.
func IsAuthenticated(claims utils.Claims) bool {
	return claims.UserID != uuid.Nil
}

// IsBusiness reports whether the caller holds the business capability.
func IsBusiness(claims utils.Claims) bool {
	return claims.IsBusiness
}

// IsAdmin reports whether the caller holds the admin capability.
func IsAdmin(claims utils.Claims) bool {
	return claims.IsAdmin
}

// IsBusinessOrAdmin reports whether the caller holds either capability.
func IsBusinessOrAdmin(claims utils.Claims) bool {
	return claims.IsBusiness || claims.IsAdmin
}

// IsOwnerOrAdmin reports whether the caller owns the resource or is an admin.
func IsOwnerOrAdmin(claims utils.Claims, ownerID uuid.UUID) bool {
	return claims.UserID == ownerID || claims.IsAdmin
}

// IsSelf reports whether the caller targets their own record. Admin
// endpoints use it to refuse self-deletion and self-demotion.
func IsSelf(claims utils.Claims, targetID uuid.UUID) bool {
	return claims.UserID == targetID
}

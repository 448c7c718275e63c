package usecase

import (
	"movieverse/internal/data/entity"

	"github.com/google/uuid"
)

// Caller is the authenticated identity a handler passes down to the
// services, resolved by the auth middleware.
type Caller struct {
	ID   uuid.UUID
	Role entity.UserRole
}

func (c Caller) IsAdmin() bool {
	return c.Role == entity.RoleAdmin
}

// CanModifyReview reports whether the caller may edit a review:
// the review's author, or an admin.
func CanModifyReview(caller Caller, review *entity.Review) bool {
	if review == nil {
		return false
	}
	return caller.ID == review.UserID || caller.IsAdmin()
}

// CanDeleteReview follows the same rule as CanModifyReview.
func CanDeleteReview(caller Caller, review *entity.Review) bool {
	return CanModifyReview(caller, review)
}

// CanModifyCatalog gates movie and user administration. Movies have no
// owner, so the rule is role-only.
func CanModifyCatalog(caller Caller) bool {
	return caller.IsAdmin()
}

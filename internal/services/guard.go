package services

import "ecofinds/internal/apperrors"

// authorize allows an operation only when the requester owns the resource.
// A pure comparison: services call it after the existence check, so an
// unknown id still surfaces as not-found rather than forbidden.
func authorize(userID, ownerID string) error {
	if userID != ownerID {
		return apperrors.ErrForbidden
	}
	return nil
}

package service

import (
	domainerrors "mealplanner/internal/domain/errors"

	"github.com/google/uuid"
)

// Owned is implemented by aggregate roots. Children never carry an owner field;
// they are checked through the root they were resolved from.
type Owned interface {
	GetOwnerID() uuid.UUID
}

// AssertOwned fails with ErrForbidden when root is not owned by callerID.
// Callers must resolve the root first so a missing record surfaces as NotFound
// and an existing foreign record as Forbidden. A root without an owner, including
// a typed nil pointer, is never owned.
func AssertOwned(root Owned, callerID uuid.UUID) error {
	if root == nil {
		return domainerrors.ErrForbidden
	}
	if ownerID := root.GetOwnerID(); ownerID == uuid.Nil || ownerID != callerID {
		return domainerrors.ErrForbidden
	}

	return nil
}

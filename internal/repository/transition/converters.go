package transition

import (
	"orderflow/internal/entities"
)

func ToDomain(t *PendingTransitionDB) *entities.PendingTransition {
	if t == nil {
		return nil
	}

	return &entities.PendingTransition{
		ID:        t.ID,
		OrderID:   t.OrderID,
		Kind:      entities.TransitionKind(t.Kind),
		DueAt:     t.DueAt,
		State:     entities.TransitionStateType(t.State),
		Attempts:  t.Attempts,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func ToDomainList(transitionsDB []PendingTransitionDB) []entities.PendingTransition {
	if len(transitionsDB) == 0 {
		return []entities.PendingTransition{}
	}

	result := make([]entities.PendingTransition, len(transitionsDB))
	for i, transitionDB := range transitionsDB {
		result[i] = *ToDomain(&transitionDB)
	}
	return result
}

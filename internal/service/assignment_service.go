package service

import (
	"context"

	"fleet-service/internal/model"
	"fleet-service/internal/permissions"
	"fleet-service/internal/repository"
)

// AssignmentService lists assignment history; drivers see only their own
// rows.
type AssignmentService struct {
	assignments repository.AssignmentStore
}

func NewAssignmentService(assignments repository.AssignmentStore) *AssignmentService {
	return &AssignmentService{assignments: assignments}
}

func (s *AssignmentService) List(ctx context.Context, principal model.Principal) ([]model.AssignmentHistory, error) {
	if !permissions.Resolve(principal.Role).CanView {
		return nil, ErrPermissionDenied
	}

	history, err := s.assignments.List(ctx)
	if err != nil {
		return nil, err
	}
	if !principal.IsDriver() {
		return history, nil
	}

	filtered := make([]model.AssignmentHistory, 0, len(history))
	for _, a := range history {
		if a.DriverName == principal.Name {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

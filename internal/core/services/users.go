package services

import (
	"context"
	"fmt"

	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driven"
	"github.com/caopengau/aiready-skills/internal/core/ports/driving"
)

// Ensure UserService implements the interface.
var _ driving.UserService = (*UserService)(nil)

// UserService manages customer accounts.
type UserService struct {
	records  *Collection[domain.User]
	activity driving.ActivityService
}

// NewUserService creates a new user service over the given store.
func NewUserService(store driven.RecordStore[domain.User]) *UserService {
	return &UserService{records: NewCollection(store)}
}

// SetActivity sets the activity log used to record operations.
func (s *UserService) SetActivity(activity driving.ActivityService) {
	s.activity = activity
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.records.List(ctx)
}

// Get retrieves a user by ID. Returns (nil, nil) when absent.
func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.records.Get(ctx, id)
}

// Create validates and stores a new user, assigning its ID.
func (s *UserService) Create(ctx context.Context, name, email string) (*domain.User, error) {
	user, err := s.records.Create(ctx, domain.User{Name: name, Email: email})
	if err != nil {
		return nil, err
	}
	s.record(ctx, "user.create", fmt.Sprintf("user %d", user.ID), fmt.Sprintf("%s <%s>", user.Name, user.Email))
	return user, nil
}

// Update modifies an existing user. An empty name or email leaves that
// field unchanged. Returns (nil, nil) when absent.
func (s *UserService) Update(ctx context.Context, id int, name, email string) (*domain.User, error) {
	user, err := s.records.Mutate(ctx, id, func(u domain.User) domain.User {
		if name != "" {
			u.Name = name
		}
		if email != "" {
			u.Email = email
		}
		return u
	})
	if err != nil || user == nil {
		return nil, err
	}
	s.record(ctx, "user.update", fmt.Sprintf("user %d", id), "")
	return user, nil
}

// Delete removes a user by ID, reporting whether it existed.
func (s *UserService) Delete(ctx context.Context, id int) (bool, error) {
	existed, err := s.records.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if existed {
		s.record(ctx, "user.delete", fmt.Sprintf("user %d", id), "")
	}
	return existed, nil
}

// record appends to the activity log when one is configured.
func (s *UserService) record(ctx context.Context, action, entity, detail string) {
	if s.activity == nil {
		return
	}
	//nolint:errcheck // Activity logging must not fail the operation.
	_ = s.activity.Record(ctx, action, entity, detail)
}

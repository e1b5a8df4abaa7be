package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/employee-service/internal/errs"
	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/deppfellow/employee-service/internal/repository"
	"github.com/deppfellow/employee-service/internal/sqlerr"
	"github.com/rs/zerolog"
)

// WelcomeNotifier schedules the welcome email for a newly created employee.
type WelcomeNotifier interface {
	EnqueueWelcomeEmail(ctx context.Context, to, firstName string) error
}

// EmployeeService implements the employee use cases on top of an EmployeeStore.
//
// Email uniqueness is checked on create only. The store's unique constraint
// is the final arbiter when two creates race on the same email.
type EmployeeService struct {
	store    repository.EmployeeStore
	notifier WelcomeNotifier
	logger   *zerolog.Logger
}

// NewEmployeeService builds the service. notifier may be nil, which disables welcome emails.
func NewEmployeeService(store repository.EmployeeStore, notifier WelcomeNotifier, logger *zerolog.Logger) *EmployeeService {
	return &EmployeeService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Create persists a new employee and returns it with its assigned id.
//
// It fails with *errs.DuplicateResourceError when the email is already
// taken, both when the pre-check sees the record and when a concurrent
// create wins the race at the store.
func (s *EmployeeService) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	logger := loggerFromContext(ctx, s.logger)

	_, found, err := s.store.FindByEmail(ctx, e.Email)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check employee email: %w", err)
	}
	if found {
		return employee.Employee{}, errs.NewDuplicateResourceError("Employee", "email", e.Email)
	}

	e.ID = 0
	saved, err := s.store.Save(ctx, e)
	if err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return employee.Employee{}, errs.NewDuplicateResourceError("Employee", "email", e.Email)
		}
		return employee.Employee{}, err
	}

	logger.Info().
		Str("event", "employee_created").
		Int64("employee_id", saved.ID).
		Msg("employee created")

	if s.notifier != nil {
		if err := s.notifier.EnqueueWelcomeEmail(ctx, saved.Email, saved.FirstName); err != nil {
			logger.Warn().
				Err(err).
				Int64("employee_id", saved.ID).
				Msg("failed to enqueue welcome email")
		}
	}

	return saved, nil
}

// List returns all employees ordered by id, or an empty slice.
func (s *EmployeeService) List(ctx context.Context) ([]employee.Employee, error) {
	return s.store.FindAll(ctx)
}

// GetByID reports the employee with id, if any.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (employee.Employee, bool, error) {
	return s.store.FindByID(ctx, id)
}

// FindByEmail reports the employee registered with email, if any.
func (s *EmployeeService) FindByEmail(ctx context.Context, email string) (employee.Employee, bool, error) {
	return s.store.FindByEmail(ctx, email)
}

// FindByNames reports the lowest-id employee with both names, if any.
func (s *EmployeeService) FindByNames(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	return s.store.FindByNames(ctx, firstName, lastName)
}

// Update overwrites the mutable fields of existing with patch and saves it.
//
// The caller is expected to have loaded existing first. Email uniqueness is
// not re-checked here; a collision surfaces as the store's constraint error.
func (s *EmployeeService) Update(ctx context.Context, existing employee.Employee, patch employee.Patch) (employee.Employee, error) {
	updated, err := s.store.Save(ctx, existing.Apply(patch))
	if err != nil {
		return employee.Employee{}, err
	}

	loggerFromContext(ctx, s.logger).Info().
		Str("event", "employee_updated").
		Int64("employee_id", updated.ID).
		Msg("employee updated")

	return updated, nil
}

// Delete removes the employee with id. Deleting a missing id succeeds.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}

	loggerFromContext(ctx, s.logger).Info().
		Str("event", "employee_deleted").
		Int64("employee_id", id).
		Msg("employee deleted")

	return nil
}

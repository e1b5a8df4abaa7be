package repository

import (
	"context"

	"github.com/deppfellow/employee-service/internal/model/employee"
)

const employeesTable = "employees"

// EmployeeStore persists employees keyed by a store-assigned id.
//
// Lookups that may miss return (record, found, err); a miss is never an error.
// Every implementation enforces email uniqueness at the storage level and
// surfaces a violation as a driver error that sqlerr classifies as
// sqlerr.UniqueViolation.
type EmployeeStore interface {
	// Save inserts e when it has no id and returns it with the assigned id.
	// Otherwise it overwrites the record with e.ID. Updating an id that does
	// not exist fails with a no-rows error.
	Save(ctx context.Context, e employee.Employee) (employee.Employee, error)
	FindByID(ctx context.Context, id int64) (employee.Employee, bool, error)
	FindByEmail(ctx context.Context, email string) (employee.Employee, bool, error)
	// FindAll returns every record ordered by id. The result is never nil.
	FindAll(ctx context.Context) ([]employee.Employee, error)
	// DeleteByID removes the record if present. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id int64) error
	// FindByNames returns the lowest-id record whose first and last names both match.
	FindByNames(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error)
}

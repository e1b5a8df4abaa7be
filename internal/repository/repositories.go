// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
package repository

import (
	"github.com/deppfellow/employee-service/internal/config"
	"github.com/deppfellow/employee-service/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Employee EmployeeStore
}

// NewRepositories constructs the repository container, backing every store
// with the database driver selected in config.
func NewRepositories(s *server.Server) *Repositories {
	var employees EmployeeStore
	switch s.Config.Database.Driver {
	case config.DriverSQLite:
		employees = NewSQLiteEmployeeRepository(s)
	default:
		employees = NewEmployeeRepository(s)
	}

	return &Repositories{
		Employee: employees,
	}
}

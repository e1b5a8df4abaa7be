package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/jackc/pgx/v5"
)

// EmployeeRepository is the PostgreSQL EmployeeStore.
type EmployeeRepository struct {
	server *server.Server
}

var _ EmployeeStore = (*EmployeeRepository)(nil)

func NewEmployeeRepository(s *server.Server) *EmployeeRepository {
	return &EmployeeRepository{server: s}
}

func (r *EmployeeRepository) Save(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	stmt := `
		INSERT INTO
			employees (first_name, last_name, email)
		VALUES
			(@first_name, @last_name, @email)
		RETURNING
			id, first_name, last_name, email
	`
	args := pgx.NamedArgs{
		"first_name": e.FirstName,
		"last_name":  e.LastName,
		"email":      e.Email,
	}

	if !e.IsNew() {
		stmt = `
			UPDATE employees
			SET
				first_name = @first_name,
				last_name = @last_name,
				email = @email
			WHERE
				id = @id
			RETURNING
				id, first_name, last_name, email
		`
		args["id"] = e.ID
	}

	rows, err := r.server.DB.Pool.Query(ctx, stmt, args)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to execute save employee query for email=%s: %w", e.Email, err)
	}

	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[employee.Employee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, fmt.Errorf("table:%s: id=%d: %w", employeesTable, e.ID, err)
		}
		return employee.Employee{}, fmt.Errorf("failed to collect row from table:%s: %w", employeesTable, err)
	}

	return saved, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (employee.Employee, bool, error) {
	stmt := `
		SELECT
			id, first_name, last_name, email
		FROM
			employees
		WHERE
			id = @id
	`
	return r.findOne(ctx, stmt, pgx.NamedArgs{"id": id})
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (employee.Employee, bool, error) {
	stmt := `
		SELECT
			id, first_name, last_name, email
		FROM
			employees
		WHERE
			email = @email
	`
	return r.findOne(ctx, stmt, pgx.NamedArgs{"email": email})
}

func (r *EmployeeRepository) FindByNames(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	stmt := `
		SELECT
			id, first_name, last_name, email
		FROM
			employees
		WHERE
			first_name = @first_name
			AND last_name = @last_name
		ORDER BY
			id
		LIMIT
			1
	`
	return r.findOne(ctx, stmt, pgx.NamedArgs{
		"first_name": firstName,
		"last_name":  lastName,
	})
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	stmt := `
		SELECT
			id, first_name, last_name, email
		FROM
			employees
		ORDER BY
			id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list employees query: %w", err)
	}

	employees, err := pgx.CollectRows(rows, pgx.RowToStructByName[employee.Employee])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:%s: %w", employeesTable, err)
	}
	if employees == nil {
		employees = []employee.Employee{}
	}

	return employees, nil
}

func (r *EmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	stmt := `
		DELETE FROM employees
		WHERE
			id = @id
	`

	if _, err := r.server.DB.Pool.Exec(ctx, stmt, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("failed to delete employee with id=%d: %w", id, err)
	}
	return nil
}

func (r *EmployeeRepository) findOne(ctx context.Context, stmt string, args pgx.NamedArgs) (employee.Employee, bool, error) {
	rows, err := r.server.DB.Pool.Query(ctx, stmt, args)
	if err != nil {
		return employee.Employee{}, false, fmt.Errorf("failed to execute employee query: %w", err)
	}

	e, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[employee.Employee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, false, nil
		}
		return employee.Employee{}, false, fmt.Errorf("failed to collect row from table:%s: %w", employeesTable, err)
	}

	return e, true, nil
}

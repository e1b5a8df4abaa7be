package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/deppfellow/employee-service/internal/server"
)

// SQLiteEmployeeRepository is the SQLite EmployeeStore.
type SQLiteEmployeeRepository struct {
	server *server.Server
}

var _ EmployeeStore = (*SQLiteEmployeeRepository)(nil)

func NewSQLiteEmployeeRepository(s *server.Server) *SQLiteEmployeeRepository {
	return &SQLiteEmployeeRepository{server: s}
}

func (r *SQLiteEmployeeRepository) db() *sql.DB {
	return r.server.SQLite.DB
}

func (r *SQLiteEmployeeRepository) Save(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	args := []any{
		sql.Named("first_name", e.FirstName),
		sql.Named("last_name", e.LastName),
		sql.Named("email", e.Email),
	}

	stmt := `
		INSERT INTO employees (first_name, last_name, email)
		VALUES (@first_name, @last_name, @email)
		RETURNING id, first_name, last_name, email
	`
	if !e.IsNew() {
		stmt = `
			UPDATE employees
			SET first_name = @first_name,
				last_name = @last_name,
				email = @email,
				updated_at = CURRENT_TIMESTAMP
			WHERE id = @id
			RETURNING id, first_name, last_name, email
		`
		args = append(args, sql.Named("id", e.ID))
	}

	saved, err := scanEmployee(r.db().QueryRowContext(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, fmt.Errorf("table:%s: id=%d: %w", employeesTable, e.ID, err)
		}
		return employee.Employee{}, fmt.Errorf("saving employee email=%s: %w", e.Email, err)
	}

	return saved, nil
}

func (r *SQLiteEmployeeRepository) FindByID(ctx context.Context, id int64) (employee.Employee, bool, error) {
	return r.findOne(ctx, `
		SELECT id, first_name, last_name, email
		FROM employees
		WHERE id = @id
	`, sql.Named("id", id))
}

func (r *SQLiteEmployeeRepository) FindByEmail(ctx context.Context, email string) (employee.Employee, bool, error) {
	return r.findOne(ctx, `
		SELECT id, first_name, last_name, email
		FROM employees
		WHERE email = @email
	`, sql.Named("email", email))
}

func (r *SQLiteEmployeeRepository) FindByNames(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	return r.findOne(ctx, `
		SELECT id, first_name, last_name, email
		FROM employees
		WHERE first_name = @first_name AND last_name = @last_name
		ORDER BY id
		LIMIT 1
	`, sql.Named("first_name", firstName), sql.Named("last_name", lastName))
}

func (r *SQLiteEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT id, first_name, last_name, email
		FROM employees
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *SQLiteEmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db().ExecContext(ctx, `DELETE FROM employees WHERE id = @id`, sql.Named("id", id)); err != nil {
		return fmt.Errorf("deleting employee id=%d: %w", id, err)
	}
	return nil
}

func (r *SQLiteEmployeeRepository) findOne(ctx context.Context, stmt string, args ...any) (employee.Employee, bool, error) {
	e, err := scanEmployee(r.db().QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return employee.Employee{}, false, nil
	}
	if err != nil {
		return employee.Employee{}, false, fmt.Errorf("querying employee: %w", err)
	}
	return e, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email)
	return e, err
}

package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/employee-service/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"employees_email_key", "email"},
		{"employees_email_ukey", "email"},
		{"unique_employees_email", "email"},
		{"employees_pkey", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			assert.Equal(t, tt.want, extractColumnForUniqueViolation(tt.constraint))
		})
	}
}

func TestGenerateErrorCode(t *testing.T) {
	assert.Equal(t, "EMPLOYEE_ALREADY_EXISTS", generateErrorCode("employees", UniqueViolation))
	assert.Equal(t, "EMPLOYEE_REQUIRED", generateErrorCode("employees", NotNullViolation))
	assert.Equal(t, "RECORD_ERROR", generateErrorCode("", Other))
}

func TestHandleError_PgUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "employees_email_key"`,
		TableName:      "employees",
		ConstraintName: "employees_email_key",
	}

	wrapped := fmt.Errorf("insert employee: %w", pgErr)
	assert.True(t, IsUniqueViolation(wrapped))

	httpErr := requireHTTPError(t, HandleError(wrapped))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "EMPLOYEE_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Employee with this Email already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleError_PgNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		TableName:  "employees",
		ColumnName: "first_name",
	}

	httpErr := requireHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "The First Name is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "first_name", httpErr.Errors[0].Field)
}

func TestHandleError_SQLiteUniqueViolation(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE employees (id INTEGER PRIMARY KEY AUTOINCREMENT, email TEXT NOT NULL UNIQUE)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO employees (email) VALUES ('ramesh@gmail.com')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO employees (email) VALUES ('ramesh@gmail.com')`)
	require.Error(t, err)

	sqlErr := FromDriver(fmt.Errorf("insert employee: %w", err))
	require.NotNil(t, sqlErr)
	assert.Equal(t, UniqueViolation, sqlErr.Code)
	assert.Equal(t, "employees", sqlErr.TableName)
	assert.Equal(t, "email", sqlErr.ColumnName)

	httpErr := requireHTTPError(t, HandleError(err))
	assert.Equal(t, "EMPLOYEE_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Employee with this Email already exists", httpErr.Message)
}

func TestHandleError_SQLiteNotNullViolation(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE employees (id INTEGER PRIMARY KEY, first_name TEXT NOT NULL)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO employees (first_name) VALUES (NULL)`)
	require.Error(t, err)
	assert.Equal(t, NotNullViolation, ErrCode(err))
}

func TestHandleError_NoRows(t *testing.T) {
	httpErr := requireHTTPError(t, HandleError(fmt.Errorf("table:employees: %w", pgx.ErrNoRows)))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Employee not found", httpErr.Message)
	assert.Equal(t, "EMPLOYEE_NOT_FOUND", httpErr.Code)

	httpErr = requireHTTPError(t, HandleError(sql.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("Employee not found", true, nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleError_UnknownIsInternal(t *testing.T) {
	httpErr := requireHTTPError(t, HandleError(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, Other, ErrCode(errors.New("connection reset")))
}

package sqlerr

import (
	"regexp"
	"strconv"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// sqliteConstraintTarget extracts "<table>.<column>" from messages such as
// "UNIQUE constraint failed: employees.email".
var sqliteConstraintTarget = regexp.MustCompile(`constraint failed: ([A-Za-z_][A-Za-z0-9_]*)\.([A-Za-z_][A-Za-z0-9_]*)`)

// ConvertSQLiteError converts a modernc.org/sqlite error into our custom sqlerr.Error.
//
// SQLite reports the extended result code (e.g. SQLITE_CONSTRAINT_UNIQUE) and
// names the table and column only inside the message, so both are parsed out.
func ConvertSQLiteError(src *sqlite.Error) *Error {
	code := Other
	switch src.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		code = UniqueViolation
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		code = ForeignKeyViolation
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		code = NotNullViolation
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		code = CheckViolation
	}

	sqlErr := &Error{
		Code:         code,
		Severity:     SeverityError,
		DatabaseCode: strconv.Itoa(src.Code()),
		Message:      src.Error(),
		driverErr:    src,
	}

	if matches := sqliteConstraintTarget.FindStringSubmatch(src.Error()); len(matches) == 3 {
		sqlErr.TableName = matches[1]
		sqlErr.ColumnName = matches[2]
	}

	return sqlErr
}

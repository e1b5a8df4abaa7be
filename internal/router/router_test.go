package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/deppfellow/employee-service/internal/errs"
	"github.com/deppfellow/employee-service/internal/handler"
	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/deppfellow/employee-service/internal/repository"
	"github.com/deppfellow/employee-service/internal/service"
	"github.com/deppfellow/employee-service/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	s := testutil.NewSQLiteServer(t)
	services, err := service.NewServices(s, repository.NewRepositories(s))
	require.NoError(t, err)

	return NewRouter(s, handler.NewHandlers(s, services))
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

const rameshJSON = `{"firstName":"Ramesh","lastName":"Fadatare","email":"ramesh@gmail.com"}`

func createRamesh(t *testing.T, e *echo.Echo) employee.Employee {
	t.Helper()
	rec := doRequest(t, e, http.MethodPost, "/api/employees", rameshJSON)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[employee.Employee](t, rec)
}

func TestCreateEmployee(t *testing.T) {
	e := setupTestRouter(t)

	created := createRamesh(t, e)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ramesh", created.FirstName)
	assert.Equal(t, "Fadatare", created.LastName)
	assert.Equal(t, "ramesh@gmail.com", created.Email)
}

func TestCreateEmployee_DuplicateEmailIsConflict(t *testing.T) {
	e := setupTestRouter(t)
	createRamesh(t, e)

	rec := doRequest(t, e, http.MethodPost, "/api/employees",
		`{"firstName":"Other","lastName":"Person","email":"ramesh@gmail.com"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decode[errs.HTTPError](t, rec)
	assert.Equal(t, "EMPLOYEE_ALREADY_EXISTS", body.Code)
	assert.Equal(t, "Employee already exists with given email", body.Message)

	list := decode[[]employee.Employee](t, doRequest(t, e, http.MethodGet, "/api/employees", ""))
	assert.Len(t, list, 1)
}

func TestCreateEmployee_MissingFields(t *testing.T) {
	e := setupTestRouter(t)

	rec := doRequest(t, e, http.MethodPost, "/api/employees", `{"firstName":"Ramesh"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errs.HTTPError](t, rec)
	fields := make([]string, 0, len(body.Errors))
	for _, fe := range body.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"lastName", "email"}, fields)
}

func TestListEmployees(t *testing.T) {
	e := setupTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	createRamesh(t, e)
	rec = doRequest(t, e, http.MethodPost, "/api/employees", `{"firstName":"John","lastName":"Cena","email":"cena@gmail.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	list := decode[[]employee.Employee](t, doRequest(t, e, http.MethodGet, "/api/employees", ""))
	require.Len(t, list, 2)
	assert.Equal(t, "ramesh@gmail.com", list[0].Email)
	assert.Equal(t, "cena@gmail.com", list[1].Email)
}

func TestGetEmployeeByID(t *testing.T) {
	e := setupTestRouter(t)
	created := createRamesh(t, e)

	rec := doRequest(t, e, http.MethodGet, "/api/employees/"+itoa(created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[employee.Employee](t, rec))

	rec = doRequest(t, e, http.MethodGet, "/api/employees/9999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, handler.EmployeeNotFoundCode, decode[errs.HTTPError](t, rec).Code)
}

func TestGetEmployeeByID_InvalidID(t *testing.T) {
	e := setupTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/api/employees/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, e, http.MethodGet, "/api/employees/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateEmployee(t *testing.T) {
	e := setupTestRouter(t)
	created := createRamesh(t, e)

	rec := doRequest(t, e, http.MethodPut, "/api/employees/"+itoa(created.ID),
		`{"firstName":"Ram","lastName":"Jadhav","email":"ram@gmail.com"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, employee.Employee{
		ID:        created.ID,
		FirstName: "Ram",
		LastName:  "Jadhav",
		Email:     "ram@gmail.com",
	}, decode[employee.Employee](t, rec))
}

func TestUpdateEmployee_IgnoresBodyID(t *testing.T) {
	e := setupTestRouter(t)
	created := createRamesh(t, e)

	rec := doRequest(t, e, http.MethodPut, "/api/employees/"+itoa(created.ID),
		`{"id":777,"firstName":"Ram","lastName":"Jadhav","email":"ram@gmail.com"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, created.ID, decode[employee.Employee](t, rec).ID)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	e := setupTestRouter(t)

	rec := doRequest(t, e, http.MethodPut, "/api/employees/9999",
		`{"firstName":"Ram","lastName":"Jadhav","email":"ram@gmail.com"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, handler.EmployeeNotFoundCode, decode[errs.HTTPError](t, rec).Code)
}

func TestUpdateEmployee_EmailCollisionIsRejectedByStore(t *testing.T) {
	e := setupTestRouter(t)
	createRamesh(t, e)

	rec := doRequest(t, e, http.MethodPost, "/api/employees", `{"firstName":"John","lastName":"Cena","email":"cena@gmail.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	john := decode[employee.Employee](t, rec)

	rec = doRequest(t, e, http.MethodPut, "/api/employees/"+itoa(john.ID),
		`{"firstName":"John","lastName":"Cena","email":"ramesh@gmail.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPLOYEE_ALREADY_EXISTS", decode[errs.HTTPError](t, rec).Code)
}

func TestDeleteEmployee_Idempotent(t *testing.T) {
	e := setupTestRouter(t)
	created := createRamesh(t, e)

	for i := 0; i < 2; i++ {
		rec := doRequest(t, e, http.MethodDelete, "/api/employees/"+itoa(created.ID), "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Employee successfully deleted!"}`, rec.Body.String())
	}

	rec := doRequest(t, e, http.MethodGet, "/api/employees/"+itoa(created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLookupEmployee(t *testing.T) {
	e := setupTestRouter(t)
	created := createRamesh(t, e)

	rec := doRequest(t, e, http.MethodGet, "/api/employees/lookup?email=ramesh@gmail.com", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, created, decode[employee.Employee](t, rec))

	rec = doRequest(t, e, http.MethodGet, "/api/employees/lookup?firstName=Ramesh&lastName=Fadatare", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[employee.Employee](t, rec))

	rec = doRequest(t, e, http.MethodGet, "/api/employees/lookup?email=nobody@gmail.com", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, e, http.MethodGet, "/api/employees/lookup?firstName=Ramesh", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportEmployees(t *testing.T) {
	e := setupTestRouter(t)
	created := createRamesh(t, e)

	rec := doRequest(t, e, http.MethodGet, "/api/employees/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=employees.csv", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "id,firstName,lastName,email\n"+itoa(created.ID)+",Ramesh,Fadatare,ramesh@gmail.com\n", rec.Body.String())
}

func TestSystemRoutes(t *testing.T) {
	e := setupTestRouter(t)

	rec := doRequest(t, e, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[handler.HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Checks["database"].Status)
	assert.NotContains(t, health.Checks, "redis")

	rec = doRequest(t, e, http.MethodGet, "/docs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/static/openapi.json")

	rec = doRequest(t, e, http.MethodGet, "/static/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi"`)

	rec = doRequest(t, e, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode[errs.HTTPError](t, rec).Message)
}

func TestRequestIDIsEchoed(t *testing.T) {
	e := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

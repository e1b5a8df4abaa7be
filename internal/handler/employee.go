package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/deppfellow/employee-service/internal/errs"
	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/deppfellow/employee-service/internal/service"
	"github.com/labstack/echo/v4"
)

// EmployeeNotFoundCode is the error code of every missing-employee response.
const EmployeeNotFoundCode = "EMPLOYEE_NOT_FOUND"

type EmployeeHandler struct {
	Handler
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:         NewHandler(s),
		employeeService: employeeService,
	}
}

func employeeNotFound() error {
	code := EmployeeNotFoundCode
	return errs.NewNotFoundError("Employee not found", true, &code)
}

func (h *EmployeeHandler) CreateEmployee(c echo.Context, payload *employee.CreateEmployeePayload) (employee.Employee, error) {
	return h.employeeService.Create(c.Request().Context(), payload.Employee())
}

func (h *EmployeeHandler) ListEmployees(c echo.Context, _ *employee.ListEmployeesPayload) ([]employee.Employee, error) {
	return h.employeeService.List(c.Request().Context())
}

func (h *EmployeeHandler) GetEmployeeByID(c echo.Context, payload *employee.GetEmployeeByIDPayload) (employee.Employee, error) {
	e, found, err := h.employeeService.GetByID(c.Request().Context(), payload.ID)
	if err != nil {
		return employee.Employee{}, err
	}
	if !found {
		return employee.Employee{}, employeeNotFound()
	}
	return e, nil
}

// UpdateEmployee loads the employee first so a missing id is a 404 rather
// than a failed write.
func (h *EmployeeHandler) UpdateEmployee(c echo.Context, payload *employee.UpdateEmployeePayload) (employee.Employee, error) {
	ctx := c.Request().Context()

	existing, found, err := h.employeeService.GetByID(ctx, payload.ID)
	if err != nil {
		return employee.Employee{}, err
	}
	if !found {
		return employee.Employee{}, employeeNotFound()
	}

	return h.employeeService.Update(ctx, existing, payload.Patch())
}

func (h *EmployeeHandler) DeleteEmployee(c echo.Context, payload *employee.DeleteEmployeePayload) (employee.DeleteEmployeeResponse, error) {
	if err := h.employeeService.Delete(c.Request().Context(), payload.ID); err != nil {
		return employee.DeleteEmployeeResponse{}, err
	}
	return employee.DeleteEmployeeResponse{Message: employee.DeletedMessage}, nil
}

// LookupEmployee finds one employee by email, or by first and last name when no email is given.
func (h *EmployeeHandler) LookupEmployee(c echo.Context, payload *employee.LookupEmployeePayload) (employee.Employee, error) {
	ctx := c.Request().Context()

	var (
		e     employee.Employee
		found bool
		err   error
	)
	if payload.ByEmail() {
		e, found, err = h.employeeService.FindByEmail(ctx, payload.Email)
	} else {
		e, found, err = h.employeeService.FindByNames(ctx, payload.FirstName, payload.LastName)
	}
	if err != nil {
		return employee.Employee{}, err
	}
	if !found {
		return employee.Employee{}, employeeNotFound()
	}
	return e, nil
}

// ExportEmployees renders every employee as CSV with a header row.
func (h *EmployeeHandler) ExportEmployees(c echo.Context, _ *employee.ListEmployeesPayload) ([]byte, error) {
	employees, err := h.employeeService.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "firstName", "lastName", "email"}); err != nil {
		return nil, err
	}
	for _, e := range employees {
		if err := w.Write([]string{strconv.FormatInt(e.ID, 10), e.FirstName, e.LastName, e.Email}); err != nil {
			return nil, err
		}
	}
	w.Flush()

	return buf.Bytes(), w.Error()
}

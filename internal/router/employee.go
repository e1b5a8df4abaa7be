package router

import (
	"net/http"

	"github.com/deppfellow/employee-service/internal/handler"
	"github.com/deppfellow/employee-service/internal/model/employee"
	"github.com/labstack/echo/v4"
)

func registerEmployeeRoutes(r *echo.Group, h *handler.Handlers) {
	e := h.Employee
	employees := r.Group("/employees")

	employees.POST("", handler.Handle(
		e.Handler,
		e.CreateEmployee,
		http.StatusCreated,
		handler.Payload[employee.CreateEmployeePayload](),
	))

	employees.GET("", handler.Handle(
		e.Handler,
		e.ListEmployees,
		http.StatusOK,
		handler.Payload[employee.ListEmployeesPayload](),
	))

	// Static segments are registered before /:id.
	employees.GET("/export", handler.HandleFile(
		e.Handler,
		e.ExportEmployees,
		http.StatusOK,
		handler.Payload[employee.ListEmployeesPayload](),
		"employees.csv",
		"text/csv",
	))

	employees.GET("/lookup", handler.Handle(
		e.Handler,
		e.LookupEmployee,
		http.StatusOK,
		handler.Payload[employee.LookupEmployeePayload](),
	))

	employees.GET("/:id", handler.Handle(
		e.Handler,
		e.GetEmployeeByID,
		http.StatusOK,
		handler.Payload[employee.GetEmployeeByIDPayload](),
	))

	employees.PUT("/:id", handler.Handle(
		e.Handler,
		e.UpdateEmployee,
		http.StatusOK,
		handler.Payload[employee.UpdateEmployeePayload](),
	))

	employees.DELETE("/:id", handler.Handle(
		e.Handler,
		e.DeleteEmployee,
		http.StatusOK,
		handler.Payload[employee.DeleteEmployeePayload](),
	))
}

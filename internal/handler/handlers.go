// Package handler is the HTTP layer that sits right after the router.
//
// It binds and validates requests through the validation package,
// calls the service layer and shapes the responses.
package handler

import (
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/deppfellow/employee-service/internal/service"
)

// Handlers groups all HTTP handlers so the router receives a single value.
type Handlers struct {
	Employee *EmployeeHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Employee: NewEmployeeHandler(s, services.Employee),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}

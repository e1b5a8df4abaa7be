package employee

import (
	"github.com/deppfellow/employee-service/internal/validation"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ------------------------------------------------------------

type CreateEmployeePayload struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

func (p *CreateEmployeePayload) Validate() error {
	return validate.Struct(p)
}

// Employee converts the payload into an unsaved Employee.
func (p *CreateEmployeePayload) Employee() Employee {
	return New(p.FirstName, p.LastName, p.Email)
}

// ------------------------------------------------------------

type ListEmployeesPayload struct{}

func (p *ListEmployeesPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type GetEmployeeByIDPayload struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (p *GetEmployeeByIDPayload) Validate() error {
	return validate.Struct(p)
}

// ------------------------------------------------------------

// UpdateEmployeePayload replaces all three mutable fields of an employee.
type UpdateEmployeePayload struct {
	ID        int64  `param:"id" json:"-" validate:"required,min=1"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

func (p *UpdateEmployeePayload) Validate() error {
	return validate.Struct(p)
}

// Patch returns the whitelisted fields of the payload.
func (p *UpdateEmployeePayload) Patch() Patch {
	return Patch{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
}

// ------------------------------------------------------------

type DeleteEmployeePayload struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (p *DeleteEmployeePayload) Validate() error {
	return validate.Struct(p)
}

// DeleteEmployeeResponse is returned whether or not the employee existed.
type DeleteEmployeeResponse struct {
	Message string `json:"message"`
}

// DeletedMessage is the fixed confirmation returned by the delete endpoint.
const DeletedMessage = "Employee successfully deleted!"

// ------------------------------------------------------------

// LookupEmployeePayload finds one employee either by email or by first and last name.
type LookupEmployeePayload struct {
	Email     string `query:"email"`
	FirstName string `query:"firstName"`
	LastName  string `query:"lastName"`
}

// ByEmail reports whether the lookup targets the email field.
func (p *LookupEmployeePayload) ByEmail() bool {
	return p.Email != ""
}

func (p *LookupEmployeePayload) Validate() error {
	if p.ByEmail() {
		return nil
	}

	var errs validation.CustomValidationErrors
	if p.FirstName == "" {
		errs = append(errs, validation.CustomValidationError{
			Field:   "firstName",
			Message: "is required when email is not provided",
		})
	}
	if p.LastName == "" {
		errs = append(errs, validation.CustomValidationError{
			Field:   "lastName",
			Message: "is required when email is not provided",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Package employee holds the Employee entity and the request payloads
// accepted by the employee endpoints.
package employee

// Employee is the single record managed by the service.
//
// ID is assigned by the store on first save and never changes afterwards.
type Employee struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
}

// New returns an unsaved Employee. The store assigns the ID.
func New(firstName, lastName, email string) Employee {
	return Employee{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
}

// IsNew reports whether e has not been persisted yet.
func (e Employee) IsNew() bool {
	return e.ID == 0
}

// Patch lists the fields an update may replace.
type Patch struct {
	FirstName string
	LastName  string
	Email     string
}

// Apply copies the patch onto e. ID is left untouched.
func (e Employee) Apply(p Patch) Employee {
	e.FirstName = p.FirstName
	e.LastName = p.LastName
	e.Email = p.Email
	return e
}

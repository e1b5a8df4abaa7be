package service

import (
	"github.com/deppfellow/employee-service/internal/lib/job"
	"github.com/deppfellow/employee-service/internal/repository"
	"github.com/deppfellow/employee-service/internal/server"
)

type Services struct {
	Employee *EmployeeService
	Job      *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// A nil *job.JobService must not become a non-nil WelcomeNotifier.
	var notifier WelcomeNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Employee: NewEmployeeService(repos.Employee, notifier, s.Logger),
		Job:      s.Job,
	}, nil
}

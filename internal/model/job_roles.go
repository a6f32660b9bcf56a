package model

import (
	"fmt"

	"github.com/phrazzld/recruitbook/internal/domain"
)

// DefaultJobRoles seeds the job-role catalogue of every new address book.
var DefaultJobRoles = []string{
	"Software Engineer",
	"Frontend Developer",
	"Backend Developer",
	"Data Scientist",
	"Data Analyst",
	"DevOps Engineer",
	"Product Manager",
	"Project Manager",
	"UI/UX Designer",
	"QA Engineer",
	"Business Analyst",
	"HR Manager",
}

func defaultJobRoles() []domain.JobTitle {
	roles := make([]domain.JobTitle, 0, len(DefaultJobRoles))
	for _, raw := range DefaultJobRoles {
		role, err := domain.NewJobTitle(raw)
		if err != nil {
			// ALLOW-PANIC: DefaultJobRoles is a package constant
			panic(fmt.Sprintf("invalid default job role %q: %v", raw, err))
		}
		roles = append(roles, role)
	}
	return roles
}

package service

import "github.com/edulab/lms-api/internal/core/domain"

// DemoCredentials is the static login table for the demo deployment. Secrets
// are plain text on purpose (this is a sample backend with throwaway
// accounts); see the Credential doc comment for the production caveat.
func DemoCredentials() []domain.Credential {
	return []domain.Credential{
		{
			Email:  "admin@example.com",
			Secret: "admin123",
			Identity: domain.Identity{
				ID:    1,
				Email: "admin@example.com",
				Name:  "Ana Admin",
				Role:  domain.RoleAdmin,
			},
		},
		{
			Email:  "instructor@example.com",
			Secret: "teach123",
			Identity: domain.Identity{
				ID:    2,
				Email: "instructor@example.com",
				Name:  "Iris Instructor",
				Role:  domain.RoleInstructor,
			},
		},
		{
			Email:  "user@example.com",
			Secret: "password123",
			Identity: domain.Identity{
				ID:    3,
				Email: "user@example.com",
				Name:  "Sam Student",
				Role:  domain.RoleStudent,
			},
		},
	}
}

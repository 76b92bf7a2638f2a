package main

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edulab/lms-api/internal/api"
	"github.com/edulab/lms-api/internal/core/ports"
)

// seedDemoData loads a handful of users and courses so the listings have
// something to show on a fresh start. Errors are logged and skipped; a
// partial seed is not fatal.
func seedDemoData(ctx context.Context, deps api.Deps, log zerolog.Logger) {
	users := []ports.CreateUserInput{
		{Email: "alice.johnson@example.com", FirstName: "Alice", LastName: "Johnson", Role: "instructor", Phone: "+1-555-0101", Bio: "Full-stack developer and Go enthusiast."},
		{Email: "bob.smith@example.com", FirstName: "Bob", LastName: "Smith", Role: "student"},
		{Email: "carol.diaz@example.com", FirstName: "Carol", LastName: "Diaz", Role: "student"},
		{Email: "dan.lee@example.com", FirstName: "Dan", LastName: "Lee", Role: "instructor", Bio: "Databases, distributed systems."},
		{Email: "erin.moore@example.com", FirstName: "Erin", LastName: "Moore", Role: "admin"},
	}

	seeded := 0
	var instructors []ports.InstructorInput
	for _, in := range users {
		u, err := deps.UserService.Create(ctx, in)
		if err != nil {
			log.Warn().Err(err).Str("email", in.Email).Msg("seed: user skipped")
			continue
		}
		seeded++
		if u.Role == "instructor" {
			instructors = append(instructors, ports.InstructorInput{ID: u.ID, Name: u.FullName, Email: u.Email})
		}
	}

	if len(instructors) == 0 {
		log.Warn().Msg("seed: no instructors available, skipping courses")
		return
	}
	second := instructors[0]
	if len(instructors) > 1 {
		second = instructors[1]
	}

	courses := []ports.CreateCourseInput{
		{Title: "Introduction to Go", Description: "Syntax, tooling, and the standard library from scratch.", Level: "beginner", DurationHours: 20, Price: 49.99, Instructor: instructors[0], Tags: []string{"go", "programming"}},
		{Title: "Building REST APIs", Description: "Design and ship production HTTP services.", Level: "intermediate", DurationHours: 35, Price: 89.99, Instructor: instructors[0], Tags: []string{"go", "http", "api"}},
		{Title: "Database Internals", Description: "Storage engines, indexing, and query planning.", Level: "advanced", DurationHours: 50, Price: 129.99, Instructor: second, Tags: []string{"databases"}},
		{Title: "Concurrency Patterns", Description: "Goroutines, channels, and the sync package in anger.", Level: "intermediate", DurationHours: 25, Price: 79.99, Instructor: second, Tags: []string{"go", "concurrency"}},
	}

	published := 0
	for _, in := range courses {
		course, err := deps.CourseService.Create(ctx, in)
		if err != nil {
			log.Warn().Err(err).Str("title", in.Title).Msg("seed: course skipped")
			continue
		}
		seeded++
		// Publish most of the catalog; the last one stays a draft so both
		// states are visible in listings.
		if published < len(courses)-1 {
			status := "published"
			if _, err := deps.CourseService.Update(ctx, course.ID, ports.UpdateCourseInput{Status: &status}); err != nil {
				log.Warn().Err(err).Int("id", course.ID).Msg("seed: publish failed")
			}
			published++
		}
	}

	log.Info().Int("entities", seeded).Msg("demo data seeded")
}

package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/edulab/lms-api/internal/core/domain"
	"github.com/edulab/lms-api/internal/core/ports"
)

func insertCourse(t *testing.T, repo *CourseRepository, c domain.Course) *domain.Course {
	t.Helper()
	ctx := context.Background()
	id, err := repo.NextID(ctx)
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	c.ID = id
	if err := repo.Insert(ctx, &c); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	return &c
}

func seedCatalog(t *testing.T, repo *CourseRepository) {
	t.Helper()
	insertCourse(t, repo, domain.Course{
		Title: "Go Basics", Description: "Introductory course",
		Level: domain.LevelBeginner, Status: domain.CoursePublished,
		Instructor: domain.Instructor{ID: 1}, Tags: []string{"go"}, Price: 10,
	})
	insertCourse(t, repo, domain.Course{
		Title: "Advanced Databases", Description: "Storage internals",
		Level: domain.LevelAdvanced, Status: domain.CoursePublished,
		Instructor: domain.Instructor{ID: 2}, Tags: []string{"databases", "go"}, Price: 50,
	})
	insertCourse(t, repo, domain.Course{
		Title: "Web Security", Description: "Threats and mitigations",
		Level: domain.LevelIntermediate, Status: domain.CourseDraft,
		Instructor: domain.Instructor{ID: 1}, Tags: []string{"security"}, Price: 30,
	})
}

func TestCourseRepository_List_Filters(t *testing.T) {
	repo := NewCourseRepository()
	ctx := context.Background()
	seedCatalog(t, repo)

	min, max := 20.0, 40.0
	tests := []struct {
		name    string
		filter  ports.ListCoursesFilter
		wantIDs []int
	}{
		{"by level", ports.ListCoursesFilter{Level: "advanced", Page: 1, Limit: 10}, []int{2}},
		{"by status", ports.ListCoursesFilter{Status: "published", Page: 1, Limit: 10}, []int{1, 2}},
		{"by instructor", ports.ListCoursesFilter{InstructorID: 1, Page: 1, Limit: 10}, []int{1, 3}},
		{"by tag", ports.ListCoursesFilter{Tag: "go", Page: 1, Limit: 10}, []int{1, 2}},
		{"price range", ports.ListCoursesFilter{MinPrice: &min, MaxPrice: &max, Page: 1, Limit: 10}, []int{3}},
		{"search on description", ports.ListCoursesFilter{Search: "internals", Page: 1, Limit: 10}, []int{2}},
		{"conjunction narrows", ports.ListCoursesFilter{Tag: "go", Status: "published", InstructorID: 2, Page: 1, Limit: 10}, []int{2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items, total, err := repo.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if int(total) != len(tc.wantIDs) {
				t.Fatalf("expected total %d, got %d", len(tc.wantIDs), total)
			}
			for i, want := range tc.wantIDs {
				if items[i].ID != want {
					t.Fatalf("expected id %d at position %d, got %d", want, i, items[i].ID)
				}
			}
		})
	}
}

func TestCourseRepository_List_TotalCountsFilteredSet(t *testing.T) {
	repo := NewCourseRepository()
	ctx := context.Background()
	seedCatalog(t, repo)

	items, total, err := repo.List(ctx, ports.ListCoursesFilter{Status: "published", Page: 1, Limit: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("total must count the filtered set, not the page: got %d", total)
	}
	if len(items) != 1 {
		t.Fatalf("expected a single item page, got %d", len(items))
	}

	// A page past the end is empty, not an error, and total is unchanged.
	items, total, err = repo.List(ctx, ports.ListCoursesFilter{Status: "published", Page: 5, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 0 || total != 2 {
		t.Fatalf("expected empty page with total 2, got %d items, total %d", len(items), total)
	}
}

func TestCourseRepository_RemoveAndIDSequence(t *testing.T) {
	repo := NewCourseRepository()
	ctx := context.Background()
	seedCatalog(t, repo)

	if err := repo.Remove(ctx, 2); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, 2); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound after remove, got %v", err)
	}

	next, _ := repo.NextID(ctx)
	if next != 4 {
		t.Fatalf("expected id 4 after removing id 2, got %d", next)
	}

	all, _ := repo.FindAll(ctx)
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 3 {
		t.Fatalf("unexpected collection after remove: %+v", all)
	}
}

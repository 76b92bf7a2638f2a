package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edulab/lms-api/internal/core/domain"
	"github.com/edulab/lms-api/internal/core/ports"
)

const coursesCollection = "courses"

type CourseRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{db: db, coll: db.Collection(coursesCollection)}
}

type mongoCourse struct {
	ID               int               `bson:"id"`
	Title            string            `bson:"title"`
	Description      string            `bson:"description"`
	Level            string            `bson:"level"`
	DurationHours    int               `bson:"duration_hours"`
	Price            float64           `bson:"price"`
	Status           string            `bson:"status"`
	Instructor       domain.Instructor `bson:"instructor"`
	Tags             []string          `bson:"tags"`
	Rating           float64           `bson:"rating"`
	EnrolledStudents int               `bson:"enrolled_students"`
	CreatedAt        time.Time         `bson:"created_at"`
	UpdatedAt        time.Time         `bson:"updated_at"`
}

func toMongoCourse(c *domain.Course) mongoCourse {
	return mongoCourse{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Level:            string(c.Level),
		DurationHours:    c.DurationHours,
		Price:            c.Price,
		Status:           string(c.Status),
		Instructor:       c.Instructor,
		Tags:             c.Tags,
		Rating:           c.Rating,
		EnrolledStudents: c.EnrolledStudents,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (m mongoCourse) toDomain() *domain.Course {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Course{
		ID:               m.ID,
		Title:            m.Title,
		Description:      m.Description,
		Level:            domain.CourseLevel(m.Level),
		DurationHours:    m.DurationHours,
		Price:            m.Price,
		Status:           domain.CourseStatus(m.Status),
		Instructor:       m.Instructor,
		Tags:             tags,
		Rating:           m.Rating,
		EnrolledStudents: m.EnrolledStudents,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

func (r *CourseRepository) NextID(ctx context.Context) (int, error) {
	return nextSequence(ctx, r.db, coursesCollection)
}

func (r *CourseRepository) Insert(ctx context.Context, course *domain.Course) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toMongoCourse(course)); err != nil {
		if mapped := duplicateKeyError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id int) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCourse
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CourseRepository) FindAll(ctx context.Context) ([]*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find courses: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Course
	for cur.Next(ctx) {
		var mc mongoCourse
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		out = append(out, mc.toDomain())
	}
	return out, cur.Err()
}

func (r *CourseRepository) Replace(ctx context.Context, id int, course *domain.Course) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, toMongoCourse(course))
	if err != nil {
		return fmt.Errorf("replace course: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Remove(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("remove course: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) List(ctx context.Context, filter ports.ListCoursesFilter) ([]*domain.Course, int64, error) {
	if filter.Page <= 0 || filter.Limit <= 0 {
		return nil, 0, domain.ErrInvalidPagination
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := bson.M{}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		q["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
		}
	}
	if filter.Level != "" {
		q["level"] = filter.Level
	}
	if filter.Status != "" {
		q["status"] = filter.Status
	}
	if filter.InstructorID != 0 {
		q["instructor.id"] = filter.InstructorID
	}
	if filter.Tag != "" {
		q["tags"] = filter.Tag
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		q["price"] = price
	}

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}

	// Past-the-end check against the last page index; multiplying first could
	// overflow the skip offset for a huge page value.
	if total == 0 || int64(filter.Page-1) > (total-1)/int64(filter.Limit) {
		return []*domain.Course{}, total, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "id", Value: 1}}).
		SetSkip(int64(filter.Page-1) * int64(filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list courses: %w", err)
	}
	defer cur.Close(ctx)

	out := []*domain.Course{}
	for cur.Next(ctx) {
		var mc mongoCourse
		if err := cur.Decode(&mc); err != nil {
			return nil, 0, fmt.Errorf("decode course: %w", err)
		}
		out = append(out, mc.toDomain())
	}
	return out, total, cur.Err()
}

// EnsureIndexes creates the id and common filter indexes.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "level", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

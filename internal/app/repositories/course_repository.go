package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
	"github.com/coursemart/coursemart-backend/internal/pkg/logger"
)

// CourseRepository handles the 'courses' collection
type CourseRepository struct {
	c *mongo.Collection
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(c *mongo.Collection) *CourseRepository {
	return &CourseRepository{c: c}
}

// Insert stores a new course and returns its generated id
func (r *CourseRepository) Insert(ctx context.Context, course *models.Course) (primitive.ObjectID, error) {
	result, err := r.c.InsertOne(ctx, course)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting course")
		return primitive.NilObjectID, fmt.Errorf("error inserting course: %w", err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByID retrieves a single course
func (r *CourseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	course := &models.Course{}
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.Hex()).Msg("Error finding course")
		return nil, fmt.Errorf("error finding course: %w", err)
	}

	return course, nil
}

// FindApproved lists approved courses with skip/limit pagination
func (r *CourseRepository) FindApproved(ctx context.Context, skip, limit int64) ([]*models.Course, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	return r.find(ctx, bson.M{"status": models.CourseStatusApproved}, opts)
}

// FindAll lists every course regardless of status
func (r *CourseRepository) FindAll(ctx context.Context) ([]*models.Course, error) {
	return r.find(ctx, bson.M{}, options.Find())
}

// FindByTeacher lists the courses owned by the embedded teacher email
func (r *CourseRepository) FindByTeacher(ctx context.Context, email string) ([]*models.Course, error) {
	return r.find(ctx, bson.M{"teacher.email": email}, options.Find())
}

// FindBeginners lists approved beginner-level courses
func (r *CourseRepository) FindBeginners(ctx context.Context) ([]*models.Course, error) {
	filter := bson.M{"level": "Beginner", "status": models.CourseStatusApproved}
	return r.find(ctx, filter, options.Find())
}

// FindByIDs retrieves the courses matching the given ids
func (r *CourseRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Course, error) {
	if len(ids) == 0 {
		return []*models.Course{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find())
}

func (r *CourseRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Course, error) {
	cursor, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying courses")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}

	courses := []*models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("error decoding courses: %w", err)
	}

	return courses, nil
}

// Update applies the given field patch to a course
func (r *CourseRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) error {
	result, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.Hex()).Msg("Error updating course")
		return fmt.Errorf("error updating course: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Approve transitions a course to the approved status
func (r *CourseRepository) Approve(ctx context.Context, id primitive.ObjectID) error {
	return r.Update(ctx, id, bson.M{"status": models.CourseStatusApproved})
}

// Delete removes a course
func (r *CourseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.Hex()).Msg("Error deleting course")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// CountByTeacher counts the courses owned by a teacher
func (r *CourseRepository) CountByTeacher(ctx context.Context, email string) (int64, error) {
	count, err := r.c.CountDocuments(ctx, bson.M{"teacher.email": email})
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// CountAll counts every course
func (r *CourseRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
	"github.com/coursemart/coursemart-backend/internal/pkg/logger"
)

// AssignmentRepository handles the 'assignments' collection
type AssignmentRepository struct {
	c *mongo.Collection
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(c *mongo.Collection) *AssignmentRepository {
	return &AssignmentRepository{c: c}
}

// Insert stores a new assignment and returns its generated id
func (r *AssignmentRepository) Insert(ctx context.Context, assignment *models.Assignment) (primitive.ObjectID, error) {
	result, err := r.c.InsertOne(ctx, assignment)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting assignment")
		return primitive.NilObjectID, fmt.Errorf("error inserting assignment: %w", err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByStudent lists a student's assignments
func (r *AssignmentRepository) FindByStudent(ctx context.Context, email string) ([]*models.Assignment, error) {
	return r.find(ctx, bson.M{"studentEmail": email})
}

// FindByTeacher lists a teacher's assignments
func (r *AssignmentRepository) FindByTeacher(ctx context.Context, email string) ([]*models.Assignment, error) {
	return r.find(ctx, bson.M{"teacherEmail": email})
}

func (r *AssignmentRepository) find(ctx context.Context, filter bson.M) ([]*models.Assignment, error) {
	cursor, err := r.c.Find(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying assignments")
		return nil, fmt.Errorf("error querying assignments: %w", err)
	}

	assignments := []*models.Assignment{}
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("error decoding assignments: %w", err)
	}

	return assignments, nil
}

// Grade sets the mark and feedback on an assignment; a missing document
// reports not found
func (r *AssignmentRepository) Grade(ctx context.Context, id primitive.ObjectID, mark models.Mark, feedback string) error {
	update := bson.M{"$set": bson.M{"mark": mark, "feedback": feedback}}
	result, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		logger.Error().Err(err).Str("assignmentID", id.Hex()).Msg("Error grading assignment")
		return fmt.Errorf("error grading assignment: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// DeleteByStudent removes every assignment of a student, returning the count
func (r *AssignmentRepository) DeleteByStudent(ctx context.Context, email string) (int64, error) {
	result, err := r.c.DeleteMany(ctx, bson.M{"studentEmail": email})
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error deleting assignments")
		return 0, fmt.Errorf("error deleting assignments: %w", err)
	}

	return result.DeletedCount, nil
}

// CountByTeacher counts assignments handed out by a teacher
func (r *AssignmentRepository) CountByTeacher(ctx context.Context, email string) (int64, error) {
	count, err := r.c.CountDocuments(ctx, bson.M{"teacherEmail": email})
	if err != nil {
		return 0, fmt.Errorf("error counting assignments: %w", err)
	}
	return count, nil
}

// CountByStudent counts assignments submitted by a student
func (r *AssignmentRepository) CountByStudent(ctx context.Context, email string) (int64, error) {
	count, err := r.c.CountDocuments(ctx, bson.M{"studentEmail": email})
	if err != nil {
		return 0, fmt.Errorf("error counting assignments: %w", err)
	}
	return count, nil
}

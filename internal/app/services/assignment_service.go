package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
)

// AssignmentService defines the interface for assignment operations
type AssignmentService interface {
	CreateAssignment(ctx context.Context, req *dto.CreateAssignmentRequest) (primitive.ObjectID, error)
	GetAssignmentsByStudent(ctx context.Context, email string) ([]*models.Assignment, error)
	GetAssignmentsByTeacher(ctx context.Context, email string) ([]*models.Assignment, error)
	GradeAssignment(ctx context.Context, idHex string, req *dto.GradeAssignmentRequest) error
	DeleteAssignmentsByStudent(ctx context.Context, email string) (int64, error)
}

// assignmentStore is the slice of the assignment repository the service
// depends on
type assignmentStore interface {
	Insert(ctx context.Context, assignment *models.Assignment) (primitive.ObjectID, error)
	FindByStudent(ctx context.Context, email string) ([]*models.Assignment, error)
	FindByTeacher(ctx context.Context, email string) ([]*models.Assignment, error)
	Grade(ctx context.Context, id primitive.ObjectID, mark models.Mark, feedback string) error
	DeleteByStudent(ctx context.Context, email string) (int64, error)
}

// assignmentServiceImpl implements AssignmentService
type assignmentServiceImpl struct {
	assignmentRepo assignmentStore
	logger         zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(assignmentRepo assignmentStore, logger zerolog.Logger) AssignmentService {
	return &assignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// CreateAssignment submits a new assignment. It starts ungraded, with the
// mark set to the pending sentinel.
func (s *assignmentServiceImpl) CreateAssignment(ctx context.Context, req *dto.CreateAssignmentRequest) (primitive.ObjectID, error) {
	assignment := &models.Assignment{
		Title:        req.Title,
		StudentEmail: req.StudentEmail,
		TeacherEmail: req.TeacherEmail,
		Submission:   req.Submission,
		Mark:         models.PendingMark(),
		CreatedAt:    time.Now().UTC(),
	}

	if req.CourseID != "" {
		courseID, err := parseObjectID(req.CourseID)
		if err != nil {
			return primitive.NilObjectID, err
		}
		assignment.CourseID = courseID
	}

	id, err := s.assignmentRepo.Insert(ctx, assignment)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.Info().Str("assignmentId", id.Hex()).Str("student", req.StudentEmail).Msg("Assignment submitted")
	return id, nil
}

// GetAssignmentsByStudent lists a student's submissions
func (s *assignmentServiceImpl) GetAssignmentsByStudent(ctx context.Context, email string) ([]*models.Assignment, error) {
	return s.assignmentRepo.FindByStudent(ctx, email)
}

// GetAssignmentsByTeacher lists the submissions addressed to a teacher
func (s *assignmentServiceImpl) GetAssignmentsByTeacher(ctx context.Context, email string) ([]*models.Assignment, error) {
	return s.assignmentRepo.FindByTeacher(ctx, email)
}

// GradeAssignment records a numeric mark and feedback on a submission
func (s *assignmentServiceImpl) GradeAssignment(ctx context.Context, idHex string, req *dto.GradeAssignmentRequest) error {
	id, err := parseObjectID(idHex)
	if err != nil {
		return err
	}
	return s.assignmentRepo.Grade(ctx, id, models.GradedMark(req.Mark), req.Feedback)
}

// DeleteAssignmentsByStudent removes every submission of a student and
// returns the number removed
func (s *assignmentServiceImpl) DeleteAssignmentsByStudent(ctx context.Context, email string) (int64, error) {
	return s.assignmentRepo.DeleteByStudent(ctx, email)
}

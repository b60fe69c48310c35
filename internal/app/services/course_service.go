package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
)

// parseObjectID converts a hex route parameter into an ObjectID
func parseObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrInvalidID
	}
	return id, nil
}

// CourseService defines the interface for course operations
type CourseService interface {
	GetApprovedCourses(ctx context.Context, skip, limit int64) ([]*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, idHex string) (*models.Course, error)
	GetBeginnerCourses(ctx context.Context) ([]*models.Course, error)
	GetCoursesByTeacher(ctx context.Context, email string) ([]*models.Course, error)
	CreateCourse(ctx context.Context, teacher *models.User, req *dto.CreateCourseRequest) (primitive.ObjectID, error)
	UpdateCourse(ctx context.Context, idHex string, req *dto.UpdateCourseRequest) error
	ApproveCourse(ctx context.Context, idHex string) error
	DeleteCourse(ctx context.Context, idHex string) error
}

// courseStore is the slice of the course repository the service depends on
type courseStore interface {
	Insert(ctx context.Context, course *models.Course) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	FindApproved(ctx context.Context, skip, limit int64) ([]*models.Course, error)
	FindAll(ctx context.Context) ([]*models.Course, error)
	FindByTeacher(ctx context.Context, email string) ([]*models.Course, error)
	FindBeginners(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, id primitive.ObjectID, patch bson.M) error
	Approve(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo courseStore
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo courseStore, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// GetApprovedCourses lists the public catalog page
func (s *courseServiceImpl) GetApprovedCourses(ctx context.Context, skip, limit int64) ([]*models.Course, error) {
	return s.courseRepo.FindApproved(ctx, skip, limit)
}

// GetAllCourses lists every course regardless of status. Admin only.
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.FindAll(ctx)
}

// GetCourseByID retrieves a single course by its hex id
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, idHex string) (*models.Course, error) {
	id, err := parseObjectID(idHex)
	if err != nil {
		return nil, err
	}
	return s.courseRepo.FindByID(ctx, id)
}

// GetBeginnerCourses lists approved beginner-level courses
func (s *courseServiceImpl) GetBeginnerCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.FindBeginners(ctx)
}

// GetCoursesByTeacher lists the courses owned by a teacher
func (s *courseServiceImpl) GetCoursesByTeacher(ctx context.Context, email string) ([]*models.Course, error) {
	return s.courseRepo.FindByTeacher(ctx, email)
}

// CreateCourse inserts a new course owned by the authenticated teacher.
// New courses start in the Pending state and stay out of the public catalog
// until an admin approves them.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, teacher *models.User, req *dto.CreateCourseRequest) (primitive.ObjectID, error) {
	name := req.TeacherName
	if name == "" {
		name = teacher.Name
	}

	course := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Level:       req.Level,
		Price:       req.Price,
		Status:      models.CourseStatusPending,
		Teacher: models.CourseOwner{
			Name:  name,
			Email: teacher.Email,
			Image: teacher.CoverImage,
		},
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.courseRepo.Insert(ctx, course)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.Info().Str("courseId", id.Hex()).Str("teacher", teacher.Email).Msg("Course created")
	return id, nil
}

// UpdateCourse applies the non-zero fields of the request to a course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, idHex string, req *dto.UpdateCourseRequest) error {
	id, err := parseObjectID(idHex)
	if err != nil {
		return err
	}

	patch := bson.M{}
	if req.Title != "" {
		patch["title"] = req.Title
	}
	if req.Description != "" {
		patch["description"] = req.Description
	}
	if req.Image != "" {
		patch["image"] = req.Image
	}
	if req.Level != "" {
		patch["level"] = req.Level
	}
	if req.Price != nil {
		patch["price"] = *req.Price
	}
	if len(patch) == 0 {
		return apperrors.NewBadRequestError("no fields to update")
	}

	return s.courseRepo.Update(ctx, id, patch)
}

// ApproveCourse moves a course into the public catalog. Admin only.
func (s *courseServiceImpl) ApproveCourse(ctx context.Context, idHex string) error {
	id, err := parseObjectID(idHex)
	if err != nil {
		return err
	}
	return s.courseRepo.Approve(ctx, id)
}

// DeleteCourse removes a course
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, idHex string) error {
	id, err := parseObjectID(idHex)
	if err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, id)
}

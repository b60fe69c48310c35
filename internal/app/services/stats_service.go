package services

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
)

// StatsService defines the interface for dashboard statistics
type StatsService interface {
	// Teacher dashboard
	TeacherEarnings(ctx context.Context, email string) (*dto.EarningsResponse, error)
	TeacherEarningsHistory(ctx context.Context, email string) (*dto.EarningsHistoryResponse, error)
	TeacherStudentsCount(ctx context.Context, email string) (*dto.StudentsCountResponse, error)
	TeacherCoursesCount(ctx context.Context, email string) (*dto.CountResponse, error)
	TeacherAssignmentsCount(ctx context.Context, email string) (*dto.CountResponse, error)

	// Student dashboard
	StudentAverageMark(ctx context.Context, email string) (*dto.AverageMarkResponse, error)
	StudentMarksDistribution(ctx context.Context, email string) (*dto.MarksDistributionResponse, error)
	StudentAssignmentsCount(ctx context.Context, email string) (*dto.CountResponse, error)
	StudentOrdersCount(ctx context.Context, email string) (*dto.CountResponse, error)

	// Admin dashboard
	AdminUsersCount(ctx context.Context) (*dto.CountResponse, error)
	AdminTeachersCount(ctx context.Context) (*dto.CountResponse, error)
	AdminCoursesCount(ctx context.Context) (*dto.CountResponse, error)
}

// statsOrderStore is the aggregate slice of the order repository
type statsOrderStore interface {
	EarningsByTeacher(ctx context.Context, email string) (float64, error)
	EarningsHistory(ctx context.Context, email string) ([]dto.EarningsHistoryEntry, error)
	CountStudentsByTeacher(ctx context.Context, email string) (int64, error)
	CountPaidByEmail(ctx context.Context, email string) (int64, error)
}

// statsAssignmentStore is the aggregate slice of the assignment repository
type statsAssignmentStore interface {
	FindByStudent(ctx context.Context, email string) ([]*models.Assignment, error)
	CountByTeacher(ctx context.Context, email string) (int64, error)
	CountByStudent(ctx context.Context, email string) (int64, error)
}

// statsCourseStore is the count slice of the course repository
type statsCourseStore interface {
	CountByTeacher(ctx context.Context, email string) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

// statsUserStore is the count slice of the user repository
type statsUserStore interface {
	CountAll(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role models.RoleType) (int64, error)
}

// statsServiceImpl implements StatsService
type statsServiceImpl struct {
	orderRepo      statsOrderStore
	assignmentRepo statsAssignmentStore
	courseRepo     statsCourseStore
	userRepo       statsUserStore
	logger         zerolog.Logger
}

// NewStatsService creates a new StatsService
func NewStatsService(
	orderRepo statsOrderStore,
	assignmentRepo statsAssignmentStore,
	courseRepo statsCourseStore,
	userRepo statsUserStore,
	logger zerolog.Logger,
) StatsService {
	return &statsServiceImpl{
		orderRepo:      orderRepo,
		assignmentRepo: assignmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// TeacherEarnings sums the teacher's share of paid orders
func (s *statsServiceImpl) TeacherEarnings(ctx context.Context, email string) (*dto.EarningsResponse, error) {
	total, err := s.orderRepo.EarningsByTeacher(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.EarningsResponse{TotalEarnings: total}, nil
}

// TeacherEarningsHistory returns the teacher's paid transactions sorted by date
func (s *statsServiceImpl) TeacherEarningsHistory(ctx context.Context, email string) (*dto.EarningsHistoryResponse, error) {
	history, err := s.orderRepo.EarningsHistory(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.EarningsHistoryResponse{EarningsHistory: history}, nil
}

// TeacherStudentsCount counts the distinct buyers of the teacher's courses
func (s *statsServiceImpl) TeacherStudentsCount(ctx context.Context, email string) (*dto.StudentsCountResponse, error) {
	count, err := s.orderRepo.CountStudentsByTeacher(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.StudentsCountResponse{TotalStudents: count}, nil
}

// TeacherCoursesCount counts the teacher's courses
func (s *statsServiceImpl) TeacherCoursesCount(ctx context.Context, email string) (*dto.CountResponse, error) {
	count, err := s.courseRepo.CountByTeacher(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: count}, nil
}

// TeacherAssignmentsCount counts the submissions addressed to the teacher
func (s *statsServiceImpl) TeacherAssignmentsCount(ctx context.Context, email string) (*dto.CountResponse, error) {
	count, err := s.assignmentRepo.CountByTeacher(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: count}, nil
}

// StudentAverageMark averages the student's graded marks and buckets the
// result into a letter grade. Ungraded submissions are excluded; with no
// graded submissions at all the average is 0 and the batch is "N/A".
func (s *statsServiceImpl) StudentAverageMark(ctx context.Context, email string) (*dto.AverageMarkResponse, error) {
	assignments, err := s.assignmentRepo.FindByStudent(ctx, email)
	if err != nil {
		return nil, err
	}

	var sum float64
	var graded int
	for _, assignment := range assignments {
		if assignment.Mark.Graded {
			sum += assignment.Mark.Value
			graded++
		}
	}

	if graded == 0 {
		return &dto.AverageMarkResponse{AverageMark: 0, Batch: "N/A"}, nil
	}

	average := sum / float64(graded)
	return &dto.AverageMarkResponse{AverageMark: average, Batch: gradeBatch(average)}, nil
}

// StudentMarksDistribution groups the student's submissions by mark value.
// Ungraded submissions fall into the "pending" bucket.
func (s *statsServiceImpl) StudentMarksDistribution(ctx context.Context, email string) (*dto.MarksDistributionResponse, error) {
	assignments, err := s.assignmentRepo.FindByStudent(ctx, email)
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int)
	for _, assignment := range assignments {
		distribution[markKey(assignment.Mark)]++
	}
	return &dto.MarksDistributionResponse{MarksDistribution: distribution}, nil
}

// StudentAssignmentsCount counts the student's submissions
func (s *statsServiceImpl) StudentAssignmentsCount(ctx context.Context, email string) (*dto.CountResponse, error) {
	count, err := s.assignmentRepo.CountByStudent(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: count}, nil
}

// StudentOrdersCount counts the student's paid orders
func (s *statsServiceImpl) StudentOrdersCount(ctx context.Context, email string) (*dto.CountResponse, error) {
	count, err := s.orderRepo.CountPaidByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: count}, nil
}

// AdminUsersCount counts every user
func (s *statsServiceImpl) AdminUsersCount(ctx context.Context) (*dto.CountResponse, error) {
	count, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: count}, nil
}

// AdminTeachersCount counts users holding the teacher role
func (s *statsServiceImpl) AdminTeachersCount(ctx context.Context) (*dto.CountResponse, error) {
	count, err := s.userRepo.CountByRole(ctx, models.RoleTeacher)
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: count}, nil
}

// AdminCoursesCount counts every course
func (s *statsServiceImpl) AdminCoursesCount(ctx context.Context) (*dto.CountResponse, error) {
	count, err := s.courseRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: count}, nil
}

// gradeBatch maps an average mark to its letter grade. The scale is
// contiguous and exhaustive, so every average lands in exactly one bucket.
func gradeBatch(average float64) string {
	switch {
	case average >= 60:
		return "A+"
	case average >= 50:
		return "A"
	case average >= 40:
		return "B"
	case average >= 30:
		return "D"
	default:
		return "F"
	}
}

// markKey renders a mark as its distribution bucket key
func markKey(mark models.Mark) string {
	if !mark.Graded {
		return "pending"
	}
	return strconv.FormatFloat(mark.Value, 'f', -1, 64)
}

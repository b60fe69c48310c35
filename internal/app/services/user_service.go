package services

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
)

// UserService defines the interface for user operations
type UserService interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpsertUser(ctx context.Context, email string, req *dto.UpsertUserRequest) (*models.User, error)
	UpdateUserRole(ctx context.Context, email string, req *dto.UpdateUserRequest) (*models.User, error)
	UpdateCoverImage(ctx context.Context, email string, coverImage string) (*models.User, error)
}

// userStore is the slice of the user repository the service depends on
type userStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	Upsert(ctx context.Context, email string, fields bson.M) (*models.User, error)
	UpdateStatus(ctx context.Context, email string, status models.UserStatus) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo userStore
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo userStore, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUserByEmail retrieves a single user by email
func (s *userServiceImpl) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// GetAllUsers retrieves every user
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// UpsertUser saves a user keyed by email. A new email inserts the user with
// the requested role. An existing user is left untouched, except that a
// role-upgrade request flips the status to "requested". Repeating the same
// call yields the same stored document.
func (s *userServiceImpl) UpsertUser(ctx context.Context, email string, req *dto.UpsertUserRequest) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		if models.UserStatus(req.Status) == models.StatusRequested && existing.Status != models.StatusRequested {
			if err := s.userRepo.UpdateStatus(ctx, email, models.StatusRequested); err != nil {
				return nil, err
			}
			existing.Status = models.StatusRequested
			s.logger.Info().Str("email", email).Msg("User requested a role upgrade")
		}
		return existing, nil
	}

	role := models.RoleType(req.Role)
	if role == "" {
		role = models.RoleStudent
	}

	fields := bson.M{"role": role}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Status != "" {
		fields["status"] = models.UserStatus(req.Status)
	}

	user, err := s.userRepo.Upsert(ctx, email, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Str("role", string(role)).Msg("User created")
	return user, nil
}

// UpdateUserRole sets a user's role and clears any pending upgrade request.
// Admin only; the route guard enforces that.
func (s *userServiceImpl) UpdateUserRole(ctx context.Context, email string, req *dto.UpdateUserRequest) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		return nil, err
	}

	fields := bson.M{
		"role":   models.RoleType(req.Role),
		"status": models.UserStatus(req.Status),
	}
	return s.userRepo.Upsert(ctx, email, fields)
}

// UpdateCoverImage sets the profile cover image of a user
func (s *userServiceImpl) UpdateCoverImage(ctx context.Context, email string, coverImage string) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		return nil, err
	}
	return s.userRepo.Upsert(ctx, email, bson.M{"coverImg": coverImage})
}

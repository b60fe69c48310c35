package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
	"github.com/coursemart/coursemart-backend/internal/pkg/logger"
)

// UserRepository handles the 'users' collection
type UserRepository struct {
	c *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(c *mongo.Collection) *UserRepository {
	return &UserRepository{c: c}
}

// FindByEmail retrieves a user by its natural key
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error finding user")
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	return user, nil
}

// FindAll retrieves every user record
func (r *UserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	cursor, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying users")
		return nil, fmt.Errorf("error querying users: %w", err)
	}

	users := []*models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}

	return users, nil
}

// Upsert writes the given fields into the user document keyed by email,
// creating it with a createdAt stamp when absent
func (r *UserRepository) Upsert(ctx context.Context, email string, fields bson.M) (*models.User, error) {
	update := bson.M{
		"$set":         fields,
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	user := &models.User{}
	err := r.c.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(user)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error upserting user")
		return nil, fmt.Errorf("error upserting user: %w", err)
	}

	return user, nil
}

// UpdateStatus sets the role-upgrade request status on an existing user
func (r *UserRepository) UpdateStatus(ctx context.Context, email string, status models.UserStatus) error {
	result, err := r.c.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error updating user status")
		return fmt.Errorf("error updating user status: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// CountAll counts every user
func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

// CountByRole counts users holding the given role
func (r *UserRepository) CountByRole(ctx context.Context, role models.RoleType) (int64, error) {
	count, err := r.c.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("error counting users by role: %w", err)
	}
	return count, nil
}

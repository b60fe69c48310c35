package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
	"github.com/coursemart/coursemart-backend/internal/pkg/logger"
)

// itemRow is the common (email, courseId) row shape shared by the cart and
// bookmarks collections
type itemRow struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	CourseID primitive.ObjectID `bson:"courseId"`
}

// itemRepository implements the shared row operations. Duplicate prevention
// relies on the unique (email, courseId) index, so an insert either succeeds
// or fails atomically with a duplicate-key error.
type itemRepository struct {
	c            *mongo.Collection
	errDuplicate error
	errNotFound  error
}

// Insert stores a new row; a second insert for the same pair returns the
// collection's duplicate error
func (r *itemRepository) Insert(ctx context.Context, email string, courseID primitive.ObjectID) (primitive.ObjectID, error) {
	result, err := r.c.InsertOne(ctx, itemRow{Email: email, CourseID: courseID})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, r.errDuplicate
		}
		logger.Error().Err(err).Str("email", email).Msg("Error inserting item row")
		return primitive.NilObjectID, fmt.Errorf("error inserting item: %w", err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// CourseIDs lists the course ids a user has saved
func (r *itemRepository) CourseIDs(ctx context.Context, email string) ([]primitive.ObjectID, error) {
	cursor, err := r.c.Find(ctx, bson.M{"email": email})
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error querying item rows")
		return nil, fmt.Errorf("error querying items: %w", err)
	}

	rows := []itemRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding items: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.CourseID)
	}

	return ids, nil
}

// Delete removes a single (email, courseId) row
func (r *itemRepository) Delete(ctx context.Context, email string, courseID primitive.ObjectID) error {
	result, err := r.c.DeleteOne(ctx, bson.M{"email": email, "courseId": courseID})
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error deleting item row")
		return fmt.Errorf("error deleting item: %w", err)
	}
	if result.DeletedCount == 0 {
		return r.errNotFound
	}

	return nil
}

// DeleteMany removes every row of the user matching the given course ids,
// returning the removed count
func (r *itemRepository) DeleteMany(ctx context.Context, email string, courseIDs []primitive.ObjectID) (int64, error) {
	if len(courseIDs) == 0 {
		return 0, nil
	}

	result, err := r.c.DeleteMany(ctx, bson.M{"email": email, "courseId": bson.M{"$in": courseIDs}})
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error deleting item rows")
		return 0, fmt.Errorf("error deleting items: %w", err)
	}

	return result.DeletedCount, nil
}

// CartRepository handles the 'cart' collection
type CartRepository struct {
	itemRepository
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(c *mongo.Collection) *CartRepository {
	return &CartRepository{itemRepository{
		c:            c,
		errDuplicate: apperrors.ErrAlreadyInCart,
		errNotFound:  apperrors.ErrCartItemNotFound,
	}}
}

// BookmarkRepository handles the 'bookmarks' collection
type BookmarkRepository struct {
	itemRepository
}

// NewBookmarkRepository creates a new BookmarkRepository
func NewBookmarkRepository(c *mongo.Collection) *BookmarkRepository {
	return &BookmarkRepository{itemRepository{
		c:            c,
		errDuplicate: apperrors.ErrAlreadyBookmarked,
		errNotFound:  apperrors.ErrBookmarkNotFound,
	}}
}

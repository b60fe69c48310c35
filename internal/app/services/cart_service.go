package services

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
)

// CartService defines the interface for cart and bookmark operations. Both
// collections share one shape, a (email, courseId) pair, so one service
// covers them.
type CartService interface {
	AddToCart(ctx context.Context, req *dto.AddCartItemRequest) (primitive.ObjectID, error)
	GetCartCourses(ctx context.Context, email string) ([]*models.Course, error)
	RemoveFromCart(ctx context.Context, req *dto.RemoveCartItemRequest) error
	AddBookmark(ctx context.Context, req *dto.AddCartItemRequest) (primitive.ObjectID, error)
	GetBookmarkedCourses(ctx context.Context, email string) ([]*models.Course, error)
	RemoveBookmark(ctx context.Context, req *dto.RemoveCartItemRequest) error
}

// itemStore is the contract both the cart and bookmark repositories satisfy
type itemStore interface {
	Insert(ctx context.Context, email string, courseID primitive.ObjectID) (primitive.ObjectID, error)
	CourseIDs(ctx context.Context, email string) ([]primitive.ObjectID, error)
	Delete(ctx context.Context, email string, courseID primitive.ObjectID) error
}

// courseLookup resolves stored course ids back into course documents
type courseLookup interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Course, error)
}

// cartServiceImpl implements CartService
type cartServiceImpl struct {
	cartRepo     itemStore
	bookmarkRepo itemStore
	courseRepo   courseLookup
	logger       zerolog.Logger
}

// NewCartService creates a new CartService
func NewCartService(cartRepo, bookmarkRepo itemStore, courseRepo courseLookup, logger zerolog.Logger) CartService {
	return &cartServiceImpl{
		cartRepo:     cartRepo,
		bookmarkRepo: bookmarkRepo,
		courseRepo:   courseRepo,
		logger:       logger,
	}
}

// AddToCart inserts a course into the user's cart. A duplicate insert is
// rejected by the unique index on (email, courseId).
func (s *cartServiceImpl) AddToCart(ctx context.Context, req *dto.AddCartItemRequest) (primitive.ObjectID, error) {
	return s.add(ctx, s.cartRepo, req)
}

// GetCartCourses lists the course documents currently in the user's cart
func (s *cartServiceImpl) GetCartCourses(ctx context.Context, email string) ([]*models.Course, error) {
	return s.courses(ctx, s.cartRepo, email)
}

// RemoveFromCart deletes one course from the user's cart
func (s *cartServiceImpl) RemoveFromCart(ctx context.Context, req *dto.RemoveCartItemRequest) error {
	return s.remove(ctx, s.cartRepo, req)
}

// AddBookmark inserts a course into the user's bookmarks
func (s *cartServiceImpl) AddBookmark(ctx context.Context, req *dto.AddCartItemRequest) (primitive.ObjectID, error) {
	return s.add(ctx, s.bookmarkRepo, req)
}

// GetBookmarkedCourses lists the course documents the user bookmarked
func (s *cartServiceImpl) GetBookmarkedCourses(ctx context.Context, email string) ([]*models.Course, error) {
	return s.courses(ctx, s.bookmarkRepo, email)
}

// RemoveBookmark deletes one course from the user's bookmarks
func (s *cartServiceImpl) RemoveBookmark(ctx context.Context, req *dto.RemoveCartItemRequest) error {
	return s.remove(ctx, s.bookmarkRepo, req)
}

func (s *cartServiceImpl) add(ctx context.Context, store itemStore, req *dto.AddCartItemRequest) (primitive.ObjectID, error) {
	courseID, err := parseObjectID(req.CourseID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return store.Insert(ctx, req.UserEmail, courseID)
}

func (s *cartServiceImpl) courses(ctx context.Context, store itemStore, email string) ([]*models.Course, error) {
	ids, err := store.CourseIDs(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*models.Course{}, nil
	}
	return s.courseRepo.FindByIDs(ctx, ids)
}

func (s *cartServiceImpl) remove(ctx context.Context, store itemStore, req *dto.RemoveCartItemRequest) error {
	courseID, err := parseObjectID(req.CourseID)
	if err != nil {
		return err
	}
	return store.Delete(ctx, req.Email, courseID)
}

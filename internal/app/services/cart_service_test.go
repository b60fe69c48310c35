package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
)

type fakeItemStore struct {
	rows         map[primitive.ObjectID]bool
	errDuplicate error
	errNotFound  error
}

func newFakeItemStore(dup, notFound error) *fakeItemStore {
	return &fakeItemStore{rows: map[primitive.ObjectID]bool{}, errDuplicate: dup, errNotFound: notFound}
}

func (f *fakeItemStore) Insert(ctx context.Context, email string, courseID primitive.ObjectID) (primitive.ObjectID, error) {
	if f.rows[courseID] {
		return primitive.NilObjectID, f.errDuplicate
	}
	f.rows[courseID] = true
	return primitive.NewObjectID(), nil
}

func (f *fakeItemStore) CourseIDs(ctx context.Context, email string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeItemStore) Delete(ctx context.Context, email string, courseID primitive.ObjectID) error {
	if !f.rows[courseID] {
		return f.errNotFound
	}
	delete(f.rows, courseID)
	return nil
}

func newCartFixture(courses []*models.Course) (CartService, *fakeItemStore, *fakeItemStore) {
	cart := newFakeItemStore(apperrors.ErrAlreadyInCart, apperrors.ErrCartItemNotFound)
	bookmarks := newFakeItemStore(apperrors.ErrAlreadyBookmarked, apperrors.ErrBookmarkNotFound)
	svc := NewCartService(cart, bookmarks, &fakeCourseLookup{courses: courses}, zerolog.Nop())
	return svc, cart, bookmarks
}

func TestAddToCartDuplicate(t *testing.T) {
	svc, _, _ := newCartFixture(nil)
	req := &dto.AddCartItemRequest{CourseID: primitive.NewObjectID().Hex(), UserEmail: "s@example.com"}

	if _, err := svc.AddToCart(context.Background(), req); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := svc.AddToCart(context.Background(), req)
	if !errors.Is(err, apperrors.ErrAlreadyInCart) {
		t.Fatalf("expected ErrAlreadyInCart, got %v", err)
	}
}

func TestAddToCartInvalidID(t *testing.T) {
	svc, _, _ := newCartFixture(nil)
	req := &dto.AddCartItemRequest{CourseID: "nope", UserEmail: "s@example.com"}

	_, err := svc.AddToCart(context.Background(), req)
	if !errors.Is(err, apperrors.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestGetCartCoursesJoins(t *testing.T) {
	courses := []*models.Course{{ID: primitive.NewObjectID(), Title: "Go Basics"}}
	svc, cart, _ := newCartFixture(courses)
	cart.rows[courses[0].ID] = true

	got, err := svc.GetCartCourses(context.Background(), "s@example.com")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Go Basics" {
		t.Fatalf("unexpected courses: %+v", got)
	}
}

func TestGetCartCoursesEmpty(t *testing.T) {
	svc, _, _ := newCartFixture(nil)

	got, err := svc.GetCartCourses(context.Background(), "s@example.com")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("empty cart must yield an empty slice, got %#v", got)
	}
}

func TestRemoveFromCartMissing(t *testing.T) {
	svc, _, _ := newCartFixture(nil)
	req := &dto.RemoveCartItemRequest{CourseID: primitive.NewObjectID().Hex(), Email: "s@example.com"}

	err := svc.RemoveFromCart(context.Background(), req)
	if !errors.Is(err, apperrors.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestBookmarksAreIndependentOfCart(t *testing.T) {
	svc, cart, bookmarks := newCartFixture(nil)
	req := &dto.AddCartItemRequest{CourseID: primitive.NewObjectID().Hex(), UserEmail: "s@example.com"}

	if _, err := svc.AddBookmark(context.Background(), req); err != nil {
		t.Fatalf("bookmark add: %v", err)
	}
	if _, err := svc.AddToCart(context.Background(), req); err != nil {
		t.Fatalf("the same course must be addable to both lists: %v", err)
	}
	if len(cart.rows) != 1 || len(bookmarks.rows) != 1 {
		t.Fatalf("unexpected store state: cart=%d bookmarks=%d", len(cart.rows), len(bookmarks.rows))
	}

	_, err := svc.AddBookmark(context.Background(), req)
	if !errors.Is(err, apperrors.ErrAlreadyBookmarked) {
		t.Fatalf("expected ErrAlreadyBookmarked, got %v", err)
	}
}

package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/pkg/logger"
)

// BookingRepository handles the 'bookings' collection
type BookingRepository struct {
	c *mongo.Collection
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(c *mongo.Collection) *BookingRepository {
	return &BookingRepository{c: c}
}

// Insert stores a new booking and returns its generated id
func (r *BookingRepository) Insert(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	result, err := r.c.InsertOne(ctx, booking)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting booking")
		return primitive.NilObjectID, fmt.Errorf("error inserting booking: %w", err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByGuest lists the bookings made by a guest
func (r *BookingRepository) FindByGuest(ctx context.Context, email string) ([]*models.Booking, error) {
	return r.find(ctx, bson.M{"guest.email": email})
}

// FindByHost lists the bookings against a host's rooms
func (r *BookingRepository) FindByHost(ctx context.Context, email string) ([]*models.Booking, error) {
	return r.find(ctx, bson.M{"host": email})
}

func (r *BookingRepository) find(ctx context.Context, filter bson.M) ([]*models.Booking, error) {
	cursor, err := r.c.Find(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying bookings")
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}

	bookings := []*models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}

	return bookings, nil
}

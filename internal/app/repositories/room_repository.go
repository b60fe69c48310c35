package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
	"github.com/coursemart/coursemart-backend/internal/pkg/logger"
)

// RoomRepository handles the 'rooms' collection
type RoomRepository struct {
	c *mongo.Collection
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(c *mongo.Collection) *RoomRepository {
	return &RoomRepository{c: c}
}

// Insert stores a new room and returns its generated id
func (r *RoomRepository) Insert(ctx context.Context, room *models.Room) (primitive.ObjectID, error) {
	result, err := r.c.InsertOne(ctx, room)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting room")
		return primitive.NilObjectID, fmt.Errorf("error inserting room: %w", err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByID retrieves a single room
func (r *RoomRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	room := &models.Room{}
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("roomID", id.Hex()).Msg("Error finding room")
		return nil, fmt.Errorf("error finding room: %w", err)
	}

	return room, nil
}

// FindAll lists rooms with skip/limit pagination
func (r *RoomRepository) FindAll(ctx context.Context, skip, limit int64) ([]*models.Room, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

// FindByHost lists the rooms owned by the embedded host email
func (r *RoomRepository) FindByHost(ctx context.Context, email string) ([]*models.Room, error) {
	return r.find(ctx, bson.M{"host.email": email}, options.Find())
}

func (r *RoomRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Room, error) {
	cursor, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying rooms")
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}

	rooms := []*models.Room{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}

	return rooms, nil
}

// SetBooked updates the booked flag on a room
func (r *RoomRepository) SetBooked(ctx context.Context, id primitive.ObjectID, booked bool) error {
	result, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"booked": booked}})
	if err != nil {
		logger.Error().Err(err).Str("roomID", id.Hex()).Msg("Error updating room status")
		return fmt.Errorf("error updating room status: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
	"github.com/coursemart/coursemart-backend/internal/pkg/logger"
)

// OrderRepository handles the 'admissions' collection
type OrderRepository struct {
	c *mongo.Collection
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(c *mongo.Collection) *OrderRepository {
	return &OrderRepository{c: c}
}

// Insert stores a new pending order and returns its generated id
func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	result, err := r.c.InsertOne(ctx, order)
	if err != nil {
		logger.Error().Err(err).Str("transactionId", order.TransactionID).Msg("Error inserting order")
		return primitive.NilObjectID, fmt.Errorf("error inserting order: %w", err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByTransactionID retrieves an order by the id correlating it with its
// gateway callback
func (r *OrderRepository) FindByTransactionID(ctx context.Context, transactionID string) (*models.Order, error) {
	order := &models.Order{}
	err := r.c.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrOrderNotFound
		}
		logger.Error().Err(err).Str("transactionId", transactionID).Msg("Error finding order")
		return nil, fmt.Errorf("error finding order: %w", err)
	}

	return order, nil
}

// MarkPaid flips paymentStatus from false to true for the given transaction
// id. The filter includes the current state, so the flip happens at most once
// no matter how many callbacks race; a repeat call returns ErrOrderAlreadyPaid
// and an unknown transaction id returns ErrOrderNotFound.
func (r *OrderRepository) MarkPaid(ctx context.Context, transactionID string) (*models.Order, error) {
	filter := bson.M{"transactionId": transactionID, "paymentStatus": false}
	update := bson.M{"$set": bson.M{"paymentStatus": true}}

	result, err := r.c.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.Error().Err(err).Str("transactionId", transactionID).Msg("Error marking order paid")
		return nil, fmt.Errorf("error marking order paid: %w", err)
	}

	order, findErr := r.FindByTransactionID(ctx, transactionID)
	if findErr != nil {
		return nil, findErr
	}

	if result.ModifiedCount == 0 {
		return order, apperrors.ErrOrderAlreadyPaid
	}

	return order, nil
}

// FindByEmail lists a buyer's orders
func (r *OrderRepository) FindByEmail(ctx context.Context, email string) ([]*models.Order, error) {
	return r.find(ctx, bson.M{"email": email})
}

// FindAll lists every order
func (r *OrderRepository) FindAll(ctx context.Context) ([]*models.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]*models.Order, error) {
	cursor, err := r.c.Find(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying orders")
		return nil, fmt.Errorf("error querying orders: %w", err)
	}

	orders := []*models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("error decoding orders: %w", err)
	}

	return orders, nil
}

// Delete removes an order
func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error().Err(err).Str("orderID", id.Hex()).Msg("Error deleting order")
		return fmt.Errorf("error deleting order: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrOrderNotFound
	}

	return nil
}

// EarningsByTeacher sums the amounts of paid orders containing the teacher's
// courses
func (r *OrderRepository) EarningsByTeacher(ctx context.Context, email string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"items.teacherEmail": email, "paymentStatus": true}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "totalEarnings": bson.M{"$sum": "$amount"}}}},
	}

	cursor, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error aggregating earnings")
		return 0, fmt.Errorf("error aggregating earnings: %w", err)
	}

	var results []struct {
		TotalEarnings float64 `bson:"totalEarnings"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding earnings: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].TotalEarnings, nil
}

// CountStudentsByTeacher counts the distinct buyers of a teacher's courses
func (r *OrderRepository) CountStudentsByTeacher(ctx context.Context, email string) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"items.teacherEmail": email, "paymentStatus": true}}},
		{{Key: "$group", Value: bson.M{"_id": "$email"}}},
		{{Key: "$count", Value: "totalStudents"}},
	}

	cursor, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error aggregating students")
		return 0, fmt.Errorf("error aggregating students: %w", err)
	}

	var results []struct {
		TotalStudents int64 `bson:"totalStudents"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding students count: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].TotalStudents, nil
}

// EarningsHistory lists one entry per paid transaction of the teacher,
// oldest first
func (r *OrderRepository) EarningsHistory(ctx context.Context, email string) ([]dto.EarningsHistoryEntry, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"items.teacherEmail": email, "paymentStatus": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$transactionId",
			"date":   bson.M{"$first": "$createdAt"},
			"amount": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.M{"date": 1}}},
	}

	cursor, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error aggregating earnings history")
		return nil, fmt.Errorf("error aggregating earnings history: %w", err)
	}

	entries := []dto.EarningsHistoryEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding earnings history: %w", err)
	}

	return entries, nil
}

// CountPaidByEmail counts the paid orders of a buyer
func (r *OrderRepository) CountPaidByEmail(ctx context.Context, email string) (int64, error) {
	count, err := r.c.CountDocuments(ctx, bson.M{"email": email, "paymentStatus": true})
	if err != nil {
		return 0, fmt.Errorf("error counting paid orders: %w", err)
	}
	return count, nil
}

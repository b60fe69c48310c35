package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a purchased course reference embedded in an order
type OrderItem struct {
	CourseID     primitive.ObjectID `json:"courseId" bson:"courseId"`
	Title        string             `json:"title,omitempty" bson:"title,omitempty"`
	TeacherEmail string             `json:"teacherEmail" bson:"teacherEmail"`
	Price        float64            `json:"price" bson:"price"`
}

// Order defines an admission document in the 'admissions' collection.
// Orders are created with PaymentStatus=false and flipped to true exactly
// once by the gateway success callback, keyed on TransactionID.
type Order struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Items         []OrderItem        `json:"items" bson:"items"`
	Amount        float64            `json:"amount" bson:"amount"`
	Currency      string             `json:"currency" bson:"currency"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	PaymentStatus bool               `json:"paymentStatus" bson:"paymentStatus"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// CourseIDs returns the course ids referenced by the order
func (o *Order) CourseIDs() []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.CourseID)
	}
	return ids
}

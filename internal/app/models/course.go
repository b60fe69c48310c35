package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseStatus defines the course moderation state
type CourseStatus string

const (
	CourseStatusPending  CourseStatus = "Pending"
	CourseStatusApproved CourseStatus = "Approved"
)

// CourseOwner is the teacher embedded in a course document. Owner-scoped
// queries filter on the embedded email.
type CourseOwner struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
}

// Course defines a course document in the 'courses' collection
type Course struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Level       string             `json:"level,omitempty" bson:"level,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Status      CourseStatus       `json:"status" bson:"status"`
	Teacher     CourseOwner        `json:"teacher" bson:"teacher"`
	CreatedAt   time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

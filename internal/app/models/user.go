package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleGuest   RoleType = "guest"
	RoleStudent RoleType = "student"
	RoleTeacher RoleType = "teacher"
	RoleHost    RoleType = "host"
	RoleAdmin   RoleType = "admin"
)

// UserStatus tracks role-upgrade requests (student asking to become a teacher,
// guest asking to become a host)
type UserStatus string

const (
	StatusNone      UserStatus = ""
	StatusRequested UserStatus = "requested"
)

// User defines a user document in the 'users' collection. Users are upserted
// keyed by email; the email is the natural identifier across the API.
type User struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email      string             `json:"email" bson:"email"`
	Name       string             `json:"name,omitempty" bson:"name,omitempty"`
	Role       RoleType           `json:"role" bson:"role"`
	Status     UserStatus         `json:"status,omitempty" bson:"status,omitempty"`
	CoverImage string             `json:"coverImg,omitempty" bson:"coverImg,omitempty"`
	CreatedAt  time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

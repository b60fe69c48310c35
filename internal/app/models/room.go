package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoomHost is the host embedded in a room document
type RoomHost struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
}

// Room defines a room document in the 'rooms' collection
type Room struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Booked      bool               `json:"booked" bson:"booked"`
	Host        RoomHost           `json:"host" bson:"host"`
	CreatedAt   time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// BookingGuest is the guest embedded in a booking document
type BookingGuest struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Booking defines a booking document in the 'bookings' collection
type Booking struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RoomID        primitive.ObjectID `json:"roomId" bson:"roomId"`
	RoomTitle     string             `json:"roomTitle,omitempty" bson:"roomTitle,omitempty"`
	Guest         BookingGuest       `json:"guest" bson:"guest"`
	HostEmail     string             `json:"host" bson:"host"`
	Price         float64            `json:"price" bson:"price"`
	TransactionID string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	CreatedAt     time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

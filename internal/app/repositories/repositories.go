package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coursemart/coursemart-backend/internal/db"
)

// Repositories is the container for all collection repositories
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	RoomRepository       *RoomRepository
	CartRepository       *CartRepository
	BookmarkRepository   *BookmarkRepository
	AssignmentRepository *AssignmentRepository
	OrderRepository      *OrderRepository
	BookingRepository    *BookingRepository
}

// NewRepositories creates all repositories over one database handle
func NewRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(database.Collection(db.UsersCollection)),
		CourseRepository:     NewCourseRepository(database.Collection(db.CoursesCollection)),
		RoomRepository:       NewRoomRepository(database.Collection(db.RoomsCollection)),
		CartRepository:       NewCartRepository(database.Collection(db.CartCollection)),
		BookmarkRepository:   NewBookmarkRepository(database.Collection(db.BookmarksCollection)),
		AssignmentRepository: NewAssignmentRepository(database.Collection(db.AssignmentsCollection)),
		OrderRepository:      NewOrderRepository(database.Collection(db.AdmissionsCollection)),
		BookingRepository:    NewBookingRepository(database.Collection(db.BookingsCollection)),
	}
}

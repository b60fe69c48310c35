package services

import (
	"github.com/rs/zerolog"

	"github.com/coursemart/coursemart-backend/internal/app/repositories"
	"github.com/coursemart/coursemart-backend/internal/pkg/email"
	"github.com/coursemart/coursemart-backend/internal/pkg/payment"
)

// Services is the container for all application services
type Services struct {
	UserService       UserService
	CourseService     CourseService
	CartService       CartService
	AssignmentService AssignmentService
	OrderService      OrderService
	BookingService    BookingService
	StatsService      StatsService
}

// NewServices wires all services over the repository container
func NewServices(
	repos *repositories.Repositories,
	gateway payment.Gateway,
	intentCreator payment.IntentCreator,
	emailService email.EmailService,
	callbackBase string,
	logger zerolog.Logger,
) *Services {
	return &Services{
		UserService:       NewUserService(repos.UserRepository, logger),
		CourseService:     NewCourseService(repos.CourseRepository, logger),
		CartService:       NewCartService(repos.CartRepository, repos.BookmarkRepository, repos.CourseRepository, logger),
		AssignmentService: NewAssignmentService(repos.AssignmentRepository, logger),
		OrderService:      NewOrderService(repos.OrderRepository, repos.CartRepository, repos.CourseRepository, gateway, emailService, callbackBase, logger),
		BookingService:    NewBookingService(repos.RoomRepository, repos.BookingRepository, intentCreator, emailService, logger),
		StatsService:      NewStatsService(repos.OrderRepository, repos.AssignmentRepository, repos.CourseRepository, repos.UserRepository, logger),
	}
}

package services

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/pkg/email"
	"github.com/coursemart/coursemart-backend/internal/pkg/payment"
)

// BookingService defines the interface for room and booking operations
type BookingService interface {
	GetRooms(ctx context.Context, skip, limit int64) ([]*models.Room, error)
	GetRoomByID(ctx context.Context, idHex string) (*models.Room, error)
	GetRoomsByHost(ctx context.Context, email string) ([]*models.Room, error)
	CreateRoom(ctx context.Context, host *models.User, req *dto.CreateRoomRequest) (primitive.ObjectID, error)
	SetRoomBooked(ctx context.Context, idHex string, booked bool) error
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (primitive.ObjectID, error)
	GetBookingsByGuest(ctx context.Context, email string) ([]*models.Booking, error)
	GetBookingsByHost(ctx context.Context, email string) ([]*models.Booking, error)
	CreatePaymentIntent(price float64) (string, error)
}

// roomStore is the slice of the room repository the service depends on
type roomStore interface {
	Insert(ctx context.Context, room *models.Room) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error)
	FindAll(ctx context.Context, skip, limit int64) ([]*models.Room, error)
	FindByHost(ctx context.Context, email string) ([]*models.Room, error)
	SetBooked(ctx context.Context, id primitive.ObjectID, booked bool) error
}

// bookingStore is the slice of the booking repository the service depends on
type bookingStore interface {
	Insert(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error)
	FindByGuest(ctx context.Context, email string) ([]*models.Booking, error)
	FindByHost(ctx context.Context, email string) ([]*models.Booking, error)
}

// bookingServiceImpl implements BookingService
type bookingServiceImpl struct {
	roomRepo      roomStore
	bookingRepo   bookingStore
	intentCreator payment.IntentCreator
	emailService  email.EmailService
	logger        zerolog.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(
	roomRepo roomStore,
	bookingRepo bookingStore,
	intentCreator payment.IntentCreator,
	emailService email.EmailService,
	logger zerolog.Logger,
) BookingService {
	return &bookingServiceImpl{
		roomRepo:      roomRepo,
		bookingRepo:   bookingRepo,
		intentCreator: intentCreator,
		emailService:  emailService,
		logger:        logger,
	}
}

// GetRooms lists the room catalog page
func (s *bookingServiceImpl) GetRooms(ctx context.Context, skip, limit int64) ([]*models.Room, error) {
	return s.roomRepo.FindAll(ctx, skip, limit)
}

// GetRoomByID retrieves a single room by its hex id
func (s *bookingServiceImpl) GetRoomByID(ctx context.Context, idHex string) (*models.Room, error) {
	id, err := parseObjectID(idHex)
	if err != nil {
		return nil, err
	}
	return s.roomRepo.FindByID(ctx, id)
}

// GetRoomsByHost lists the rooms owned by a host
func (s *bookingServiceImpl) GetRoomsByHost(ctx context.Context, email string) ([]*models.Room, error) {
	return s.roomRepo.FindByHost(ctx, email)
}

// CreateRoom inserts a new room owned by the authenticated host
func (s *bookingServiceImpl) CreateRoom(ctx context.Context, host *models.User, req *dto.CreateRoomRequest) (primitive.ObjectID, error) {
	name := req.HostName
	if name == "" {
		name = host.Name
	}

	room := &models.Room{
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Booked:      false,
		Host: models.RoomHost{
			Name:  name,
			Email: host.Email,
			Image: host.CoverImage,
		},
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.roomRepo.Insert(ctx, room)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.Info().Str("roomId", id.Hex()).Str("host", host.Email).Msg("Room created")
	return id, nil
}

// SetRoomBooked flips the availability flag of a room
func (s *bookingServiceImpl) SetRoomBooked(ctx context.Context, idHex string, booked bool) error {
	id, err := parseObjectID(idHex)
	if err != nil {
		return err
	}
	return s.roomRepo.SetBooked(ctx, id, booked)
}

// CreateBooking records a paid booking for a room, marks the room booked and
// mails the guest a confirmation. The email is best effort.
func (s *bookingServiceImpl) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (primitive.ObjectID, error) {
	roomID, err := parseObjectID(req.RoomID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	booking := &models.Booking{
		RoomID:    room.ID,
		RoomTitle: room.Title,
		Guest: models.BookingGuest{
			Name:  req.GuestName,
			Email: req.GuestEmail,
		},
		HostEmail: room.Host.Email,
		Price:     req.Price,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.bookingRepo.Insert(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if err := s.roomRepo.SetBooked(ctx, room.ID, true); err != nil {
		s.logger.Error().Err(err).Str("roomId", room.ID.Hex()).Msg("Failed to mark room booked")
	}

	if err := s.emailService.SendBookingConfirmation(ctx, req.GuestEmail, req.GuestName, room.Title); err != nil {
		s.logger.Error().Err(err).Str("guest", req.GuestEmail).Msg("Failed to send booking confirmation")
	}

	s.logger.Info().Str("bookingId", id.Hex()).Str("guest", req.GuestEmail).Msg("Booking created")
	return id, nil
}

// GetBookingsByGuest lists a guest's bookings
func (s *bookingServiceImpl) GetBookingsByGuest(ctx context.Context, email string) ([]*models.Booking, error) {
	return s.bookingRepo.FindByGuest(ctx, email)
}

// GetBookingsByHost lists the bookings made against a host's rooms
func (s *bookingServiceImpl) GetBookingsByHost(ctx context.Context, email string) ([]*models.Booking, error) {
	return s.bookingRepo.FindByHost(ctx, email)
}

// CreatePaymentIntent opens a card payment intent for the booking checkout
// and returns its client secret. The price arrives in major units and is
// charged in cents.
func (s *bookingServiceImpl) CreatePaymentIntent(price float64) (string, error) {
	return s.intentCreator.CreatePaymentIntent(int64(math.Round(price * 100)))
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
	"github.com/coursemart/coursemart-backend/internal/pkg/email"
	"github.com/coursemart/coursemart-backend/internal/pkg/payment"
)

const orderCurrency = "USD"

// OrderService defines the interface for the admission order flow
type OrderService interface {
	// CreateOrder opens a gateway payment session for the courses in the
	// requester's cart and persists a pending order. It returns the page
	// the customer is redirected to.
	CreateOrder(ctx context.Context, requesterEmail string, req *dto.CreateOrderRequest) (string, error)
	// ConfirmPayment handles the gateway success callback: it verifies the
	// callback signature, marks the order paid and clears the purchased
	// courses from the cart. Replays of an already-confirmed callback are
	// no-ops returning the same order.
	ConfirmPayment(ctx context.Context, transactionID string, params map[string]string) (*models.Order, error)
	GetOrdersByEmail(ctx context.Context, email string) ([]*models.Order, error)
	GetAllOrders(ctx context.Context) ([]*models.Order, error)
	DeleteOrder(ctx context.Context, idHex string) error
}

// orderStore is the slice of the order repository the service depends on
type orderStore interface {
	Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	MarkPaid(ctx context.Context, transactionID string) (*models.Order, error)
	FindByEmail(ctx context.Context, email string) ([]*models.Order, error)
	FindAll(ctx context.Context) ([]*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// cartCleaner removes purchased courses from the cart after payment
type cartCleaner interface {
	CourseIDs(ctx context.Context, email string) ([]primitive.ObjectID, error)
	DeleteMany(ctx context.Context, email string, courseIDs []primitive.ObjectID) (int64, error)
}

// orderServiceImpl implements OrderService
type orderServiceImpl struct {
	orderRepo    orderStore
	cartRepo     cartCleaner
	courseRepo   courseLookup
	gateway      payment.Gateway
	emailService email.EmailService
	callbackBase string
	logger       zerolog.Logger
}

// NewOrderService creates a new OrderService. callbackBase is the externally
// reachable base URL the gateway posts its callbacks to.
func NewOrderService(
	orderRepo orderStore,
	cartRepo cartCleaner,
	courseRepo courseLookup,
	gateway payment.Gateway,
	emailService email.EmailService,
	callbackBase string,
	logger zerolog.Logger,
) OrderService {
	return &orderServiceImpl{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		courseRepo:   courseRepo,
		gateway:      gateway,
		emailService: emailService,
		callbackBase: callbackBase,
		logger:       logger,
	}
}

// CreateOrder validates the requested courses against the requester's cart,
// totals their stored prices, opens a gateway session and only then persists
// the pending order. A gateway failure aborts the whole operation with
// nothing written.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, requesterEmail string, req *dto.CreateOrderRequest) (string, error) {
	if req.Email != requesterEmail {
		return "", apperrors.NewUnauthorizedError("order email does not match the authenticated user")
	}

	courseIDs := make([]primitive.ObjectID, 0, len(req.CourseIDs))
	for _, hex := range req.CourseIDs {
		id, err := parseObjectID(hex)
		if err != nil {
			return "", err
		}
		courseIDs = append(courseIDs, id)
	}

	cartIDs, err := s.cartRepo.CourseIDs(ctx, req.Email)
	if err != nil {
		return "", err
	}
	inCart := make(map[primitive.ObjectID]bool, len(cartIDs))
	for _, id := range cartIDs {
		inCart[id] = true
	}
	for _, id := range courseIDs {
		if !inCart[id] {
			return "", apperrors.ErrCartOwnerMismatch
		}
	}

	courses, err := s.courseRepo.FindByIDs(ctx, courseIDs)
	if err != nil {
		return "", err
	}
	if len(courses) != len(courseIDs) {
		return "", apperrors.ErrCourseNotFound
	}

	items := make([]models.OrderItem, 0, len(courses))
	var amount float64
	for _, course := range courses {
		items = append(items, models.OrderItem{
			CourseID:     course.ID,
			Title:        course.Title,
			TeacherEmail: course.Teacher.Email,
			Price:        course.Price,
		})
		amount += course.Price
	}

	transactionID := uuid.NewString()

	redirectURL, err := s.gateway.InitiateSession(ctx, payment.SessionRequest{
		Amount:        amount,
		Currency:      orderCurrency,
		TransactionID: transactionID,
		ProductName:   fmt.Sprintf("%d course(s)", len(items)),
		CustomerName:  req.Shipping.FullName,
		CustomerEmail: req.Email,
		SuccessURL:    fmt.Sprintf("%s/payment/success/%s", s.callbackBase, transactionID),
		FailURL:       fmt.Sprintf("%s/payment/fail/%s", s.callbackBase, transactionID),
		CancelURL:     fmt.Sprintf("%s/payment/fail/%s", s.callbackBase, transactionID),
		IPNURL:        fmt.Sprintf("%s/payment/ipn", s.callbackBase),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Gateway session failed, order not persisted")
		return "", apperrors.NewCustomError(apperrors.ErrGatewayFailure, err.Error())
	}

	order := &models.Order{
		Email:         req.Email,
		Items:         items,
		Amount:        amount,
		Currency:      orderCurrency,
		TransactionID: transactionID,
		PaymentStatus: false,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := s.orderRepo.Insert(ctx, order); err != nil {
		return "", err
	}

	s.logger.Info().
		Str("transactionId", transactionID).
		Str("email", req.Email).
		Float64("amount", amount).
		Msg("Pending order created")
	return redirectURL, nil
}

// ConfirmPayment finalizes an order after the gateway reports success. The
// callback must carry a valid verify_sign; an unsigned or forged callback is
// rejected before any state changes. The paid flip is a conditional update,
// so a replayed callback finds nothing to flip and returns the stored order
// without touching the cart again.
func (s *orderServiceImpl) ConfirmPayment(ctx context.Context, transactionID string, params map[string]string) (*models.Order, error) {
	if !s.gateway.VerifySignature(params) {
		s.logger.Warn().Str("transactionId", transactionID).Msg("Rejected callback with bad signature")
		return nil, apperrors.ErrInvalidSignature
	}

	order, err := s.orderRepo.MarkPaid(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrderAlreadyPaid) {
			s.logger.Info().Str("transactionId", transactionID).Msg("Callback replayed for a paid order")
			return order, nil
		}
		return nil, err
	}

	if _, err := s.cartRepo.DeleteMany(ctx, order.Email, order.CourseIDs()); err != nil {
		// The order is already paid at this point, so a stale cart row is
		// the lesser failure. Log and continue.
		s.logger.Error().Err(err).Str("transactionId", transactionID).Msg("Failed to clear purchased courses from cart")
	}

	if err := s.emailService.SendPaymentReceipt(ctx, order.Email, order.Amount, transactionID); err != nil {
		s.logger.Error().Err(err).Str("transactionId", transactionID).Msg("Failed to send payment receipt")
	}

	s.logger.Info().Str("transactionId", transactionID).Str("email", order.Email).Msg("Order paid")
	return order, nil
}

// GetOrdersByEmail lists a user's orders
func (s *orderServiceImpl) GetOrdersByEmail(ctx context.Context, email string) ([]*models.Order, error) {
	return s.orderRepo.FindByEmail(ctx, email)
}

// GetAllOrders lists every order. Admin only.
func (s *orderServiceImpl) GetAllOrders(ctx context.Context) ([]*models.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

// DeleteOrder removes an order. Admin only.
func (s *orderServiceImpl) DeleteOrder(ctx context.Context, idHex string) error {
	id, err := parseObjectID(idHex)
	if err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}

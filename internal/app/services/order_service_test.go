package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
	"github.com/coursemart/coursemart-backend/internal/pkg/payment"
)

type fakeOrderStore struct {
	inserted     []*models.Order
	paid         *models.Order
	markPaidErr  error
	markPaidArgs []string
}

func (f *fakeOrderStore) Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	f.inserted = append(f.inserted, order)
	return primitive.NewObjectID(), nil
}

func (f *fakeOrderStore) MarkPaid(ctx context.Context, transactionID string) (*models.Order, error) {
	f.markPaidArgs = append(f.markPaidArgs, transactionID)
	return f.paid, f.markPaidErr
}

func (f *fakeOrderStore) FindByEmail(ctx context.Context, email string) ([]*models.Order, error) {
	return nil, nil
}

func (f *fakeOrderStore) FindAll(ctx context.Context) ([]*models.Order, error) { return nil, nil }

func (f *fakeOrderStore) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

type fakeCartCleaner struct {
	courseIDs []primitive.ObjectID
	deleted   [][]primitive.ObjectID
}

func (f *fakeCartCleaner) CourseIDs(ctx context.Context, email string) ([]primitive.ObjectID, error) {
	return f.courseIDs, nil
}

func (f *fakeCartCleaner) DeleteMany(ctx context.Context, email string, courseIDs []primitive.ObjectID) (int64, error) {
	f.deleted = append(f.deleted, courseIDs)
	return int64(len(courseIDs)), nil
}

type fakeCourseLookup struct {
	courses []*models.Course
}

func (f *fakeCourseLookup) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Course, error) {
	return f.courses, nil
}

type fakeGateway struct {
	url        string
	initErr    error
	validSig   bool
	initCalled int
}

func (f *fakeGateway) InitiateSession(ctx context.Context, req payment.SessionRequest) (string, error) {
	f.initCalled++
	return f.url, f.initErr
}

func (f *fakeGateway) VerifySignature(params map[string]string) bool { return f.validSig }

type fakeEmailSender struct {
	receipts []string
}

func (f *fakeEmailSender) SendBookingConfirmation(ctx context.Context, toEmail, toName, roomTitle string) error {
	return nil
}

func (f *fakeEmailSender) SendPaymentReceipt(ctx context.Context, toEmail string, amount float64, transactionID string) error {
	f.receipts = append(f.receipts, transactionID)
	return nil
}

type orderFixture struct {
	orders  *fakeOrderStore
	cart    *fakeCartCleaner
	gateway *fakeGateway
	email   *fakeEmailSender
	service OrderService
}

func newOrderFixture(courses []*models.Course, cartIDs []primitive.ObjectID) *orderFixture {
	f := &orderFixture{
		orders:  &fakeOrderStore{},
		cart:    &fakeCartCleaner{courseIDs: cartIDs},
		gateway: &fakeGateway{url: "https://pay.example/session", validSig: true},
		email:   &fakeEmailSender{},
	}
	f.service = NewOrderService(
		f.orders, f.cart, &fakeCourseLookup{courses: courses},
		f.gateway, f.email, "http://localhost:5000", zerolog.Nop(),
	)
	return f
}

func testCourses() []*models.Course {
	return []*models.Course{
		{ID: primitive.NewObjectID(), Title: "Go Basics", Price: 50, Teacher: models.CourseOwner{Email: "t1@example.com"}},
		{ID: primitive.NewObjectID(), Title: "Advanced Go", Price: 99.5, Teacher: models.CourseOwner{Email: "t2@example.com"}},
	}
}

func orderRequest(courses []*models.Course) *dto.CreateOrderRequest {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID.Hex())
	}
	return &dto.CreateOrderRequest{Email: "buyer@example.com", CourseIDs: ids}
}

func cartIDsOf(courses []*models.Course) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestCreateOrderSuccess(t *testing.T) {
	courses := testCourses()
	f := newOrderFixture(courses, cartIDsOf(courses))

	url, err := f.service.CreateOrder(context.Background(), "buyer@example.com", orderRequest(courses))
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if url != "https://pay.example/session" {
		t.Fatalf("unexpected url: %q", url)
	}

	if len(f.orders.inserted) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(f.orders.inserted))
	}
	order := f.orders.inserted[0]
	if order.PaymentStatus {
		t.Fatalf("new order must be pending")
	}
	if order.Amount != 149.5 {
		t.Fatalf("amount must come from stored prices, got %v", order.Amount)
	}
	if len(order.Items) != 2 || order.Items[0].TeacherEmail != "t1@example.com" {
		t.Fatalf("unexpected items: %+v", order.Items)
	}
	if order.TransactionID == "" {
		t.Fatalf("expected a generated transaction id")
	}
}

func TestCreateOrderGatewayFailureAborts(t *testing.T) {
	courses := testCourses()
	f := newOrderFixture(courses, cartIDsOf(courses))
	f.gateway.url = ""
	f.gateway.initErr = errors.New("gateway down")

	_, err := f.service.CreateOrder(context.Background(), "buyer@example.com", orderRequest(courses))
	if !errors.Is(err, apperrors.ErrGatewayFailure) {
		t.Fatalf("expected ErrGatewayFailure, got %v", err)
	}
	if len(f.orders.inserted) != 0 {
		t.Fatalf("gateway failure must not persist an order")
	}
}

func TestCreateOrderEmailMismatch(t *testing.T) {
	courses := testCourses()
	f := newOrderFixture(courses, cartIDsOf(courses))

	_, err := f.service.CreateOrder(context.Background(), "other@example.com", orderRequest(courses))
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if f.gateway.initCalled != 0 {
		t.Fatalf("unauthorized order must not reach the gateway")
	}
}

func TestCreateOrderCourseNotInCart(t *testing.T) {
	courses := testCourses()
	// Cart holds only the first course
	f := newOrderFixture(courses, cartIDsOf(courses[:1]))

	_, err := f.service.CreateOrder(context.Background(), "buyer@example.com", orderRequest(courses))
	if !errors.Is(err, apperrors.ErrCartOwnerMismatch) {
		t.Fatalf("expected ErrCartOwnerMismatch, got %v", err)
	}
	if f.gateway.initCalled != 0 {
		t.Fatalf("cart mismatch must not reach the gateway")
	}
}

func TestCreateOrderInvalidCourseID(t *testing.T) {
	f := newOrderFixture(nil, nil)

	req := &dto.CreateOrderRequest{Email: "buyer@example.com", CourseIDs: []string{"not-a-hex-id"}}
	_, err := f.service.CreateOrder(context.Background(), "buyer@example.com", req)
	if !errors.Is(err, apperrors.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestConfirmPaymentSuccess(t *testing.T) {
	courses := testCourses()
	f := newOrderFixture(courses, cartIDsOf(courses))
	f.orders.paid = &models.Order{
		Email:         "buyer@example.com",
		Amount:        149.5,
		TransactionID: "tran-1",
		PaymentStatus: true,
		Items: []models.OrderItem{
			{CourseID: courses[0].ID},
			{CourseID: courses[1].ID},
		},
	}

	order, err := f.service.ConfirmPayment(context.Background(), "tran-1", map[string]string{"verify_sign": "x"})
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if order.TransactionID != "tran-1" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if len(f.cart.deleted) != 1 || len(f.cart.deleted[0]) != 2 {
		t.Fatalf("purchased courses must be cleared from the cart: %+v", f.cart.deleted)
	}
	if len(f.email.receipts) != 1 || f.email.receipts[0] != "tran-1" {
		t.Fatalf("expected a payment receipt for tran-1")
	}
}

func TestConfirmPaymentBadSignature(t *testing.T) {
	f := newOrderFixture(nil, nil)
	f.gateway.validSig = false

	_, err := f.service.ConfirmPayment(context.Background(), "tran-1", map[string]string{})
	if !errors.Is(err, apperrors.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	if len(f.orders.markPaidArgs) != 0 {
		t.Fatalf("forged callback must not touch the order")
	}
}

func TestConfirmPaymentReplayIsNoOp(t *testing.T) {
	f := newOrderFixture(nil, nil)
	f.orders.paid = &models.Order{TransactionID: "tran-1", PaymentStatus: true}
	f.orders.markPaidErr = apperrors.ErrOrderAlreadyPaid

	order, err := f.service.ConfirmPayment(context.Background(), "tran-1", map[string]string{"verify_sign": "x"})
	if err != nil {
		t.Fatalf("replay must not error, got %v", err)
	}
	if order == nil || order.TransactionID != "tran-1" {
		t.Fatalf("replay must return the stored order")
	}
	if len(f.cart.deleted) != 0 {
		t.Fatalf("replay must not touch the cart")
	}
	if len(f.email.receipts) != 0 {
		t.Fatalf("replay must not resend the receipt")
	}
}

func TestConfirmPaymentUnknownTransaction(t *testing.T) {
	f := newOrderFixture(nil, nil)
	f.orders.markPaidErr = apperrors.ErrOrderNotFound

	_, err := f.service.ConfirmPayment(context.Background(), "missing", map[string]string{"verify_sign": "x"})
	if !errors.Is(err, apperrors.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

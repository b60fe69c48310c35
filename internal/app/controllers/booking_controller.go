package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/app/services"
	"github.com/coursemart/coursemart-backend/internal/middleware"
	"github.com/coursemart/coursemart-backend/internal/pkg/helpers"
)

// BookingController handles room listings, bookings and the card checkout
type BookingController struct {
	bookingService services.BookingService
}

// NewBookingController creates a new BookingController
func NewBookingController(bookingService services.BookingService) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// GetRooms handles GET /rooms, the paginated room catalog
func (c *BookingController) GetRooms(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)
	rooms, err := c.bookingService.GetRooms(ctx.Request.Context(), skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: rooms}))
}

// GetRoom handles GET /room/:id
func (c *BookingController) GetRoom(ctx *gin.Context) {
	room, err := c.bookingService.GetRoomByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(room))
}

// GetHostRooms handles GET /rooms/host/:email. Host only.
func (c *BookingController) GetHostRooms(ctx *gin.Context) {
	rooms, err := c.bookingService.GetRoomsByHost(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: rooms}))
}

// CreateRoom handles POST /rooms. Host only; the owner comes from the
// store-resolved requester.
func (c *BookingController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	host, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := c.bookingService.CreateRoom(ctx.Request.Context(), host, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.InsertResponse{InsertedID: id.Hex()}))
}

// SetRoomStatus handles PATCH /rooms/status/:id, flipping availability
func (c *BookingController) SetRoomStatus(ctx *gin.Context) {
	var req dto.RoomStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.bookingService.SetRoomBooked(ctx.Request.Context(), ctx.Param("id"), req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Room status updated"))
}

// CreateBooking handles POST /bookings, called after the card payment
// succeeds on the client
func (c *BookingController) CreateBooking(ctx *gin.Context) {
	var req dto.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.bookingService.CreateBooking(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.InsertResponse{InsertedID: id.Hex()}))
}

// GetGuestBookings handles GET /bookings/:email
func (c *BookingController) GetGuestBookings(ctx *gin.Context) {
	bookings, err := c.bookingService.GetBookingsByGuest(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: bookings}))
}

// GetHostBookings handles GET /bookings/host/:email. Host only.
func (c *BookingController) GetHostBookings(ctx *gin.Context) {
	bookings, err := c.bookingService.GetBookingsByHost(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: bookings}))
}

// CreatePaymentIntent handles POST /create-payment-intent for the card
// checkout, returning the intent's client secret
func (c *BookingController) CreatePaymentIntent(ctx *gin.Context) {
	var req dto.PaymentIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	clientSecret, err := c.bookingService.CreatePaymentIntent(req.Price)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.PaymentIntentResponse{ClientSecret: clientSecret})
}

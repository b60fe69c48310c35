package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/app/services"
	"github.com/coursemart/coursemart-backend/internal/middleware"
	"github.com/coursemart/coursemart-backend/internal/pkg/logger"
)

// OrderController handles the admission order and payment callback flow
type OrderController struct {
	orderService services.OrderService
	clientURL    string
}

// NewOrderController creates a new OrderController. clientURL is the page
// the customer lands on after the gateway finishes.
func NewOrderController(orderService services.OrderService, clientURL string) *OrderController {
	return &OrderController{
		orderService: orderService,
		clientURL:    clientURL,
	}
}

// CreateOrder handles POST /order. Student only. On success the response
// carries the gateway page the client redirects the customer to.
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var req dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	requester := ctx.GetString(middleware.ContextUserEmail)
	redirectURL, err := c.orderService.CreateOrder(ctx.Request.Context(), requester, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OrderRedirectResponse{URL: redirectURL})
}

// PaymentSuccess handles POST /payment/success/:tranId, the gateway's
// server-to-server success callback. The customer's browser follows the
// redirect, so the response is a 302 back to the client app.
func (c *OrderController) PaymentSuccess(ctx *gin.Context) {
	transactionID := ctx.Param("tranId")

	if err := ctx.Request.ParseForm(); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	params := make(map[string]string, len(ctx.Request.PostForm))
	for key := range ctx.Request.PostForm {
		params[key] = ctx.Request.PostForm.Get(key)
	}

	if _, err := c.orderService.ConfirmPayment(ctx.Request.Context(), transactionID, params); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, c.clientURL)
}

// PaymentFail handles POST /payment/fail/:tranId and the cancel callback.
// The pending order stays in place; only the customer is sent back.
func (c *OrderController) PaymentFail(ctx *gin.Context) {
	logger.Info().Str("transactionId", ctx.Param("tranId")).Msg("Payment failed or cancelled")
	ctx.Redirect(http.StatusFound, c.clientURL)
}

// GetMyOrders handles GET /orders/:email
func (c *OrderController) GetMyOrders(ctx *gin.Context) {
	orders, err := c.orderService.GetOrdersByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: orders}))
}

// GetAllOrders handles GET /orders. Admin only.
func (c *OrderController) GetAllOrders(ctx *gin.Context) {
	orders, err := c.orderService.GetAllOrders(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: orders}))
}

// DeleteOrder handles DELETE /order/:id. Admin only.
func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	if err := c.orderService.DeleteOrder(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Order deleted"))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/app/services"
	"github.com/coursemart/coursemart-backend/internal/middleware"
)

// CartController handles cart and bookmark operations
type CartController struct {
	cartService services.CartService
}

// NewCartController creates a new CartController
func NewCartController(cartService services.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

// AddToCart handles POST /cart. A course already in the cart yields 400.
func (c *CartController) AddToCart(ctx *gin.Context) {
	var req dto.AddCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.cartService.AddToCart(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.InsertResponse{InsertedID: id.Hex()}))
}

// GetCartCourses handles GET /cart/:email, returning the course documents
// joined from the stored ids
func (c *CartController) GetCartCourses(ctx *gin.Context) {
	courses, err := c.cartService.GetCartCourses(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: courses}))
}

// RemoveFromCart handles DELETE /cart
func (c *CartController) RemoveFromCart(ctx *gin.Context) {
	var req dto.RemoveCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.cartService.RemoveFromCart(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DeleteResponse{DeletedCount: 1}))
}

// AddBookmark handles POST /bookmarks
func (c *CartController) AddBookmark(ctx *gin.Context) {
	var req dto.AddCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.cartService.AddBookmark(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.InsertResponse{InsertedID: id.Hex()}))
}

// GetBookmarkedCourses handles GET /bookmarks/:email
func (c *CartController) GetBookmarkedCourses(ctx *gin.Context) {
	courses, err := c.cartService.GetBookmarkedCourses(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: courses}))
}

// RemoveBookmark handles DELETE /bookmarks
func (c *CartController) RemoveBookmark(ctx *gin.Context) {
	var req dto.RemoveCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.cartService.RemoveBookmark(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DeleteResponse{DeletedCount: 1}))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/app/services"
	"github.com/coursemart/coursemart-backend/internal/middleware"
	"github.com/coursemart/coursemart-backend/internal/pkg/helpers"
)

// CourseController handles course catalog and moderation operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetCourses handles GET /courses, the paginated public catalog of
// approved courses
func (c *CourseController) GetCourses(ctx *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(ctx)
	courses, err := c.courseService.GetApprovedCourses(ctx.Request.Context(), skip, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: courses}))
}

// GetAllCourses handles GET /courses/all, every course including pending
// ones. Admin only.
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: courses}))
}

// GetCourse handles GET /course/:id
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// GetBeginnerCourses handles GET /courses/beginner
func (c *CourseController) GetBeginnerCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetBeginnerCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: courses}))
}

// GetCoursesByTeacher handles GET /courses/teacher/:email. Teacher only.
func (c *CourseController) GetCoursesByTeacher(ctx *gin.Context) {
	courses, err := c.courseService.GetCoursesByTeacher(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: courses}))
}

// CreateCourse handles POST /course. Teacher only; the owner comes from the
// store-resolved requester, not the payload.
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	teacher, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, err := c.courseService.CreateCourse(ctx.Request.Context(), teacher, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.InsertResponse{InsertedID: id.Hex()}))
}

// UpdateCourse handles PUT /course/:id. Teacher only.
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.courseService.UpdateCourse(ctx.Request.Context(), ctx.Param("id"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course updated"))
}

// ApproveCourse handles PATCH /course/approve/:id. Admin only.
func (c *CourseController) ApproveCourse(ctx *gin.Context) {
	if err := c.courseService.ApproveCourse(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course approved"))
}

// DeleteCourse handles DELETE /course/:id. Admin only.
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted"))
}

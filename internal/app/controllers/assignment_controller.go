package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/app/services"
	"github.com/coursemart/coursemart-backend/internal/middleware"
)

// AssignmentController handles assignment submission and grading
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// CreateAssignment handles POST /assignments. Student only.
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.assignmentService.CreateAssignment(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.InsertResponse{InsertedID: id.Hex()}))
}

// GetStudentAssignments handles GET /assignments/student/:email. Student only.
func (c *AssignmentController) GetStudentAssignments(ctx *gin.Context) {
	assignments, err := c.assignmentService.GetAssignmentsByStudent(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: assignments}))
}

// GetTeacherAssignments handles GET /assignments/teacher/:email. Teacher only.
func (c *AssignmentController) GetTeacherAssignments(ctx *gin.Context) {
	assignments, err := c.assignmentService.GetAssignmentsByTeacher(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ListResponse{Result: assignments}))
}

// GradeAssignment handles PUT /assignments/teacher/:id. Teacher only.
func (c *AssignmentController) GradeAssignment(ctx *gin.Context) {
	var req dto.GradeAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.assignmentService.GradeAssignment(ctx.Request.Context(), ctx.Param("id"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Assignment graded"))
}

// DeleteStudentAssignments handles DELETE /assignments/student/:email.
// Student only; used when a student resets their submissions.
func (c *AssignmentController) DeleteStudentAssignments(ctx *gin.Context) {
	count, err := c.assignmentService.DeleteAssignmentsByStudent(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DeleteResponse{DeletedCount: count}))
}

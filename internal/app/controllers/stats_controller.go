package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursemart/coursemart-backend/internal/app/services"
	"github.com/coursemart/coursemart-backend/internal/middleware"
)

// StatsController serves the dashboard statistics endpoints
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// TeacherEarnings handles GET /stats/teacher/earnings/:email
func (c *StatsController) TeacherEarnings(ctx *gin.Context) {
	c.respond(ctx, func() (interface{}, error) {
		return c.statsService.TeacherEarnings(ctx.Request.Context(), ctx.Param("email"))
	})
}

// TeacherEarningsHistory handles GET /stats/teacher/earnings-history/:email
func (c *StatsController) TeacherEarningsHistory(ctx *gin.Context) {
	c.respond(ctx, func() (interface{}, error) {
		return c.statsService.TeacherEarningsHistory(ctx.Request.Context(), ctx.Param("email"))
	})
}

// TeacherStudentsCount handles GET /stats/teacher/students/:email
func (c *StatsController) TeacherStudentsCount(ctx *gin.Context) {
	c.respond(ctx, func() (interface{}, error) {
		return c.statsService.TeacherStudentsCount(ctx.Request.Context(), ctx.Param("email"))
	})
}

// TeacherCoursesCount handles GET /stats/teacher/courses/:email
func (c *StatsController) TeacherCoursesCount(ctx *gin.Context) {
	c.respond(ctx, func() (interface{}, error) {
		return c.statsService.TeacherCoursesCount(ctx.Request.Context(), ctx.Param("email"))
	})
}

// TeacherAssignmentsCount handles GET /stats/teacher/assignments/:email
func (c *StatsController) TeacherAssignmentsCount(ctx *gin.Context) {
	c.respond(ctx, func() (interface{}, error) {
		return c.statsService.TeacherAssignmentsCount(ctx.Request.Context(), ctx.Param("email"))
	})
}

// StudentAverageMark handles GET /stats/student/average-mark/:email
func (c *StatsController) StudentAverageMark(ctx *gin.Context) {
	c.respond(ctx, func() (interface{}, error) {
		return c.statsService.StudentAverageMark(ctx.Request.Context(), ctx.Param("email"))
	})
}

// StudentMarksDistribution handles GET /stats/student/marks/:email
func (c *StatsController) StudentMarksDistribution(ctx *gin.Context) {
	c.respond(ctx, func() (interface{}, error) {
		return c.statsService.StudentMarksDistribution(ctx.Request.Context(), ctx.Param("email"))
	})
}

// StudentAssignmentsCount handles GET /stats/student/assignments/:email
func (c *StatsController) StudentAssignmentsCount(ctx *gin.Context) {
	c.respond(ctx, func() (interface{}, error) {
		return c.statsService.StudentAssignmentsCount(ctx.Request.Context(), ctx.Param("email"))
	})
}

// StudentOrdersCount handles GET /stats/student/orders/:email
func (c *StatsController) StudentOrdersCount(ctx *gin.Context) {
	c.respond(ctx, func() (interface{}, error) {
		return c.statsService.StudentOrdersCount(ctx.Request.Context(), ctx.Param("email"))
	})
}

// AdminUsersCount handles GET /stats/admin/users
func (c *StatsController) AdminUsersCount(ctx *gin.Context) {
	c.respond(ctx, func() (interface{}, error) {
		return c.statsService.AdminUsersCount(ctx.Request.Context())
	})
}

// AdminTeachersCount handles GET /stats/admin/teachers
func (c *StatsController) AdminTeachersCount(ctx *gin.Context) {
	c.respond(ctx, func() (interface{}, error) {
		return c.statsService.AdminTeachersCount(ctx.Request.Context())
	})
}

// AdminCoursesCount handles GET /stats/admin/courses
func (c *StatsController) AdminCoursesCount(ctx *gin.Context) {
	c.respond(ctx, func() (interface{}, error) {
		return c.statsService.AdminCoursesCount(ctx.Request.Context())
	})
}

func (c *StatsController) respond(ctx *gin.Context, load func() (interface{}, error)) {
	data, err := load()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

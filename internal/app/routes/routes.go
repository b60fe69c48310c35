package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coursemart/coursemart-backend/internal/app/controllers"
	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	cartController *controllers.CartController,
	assignmentController *controllers.AssignmentController,
	orderController *controllers.OrderController,
	bookingController *controllers.BookingController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.POST("/jwt", authController.IssueToken)
	router.GET("/logout", authController.ClearToken)

	router.GET("/courses", courseController.GetCourses)
	router.GET("/courses/beginner", courseController.GetBeginnerCourses)
	router.GET("/course/:id", courseController.GetCourse)

	router.GET("/rooms", bookingController.GetRooms)
	router.GET("/room/:id", bookingController.GetRoom)

	// Gateway callbacks. These arrive server-to-server from the payment
	// provider, authenticated by their signature rather than a cookie.
	payment := router.Group("/payment")
	{
		payment.POST("/success/:tranId", orderController.PaymentSuccess)
		payment.POST("/fail/:tranId", orderController.PaymentFail)
	}

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.CookieAuth())
	{
		authenticated.GET("/users/:email", userController.GetUser)
		authenticated.PUT("/users/:email", userController.UpsertUser)
		authenticated.PUT("/user/cover/:email", userController.UpdateCoverImage)

		authenticated.POST("/cart", cartController.AddToCart)
		authenticated.GET("/cart/:email", cartController.GetCartCourses)
		authenticated.DELETE("/cart", cartController.RemoveFromCart)

		authenticated.POST("/bookmarks", cartController.AddBookmark)
		authenticated.GET("/bookmarks/:email", cartController.GetBookmarkedCourses)
		authenticated.DELETE("/bookmarks", cartController.RemoveBookmark)

		authenticated.GET("/orders/:email", orderController.GetMyOrders)

		authenticated.POST("/bookings", bookingController.CreateBooking)
		authenticated.GET("/bookings/guest/:email", bookingController.GetGuestBookings)
		authenticated.POST("/create-payment-intent", bookingController.CreatePaymentIntent)

		// Student routes
		student := authenticated.Group("")
		student.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			student.POST("/order", orderController.CreateOrder)
			student.POST("/assignments", assignmentController.CreateAssignment)
			student.GET("/assignments/student/:email", assignmentController.GetStudentAssignments)

			student.GET("/stats/student/average-mark/:email", statsController.StudentAverageMark)
			student.GET("/stats/student/marks/:email", statsController.StudentMarksDistribution)
			student.GET("/stats/student/assignments/:email", statsController.StudentAssignmentsCount)
			student.GET("/stats/student/orders/:email", statsController.StudentOrdersCount)
		}

		// Teacher routes
		teacher := authenticated.Group("")
		teacher.Use(authMiddleware.RoleRequired(models.RoleTeacher))
		{
			teacher.POST("/course", courseController.CreateCourse)
			teacher.PUT("/course/:id", courseController.UpdateCourse)
			teacher.GET("/courses/teacher/:email", courseController.GetCoursesByTeacher)
			teacher.GET("/assignments/teacher/:email", assignmentController.GetTeacherAssignments)
			teacher.PUT("/assignments/teacher/:id", assignmentController.GradeAssignment)

			teacher.GET("/stats/teacher/earnings/:email", statsController.TeacherEarnings)
			teacher.GET("/stats/teacher/earnings-history/:email", statsController.TeacherEarningsHistory)
			teacher.GET("/stats/teacher/students/:email", statsController.TeacherStudentsCount)
			teacher.GET("/stats/teacher/courses/:email", statsController.TeacherCoursesCount)
			teacher.GET("/stats/teacher/assignments/:email", statsController.TeacherAssignmentsCount)
		}

		// Host routes
		host := authenticated.Group("")
		host.Use(authMiddleware.RoleRequired(models.RoleHost))
		{
			host.POST("/rooms", bookingController.CreateRoom)
			host.GET("/rooms/host/:email", bookingController.GetHostRooms)
			host.PATCH("/rooms/status/:id", bookingController.SetRoomStatus)
			host.GET("/bookings/host/:email", bookingController.GetHostBookings)
		}

		// Admin routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/users", userController.GetAllUsers)
			admin.PUT("/admin/users/:email", userController.UpdateUserRole)
			admin.GET("/courses/all", courseController.GetAllCourses)
			admin.PATCH("/course/approve/:id", courseController.ApproveCourse)
			admin.DELETE("/course/:id", courseController.DeleteCourse)
			admin.GET("/orders", orderController.GetAllOrders)
			admin.DELETE("/order/:id", orderController.DeleteOrder)
			admin.DELETE("/assignments/student/:email", assignmentController.DeleteStudentAssignments)

			admin.GET("/stats/admin/users", statsController.AdminUsersCount)
			admin.GET("/stats/admin/teachers", statsController.AdminTeachersCount)
			admin.GET("/stats/admin/courses", statsController.AdminCoursesCount)
		}
	}
}

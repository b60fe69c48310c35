package dto

// CreateAssignmentRequest is the payload for POST /assignments
type CreateAssignmentRequest struct {
	Title        string `json:"title" binding:"required"`
	StudentEmail string `json:"studentEmail" binding:"required,email"`
	TeacherEmail string `json:"teacherEmail" binding:"required,email"`
	CourseID     string `json:"courseId"`
	Submission   string `json:"submission"`
}

// GradeAssignmentRequest is the payload for PUT /assignments/teacher/:id
type GradeAssignmentRequest struct {
	Mark     float64 `json:"mark" binding:"gte=0"`
	Feedback string  `json:"feedback"`
}

package dto

// AddCartItemRequest is the payload for POST /cart and POST /bookmarks
type AddCartItemRequest struct {
	CourseID  string `json:"courseId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}

// RemoveCartItemRequest is the payload for DELETE /cart and DELETE /bookmarks
type RemoveCartItemRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

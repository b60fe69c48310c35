package dto

// UpsertUserRequest is the payload for PUT /users/:email
type UpsertUserRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role" binding:"omitempty,oneof=guest student teacher host admin"`
	Status string `json:"status" binding:"omitempty,oneof=requested"`
}

// UpdateUserRequest is the admin payload for PUT /users/update/:email
type UpdateUserRequest struct {
	Role   string `json:"role" binding:"required,oneof=guest student teacher host admin"`
	Status string `json:"status" binding:"omitempty,oneof=requested"`
}

// CoverImageRequest is the payload for PUT /user/cover/:email
type CoverImageRequest struct {
	CoverImage string `json:"coverImg" binding:"required"`
}

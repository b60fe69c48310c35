package dto

// CreateCourseRequest is the payload for POST /course
type CreateCourseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Level       string  `json:"level"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	TeacherName string  `json:"teacherName"`
}

// UpdateCourseRequest is the payload for PUT /course/:id; zero-value fields
// are left untouched
type UpdateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Level       string   `json:"level"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
}

// CreateRoomRequest is the payload for POST /rooms
type CreateRoomRequest struct {
	Title       string  `json:"title" binding:"required"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	HostName    string  `json:"hostName"`
}

// RoomStatusRequest is the payload for PATCH /rooms/status/:id
type RoomStatusRequest struct {
	Status bool `json:"status"`
}

package dto

import "time"

// APIResponse is the standard success envelope for API endpoints
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse creates a success envelope around data
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse creates a success envelope with only a message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// ListResponse wraps a collection result
type ListResponse struct {
	Result interface{} `json:"result"`
	Total  int64       `json:"total,omitempty"`
}

// InsertResponse reports the id generated by an insert
type InsertResponse struct {
	InsertedID string `json:"insertedId"`
}

// DeleteResponse reports the count removed by a delete
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

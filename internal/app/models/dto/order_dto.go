package dto

// CreateOrderRequest is the payload for POST /order. Course ids must already
// sit in the requester's cart; the total is computed server side from the
// stored course prices.
type CreateOrderRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	CourseIDs []string        `json:"courseIds" binding:"required,min=1"`
	Shipping  ShippingDetails `json:"shippingDetails"`
}

// ShippingDetails carries the customer fields forwarded to the gateway
type ShippingDetails struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// OrderRedirectResponse returns the gateway redirect URL
type OrderRedirectResponse struct {
	URL string `json:"url"`
}

// PaymentIntentRequest is the payload for POST /create-payment-intent
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// PaymentIntentResponse returns the client secret for the card flow
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateBookingRequest is the payload for POST /bookings
type CreateBookingRequest struct {
	RoomID     string  `json:"roomId" binding:"required"`
	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail" binding:"required,email"`
	Price      float64 `json:"price" binding:"required,gt=0"`
}

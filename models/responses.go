package models

// MessageResponse is the generic acknowledgement body returned by write
// endpoints that have no richer payload (registration, itinerary save).
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the login success body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthRequest is the request body shared by registration and login.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

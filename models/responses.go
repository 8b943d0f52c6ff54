package models

// ErrorResponse is the body of every non-2xx HTTP response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is returned by POST /register on success.
type RegisterResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// LoginResponse is returned by POST /login on success.
type LoginResponse struct {
	Token string `json:"token"`
}

// ProfileResponse is returned by GET /profile when no flight query is given.
type ProfileResponse struct {
	User PublicUser `json:"user"`
}

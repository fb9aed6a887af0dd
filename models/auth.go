package models

// Credentials is the body of POST /auth/register and POST /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by both auth endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message,omitempty"`
}

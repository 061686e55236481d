package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// LoginRequest accepts both a JSON body and the OAuth2 password form,
// where the email travels as "username".
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Identifier returns the email the client logged in with.
func (r LoginRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

func (r LoginRequest) Validate() error {
	id := r.Identifier()
	return validation.Errors{
		"email":    validation.Validate(id, validation.Required),
		"password": validation.Validate(r.Password, validation.Required),
	}.Filter()
}

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   time.Time   `json:"expires_at"`
	User        UserSummary `json:"user"`
}

type UserSummary struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type ErrorResponse struct {
	Error   bool              `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

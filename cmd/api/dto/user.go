package dto

import "unicode"

// RegisterRequest carries the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=5,max=50" example:"Alice Smith"`
	Email    string `json:"email" binding:"required,email,min=5,max=255" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=8,max=1024" example:"Passw0rd!"`
}

// ValidatePassword enforces the letter+digit policy. RE2 has no lookahead,
// so the two classes are checked directly.
func (r RegisterRequest) ValidatePassword() bool {
	return passwordHasLetterAndDigit(r.Password)
}

func passwordHasLetterAndDigit(password string) bool {
	var hasLetter, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// LoginRequest carries the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,min=5,max=255" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=5,max=255" example:"Passw0rd!"`
}

// UserDTO is the sanitized identity view returned on register/login.
// The password hash is never part of any response.
type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

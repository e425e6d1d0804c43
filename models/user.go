package models

import (
	"errors"

	goval "github.com/go-passwd/validator"
	"github.com/leebenson/conform"
	"golang.org/x/crypto/bcrypt"
)

// User represents an author of the blog. The hashed password never
// leaves the server; the posts column counts authored posts.
type User struct {
	Model
	Name           string `json:"name" binding:"required,min=2"`
	Email          string `json:"email" gorm:"unique;not null" binding:"required,email"`
	HashedPassword string `json:"-"`
	Avatar         string `json:"avatar,omitempty"`
	Posts          int    `json:"posts"`
}

// VerifyPassword compares the collected password with the user's
// stored bcrypt hash.
func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
}

// ValidatePassword enforces the minimum password length. Exactly six
// characters pass, five do not.
func ValidatePassword(password string) error {
	passwordValidator := goval.New(goval.MinLength(6, errors.New("Password must be at least 6 characters long.")))
	return passwordValidator.Validate(password)
}

func validateWhiteSpaces(data interface{}) error {
	return conform.Strings(data)
}

type RegisterRequest struct {
	Name      string `json:"name" form:"name" conform:"trim"`
	Email     string `json:"email" form:"email" conform:"trim,lower"`
	Password  string `json:"password" form:"password"`
	Password2 string `json:"password2" form:"password2"`
}

// Conform trims whitespace and lowercases the email before any
// uniqueness check runs.
func (r *RegisterRequest) Conform() error {
	return validateWhiteSpaces(r)
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" conform:"trim,lower"`
	Password string `json:"password" form:"password"`
}

func (r *LoginRequest) Conform() error {
	return validateWhiteSpaces(r)
}

type LoginResponse struct {
	Token string `json:"token"`
	ID    uint   `json:"id"`
	Name  string `json:"name"`
}

type EditUserRequest struct {
	Name               string `json:"name" form:"name" conform:"trim"`
	Email              string `json:"email" form:"email" conform:"trim,lower"`
	CurrentPassword    string `json:"currentPassword" form:"currentPassword"`
	NewPassword        string `json:"newPassword" form:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword" form:"confirmNewPassword"`
}

func (r *EditUserRequest) Conform() error {
	return validateWhiteSpaces(r)
}

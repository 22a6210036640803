package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Elziee/BIOOO-comp/models"
	"github.com/Elziee/BIOOO-comp/utils"
)

var (
	// ErrEmailTaken signals a registration conflict on an already
	// registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials deliberately covers both unknown-email and
	// wrong-password so login failures stay indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates a user with a bcrypt-hashed credential. The plaintext
// password is never stored.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies the credential and returns the account on success.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

package auth

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

// CreateUser provisions a pharmacist account. Accounts are created by the
// operator alongside the pharmacy row; there is no self-service signup.
func (s *AuthService) CreateUser(user Pharmacist) (*Pharmacist, error) {
	if user.PharmacyID == 0 {
		return nil, errors.New("pharmacist must belong to a pharmacy")
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") || strings.Contains(err.Error(), "unique constraint") {
			return nil, errors.New("an account with this email already exists")
		}
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) GetUser(email string) (*Pharmacist, error) {
	var user Pharmacist
	result := s.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *AuthService) GetUserByID(id uint) (*Pharmacist, error) {
	var user Pharmacist
	result := s.DB.Where("id = ?", id).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

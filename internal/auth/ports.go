package auth

import "rx-education-api/internal/logs"

type AuthServicePort interface {
	CreateUser(user Pharmacist) (*Pharmacist, error)
	GetUser(email string) (*Pharmacist, error)
	GetUserByID(id uint) (*Pharmacist, error)
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ AuthServicePort = (*AuthService)(nil)
var _ LogServicePort = (*logs.LogService)(nil)

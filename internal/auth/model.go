package auth

import "time"

// Pharmacist is the authenticated identity. Each pharmacist belongs to
// exactly one pharmacy; that pharmacy is the tenant boundary for everything
// the session can touch.
type Pharmacist struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName  string    `gorm:"size:100;not null;column:firstname" json:"firstname"`
	LastName   string    `gorm:"size:100;not null;column:lastname" json:"lastname"`
	Email      string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	PharmacyID uint      `gorm:"not null;index" json:"pharmacy_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type LoginResponse struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"firstname"`
	LastName   string `json:"lastname"`
	Email      string `json:"email"`
	PharmacyID uint   `json:"pharmacy_id"`
}

func (Pharmacist) TableName() string {
	return "pharmacists"
}

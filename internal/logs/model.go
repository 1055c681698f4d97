package logs

import (
	"time"

	"gorm.io/datatypes"
)

type SystemLog struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Level      string         `gorm:"size:20;not null" json:"level"`
	Service    string         `gorm:"size:100;not null" json:"service"`
	UserID     *uint          `gorm:"index" json:"user_id,omitempty"`
	PharmacyID *uint          `gorm:"index" json:"pharmacy_id,omitempty"`
	Action     string         `gorm:"size:255;not null" json:"action"`
	Message    string         `gorm:"type:text;not null" json:"message"`
	GPI        *string        `gorm:"size:32;column:gpi" json:"gpi,omitempty"`
	Metadata   datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

type LogFilterInput struct {
	PharmacyID *uint   `form:"-" json:"-"` // always forced from the session
	UserID     *uint   `form:"user_id" json:"user_id"`
	Level      *string `form:"level" json:"level"`
	Service    *string `form:"service" json:"service"`
	Action     *string `form:"action" json:"action"`
	GPI        *string `form:"gpi" json:"gpi"`

	StartDate *string `form:"start_date" json:"start_date"` // "YYYY-MM-DD"
	EndDate   *string `form:"end_date" json:"end_date"`

	Search   *string `form:"search" json:"search"`
	Page     int     `form:"page" json:"page"`
	PageSize int     `form:"page_size" json:"page_size"`
}

func (SystemLog) TableName() string {
	return "logs"
}

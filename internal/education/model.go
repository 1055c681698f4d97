package education

import "time"

// Pharmacy rows are provisioned by the operator and read-only to this
// service. The slug is what patients see in public links.
type Pharmacy struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Slug      string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// DrugEducation is one education record, keyed for lookup by (pharmacy, gpi).
// Duplicate (pharmacy_id, gpi) rows are tolerated: the public lookup orders
// by id and serves the first match, so at most one duplicate is ever visible
// to patients. No composite uniqueness constraint is enforced.
type DrugEducation struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	PharmacyID  uint       `gorm:"not null;index" json:"pharmacy_id"`
	GPI         string     `gorm:"size:32;not null;index;column:gpi" json:"gpi"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	VideoURL    *string    `gorm:"size:1024;column:video_url" json:"video_url"`
	Summary     *string    `gorm:"type:text" json:"summary"`
	LastChecked *time.Time `json:"last_checked"`
	CreatedAt   time.Time  `json:"created_at"`
}

// EducationInput carries the writable fields for create and update. The
// owning pharmacy is never part of the input; it comes from the session.
type EducationInput struct {
	GPI      string  `json:"gpi"`
	Title    string  `json:"title"`
	VideoURL *string `json:"video_url"`
	Summary  *string `json:"summary"`
}

type SummaryRequest struct {
	Title string `json:"title" binding:"required"`
	GPI   string `json:"gpi"`
}

func (Pharmacy) TableName() string {
	return "pharmacies"
}

func (DrugEducation) TableName() string {
	return "drug_education"
}

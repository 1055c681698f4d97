package lookup

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound means no pharmacy with that slug, or no record with that gpi
// at that pharmacy. Callers cannot tell which, and should not.
var ErrNotFound = errors.New("education record not found")

type LookupServiceAPI interface {
	FindBySlugAndGPI(slug, gpi string) (*PublicEducation, error)
}

type LookupService struct {
	DB *gorm.DB
}

func NewLookupService(db *gorm.DB) *LookupService {
	return &LookupService{DB: db}
}

// FindBySlugAndGPI resolves the pharmacy by slug and returns its education
// record for the gpi. When a pharmacy carries duplicate gpi rows the oldest
// one wins.
func (ls *LookupService) FindBySlugAndGPI(slug, gpi string) (*PublicEducation, error) {
	var record PublicEducation
	result := ls.DB.
		Table("drug_education").
		Select("drug_education.title, drug_education.video_url, drug_education.summary").
		Joins("JOIN pharmacies ON pharmacies.id = drug_education.pharmacy_id").
		Where("pharmacies.slug = ? AND drug_education.gpi = ?", slug, gpi).
		Order("drug_education.id ASC").
		Limit(1).
		Find(&record)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &record, nil
}

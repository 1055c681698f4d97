package education

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"rx-education-api/internal/videoutil"
)

var (
	// ErrNotFound covers both a genuinely missing id and a cross-tenant id:
	// the ownership predicate makes them indistinguishable on purpose.
	ErrNotFound = errors.New("education record not found")

	// ErrInvalidInput marks validation failures so controllers can answer 400.
	ErrInvalidInput = errors.New("invalid input")
)

type EducationService struct {
	DB *gorm.DB
}

// List returns every record of one pharmacy, ordered by title.
func (s *EducationService) List(pharmacyID uint) ([]DrugEducation, error) {
	records := []DrugEducation{}
	if err := s.DB.Where("pharmacy_id = ?", pharmacyID).Order("title").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *EducationService) Get(pharmacyID, id uint) (*DrugEducation, error) {
	var record DrugEducation
	err := s.DB.Where("id = ? AND pharmacy_id = ?", id, pharmacyID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create stamps ownership from the session pharmacy and sets last_checked to
// now. The video URL is normalized into its embeddable form before it is
// stored.
func (s *EducationService) Create(pharmacyID uint, input EducationInput) (*DrugEducation, error) {
	cleaned, err := cleanInput(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := DrugEducation{
		PharmacyID:  pharmacyID,
		GPI:         cleaned.GPI,
		Title:       cleaned.Title,
		VideoURL:    cleaned.VideoURL,
		Summary:     cleaned.Summary,
		LastChecked: &now,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Update rewrites the writable fields and bumps last_checked. The WHERE
// clause carries the tenant, so an id owned by another pharmacy comes back
// as ErrNotFound rather than leaking that it exists.
func (s *EducationService) Update(pharmacyID, id uint, input EducationInput) (*DrugEducation, error) {
	cleaned, err := cleanInput(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := s.DB.Model(&DrugEducation{}).
		Where("id = ? AND pharmacy_id = ?", id, pharmacyID).
		Updates(map[string]interface{}{
			"gpi":          cleaned.GPI,
			"title":        cleaned.Title,
			"video_url":    cleaned.VideoURL,
			"summary":      cleaned.Summary,
			"last_checked": &now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return s.Get(pharmacyID, id)
}

// Delete removes the record immediately. There is no soft delete and no
// recovery.
func (s *EducationService) Delete(pharmacyID, id uint) error {
	result := s.DB.Where("id = ? AND pharmacy_id = ?", id, pharmacyID).Delete(&DrugEducation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func cleanInput(input EducationInput) (EducationInput, error) {
	input.GPI = strings.TrimSpace(input.GPI)
	input.Title = strings.TrimSpace(input.Title)
	if input.GPI == "" {
		return input, fmt.Errorf("%w: gpi is required", ErrInvalidInput)
	}
	if input.Title == "" {
		return input, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	input.VideoURL = normalizeOptional(input.VideoURL)
	input.Summary = blankToNil(input.Summary)
	return input, nil
}

func normalizeOptional(raw *string) *string {
	raw = blankToNil(raw)
	if raw == nil {
		return nil
	}
	normalized := videoutil.EmbedURL(strings.TrimSpace(*raw))
	return &normalized
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
